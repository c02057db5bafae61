package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusattend/internal/auth"
	"campusattend/internal/identity"
)

type signupRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Name      string `json:"name" binding:"required"`
	StudentID string `json:"studentId"`
	Role      string `json:"role" binding:"omitempty,oneof=student admin"`
	Semester  string `json:"semester"`
}

// SignUp registers a user through the identity service.
func (h *Handler) SignUp(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBind(c, err)
		return
	}
	user, err := h.identity.SignUp(c.Request.Context(), identity.SignUpParams{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		StudentID: req.StudentID,
		Role:      req.Role,
		Semester:  req.Semester,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"user": user})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues an access token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBind(c, err)
		return
	}
	user, err := h.identity.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	token, exp, err := auth.Issue(user.ID, user.Role, h.authCfg.Issuer, h.authCfg.SigningKey, h.authCfg.AccessTTL)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{
		"accessToken": token,
		"expiresAt":   exp.Unix(),
		"user":        user,
	})
}

// MyManager returns the caller's manager contact card.
func (h *Handler) MyManager(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	manager, err := h.identity.ManagerFor(c.Request.Context(), user.StudentID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"manager": manager})
}

// AllStudents lists every student profile (admin).
func (h *Handler) AllStudents(c *gin.Context) {
	students, err := h.identity.Students(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if students == nil {
		students = []identity.User{}
	}
	ok(c, http.StatusOK, gin.H{"students": students})
}
