package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusattend/internal/auth"
	"campusattend/internal/directory"
)

type addTeacherRequest struct {
	Name     string `json:"name" binding:"required"`
	Subject  string `json:"subject"`
	Semester string `json:"semester"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// AddTeacher registers a teacher record (admin).
func (h *Handler) AddTeacher(c *gin.Context) {
	var req addTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBind(c, err)
		return
	}
	t, err := h.directory.AddTeacher(c.Request.Context(), directory.Teacher{
		Name:     req.Name,
		Subject:  req.Subject,
		Semester: req.Semester,
		Phone:    req.Phone,
		Email:    req.Email,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"teacher": t})
}

// UpdateTeacher edits a teacher record (admin).
func (h *Handler) UpdateTeacher(c *gin.Context) {
	var upd directory.TeacherUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		failBind(c, err)
		return
	}
	t, err := h.directory.UpdateTeacher(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"teacher": t})
}

// DeleteTeacher removes a teacher record (admin).
func (h *Handler) DeleteTeacher(c *gin.Context) {
	if err := h.directory.DeleteTeacher(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{})
}

// AllTeachers lists every teacher record.
func (h *Handler) AllTeachers(c *gin.Context) {
	teachers, err := h.directory.Teachers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if teachers == nil {
		teachers = []directory.Teacher{}
	}
	ok(c, http.StatusOK, gin.H{"teachers": teachers})
}

// MyTeachers lists the teachers for the caller's semester.
func (h *Handler) MyTeachers(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	teachers, err := h.directory.TeachersForSemester(c.Request.Context(), user.Semester)
	if err != nil {
		fail(c, err)
		return
	}
	if teachers == nil {
		teachers = []directory.Teacher{}
	}
	ok(c, http.StatusOK, gin.H{"teachers": teachers})
}

type addSemesterRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}

// AddSemester registers a semester record (admin).
func (h *Handler) AddSemester(c *gin.Context) {
	var req addSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBind(c, err)
		return
	}
	sem, err := h.directory.AddSemester(c.Request.Context(), directory.Semester{Code: req.Code, Name: req.Name})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"semester": sem})
}

// AllSemesters lists every semester record.
func (h *Handler) AllSemesters(c *gin.Context) {
	semesters, err := h.directory.Semesters(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if semesters == nil {
		semesters = []directory.Semester{}
	}
	ok(c, http.StatusOK, gin.H{"semesters": semesters})
}
