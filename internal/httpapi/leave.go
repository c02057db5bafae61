package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusattend/internal/auth"
	"campusattend/internal/leave"
)

type applyLeaveRequest struct {
	Type     string `json:"type" binding:"required,oneof=CL SL EL LWP"`
	FromDate string `json:"fromDate" binding:"required"`
	ToDate   string `json:"toDate" binding:"required"`
	Reason   string `json:"reason"`
}

// ApplyLeave files a new leave application for the caller.
func (h *Handler) ApplyLeave(c *gin.Context) {
	var req applyLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBind(c, err)
		return
	}
	user, _ := auth.CurrentUser(c)
	app, err := h.leaves.Apply(c.Request.Context(), user.StudentID, user.Name, req.Type, req.FromDate, req.ToDate, req.Reason)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"leave": app})
}

// MyLeaves lists the caller's applications.
func (h *Handler) MyLeaves(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	apps, err := h.leaves.ForStudent(c.Request.Context(), user.StudentID)
	if err != nil {
		fail(c, err)
		return
	}
	if apps == nil {
		apps = []leave.Application{}
	}
	ok(c, http.StatusOK, gin.H{"leaves": apps})
}

// MyLeaveBalance returns the caller's per-type balances.
func (h *Handler) MyLeaveBalance(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	balance, err := h.leaves.BalanceFor(c.Request.Context(), user.StudentID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"balance": balance})
}

// AllLeaves lists every application (admin).
func (h *Handler) AllLeaves(c *gin.Context) {
	apps, err := h.leaves.All(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if apps == nil {
		apps = []leave.Application{}
	}
	ok(c, http.StatusOK, gin.H{"leaves": apps})
}

type decideLeaveRequest struct {
	LeaveID string `json:"leaveId" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// DecideLeave approves or rejects an application (admin).
func (h *Handler) DecideLeave(c *gin.Context) {
	var req decideLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBind(c, err)
		return
	}
	app, err := h.leaves.Decide(c.Request.Context(), req.LeaveID, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"leave": app})
}
