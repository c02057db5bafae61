package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusattend/internal/attendance"
	"campusattend/internal/auth"
)

// CheckIn opens today's attendance record for the caller.
func (h *Handler) CheckIn(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	rec, err := h.attendance.CheckIn(c.Request.Context(), user.StudentID, user.Name)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"record": rec})
}

// CheckOut closes today's attendance record for the caller.
func (h *Handler) CheckOut(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	rec, err := h.attendance.CheckOut(c.Request.Context(), user.StudentID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"record": rec})
}

// MyAttendance lists the caller's records, newest first.
func (h *Handler) MyAttendance(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	records, err := h.attendance.ForStudent(c.Request.Context(), user.StudentID)
	if err != nil {
		fail(c, err)
		return
	}
	if records == nil {
		records = []attendance.Record{}
	}
	ok(c, http.StatusOK, gin.H{"records": records})
}

// AllAttendance lists every record, newest first (admin).
func (h *Handler) AllAttendance(c *gin.Context) {
	records, err := h.attendance.All(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if records == nil {
		records = []attendance.Record{}
	}
	ok(c, http.StatusOK, gin.H{"records": records})
}

type addAttendanceRequest struct {
	StudentID string  `json:"studentId" binding:"required"`
	Name      string  `json:"name"`
	Date      string  `json:"date" binding:"required"`
	CheckIn   *string `json:"checkIn" binding:"omitempty,clocktime"`
	CheckOut  *string `json:"checkOut" binding:"omitempty,clocktime"`
	Status    string  `json:"status" binding:"required"`
}

// AddAttendance writes a record directly, bypassing the state machine (admin).
func (h *Handler) AddAttendance(c *gin.Context) {
	var req addAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBind(c, err)
		return
	}
	rec, err := h.attendance.AdminAdd(c.Request.Context(), attendance.Record{
		StudentID: req.StudentID,
		Name:      req.Name,
		Date:      req.Date,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Status:    req.Status,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"record": rec})
}

type updateAttendanceRequest struct {
	StudentID string            `json:"studentId" binding:"required"`
	Date      string            `json:"date" binding:"required"`
	Updates   attendance.Update `json:"updates"`
}

// UpdateAttendance merges updates into an existing record (admin).
func (h *Handler) UpdateAttendance(c *gin.Context) {
	var req updateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBind(c, err)
		return
	}
	rec, err := h.attendance.AdminUpdate(c.Request.Context(), req.StudentID, req.Date, req.Updates)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"record": rec})
}

type deleteAttendanceRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	Date      string `json:"date" binding:"required"`
}

// DeleteAttendance removes a record by key (admin).
func (h *Handler) DeleteAttendance(c *gin.Context) {
	var req deleteAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBind(c, err)
		return
	}
	if err := h.attendance.AdminDelete(c.Request.Context(), req.StudentID, req.Date); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{})
}

// ExportAttendance streams every record as CSV (admin).
func (h *Handler) ExportAttendance(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="attendance.csv"`)
	if err := h.reports.WriteAttendanceCSV(c.Request.Context(), c.Writer); err != nil {
		fail(c, err)
	}
}
