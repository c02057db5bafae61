package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusattend/internal/auth"
	"campusattend/internal/complaint"
)

type submitComplaintRequest struct {
	Subject     string   `json:"subject" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Attachments []string `json:"attachments"`
}

// SubmitComplaint files a new complaint for the caller.
func (h *Handler) SubmitComplaint(c *gin.Context) {
	var req submitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBind(c, err)
		return
	}
	user, _ := auth.CurrentUser(c)
	comp, err := h.complaints.Submit(c.Request.Context(), complaint.SubmitParams{
		StudentID:    user.StudentID,
		StudentName:  user.Name,
		StudentEmail: user.Email,
		Subject:      req.Subject,
		Description:  req.Description,
		Attachments:  req.Attachments,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"complaint": comp})
}

// MyComplaints lists the caller's complaints, newest first.
func (h *Handler) MyComplaints(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	complaints, err := h.complaints.ForStudent(c.Request.Context(), user.StudentID)
	if err != nil {
		fail(c, err)
		return
	}
	if complaints == nil {
		complaints = []complaint.Complaint{}
	}
	ok(c, http.StatusOK, gin.H{"complaints": complaints})
}

// AllComplaints lists every complaint, newest first (admin).
func (h *Handler) AllComplaints(c *gin.Context) {
	complaints, err := h.complaints.All(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if complaints == nil {
		complaints = []complaint.Complaint{}
	}
	ok(c, http.StatusOK, gin.H{"complaints": complaints})
}

type decideComplaintRequest struct {
	ComplaintID string  `json:"complaintId" binding:"required"`
	Status      string  `json:"status" binding:"required"`
	Response    *string `json:"response"`
}

// DecideComplaint sets a complaint's status and optional response (admin).
func (h *Handler) DecideComplaint(c *gin.Context) {
	var req decideComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBind(c, err)
		return
	}
	comp, err := h.complaints.Decide(c.Request.Context(), req.ComplaintID, req.Status, req.Response)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"complaint": comp})
}
