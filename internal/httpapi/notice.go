package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusattend/internal/auth"
	"campusattend/internal/identity"
	"campusattend/internal/notice"
)

type createNoticeRequest struct {
	Title          string   `json:"title" binding:"required"`
	Content        string   `json:"content"`
	TargetAudience string   `json:"targetAudience" binding:"required"`
	Semester       string   `json:"semester"`
	Attachments    []string `json:"attachments"`
}

// CreateNotice posts a new notice (admin).
func (h *Handler) CreateNotice(c *gin.Context) {
	var req createNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBind(c, err)
		return
	}
	user, _ := auth.CurrentUser(c)
	n, err := h.notices.Create(c.Request.Context(), notice.CreateParams{
		Title:          req.Title,
		Content:        req.Content,
		TargetAudience: req.TargetAudience,
		Semester:       req.Semester,
		Attachments:    req.Attachments,
	}, user.Name)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"notice": n})
}

// AllNotices lists every notice, newest first.
func (h *Handler) AllNotices(c *gin.Context) {
	notices, err := h.notices.All(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if notices == nil {
		notices = []notice.Notice{}
	}
	ok(c, http.StatusOK, gin.H{"notices": notices})
}

// MyNotices lists the notices visible to the caller. Admins see everything.
func (h *Handler) MyNotices(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	var (
		notices []notice.Notice
		err     error
	)
	if user.Role == identity.RoleAdmin {
		notices, err = h.notices.All(c.Request.Context())
	} else {
		notices, err = h.notices.VisibleTo(c.Request.Context(), user.Semester)
	}
	if err != nil {
		fail(c, err)
		return
	}
	if notices == nil {
		notices = []notice.Notice{}
	}
	ok(c, http.StatusOK, gin.H{"notices": notices})
}

type reactRequest struct {
	Reaction string `json:"reaction" binding:"required"`
}

// ReactToNotice upserts the caller's reaction; the latest one wins.
func (h *Handler) ReactToNotice(c *gin.Context) {
	var req reactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBind(c, err)
		return
	}
	user, _ := auth.CurrentUser(c)
	n, err := h.notices.React(c.Request.Context(), c.Param("id"), user.ID, req.Reaction)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"notice": n})
}

// UpdateNotice edits an existing notice (admin).
func (h *Handler) UpdateNotice(c *gin.Context) {
	var upd notice.Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		failBind(c, err)
		return
	}
	n, err := h.notices.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"notice": n})
}

// DeleteNotice removes a notice (admin).
func (h *Handler) DeleteNotice(c *gin.Context) {
	if err := h.notices.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{})
}
