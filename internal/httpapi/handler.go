// Package httpapi exposes the domain services over HTTP/JSON.
package httpapi

import (
	"time"

	"campusattend/internal/attendance"
	"campusattend/internal/complaint"
	"campusattend/internal/directory"
	"campusattend/internal/identity"
	"campusattend/internal/leave"
	"campusattend/internal/notice"
	"campusattend/internal/report"
	"campusattend/internal/storage"
)

// AuthConfig carries the token-signing parameters handlers need at login.
type AuthConfig struct {
	Issuer     string
	SigningKey string
	AccessTTL  time.Duration
}

// Handler holds the domain services behind the routes.
type Handler struct {
	authCfg    AuthConfig
	identity   *identity.Service
	attendance *attendance.Service
	leaves     *leave.Service
	notices    *notice.Service
	complaints *complaint.Service
	directory  *directory.Service
	reports    *report.Service
	uploads    *storage.Uploader // nil when Cloudinary is not configured
}

// New creates the handler set.
func New(
	authCfg AuthConfig,
	identitySvc *identity.Service,
	attendanceSvc *attendance.Service,
	leaveSvc *leave.Service,
	noticeSvc *notice.Service,
	complaintSvc *complaint.Service,
	directorySvc *directory.Service,
	reportSvc *report.Service,
	uploads *storage.Uploader,
) *Handler {
	return &Handler{
		authCfg:    authCfg,
		identity:   identitySvc,
		attendance: attendanceSvc,
		leaves:     leaveSvc,
		notices:    noticeSvc,
		complaints: complaintSvc,
		directory:  directorySvc,
		reports:    reportSvc,
		uploads:    uploads,
	}
}
