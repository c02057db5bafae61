package complaint

import (
	"context"
	"sort"
	"time"

	"campusattend/internal/apperr"
)

// Complaint statuses. Admins may set any of the three in any order; the
// linear progression is a convention, not an enforced machine.
const (
	StatusPending     = "Pending"
	StatusUnderReview = "Under Review"
	StatusResolved    = "Resolved"
)

// Complaint is a student-submitted issue report.
type Complaint struct {
	ID           string   `json:"id"`
	StudentID    string   `json:"studentId"`
	StudentName  string   `json:"studentName"`
	StudentEmail string   `json:"studentEmail"`
	Subject      string   `json:"subject"`
	Description  string   `json:"description"`
	Attachments  []string `json:"attachments"`
	Status       string   `json:"status"`
	SubmittedOn  string   `json:"submittedOn"`
	SubmittedSeq int64    `json:"-"`
	Response     *string  `json:"response"`
}

// Store persists complaints.
type Store interface {
	Create(ctx context.Context, c Complaint) error
	Get(ctx context.Context, id string) (*Complaint, error)
	Save(ctx context.Context, c Complaint) error
	ListByStudent(ctx context.Context, studentID string) ([]Complaint, error)
	ListAll(ctx context.Context) ([]Complaint, error)
}

// Service implements the complaint workflow.
type Service struct {
	store Store
	newID func() string
	now   func() time.Time
}

// NewService creates a service backed by a store.
func NewService(store Store, newID func() string) *Service {
	return &Service{store: store, newID: newID, now: time.Now}
}

// SubmitParams carries the fields for a new complaint.
type SubmitParams struct {
	StudentID    string
	StudentName  string
	StudentEmail string
	Subject      string
	Description  string
	Attachments  []string
}

// Submit files a new complaint as Pending.
func (s *Service) Submit(ctx context.Context, p SubmitParams) (Complaint, error) {
	attachments := p.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	now := s.now()
	c := Complaint{
		ID:           s.newID(),
		StudentID:    p.StudentID,
		StudentName:  p.StudentName,
		StudentEmail: p.StudentEmail,
		Subject:      p.Subject,
		Description:  p.Description,
		Attachments:  attachments,
		Status:       StatusPending,
		SubmittedOn:  now.Format("02 Jan 2006"),
		SubmittedSeq: now.UnixMilli(),
	}
	if err := s.store.Create(ctx, c); err != nil {
		return Complaint{}, err
	}
	return c, nil
}

// Decide sets the status and, when supplied, the admin response. An omitted
// or empty response keeps the previous one.
func (s *Service) Decide(ctx context.Context, id, status string, response *string) (Complaint, error) {
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return Complaint{}, err
	}
	if existing == nil {
		return Complaint{}, apperr.NotFound("complaint not found")
	}
	c := *existing
	c.Status = status
	if response != nil && *response != "" {
		c.Response = response
	}
	if err := s.store.Save(ctx, c); err != nil {
		return Complaint{}, err
	}
	return c, nil
}

// ForStudent lists a student's complaints, newest first.
func (s *Service) ForStudent(ctx context.Context, studentID string) ([]Complaint, error) {
	complaints, err := s.store.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(complaints)
	return complaints, nil
}

// All lists every complaint, newest first.
func (s *Service) All(ctx context.Context) ([]Complaint, error) {
	complaints, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(complaints)
	return complaints, nil
}

func sortNewestFirst(complaints []Complaint) {
	sort.SliceStable(complaints, func(i, j int) bool {
		return complaints[i].SubmittedSeq > complaints[j].SubmittedSeq
	})
}
