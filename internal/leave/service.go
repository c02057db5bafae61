package leave

import (
	"context"
	"time"

	"campusattend/internal/apperr"
)

// Leave types and application statuses.
const (
	TypeCasual = "CL"
	TypeSick   = "SL"
	TypeEarned = "EL"
	TypeUnpaid = "LWP"

	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// UnlimitedTotal marks a balance with no allowance cap.
const UnlimitedTotal = -1

// Application is a student's leave request.
type Application struct {
	ID          string `json:"id"`
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
	Type        string `json:"type"`
	FromDate    string `json:"fromDate"`
	ToDate      string `json:"toDate"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
	AppliedOn   string `json:"appliedOn"`
}

// BalanceEntry tracks usage of one leave type.
type BalanceEntry struct {
	Taken int `json:"taken"`
	Total int `json:"total"`
}

// defaultBalances are seeded for every new student account.
var defaultBalances = map[string]BalanceEntry{
	TypeCasual: {Taken: 0, Total: 3},
	TypeSick:   {Taken: 0, Total: 6},
	TypeEarned: {Taken: 0, Total: 0},
	TypeUnpaid: {Taken: 0, Total: UnlimitedTotal},
}

// Store persists applications and balances.
type Store interface {
	CreateApplication(ctx context.Context, app Application) error
	ApplicationByID(ctx context.Context, id string) (*Application, error)
	SetStatus(ctx context.Context, id, status string) error
	ListByStudent(ctx context.Context, studentID string) ([]Application, error)
	ListAll(ctx context.Context) ([]Application, error)
	SeedBalances(ctx context.Context, studentID string, balances map[string]BalanceEntry) error
	BalancesByStudent(ctx context.Context, studentID string) (map[string]BalanceEntry, error)
	AddTaken(ctx context.Context, studentID, leaveType string, days int) error
}

// Service implements the leave application workflow.
type Service struct {
	store Store
	newID func() string
	now   func() time.Time
}

// NewService creates a service backed by a store.
func NewService(store Store, newID func() string) *Service {
	return &Service{store: store, newID: newID, now: time.Now}
}

// SeedStudent initializes the default balances for a new student.
func (s *Service) SeedStudent(ctx context.Context, studentID string) error {
	return s.store.SeedBalances(ctx, studentID, defaultBalances)
}

// Apply files a new application. It always succeeds as Pending: date
// ordering, overlaps, and remaining balance are not checked.
func (s *Service) Apply(ctx context.Context, studentID, studentName, leaveType, fromDate, toDate, reason string) (Application, error) {
	app := Application{
		ID:          s.newID(),
		StudentID:   studentID,
		StudentName: studentName,
		Type:        leaveType,
		FromDate:    fromDate,
		ToDate:      toDate,
		Reason:      reason,
		Status:      StatusPending,
		AppliedOn:   s.now().Format("02 Jan 2006"),
	}
	if err := s.store.CreateApplication(ctx, app); err != nil {
		return Application{}, err
	}
	return app, nil
}

// Decide sets an application to Approved or Rejected. Approval books a
// constant single day against the matching balance regardless of the
// requested date span, and repeated approvals keep adding to it.
func (s *Service) Decide(ctx context.Context, id, status string) (Application, error) {
	if status != StatusApproved && status != StatusRejected {
		return Application{}, apperr.Invalid("status must be Approved or Rejected")
	}
	app, err := s.store.ApplicationByID(ctx, id)
	if err != nil {
		return Application{}, err
	}
	if app == nil {
		return Application{}, apperr.NotFound("leave not found")
	}
	if err := s.store.SetStatus(ctx, id, status); err != nil {
		return Application{}, err
	}
	app.Status = status

	if status == StatusApproved {
		const days = 1
		if err := s.store.AddTaken(ctx, app.StudentID, app.Type, days); err != nil {
			return Application{}, err
		}
	}
	return *app, nil
}

// ForStudent lists a student's applications.
func (s *Service) ForStudent(ctx context.Context, studentID string) ([]Application, error) {
	return s.store.ListByStudent(ctx, studentID)
}

// All lists every application.
func (s *Service) All(ctx context.Context) ([]Application, error) {
	return s.store.ListAll(ctx)
}

// BalanceFor returns a student's per-type balances.
func (s *Service) BalanceFor(ctx context.Context, studentID string) (map[string]BalanceEntry, error) {
	return s.store.BalancesByStudent(ctx, studentID)
}

// PendingCount counts applications still awaiting a decision.
func (s *Service) PendingCount(ctx context.Context) (int, error) {
	apps, err := s.store.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, app := range apps {
		if app.Status == StatusPending {
			count++
		}
	}
	return count, nil
}
