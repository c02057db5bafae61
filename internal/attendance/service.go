package attendance

import (
	"context"
	"time"

	"campusattend/internal/apperr"
)

// Attendance statuses.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLate    = "Late"
	StatusLeave   = "Leave"
)

// Record is a single day's attendance for a student. CheckOut and Duration
// stay nil until checkout.
type Record struct {
	StudentID string  `json:"studentId"`
	Name      string  `json:"name"`
	Date      string  `json:"date"`
	CheckIn   *string `json:"checkIn"`
	CheckOut  *string `json:"checkOut"`
	Duration  *string `json:"duration"`
	Status    string  `json:"status"`
}

// Store persists attendance records keyed by (studentId, date).
type Store interface {
	Get(ctx context.Context, studentID, date string) (*Record, error)
	Put(ctx context.Context, rec Record) error
	Delete(ctx context.Context, studentID, date string) error
	ListByStudent(ctx context.Context, studentID string) ([]Record, error)
	ListAll(ctx context.Context) ([]Record, error)
}

// Service runs the per-day check-in/check-out state machine. The existence
// read and the subsequent write are not wrapped in a transaction, so
// concurrent check-ins for the same student and day can race.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a service backed by a store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// CheckIn creates today's record for the student. Fails when a record for
// the day already exists.
func (s *Service) CheckIn(ctx context.Context, studentID, name string) (Record, error) {
	date := s.now().Format(DateLayout)
	existing, err := s.store.Get(ctx, studentID, date)
	if err != nil {
		return Record{}, err
	}
	if existing != nil {
		return Record{}, apperr.Conflict("already checked in today")
	}
	clock := s.now().Format(ClockLayout)
	rec := Record{
		StudentID: studentID,
		Name:      name,
		Date:      date,
		CheckIn:   &clock,
		Status:    StatusPresent,
	}
	if err := s.store.Put(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// CheckOut closes today's record, computing the duration from the stored
// check-in clock.
func (s *Service) CheckOut(ctx context.Context, studentID string) (Record, error) {
	date := s.now().Format(DateLayout)
	existing, err := s.store.Get(ctx, studentID, date)
	if err != nil {
		return Record{}, err
	}
	if existing == nil {
		return Record{}, apperr.NotFound("no check-in found for today")
	}
	if existing.CheckOut != nil {
		return Record{}, apperr.Conflict("already checked out today")
	}
	clock := s.now().Format(ClockLayout)
	duration := ""
	if existing.CheckIn != nil {
		duration, err = ComputeDuration(*existing.CheckIn, clock)
		if err != nil {
			return Record{}, apperr.Wrap(apperr.CodeInternal, "duration computation failed", err)
		}
	}
	rec := *existing
	rec.CheckOut = &clock
	rec.Duration = &duration
	if err := s.store.Put(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// ForStudent lists a student's records, newest date first.
func (s *Service) ForStudent(ctx context.Context, studentID string) ([]Record, error) {
	records, err := s.store.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	sortDateDesc(records)
	return records, nil
}

// All lists every record, newest date first.
func (s *Service) All(ctx context.Context) ([]Record, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sortDateDesc(records)
	return records, nil
}

// AdminAdd writes a record directly, bypassing the state machine. Clock
// ordering is not validated; the duration is derived only when both clocks
// are supplied.
func (s *Service) AdminAdd(ctx context.Context, rec Record) (Record, error) {
	if rec.CheckIn != nil && rec.CheckOut != nil {
		duration, err := ComputeDuration(*rec.CheckIn, *rec.CheckOut)
		if err != nil {
			return Record{}, apperr.Invalid(err.Error())
		}
		rec.Duration = &duration
	}
	if err := s.store.Put(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Update merges non-nil fields into an existing record.
type Update struct {
	Name     *string `json:"name"`
	CheckIn  *string `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
	Duration *string `json:"duration"`
	Status   *string `json:"status"`
}

// AdminUpdate merges updates into an existing record. The duration is taken
// as supplied, not recomputed.
func (s *Service) AdminUpdate(ctx context.Context, studentID, date string, upd Update) (Record, error) {
	existing, err := s.store.Get(ctx, studentID, date)
	if err != nil {
		return Record{}, err
	}
	if existing == nil {
		return Record{}, apperr.NotFound("attendance record not found")
	}
	rec := *existing
	if upd.Name != nil {
		rec.Name = *upd.Name
	}
	if upd.CheckIn != nil {
		rec.CheckIn = upd.CheckIn
	}
	if upd.CheckOut != nil {
		rec.CheckOut = upd.CheckOut
	}
	if upd.Duration != nil {
		rec.Duration = upd.Duration
	}
	if upd.Status != nil {
		rec.Status = *upd.Status
	}
	if err := s.store.Put(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// AdminDelete removes a record by key.
func (s *Service) AdminDelete(ctx context.Context, studentID, date string) error {
	return s.store.Delete(ctx, studentID, date)
}

// Today returns the current date string, for dashboard filtering.
func (s *Service) Today() string {
	return s.now().Format(DateLayout)
}
