package directory

import (
	"context"

	"campusattend/internal/apperr"
)

// Teacher is a reference record scoped by semester.
type Teacher struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Subject  string `json:"subject"`
	Semester string `json:"semester"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// Semester is a reference record.
type Semester struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Store persists teachers and semesters.
type Store interface {
	CreateTeacher(ctx context.Context, t Teacher) error
	TeacherByID(ctx context.Context, id string) (*Teacher, error)
	SaveTeacher(ctx context.Context, t Teacher) error
	DeleteTeacher(ctx context.Context, id string) error
	ListTeachers(ctx context.Context) ([]Teacher, error)
	SaveSemester(ctx context.Context, s Semester) error
	ListSemesters(ctx context.Context) ([]Semester, error)
}

// Service manages the teacher and semester reference records.
type Service struct {
	store Store
	newID func() string
}

// NewService creates a service backed by a store.
func NewService(store Store, newID func() string) *Service {
	return &Service{store: store, newID: newID}
}

// AddTeacher registers a new teacher record.
func (s *Service) AddTeacher(ctx context.Context, t Teacher) (Teacher, error) {
	t.ID = s.newID()
	if err := s.store.CreateTeacher(ctx, t); err != nil {
		return Teacher{}, err
	}
	return t, nil
}

// TeacherUpdate merges non-nil fields into an existing teacher.
type TeacherUpdate struct {
	Name     *string `json:"name"`
	Subject  *string `json:"subject"`
	Semester *string `json:"semester"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
}

// UpdateTeacher edits an existing teacher record.
func (s *Service) UpdateTeacher(ctx context.Context, id string, upd TeacherUpdate) (Teacher, error) {
	existing, err := s.store.TeacherByID(ctx, id)
	if err != nil {
		return Teacher{}, err
	}
	if existing == nil {
		return Teacher{}, apperr.NotFound("teacher not found")
	}
	t := *existing
	if upd.Name != nil {
		t.Name = *upd.Name
	}
	if upd.Subject != nil {
		t.Subject = *upd.Subject
	}
	if upd.Semester != nil {
		t.Semester = *upd.Semester
	}
	if upd.Phone != nil {
		t.Phone = *upd.Phone
	}
	if upd.Email != nil {
		t.Email = *upd.Email
	}
	if err := s.store.SaveTeacher(ctx, t); err != nil {
		return Teacher{}, err
	}
	return t, nil
}

// DeleteTeacher removes a teacher record by id.
func (s *Service) DeleteTeacher(ctx context.Context, id string) error {
	return s.store.DeleteTeacher(ctx, id)
}

// Teachers lists every teacher record.
func (s *Service) Teachers(ctx context.Context) ([]Teacher, error) {
	return s.store.ListTeachers(ctx)
}

// TeachersForSemester lists teachers matching the student's semester.
func (s *Service) TeachersForSemester(ctx context.Context, semester string) ([]Teacher, error) {
	teachers, err := s.store.ListTeachers(ctx)
	if err != nil {
		return nil, err
	}
	matched := teachers[:0]
	for _, t := range teachers {
		if t.Semester == semester {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// AddSemester registers a semester, replacing any record with the same code.
func (s *Service) AddSemester(ctx context.Context, sem Semester) (Semester, error) {
	if err := s.store.SaveSemester(ctx, sem); err != nil {
		return Semester{}, err
	}
	return sem, nil
}

// Semesters lists every semester record.
func (s *Service) Semesters(ctx context.Context) ([]Semester, error) {
	return s.store.ListSemesters(ctx)
}
