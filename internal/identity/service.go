package identity

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"campusattend/internal/apperr"
)

// Roles known to the system.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User is the stored profile for an authenticated identity.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	StudentID string    `json:"studentId,omitempty"`
	Semester  string    `json:"semester,omitempty"`
	CreatedAt time.Time `json:"-"`
}

// Manager is the contact card shown to a student.
type Manager struct {
	Supervisor            string `json:"supervisor"`
	SupervisorDesignation string `json:"supervisorDesignation"`
	SupervisorPhone       string `json:"supervisorPhone"`
	DottedSupervisor      string `json:"dottedSupervisor"`
	DottedSupervisorPhone string `json:"dottedSupervisorPhone"`
	LineManager           string `json:"lineManager"`
	LineManagerPhone      string `json:"lineManagerPhone"`
}

// defaultManager seeds new students with the department's standing contacts.
var defaultManager = Manager{
	Supervisor:            "Dr. Sarah Johnson",
	SupervisorDesignation: "Head of Department",
	SupervisorPhone:       "+1-555-0101",
	DottedSupervisor:      "Prof. Michael Brown",
	DottedSupervisorPhone: "+1-555-0102",
	LineManager:           "Admin Office",
	LineManagerPhone:      "+1-555-0100",
}

// ErrEmailTaken is returned by stores when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

// ErrUserNotFound is returned by stores when no user matches.
var ErrUserNotFound = errors.New("user not found")

// Store persists user profiles and manager cards.
type Store interface {
	CreateUser(ctx context.Context, user User, passwordHash string) error
	UserByID(ctx context.Context, id string) (User, error)
	UserByEmail(ctx context.Context, email string) (User, string, error)
	ListStudents(ctx context.Context) ([]User, error)
	SaveManager(ctx context.Context, studentID string, m Manager) error
	ManagerByStudent(ctx context.Context, studentID string) (Manager, error)
}

// StudentSeeder provisions per-student defaults at signup time.
type StudentSeeder interface {
	SeedStudent(ctx context.Context, studentID string) error
}

// Service implements signup and login. It is the identity collaborator for
// the rest of the system.
type Service struct {
	store   Store
	seeders []StudentSeeder
	newID   func() string
}

// NewService creates the identity service. Seeders run once for each new
// student account (leave balances and similar).
func NewService(store Store, newID func() string, seeders ...StudentSeeder) *Service {
	return &Service{store: store, seeders: seeders, newID: newID}
}

// SignUpParams carries the fields collected at registration.
type SignUpParams struct {
	Email     string
	Password  string
	Name      string
	StudentID string
	Role      string
	Semester  string
}

// SignUp registers a user. Students additionally get a leave balance and a
// default manager card.
func (s *Service) SignUp(ctx context.Context, p SignUpParams) (User, error) {
	role := p.Role
	if role == "" {
		role = RoleStudent
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	user := User{
		ID:        s.newID(),
		Email:     p.Email,
		Name:      p.Name,
		Role:      role,
		StudentID: p.StudentID,
		Semester:  p.Semester,
	}
	if err := s.store.CreateUser(ctx, user, string(hash)); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return User{}, apperr.Invalid("email already registered")
		}
		return User{}, err
	}

	if role == RoleStudent {
		if err := s.store.SaveManager(ctx, p.StudentID, defaultManager); err != nil {
			return User{}, err
		}
		for _, seeder := range s.seeders {
			if err := seeder.SeedStudent(ctx, p.StudentID); err != nil {
				return User{}, err
			}
		}
	}
	return user, nil
}

// Login verifies credentials and returns the stored profile.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	user, hash, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return User{}, apperr.Invalid("invalid email or password")
		}
		return User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return User{}, apperr.Invalid("invalid email or password")
	}
	return user, nil
}

// UserByID resolves a profile, used by the auth middleware on every request.
func (s *Service) UserByID(ctx context.Context, id string) (User, error) {
	user, err := s.store.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return User{}, apperr.Unauthorized("unknown user")
		}
		return User{}, err
	}
	return user, nil
}

// Students lists all registered student profiles.
func (s *Service) Students(ctx context.Context) ([]User, error) {
	return s.store.ListStudents(ctx)
}

// ManagerFor returns the manager contact card for a student.
func (s *Service) ManagerFor(ctx context.Context, studentID string) (Manager, error) {
	return s.store.ManagerByStudent(ctx, studentID)
}
