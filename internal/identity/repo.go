package identity

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// Repository persists user profiles and manager cards in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts a new profile with its password hash.
func (r *Repository) CreateUser(ctx context.Context, user User, passwordHash string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, name, role, student_id, semester)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, user.ID, user.Email, passwordHash, user.Name, user.Role, user.StudentID, user.Semester)
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return ErrEmailTaken
	}
	return err
}

// UserByID returns a single profile.
func (r *Repository) UserByID(ctx context.Context, id string) (User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, role, student_id, semester, created_at
		FROM users WHERE id = $1
	`, id)
	return scanUser(row)
}

// UserByEmail returns a profile together with its password hash.
func (r *Repository) UserByEmail(ctx context.Context, email string) (User, string, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, role, student_id, semester, created_at, password_hash
		FROM users WHERE email = $1
	`, email)
	var u User
	var studentID, semester sql.NullString
	var hash string
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &studentID, &semester, &u.CreatedAt, &hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, "", ErrUserNotFound
		}
		return User{}, "", err
	}
	u.StudentID = studentID.String
	u.Semester = semester.String
	return u, hash, nil
}

// ListStudents returns all profiles with the student role.
func (r *Repository) ListStudents(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, name, role, student_id, semester, created_at
		FROM users WHERE role = 'student'
		ORDER BY student_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// SaveManager upserts a student's manager card.
func (r *Repository) SaveManager(ctx context.Context, studentID string, m Manager) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO managers (student_id, supervisor, supervisor_designation, supervisor_phone,
			dotted_supervisor, dotted_supervisor_phone, line_manager, line_manager_phone)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (student_id) DO UPDATE SET
			supervisor = EXCLUDED.supervisor,
			supervisor_designation = EXCLUDED.supervisor_designation,
			supervisor_phone = EXCLUDED.supervisor_phone,
			dotted_supervisor = EXCLUDED.dotted_supervisor,
			dotted_supervisor_phone = EXCLUDED.dotted_supervisor_phone,
			line_manager = EXCLUDED.line_manager,
			line_manager_phone = EXCLUDED.line_manager_phone
	`, studentID, m.Supervisor, m.SupervisorDesignation, m.SupervisorPhone,
		m.DottedSupervisor, m.DottedSupervisorPhone, m.LineManager, m.LineManagerPhone)
	return err
}

// ManagerByStudent returns a student's manager card.
func (r *Repository) ManagerByStudent(ctx context.Context, studentID string) (Manager, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT supervisor, supervisor_designation, supervisor_phone,
			dotted_supervisor, dotted_supervisor_phone, line_manager, line_manager_phone
		FROM managers WHERE student_id = $1
	`, studentID)
	var m Manager
	err := row.Scan(&m.Supervisor, &m.SupervisorDesignation, &m.SupervisorPhone,
		&m.DottedSupervisor, &m.DottedSupervisorPhone, &m.LineManager, &m.LineManagerPhone)
	if errors.Is(err, sql.ErrNoRows) {
		return Manager{}, nil
	}
	return m, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (User, error) {
	var u User
	var studentID, semester sql.NullString
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &studentID, &semester, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	u.StudentID = studentID.String
	u.Semester = semester.String
	return u, nil
}
