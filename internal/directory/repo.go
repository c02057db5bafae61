package directory

import (
	"context"
	"database/sql"
	"errors"
)

// Repository persists teachers and semesters in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateTeacher inserts a new teacher.
func (r *Repository) CreateTeacher(ctx context.Context, t Teacher) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO teachers (id, name, subject, semester, phone, email)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, t.ID, t.Name, t.Subject, t.Semester, t.Phone, t.Email)
	return err
}

// TeacherByID returns one teacher, or nil when absent.
func (r *Repository) TeacherByID(ctx context.Context, id string) (*Teacher, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, subject, semester, phone, email FROM teachers WHERE id = $1
	`, id)
	var t Teacher
	if err := row.Scan(&t.ID, &t.Name, &t.Subject, &t.Semester, &t.Phone, &t.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// SaveTeacher replaces an existing teacher.
func (r *Repository) SaveTeacher(ctx context.Context, t Teacher) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE teachers SET name = $2, subject = $3, semester = $4, phone = $5, email = $6
		WHERE id = $1
	`, t.ID, t.Name, t.Subject, t.Semester, t.Phone, t.Email)
	return err
}

// DeleteTeacher removes a teacher by id.
func (r *Repository) DeleteTeacher(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	return err
}

// ListTeachers returns every teacher.
func (r *Repository) ListTeachers(ctx context.Context) ([]Teacher, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, subject, semester, phone, email FROM teachers ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []Teacher
	for rows.Next() {
		var t Teacher
		if err := rows.Scan(&t.ID, &t.Name, &t.Subject, &t.Semester, &t.Phone, &t.Email); err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

// SaveSemester upserts a semester by code.
func (r *Repository) SaveSemester(ctx context.Context, s Semester) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO semesters (code, name) VALUES ($1, $2)
		ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name
	`, s.Code, s.Name)
	return err
}

// ListSemesters returns every semester.
func (r *Repository) ListSemesters(ctx context.Context) ([]Semester, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT code, name FROM semesters ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []Semester
	for rows.Next() {
		var s Semester
		if err := rows.Scan(&s.Code, &s.Name); err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}
