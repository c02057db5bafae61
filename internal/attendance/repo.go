package attendance

import (
	"context"
	"database/sql"
	"errors"
)

// Repository persists attendance records in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Get returns the record for (studentId, date), or nil when absent.
func (r *Repository) Get(ctx context.Context, studentID, date string) (*Record, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT student_id, date, name, check_in, check_out, duration, status
		FROM attendance_records
		WHERE student_id = $1 AND date = $2
	`, studentID, date)
	var rec Record
	if err := row.Scan(&rec.StudentID, &rec.Date, &rec.Name, &rec.CheckIn, &rec.CheckOut, &rec.Duration, &rec.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Put writes a record, overwriting any existing row for the same key.
func (r *Repository) Put(ctx context.Context, rec Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attendance_records (student_id, date, name, check_in, check_out, duration, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (student_id, date) DO UPDATE SET
			name = EXCLUDED.name,
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			duration = EXCLUDED.duration,
			status = EXCLUDED.status
	`, rec.StudentID, rec.Date, rec.Name, rec.CheckIn, rec.CheckOut, rec.Duration, rec.Status)
	return err
}

// Delete removes a record by key.
func (r *Repository) Delete(ctx context.Context, studentID, date string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM attendance_records WHERE student_id = $1 AND date = $2
	`, studentID, date)
	return err
}

// ListByStudent returns all records for one student.
func (r *Repository) ListByStudent(ctx context.Context, studentID string) ([]Record, error) {
	return r.list(ctx, `
		SELECT student_id, date, name, check_in, check_out, duration, status
		FROM attendance_records WHERE student_id = $1
	`, studentID)
}

// ListAll returns every record.
func (r *Repository) ListAll(ctx context.Context) ([]Record, error) {
	return r.list(ctx, `
		SELECT student_id, date, name, check_in, check_out, duration, status
		FROM attendance_records
	`)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.StudentID, &rec.Date, &rec.Name, &rec.CheckIn, &rec.CheckOut, &rec.Duration, &rec.Status); err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, rows.Err()
}
