package leave

import (
	"context"
	"database/sql"
	"errors"
)

// Repository persists leave applications and balances in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateApplication inserts a new application.
func (r *Repository) CreateApplication(ctx context.Context, app Application) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO leave_applications (id, student_id, student_name, type, from_date, to_date, reason, status, applied_on)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`, app.ID, app.StudentID, app.StudentName, app.Type, app.FromDate, app.ToDate, app.Reason, app.Status, app.AppliedOn)
	return err
}

// ApplicationByID returns one application, or nil when absent.
func (r *Repository) ApplicationByID(ctx context.Context, id string) (*Application, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, student_id, student_name, type, from_date, to_date, reason, status, applied_on
		FROM leave_applications WHERE id = $1
	`, id)
	var app Application
	if err := row.Scan(&app.ID, &app.StudentID, &app.StudentName, &app.Type, &app.FromDate, &app.ToDate, &app.Reason, &app.Status, &app.AppliedOn); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

// SetStatus updates an application's status.
func (r *Repository) SetStatus(ctx context.Context, id, status string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE leave_applications SET status = $2 WHERE id = $1
	`, id, status)
	return err
}

// ListByStudent returns one student's applications, newest first.
func (r *Repository) ListByStudent(ctx context.Context, studentID string) ([]Application, error) {
	return r.list(ctx, `
		SELECT id, student_id, student_name, type, from_date, to_date, reason, status, applied_on
		FROM leave_applications WHERE student_id = $1
	`, studentID)
}

// ListAll returns every application.
func (r *Repository) ListAll(ctx context.Context) ([]Application, error) {
	return r.list(ctx, `
		SELECT id, student_id, student_name, type, from_date, to_date, reason, status, applied_on
		FROM leave_applications
	`)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]Application, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []Application
	for rows.Next() {
		var app Application
		if err := rows.Scan(&app.ID, &app.StudentID, &app.StudentName, &app.Type, &app.FromDate, &app.ToDate, &app.Reason, &app.Status, &app.AppliedOn); err != nil {
			return nil, err
		}
		res = append(res, app)
	}
	return res, rows.Err()
}

// SeedBalances inserts the default balance rows, leaving existing rows alone.
func (r *Repository) SeedBalances(ctx context.Context, studentID string, balances map[string]BalanceEntry) error {
	for leaveType, entry := range balances {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO leave_balances (student_id, type, taken, total)
			VALUES ($1,$2,$3,$4)
			ON CONFLICT (student_id, type) DO NOTHING
		`, studentID, leaveType, entry.Taken, entry.Total)
		if err != nil {
			return err
		}
	}
	return nil
}

// BalancesByStudent returns all balance rows for one student keyed by type.
func (r *Repository) BalancesByStudent(ctx context.Context, studentID string) (map[string]BalanceEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT type, taken, total FROM leave_balances WHERE student_id = $1
	`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	balances := map[string]BalanceEntry{}
	for rows.Next() {
		var leaveType string
		var entry BalanceEntry
		if err := rows.Scan(&leaveType, &entry.Taken, &entry.Total); err != nil {
			return nil, err
		}
		balances[leaveType] = entry
	}
	return balances, rows.Err()
}

// AddTaken increments the taken counter for one balance row. A missing row
// is a no-op.
func (r *Repository) AddTaken(ctx context.Context, studentID, leaveType string, days int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE leave_balances SET taken = taken + $3
		WHERE student_id = $1 AND type = $2
	`, studentID, leaveType, days)
	return err
}
