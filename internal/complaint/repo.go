package complaint

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// Repository persists complaints in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new complaint.
func (r *Repository) Create(ctx context.Context, c Complaint) error {
	attachments, err := json.Marshal(c.Attachments)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO complaints (id, student_id, student_name, student_email, subject, description, attachments, status, submitted_on, submitted_seq, response)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`, c.ID, c.StudentID, c.StudentName, c.StudentEmail, c.Subject, c.Description, attachments, c.Status, c.SubmittedOn, c.SubmittedSeq, c.Response)
	return err
}

// Get returns one complaint, or nil when absent.
func (r *Repository) Get(ctx context.Context, id string) (*Complaint, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, student_id, student_name, student_email, subject, description, attachments, status, submitted_on, submitted_seq, response
		FROM complaints WHERE id = $1
	`, id)
	c, err := scanComplaint(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Save replaces an existing complaint.
func (r *Repository) Save(ctx context.Context, c Complaint) error {
	attachments, err := json.Marshal(c.Attachments)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE complaints SET status = $2, response = $3, subject = $4, description = $5, attachments = $6
		WHERE id = $1
	`, c.ID, c.Status, c.Response, c.Subject, c.Description, attachments)
	return err
}

// ListByStudent returns one student's complaints.
func (r *Repository) ListByStudent(ctx context.Context, studentID string) ([]Complaint, error) {
	return r.list(ctx, `
		SELECT id, student_id, student_name, student_email, subject, description, attachments, status, submitted_on, submitted_seq, response
		FROM complaints WHERE student_id = $1
	`, studentID)
}

// ListAll returns every complaint.
func (r *Repository) ListAll(ctx context.Context) ([]Complaint, error) {
	return r.list(ctx, `
		SELECT id, student_id, student_name, student_email, subject, description, attachments, status, submitted_on, submitted_seq, response
		FROM complaints
	`)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]Complaint, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComplaint(row rowScanner) (Complaint, error) {
	var c Complaint
	var attachments []byte
	if err := row.Scan(&c.ID, &c.StudentID, &c.StudentName, &c.StudentEmail, &c.Subject, &c.Description, &attachments, &c.Status, &c.SubmittedOn, &c.SubmittedSeq, &c.Response); err != nil {
		return Complaint{}, err
	}
	if err := json.Unmarshal(attachments, &c.Attachments); err != nil {
		return Complaint{}, err
	}
	return c, nil
}
