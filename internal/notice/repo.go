package notice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// Repository persists notices in Postgres. Attachments and reactions are
// jsonb columns.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new notice.
func (r *Repository) Create(ctx context.Context, n Notice) error {
	attachments, reactions, err := marshalJSONCols(n)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO notices (id, title, content, target_audience, semester, attachments, posted_by, posted_on, posted_seq, reactions)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`, n.ID, n.Title, n.Content, n.TargetAudience, n.Semester, attachments, n.PostedBy, n.PostedOn, n.PostedSeq, reactions)
	return err
}

// Get returns one notice, or nil when absent.
func (r *Repository) Get(ctx context.Context, id string) (*Notice, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, content, target_audience, semester, attachments, posted_by, posted_on, posted_seq, reactions
		FROM notices WHERE id = $1
	`, id)
	n, err := scanNotice(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

// Save replaces an existing notice.
func (r *Repository) Save(ctx context.Context, n Notice) error {
	attachments, reactions, err := marshalJSONCols(n)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE notices SET title = $2, content = $3, target_audience = $4, semester = $5,
			attachments = $6, posted_by = $7, posted_on = $8, posted_seq = $9, reactions = $10
		WHERE id = $1
	`, n.ID, n.Title, n.Content, n.TargetAudience, n.Semester, attachments, n.PostedBy, n.PostedOn, n.PostedSeq, reactions)
	return err
}

// Delete removes a notice by id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notices WHERE id = $1`, id)
	return err
}

// ListAll returns every notice.
func (r *Repository) ListAll(ctx context.Context) ([]Notice, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, content, target_audience, semester, attachments, posted_by, posted_on, posted_seq, reactions
		FROM notices
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []Notice
	for rows.Next() {
		n, err := scanNotice(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, rows.Err()
}

func marshalJSONCols(n Notice) ([]byte, []byte, error) {
	attachments := n.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	reactions := n.Reactions
	if reactions == nil {
		reactions = map[string]string{}
	}
	a, err := json.Marshal(attachments)
	if err != nil {
		return nil, nil, err
	}
	re, err := json.Marshal(reactions)
	if err != nil {
		return nil, nil, err
	}
	return a, re, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNotice(row rowScanner) (Notice, error) {
	var n Notice
	var attachments, reactions []byte
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.TargetAudience, &n.Semester, &attachments, &n.PostedBy, &n.PostedOn, &n.PostedSeq, &reactions); err != nil {
		return Notice{}, err
	}
	if err := json.Unmarshal(attachments, &n.Attachments); err != nil {
		return Notice{}, err
	}
	if err := json.Unmarshal(reactions, &n.Reactions); err != nil {
		return Notice{}, err
	}
	return n, nil
}
