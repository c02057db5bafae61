package store

import (
	"context"
	"database/sql"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'student',
		student_id TEXT,
		semester TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS attendance_records (
		student_id TEXT NOT NULL,
		date TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		check_in TEXT,
		check_out TEXT,
		duration TEXT,
		status TEXT NOT NULL DEFAULT 'Present',
		PRIMARY KEY (student_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS leave_applications (
		id TEXT PRIMARY KEY,
		student_id TEXT NOT NULL,
		student_name TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL,
		from_date TEXT NOT NULL,
		to_date TEXT NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'Pending',
		applied_on TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leave_applications_student ON leave_applications (student_id)`,
	`CREATE TABLE IF NOT EXISTS leave_balances (
		student_id TEXT NOT NULL,
		type TEXT NOT NULL,
		taken INT NOT NULL DEFAULT 0,
		total INT NOT NULL DEFAULT 0,
		PRIMARY KEY (student_id, type)
	)`,
	`CREATE TABLE IF NOT EXISTS managers (
		student_id TEXT PRIMARY KEY,
		supervisor TEXT NOT NULL DEFAULT '',
		supervisor_designation TEXT NOT NULL DEFAULT '',
		supervisor_phone TEXT NOT NULL DEFAULT '',
		dotted_supervisor TEXT NOT NULL DEFAULT '',
		dotted_supervisor_phone TEXT NOT NULL DEFAULT '',
		line_manager TEXT NOT NULL DEFAULT '',
		line_manager_phone TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS notices (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		target_audience TEXT NOT NULL DEFAULT '',
		semester TEXT NOT NULL DEFAULT 'all',
		attachments JSONB NOT NULL DEFAULT '[]',
		posted_by TEXT NOT NULL DEFAULT '',
		posted_on TEXT NOT NULL,
		posted_seq BIGINT NOT NULL DEFAULT 0,
		reactions JSONB NOT NULL DEFAULT '{}'
	)`,
	`CREATE TABLE IF NOT EXISTS complaints (
		id TEXT PRIMARY KEY,
		student_id TEXT NOT NULL,
		student_name TEXT NOT NULL DEFAULT '',
		student_email TEXT NOT NULL DEFAULT '',
		subject TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		attachments JSONB NOT NULL DEFAULT '[]',
		status TEXT NOT NULL DEFAULT 'Pending',
		submitted_on TEXT NOT NULL,
		submitted_seq BIGINT NOT NULL DEFAULT 0,
		response TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_complaints_student ON complaints (student_id)`,
	`CREATE TABLE IF NOT EXISTS teachers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		subject TEXT NOT NULL DEFAULT '',
		semester TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS semesters (
		code TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,
}

// Migrate applies the idempotent schema. Safe to run at every startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
