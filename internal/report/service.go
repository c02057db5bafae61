// Package report computes admin dashboard statistics and the attendance CSV
// export.
package report

import (
	"context"
	"encoding/csv"
	"io"
	"math"

	"campusattend/internal/attendance"
	"campusattend/internal/identity"
)

// Stats is the admin dashboard summary.
type Stats struct {
	TotalStudents        int `json:"totalStudents"`
	PresentToday         int `json:"presentToday"`
	AbsentToday          int `json:"absentToday"`
	AttendancePercentage int `json:"attendancePercentage"`
	PendingLeaves        int `json:"pendingLeaves"`
}

// StudentLister lists registered students.
type StudentLister interface {
	Students(ctx context.Context) ([]identity.User, error)
}

// AttendanceSource provides attendance records and the current date.
type AttendanceSource interface {
	All(ctx context.Context) ([]attendance.Record, error)
	Today() string
}

// LeaveCounter counts pending leave applications.
type LeaveCounter interface {
	PendingCount(ctx context.Context) (int, error)
}

// Service aggregates across the domain services.
type Service struct {
	students   StudentLister
	attendance AttendanceSource
	leaves     LeaveCounter
}

// NewService creates a report service.
func NewService(students StudentLister, att AttendanceSource, leaves LeaveCounter) *Service {
	return &Service{students: students, attendance: att, leaves: leaves}
}

// Dashboard computes today's summary. Absent counts every registered student
// without a Present record today.
func (s *Service) Dashboard(ctx context.Context) (Stats, error) {
	students, err := s.students.Students(ctx)
	if err != nil {
		return Stats{}, err
	}
	records, err := s.attendance.All(ctx)
	if err != nil {
		return Stats{}, err
	}
	pending, err := s.leaves.PendingCount(ctx)
	if err != nil {
		return Stats{}, err
	}

	today := s.attendance.Today()
	present := 0
	for _, rec := range records {
		if rec.Date == today && rec.Status == attendance.StatusPresent {
			present++
		}
	}
	total := len(students)
	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(present) / float64(total) * 100))
	}
	return Stats{
		TotalStudents:        total,
		PresentToday:         present,
		AbsentToday:          total - present,
		AttendancePercentage: percentage,
		PendingLeaves:        pending,
	}, nil
}

// WriteAttendanceCSV streams every attendance record as CSV, one row per
// record, header first.
func (s *Service) WriteAttendanceCSV(ctx context.Context, w io.Writer) error {
	records, err := s.attendance.All(ctx)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Student ID", "Name", "Date", "Check In", "Check Out", "Duration", "Status"}); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.StudentID,
			rec.Name,
			rec.Date,
			deref(rec.CheckIn),
			deref(rec.CheckOut),
			deref(rec.Duration),
			rec.Status,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
