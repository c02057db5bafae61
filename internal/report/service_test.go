package report

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"campusattend/internal/attendance"
	"campusattend/internal/identity"
)

type fakeStudents []identity.User

func (f fakeStudents) Students(context.Context) ([]identity.User, error) { return f, nil }

type fakeAttendance struct {
	records []attendance.Record
	today   string
}

func (f fakeAttendance) All(context.Context) ([]attendance.Record, error) { return f.records, nil }
func (f fakeAttendance) Today() string                                    { return f.today }

type fakeLeaves int

func (f fakeLeaves) PendingCount(context.Context) (int, error) { return int(f), nil }

func strptr(s string) *string { return &s }

func TestDashboard(t *testing.T) {
	students := fakeStudents{
		{ID: "u1", StudentID: "S001", Role: identity.RoleStudent},
		{ID: "u2", StudentID: "S002", Role: identity.RoleStudent},
		{ID: "u3", StudentID: "S003", Role: identity.RoleStudent},
	}
	att := fakeAttendance{
		today: "15 Mar 2026",
		records: []attendance.Record{
			{StudentID: "S001", Date: "15 Mar 2026", Status: attendance.StatusPresent},
			{StudentID: "S002", Date: "15 Mar 2026", Status: attendance.StatusLeave},
			{StudentID: "S003", Date: "14 Mar 2026", Status: attendance.StatusPresent},
		},
	}
	svc := NewService(students, att, fakeLeaves(2))

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalStudents != 3 {
		t.Errorf("totalStudents = %d, want 3", stats.TotalStudents)
	}
	if stats.PresentToday != 1 {
		t.Errorf("presentToday = %d, want 1", stats.PresentToday)
	}
	if stats.AbsentToday != 2 {
		t.Errorf("absentToday = %d, want 2", stats.AbsentToday)
	}
	if stats.AttendancePercentage != 33 {
		t.Errorf("attendancePercentage = %d, want 33", stats.AttendancePercentage)
	}
	if stats.PendingLeaves != 2 {
		t.Errorf("pendingLeaves = %d, want 2", stats.PendingLeaves)
	}
}

func TestDashboardEmpty(t *testing.T) {
	svc := NewService(fakeStudents{}, fakeAttendance{today: "15 Mar 2026"}, fakeLeaves(0))
	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.AttendancePercentage != 0 {
		t.Errorf("attendancePercentage = %d, want 0 with no students", stats.AttendancePercentage)
	}
}

func TestWriteAttendanceCSV(t *testing.T) {
	att := fakeAttendance{
		today: "15 Mar 2026",
		records: []attendance.Record{
			{
				StudentID: "S001", Name: "Asha, Jr.", Date: "15 Mar 2026",
				CheckIn: strptr("07:59 AM"), CheckOut: strptr("02:05 PM"),
				Duration: strptr("6h 6m"), Status: attendance.StatusPresent,
			},
			{StudentID: "S002", Name: "Ravi", Date: "15 Mar 2026", Status: attendance.StatusAbsent},
		},
	}
	svc := NewService(fakeStudents{}, att, fakeLeaves(0))

	var buf bytes.Buffer
	if err := svc.WriteAttendanceCSV(context.Background(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Student ID,Name,Date,Check In,Check Out,Duration,Status" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	// Name with a comma must be quoted.
	if !strings.Contains(lines[1], `"Asha, Jr."`) {
		t.Errorf("expected quoted name in %q", lines[1])
	}
	if !strings.Contains(lines[2], "S002,Ravi,15 Mar 2026,,,,Absent") {
		t.Errorf("unexpected row: %q", lines[2])
	}
}
