package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"campusattend/internal/apperr"
)

type fakeStore struct {
	apps     map[string]Application
	balances map[string]map[string]BalanceEntry
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		apps:     map[string]Application{},
		balances: map[string]map[string]BalanceEntry{},
	}
}

func (f *fakeStore) CreateApplication(_ context.Context, app Application) error {
	f.apps[app.ID] = app
	return nil
}

func (f *fakeStore) ApplicationByID(_ context.Context, id string) (*Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, nil
	}
	return &app, nil
}

func (f *fakeStore) SetStatus(_ context.Context, id, status string) error {
	app := f.apps[id]
	app.Status = status
	f.apps[id] = app
	return nil
}

func (f *fakeStore) ListByStudent(_ context.Context, studentID string) ([]Application, error) {
	var res []Application
	for _, app := range f.apps {
		if app.StudentID == studentID {
			res = append(res, app)
		}
	}
	return res, nil
}

func (f *fakeStore) ListAll(_ context.Context) ([]Application, error) {
	var res []Application
	for _, app := range f.apps {
		res = append(res, app)
	}
	return res, nil
}

func (f *fakeStore) SeedBalances(_ context.Context, studentID string, balances map[string]BalanceEntry) error {
	if _, ok := f.balances[studentID]; ok {
		return nil
	}
	seeded := map[string]BalanceEntry{}
	for k, v := range balances {
		seeded[k] = v
	}
	f.balances[studentID] = seeded
	return nil
}

func (f *fakeStore) BalancesByStudent(_ context.Context, studentID string) (map[string]BalanceEntry, error) {
	return f.balances[studentID], nil
}

func (f *fakeStore) AddTaken(_ context.Context, studentID, leaveType string, days int) error {
	if entries, ok := f.balances[studentID]; ok {
		if entry, ok := entries[leaveType]; ok {
			entry.Taken += days
			entries[leaveType] = entry
		}
	}
	return nil
}

func newTestService(store Store) *Service {
	n := 0
	svc := NewService(store, func() string {
		n++
		return fmt.Sprintf("leave-%d", n)
	})
	fixed, _ := time.Parse("02 Jan 2006", "15 Mar 2026")
	svc.now = func() time.Time { return fixed }
	return svc
}

func TestApplyAlwaysCreatesPending(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	// Date ordering is deliberately not validated.
	app, err := svc.Apply(context.Background(), "S001", "Asha", TypeSick, "20 Mar 2026", "18 Mar 2026", "fever")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Status != StatusPending {
		t.Errorf("status = %q, want %q", app.Status, StatusPending)
	}
	if app.AppliedOn != "15 Mar 2026" {
		t.Errorf("appliedOn = %q, want 15 Mar 2026", app.AppliedOn)
	}
}

func TestDecideApproveIncrementsTakenByOneDay(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	if err := svc.SeedStudent(context.Background(), "S001"); err != nil {
		t.Fatal(err)
	}

	// Three-day span; the booked amount is still one day.
	app, err := svc.Apply(context.Background(), "S001", "Asha", TypeCasual, "16 Mar 2026", "18 Mar 2026", "travel")
	if err != nil {
		t.Fatal(err)
	}
	decided, err := svc.Decide(context.Background(), app.ID, StatusApproved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decided.Status != StatusApproved {
		t.Errorf("status = %q, want %q", decided.Status, StatusApproved)
	}
	balances, _ := svc.BalanceFor(context.Background(), "S001")
	if balances[TypeCasual].Taken != 1 {
		t.Errorf("taken = %d, want 1", balances[TypeCasual].Taken)
	}
}

func TestRepeatedApprovalsKeepIncrementing(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	if err := svc.SeedStudent(context.Background(), "S001"); err != nil {
		t.Fatal(err)
	}
	app, _ := svc.Apply(context.Background(), "S001", "Asha", TypeCasual, "16 Mar 2026", "16 Mar 2026", "")

	for i := 0; i < 3; i++ {
		if _, err := svc.Decide(context.Background(), app.ID, StatusApproved); err != nil {
			t.Fatalf("approve %d: %v", i, err)
		}
	}
	balances, _ := svc.BalanceFor(context.Background(), "S001")
	if balances[TypeCasual].Taken != 3 {
		t.Errorf("taken = %d, want 3", balances[TypeCasual].Taken)
	}
}

func TestDecideRejectLeavesBalanceAlone(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	if err := svc.SeedStudent(context.Background(), "S001"); err != nil {
		t.Fatal(err)
	}
	app, _ := svc.Apply(context.Background(), "S001", "Asha", TypeSick, "16 Mar 2026", "16 Mar 2026", "")

	if _, err := svc.Decide(context.Background(), app.ID, StatusRejected); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	balances, _ := svc.BalanceFor(context.Background(), "S001")
	if balances[TypeSick].Taken != 0 {
		t.Errorf("taken = %d, want 0", balances[TypeSick].Taken)
	}
}

func TestDecideUnknownLeave(t *testing.T) {
	svc := newTestService(newFakeStore())
	_, err := svc.Decide(context.Background(), "missing", StatusApproved)
	if apperr.CodeOf(err) != apperr.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDecideRejectsUnknownStatus(t *testing.T) {
	svc := newTestService(newFakeStore())
	_, err := svc.Decide(context.Background(), "any", StatusPending)
	if apperr.CodeOf(err) != apperr.CodeInvalid {
		t.Fatalf("expected invalid, got %v", err)
	}
}

func TestSeedStudentDefaults(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	if err := svc.SeedStudent(context.Background(), "S001"); err != nil {
		t.Fatal(err)
	}
	balances, _ := svc.BalanceFor(context.Background(), "S001")
	want := map[string]BalanceEntry{
		TypeCasual: {Taken: 0, Total: 3},
		TypeSick:   {Taken: 0, Total: 6},
		TypeEarned: {Taken: 0, Total: 0},
		TypeUnpaid: {Taken: 0, Total: UnlimitedTotal},
	}
	for leaveType, entry := range want {
		if balances[leaveType] != entry {
			t.Errorf("%s = %+v, want %+v", leaveType, balances[leaveType], entry)
		}
	}
}
