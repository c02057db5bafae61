package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"campusattend/internal/attendance"
	"campusattend/internal/auth"
	"campusattend/internal/identity"
)

type fakeUsers map[string]identity.User

func (f fakeUsers) UserByID(_ context.Context, id string) (identity.User, error) {
	user, ok := f[id]
	if !ok {
		return identity.User{}, identity.ErrUserNotFound
	}
	return user, nil
}

type fakeAttendanceStore struct {
	records map[string]attendance.Record
}

func (f *fakeAttendanceStore) key(studentID, date string) string { return studentID + "|" + date }

func (f *fakeAttendanceStore) Get(_ context.Context, studentID, date string) (*attendance.Record, error) {
	rec, ok := f.records[f.key(studentID, date)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeAttendanceStore) Put(_ context.Context, rec attendance.Record) error {
	f.records[f.key(rec.StudentID, rec.Date)] = rec
	return nil
}

func (f *fakeAttendanceStore) Delete(_ context.Context, studentID, date string) error {
	delete(f.records, f.key(studentID, date))
	return nil
}

func (f *fakeAttendanceStore) ListByStudent(_ context.Context, studentID string) ([]attendance.Record, error) {
	var res []attendance.Record
	for _, rec := range f.records {
		if rec.StudentID == studentID {
			res = append(res, rec)
		}
	}
	return res, nil
}

func (f *fakeAttendanceStore) ListAll(_ context.Context) ([]attendance.Record, error) {
	var res []attendance.Record
	for _, rec := range f.records {
		res = append(res, rec)
	}
	return res, nil
}

const (
	testKey    = "test-key"
	testIssuer = "campus-attendance"
)

func newTestRouter(t *testing.T, users fakeUsers) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	attendanceSvc := attendance.NewService(&fakeAttendanceStore{records: map[string]attendance.Record{}})
	h := New(
		AuthConfig{Issuer: testIssuer, SigningKey: testKey, AccessTTL: time.Hour},
		nil, attendanceSvc, nil, nil, nil, nil, nil, nil,
	)
	r := gin.New()
	Register(r, h, auth.RequireUser(testKey, testIssuer, users))
	return r
}

func bearer(t *testing.T, userID, role string) string {
	t.Helper()
	token, _, err := auth.Issue(userID, role, testIssuer, testKey, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return "Bearer " + token
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func TestMissingTokenRejected(t *testing.T) {
	r := newTestRouter(t, fakeUsers{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/attendance/me", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	body := decode(t, w)
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
}

func TestUnknownSubjectRejected(t *testing.T) {
	r := newTestRouter(t, fakeUsers{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/attendance/me", nil)
	req.Header.Set("Authorization", bearer(t, "ghost", "student"))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestStudentBlockedFromAdminRoutes(t *testing.T) {
	users := fakeUsers{
		"u1": {ID: "u1", StudentID: "S001", Name: "Asha", Role: identity.RoleStudent},
	}
	r := newTestRouter(t, users)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard", nil)
	req.Header.Set("Authorization", bearer(t, "u1", "student"))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	body := decode(t, w)
	if body["error"] != "admin access required" {
		t.Errorf("error = %v, want admin access required", body["error"])
	}
}

func TestCheckInFlow(t *testing.T) {
	users := fakeUsers{
		"u1": {ID: "u1", StudentID: "S001", Name: "Asha", Role: identity.RoleStudent},
	}
	r := newTestRouter(t, users)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/attendance/check-in", nil)
	req.Header.Set("Authorization", bearer(t, "u1", "student"))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["success"] != true {
		t.Fatalf("success = %v, want true", body["success"])
	}
	rec, ok := body["record"].(map[string]any)
	if !ok {
		t.Fatalf("record missing from %v", body)
	}
	if rec["status"] != attendance.StatusPresent {
		t.Errorf("status = %v, want Present", rec["status"])
	}
	if rec["checkIn"] == nil || rec["checkOut"] != nil {
		t.Errorf("expected checkIn set and checkOut nil, got %v / %v", rec["checkIn"], rec["checkOut"])
	}

	// Same day again must conflict.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/v1/attendance/check-in", nil)
	req.Header.Set("Authorization", bearer(t, "u1", "student"))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("second check-in status = %d, want 409", w.Code)
	}
}
