package identity

import (
	"context"
	"fmt"
	"testing"

	"campusattend/internal/apperr"
)

type fakeStore struct {
	users    map[string]User
	byEmail  map[string]string
	hashes   map[string]string
	managers map[string]Manager
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[string]User{},
		byEmail:  map[string]string{},
		hashes:   map[string]string{},
		managers: map[string]Manager{},
	}
}

func (f *fakeStore) CreateUser(_ context.Context, user User, passwordHash string) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return ErrEmailTaken
	}
	f.users[user.ID] = user
	f.byEmail[user.Email] = user.ID
	f.hashes[user.ID] = passwordHash
	return nil
}

func (f *fakeStore) UserByID(_ context.Context, id string) (User, error) {
	user, ok := f.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

func (f *fakeStore) UserByEmail(_ context.Context, email string) (User, string, error) {
	id, ok := f.byEmail[email]
	if !ok {
		return User{}, "", ErrUserNotFound
	}
	return f.users[id], f.hashes[id], nil
}

func (f *fakeStore) ListStudents(_ context.Context) ([]User, error) {
	var res []User
	for _, u := range f.users {
		if u.Role == RoleStudent {
			res = append(res, u)
		}
	}
	return res, nil
}

func (f *fakeStore) SaveManager(_ context.Context, studentID string, m Manager) error {
	f.managers[studentID] = m
	return nil
}

func (f *fakeStore) ManagerByStudent(_ context.Context, studentID string) (Manager, error) {
	return f.managers[studentID], nil
}

type fakeSeeder struct {
	seeded []string
}

func (f *fakeSeeder) SeedStudent(_ context.Context, studentID string) error {
	f.seeded = append(f.seeded, studentID)
	return nil
}

func newTestService(store Store, seeders ...StudentSeeder) *Service {
	n := 0
	return NewService(store, func() string {
		n++
		return fmt.Sprintf("user-%d", n)
	}, seeders...)
}

func TestSignUpDefaultsToStudentAndSeeds(t *testing.T) {
	store := newFakeStore()
	seeder := &fakeSeeder{}
	svc := newTestService(store, seeder)

	user, err := svc.SignUp(context.Background(), SignUpParams{
		Email: "asha@example.com", Password: "secret1", Name: "Asha",
		StudentID: "S001", Semester: "Semester 1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != RoleStudent {
		t.Errorf("role = %q, want student default", user.Role)
	}
	if len(seeder.seeded) != 1 || seeder.seeded[0] != "S001" {
		t.Errorf("seeded = %v, want [S001]", seeder.seeded)
	}
	manager, _ := store.ManagerByStudent(context.Background(), "S001")
	if manager.Supervisor == "" {
		t.Error("expected default manager card to be saved")
	}
}

func TestSignUpAdminSkipsSeeding(t *testing.T) {
	store := newFakeStore()
	seeder := &fakeSeeder{}
	svc := newTestService(store, seeder)

	_, err := svc.SignUp(context.Background(), SignUpParams{
		Email: "head@example.com", Password: "secret1", Name: "Head", Role: RoleAdmin,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seeder.seeded) != 0 {
		t.Errorf("seeded = %v, want none for admin", seeder.seeded)
	}
	if len(store.managers) != 0 {
		t.Error("no manager card expected for admin")
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc := newTestService(newFakeStore())
	params := SignUpParams{Email: "asha@example.com", Password: "secret1", Name: "Asha", StudentID: "S001"}
	if _, err := svc.SignUp(context.Background(), params); err != nil {
		t.Fatal(err)
	}
	_, err := svc.SignUp(context.Background(), params)
	if apperr.CodeOf(err) != apperr.CodeInvalid {
		t.Fatalf("expected invalid, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc := newTestService(newFakeStore())
	created, err := svc.SignUp(context.Background(), SignUpParams{
		Email: "asha@example.com", Password: "secret1", Name: "Asha", StudentID: "S001",
	})
	if err != nil {
		t.Fatal(err)
	}

	user, err := svc.Login(context.Background(), "asha@example.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("user id = %q, want %q", user.ID, created.ID)
	}

	if _, err := svc.Login(context.Background(), "asha@example.com", "wrong"); apperr.CodeOf(err) != apperr.CodeInvalid {
		t.Fatalf("expected invalid for wrong password, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody@example.com", "secret1"); apperr.CodeOf(err) != apperr.CodeInvalid {
		t.Fatalf("expected invalid for unknown email, got %v", err)
	}
}

func TestUserByIDUnknown(t *testing.T) {
	svc := newTestService(newFakeStore())
	_, err := svc.UserByID(context.Background(), "missing")
	if apperr.CodeOf(err) != apperr.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
