package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/trezcool/eduhub/core/user"
	inmemdb "github.com/trezcool/eduhub/storage/database/inmem"
	"github.com/trezcool/eduhub/testutil"
)

func setup(t *testing.T) (*user.Service, user.Repository) {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	repo := inmemdb.NewUserRepository(db)
	return user.NewService(repo), repo
}

func TestServiceCreateStudent(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	usr, err := svc.CreateStudent(ctx, user.NewStudent{
		Email:     "lena@test.test",
		FirstName: "Lena",
		LastName:  "Diallo",
	})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	if usr.Role != user.RoleStudent {
		t.Errorf("Role = %q; want %q", usr.Role, user.RoleStudent)
	}
	if !usr.IsActive {
		t.Error("IsActive = false; want true")
	}
	if usr.UserID == "" {
		t.Error("UserID is empty; want a generated id")
	}
	if usr.DateJoined.IsZero() {
		t.Error("DateJoined is zero; want now")
	}

	got, err := svc.GetByID(ctx, usr.UserID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	testutil.AssertJSONEqual(t, usr, got)
}

func TestServiceGetByIDNotFound(t *testing.T) {
	svc, _ := setup(t)

	if _, err := svc.GetByID(context.Background(), "nope"); !errors.Is(err, user.ErrNotFound) {
		t.Errorf("GetByID() error = %v; want %v", err, user.ErrNotFound)
	}
}

func TestServiceActiveStudents(t *testing.T) {
	svc, repo := setup(t)

	testutil.CreateUser(t, repo, "u1", "inst@test.test", "Nadia", "Kone", user.RoleInstructor, true)
	active := testutil.CreateUser(t, repo, "u2", "a@test.test", "Lena", "Diallo", user.RoleStudent, true)
	testutil.CreateUser(t, repo, "u3", "b@test.test", "Theo", "Mensah", user.RoleStudent, false)

	students, err := svc.ActiveStudents(context.Background())
	if err != nil {
		t.Fatalf("ActiveStudents() failed: %v", err)
	}
	if len(students) != 1 {
		t.Fatalf("len(students) = %d; want 1", len(students))
	}
	if students[0].UserID != active.UserID {
		t.Errorf("UserID = %q; want %q", students[0].UserID, active.UserID)
	}
}

func TestServiceRecentSignups(t *testing.T) {
	svc, repo := setup(t)
	now := time.Now().UTC()

	recent := testutil.CreateUser(t, repo, "u1", "a@test.test", "Lena", "Diallo", user.RoleStudent, true, now.AddDate(0, 0, -10))
	testutil.CreateUser(t, repo, "u2", "b@test.test", "Theo", "Mensah", user.RoleStudent, true, now.AddDate(0, 0, -400))

	tests := []struct {
		name    string
		months  int
		wantIDs []string
	}{
		{name: "default window", months: 0, wantIDs: []string{recent.UserID}},
		{name: "wide window", months: 24, wantIDs: []string{"u1", "u2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := svc.RecentSignups(context.Background(), tt.months)
			if err != nil {
				t.Fatalf("RecentSignups() failed: %v", err)
			}
			if len(users) != len(tt.wantIDs) {
				t.Fatalf("len(users) = %d; want %d", len(users), len(tt.wantIDs))
			}
		})
	}
}

func TestServiceModifyProfileAndDeactivate(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	usr := testutil.CreateUser(t, repo, "u1", "a@test.test", "Lena", "Diallo", user.RoleStudent, true)

	err := svc.ModifyProfile(ctx, usr.UserID, user.UpdateProfile{
		Bio:    "Learning data pipelines.",
		Skills: []string{"Python", "MongoDB"},
	})
	if err != nil {
		t.Fatalf("ModifyProfile() failed: %v", err)
	}
	got, err := svc.GetByID(ctx, usr.UserID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if got.Profile.Bio != "Learning data pipelines." {
		t.Errorf("Profile.Bio = %q; want update applied", got.Profile.Bio)
	}
	if len(got.Profile.Skills) != 2 {
		t.Errorf("len(Profile.Skills) = %d; want 2", len(got.Profile.Skills))
	}

	if err = svc.Deactivate(ctx, usr.UserID); err != nil {
		t.Fatalf("Deactivate() failed: %v", err)
	}
	got, err = svc.GetByID(ctx, usr.UserID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if got.IsActive {
		t.Error("IsActive = true; want false after Deactivate")
	}
}
