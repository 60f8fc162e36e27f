package services

import (
	"context"
	"errors"
	"testing"

	"github.com/preskool/school/internal/app/models"
	"github.com/preskool/school/internal/pkg/apperrors"
)

type fakeDashboardUsers struct {
	users []*models.User
}

func (f *fakeDashboardUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeDashboardUsers) GetAllByRole(_ context.Context, role models.RoleType) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.users {
		if u.Role == role && u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeDashboardUsers) CountByRole(_ context.Context) (map[models.RoleType]int, error) {
	counts := make(map[models.RoleType]int)
	for _, u := range f.users {
		counts[u.Role]++
	}
	return counts, nil
}

type fakeTeacherLister struct {
	teachers []*models.Teacher
}

func (f *fakeTeacherLister) GetAll(_ context.Context) ([]*models.Teacher, error) {
	return f.teachers, nil
}

func newDashboardFixture() *DashboardService {
	users := &fakeDashboardUsers{users: []*models.User{
		{ID: 1, FirstName: "Ada", LastName: "Admin", Role: models.RoleAdmin, IsActive: true},
		{ID: 2, FirstName: "Tess", LastName: "Teacher", Role: models.RoleTeacher, IsActive: true},
		{ID: 3, FirstName: "Sam", LastName: "Student", Role: models.RoleStudent, IsActive: true},
		{ID: 4, FirstName: "Sue", LastName: "Student", Role: models.RoleStudent, IsActive: true},
	}}
	teachers := &fakeTeacherLister{teachers: []*models.Teacher{
		{ID: 1, FirstName: "Tess", LastName: "Teacher"},
	}}
	return NewDashboardService(users, teachers)
}

func TestDashboardAdminCountsAndRoster(t *testing.T) {
	svc := newDashboardFixture()

	resp, err := svc.Dashboard(context.Background(), 1, models.RoleAdmin)
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}

	if resp.WelcomeUser != "Ada Admin" {
		t.Errorf("WelcomeUser = %q, want Ada Admin", resp.WelcomeUser)
	}
	if resp.TotalStudents != 2 || resp.TotalTeachers != 1 || resp.TotalAdmins != 1 || resp.TotalUsers != 4 {
		t.Errorf("counts = students:%d teachers:%d admins:%d users:%d, want 2/1/1/4",
			resp.TotalStudents, resp.TotalTeachers, resp.TotalAdmins, resp.TotalUsers)
	}
	// Admins see the counts and the student roster together
	if len(resp.Students) != 2 {
		t.Errorf("len(Students) = %d, want 2", len(resp.Students))
	}
	if resp.Teachers != nil {
		t.Error("admin payload carries no staff roster")
	}
}

func TestDashboardTeacherRoster(t *testing.T) {
	svc := newDashboardFixture()

	resp, err := svc.Dashboard(context.Background(), 2, models.RoleTeacher)
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}

	if len(resp.Teachers) != 1 || resp.TotalTeachers != 1 {
		t.Errorf("staff roster = %d entries (total %d), want 1", len(resp.Teachers), resp.TotalTeachers)
	}
	if resp.Students != nil {
		t.Error("teacher payload carries no student roster")
	}
}

func TestDashboardStudentWelcomeOnly(t *testing.T) {
	svc := newDashboardFixture()

	resp, err := svc.Dashboard(context.Background(), 3, models.RoleStudent)
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}

	if resp.WelcomeUser != "Sam Student" {
		t.Errorf("WelcomeUser = %q, want Sam Student", resp.WelcomeUser)
	}
	if resp.Students != nil || resp.Teachers != nil {
		t.Error("student payload carries no rosters")
	}
	if resp.TotalUsers != 0 {
		t.Error("student payload carries no population counts")
	}
}

func TestDashboardRejects(t *testing.T) {
	svc := newDashboardFixture()
	ctx := context.Background()

	if _, err := svc.Dashboard(ctx, 404, models.RoleAdmin); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("unknown user error = %v, want ErrUserNotFound", err)
	}
	if _, err := svc.Dashboard(ctx, 1, models.RoleType("GUEST")); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("unknown role error = %v, want ErrPermissionDenied", err)
	}
}
