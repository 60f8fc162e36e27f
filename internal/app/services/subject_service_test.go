package services

import (
	"context"
	"errors"
	"testing"

	"github.com/preskool/school/internal/app/models"
	"github.com/preskool/school/internal/app/models/dto"
	"github.com/preskool/school/internal/pkg/apperrors"
)

type fakeSubjectStore struct {
	subjects []*models.Subject
	nextID   int64
}

func (f *fakeSubjectStore) Create(_ context.Context, s *models.Subject) error {
	f.nextID++
	s.ID = f.nextID
	copied := *s
	f.subjects = append(f.subjects, &copied)
	return nil
}

func (f *fakeSubjectStore) GetByID(_ context.Context, id int64) (*models.Subject, error) {
	for _, s := range f.subjects {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeSubjectStore) GetAll(_ context.Context) ([]*models.Subject, error) {
	return f.subjects, nil
}

func (f *fakeSubjectStore) CodeExists(_ context.Context, code string, excludeID int64) (bool, error) {
	for _, s := range f.subjects {
		if s.ID != excludeID && s.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSubjectStore) CountDistinctDepartments(_ context.Context) (int, error) {
	seen := make(map[int64]struct{})
	for _, s := range f.subjects {
		seen[s.DepartmentID] = struct{}{}
	}
	return len(seen), nil
}

func (f *fakeSubjectStore) Update(_ context.Context, updated *models.Subject) error {
	for i, s := range f.subjects {
		if s.ID == updated.ID {
			copied := *updated
			f.subjects[i] = &copied
			return nil
		}
	}
	return apperrors.ErrSubjectNotFound
}

func (f *fakeSubjectStore) Delete(_ context.Context, id int64) error {
	for i, s := range f.subjects {
		if s.ID == id {
			f.subjects = append(f.subjects[:i], f.subjects[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrSubjectNotFound
}

func newSubjectFixture(t *testing.T) (*SubjectService, *fakeDepartmentStore) {
	t.Helper()
	departments := newFakeDepartmentStore()
	if err := departments.Create(context.Background(), &models.Department{Name: "Science"}); err != nil {
		t.Fatalf("seeding department: %v", err)
	}
	return NewSubjectService(&fakeSubjectStore{}, departments), departments
}

func TestSubjectServiceListAffordances(t *testing.T) {
	svc, _ := newSubjectFixture(t)

	// Admin and teacher mutate subjects alike; the delete affordance is no
	// narrower than the delete route itself.
	tests := []struct {
		role      models.RoleType
		canMutate bool
	}{
		{models.RoleAdmin, true},
		{models.RoleTeacher, true},
		{models.RoleStudent, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			list, err := svc.List(context.Background(), tt.role)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if list.CanAdd != tt.canMutate || list.CanEdit != tt.canMutate || list.CanDelete != tt.canMutate {
				t.Errorf("affordances = add:%v edit:%v delete:%v, want all %v",
					list.CanAdd, list.CanEdit, list.CanDelete, tt.canMutate)
			}
		})
	}
}

func TestSubjectServiceCreateChecks(t *testing.T) {
	svc, _ := newSubjectFixture(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, dto.CreateSubjectRequest{Name: "Physics", Code: "PHY101", DepartmentID: 1}); err != nil {
		t.Fatalf("create error = %v", err)
	}

	// Duplicate code
	_, err := svc.Create(ctx, dto.CreateSubjectRequest{Name: "Physics II", Code: "PHY101", DepartmentID: 1})
	if !errors.Is(err, apperrors.ErrSubjectCodeAlreadyExists) {
		t.Fatalf("duplicate code error = %v, want ErrSubjectCodeAlreadyExists", err)
	}

	// Department must exist
	_, err = svc.Create(ctx, dto.CreateSubjectRequest{Name: "Ghost Studies", Code: "GHO101", DepartmentID: 404})
	if !errors.Is(err, apperrors.ErrDepartmentForSubject) {
		t.Fatalf("missing department error = %v, want ErrDepartmentForSubject", err)
	}
}

func TestSubjectServiceUpdateKeepsOwnCode(t *testing.T) {
	svc, _ := newSubjectFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateSubjectRequest{Name: "Physics", Code: "PHY101", DepartmentID: 1})
	if err != nil {
		t.Fatalf("create error = %v", err)
	}

	// Re-submitting the same code for the same row is not a conflict
	if _, err := svc.Update(ctx, created.ID, dto.UpdateSubjectRequest{Name: "Physics I", Code: "PHY101", DepartmentID: 1}); err != nil {
		t.Fatalf("update with unchanged code error = %v", err)
	}

	other, err := svc.Create(ctx, dto.CreateSubjectRequest{Name: "Chemistry", Code: "CHE101", DepartmentID: 1})
	if err != nil {
		t.Fatalf("create error = %v", err)
	}
	_, err = svc.Update(ctx, other.ID, dto.UpdateSubjectRequest{Name: "Chemistry", Code: "PHY101", DepartmentID: 1})
	if !errors.Is(err, apperrors.ErrSubjectCodeAlreadyExists) {
		t.Fatalf("recode onto taken code error = %v, want ErrSubjectCodeAlreadyExists", err)
	}
}
