package services

import (
	"context"
	"errors"
	"testing"

	"github.com/preskool/school/internal/app/models"
	"github.com/preskool/school/internal/app/models/dto"
	"github.com/preskool/school/internal/pkg/apperrors"
)

type fakeDepartmentStore struct {
	departments []*models.Department
	subjects    map[int64][]*models.Subject
	nextID      int64
}

func newFakeDepartmentStore() *fakeDepartmentStore {
	return &fakeDepartmentStore{subjects: make(map[int64][]*models.Subject)}
}

func (f *fakeDepartmentStore) Create(_ context.Context, d *models.Department) error {
	f.nextID++
	d.ID = f.nextID
	copied := *d
	f.departments = append(f.departments, &copied)
	return nil
}

func (f *fakeDepartmentStore) GetByID(_ context.Context, id int64) (*models.Department, error) {
	for _, d := range f.departments {
		if d.ID == id {
			copied := *d
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeDepartmentStore) GetAll(_ context.Context) ([]*models.Department, error) {
	out := make([]*models.Department, 0, len(f.departments))
	for _, d := range f.departments {
		copied := *d
		copied.SubjectCount = len(f.subjects[d.ID])
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeDepartmentStore) NameExists(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, d := range f.departments {
		if d.ID != excludeID && d.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDepartmentStore) Update(_ context.Context, updated *models.Department) error {
	for i, d := range f.departments {
		if d.ID == updated.ID {
			copied := *updated
			f.departments[i] = &copied
			return nil
		}
	}
	return apperrors.ErrDepartmentNotFound
}

func (f *fakeDepartmentStore) Delete(_ context.Context, id int64) (int, error) {
	for i, d := range f.departments {
		if d.ID == id {
			cascaded := len(f.subjects[id])
			f.departments = append(f.departments[:i], f.departments[i+1:]...)
			// FK cascade takes the subjects with it
			delete(f.subjects, id)
			return cascaded, nil
		}
	}
	return 0, apperrors.ErrDepartmentNotFound
}

func (f *fakeDepartmentStore) GetByDepartmentID(_ context.Context, departmentID int64) ([]*models.Subject, error) {
	return f.subjects[departmentID], nil
}

func (f *fakeDepartmentStore) addSubject(departmentID int64, name, code string) {
	f.subjects[departmentID] = append(f.subjects[departmentID], &models.Subject{
		ID:           int64(len(f.subjects[departmentID]) + 1),
		Name:         name,
		Code:         code,
		DepartmentID: departmentID,
	})
}

func TestDepartmentServiceCreateDuplicateName(t *testing.T) {
	store := newFakeDepartmentStore()
	svc := NewDepartmentService(store, store)
	ctx := context.Background()

	if _, err := svc.Create(ctx, dto.CreateDepartmentRequest{Name: "Mathematics"}); err != nil {
		t.Fatalf("first create error = %v", err)
	}

	_, err := svc.Create(ctx, dto.CreateDepartmentRequest{Name: "Mathematics"})
	if !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
		t.Fatalf("duplicate create error = %v, want ErrDepartmentAlreadyExists", err)
	}
}

func TestDepartmentServiceUpdateKeepsOwnName(t *testing.T) {
	store := newFakeDepartmentStore()
	svc := NewDepartmentService(store, store)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateDepartmentRequest{Name: "Science"})
	if err != nil {
		t.Fatalf("create error = %v", err)
	}

	// Re-submitting the same name for the same row is not a conflict
	if _, err := svc.Update(ctx, created.ID, dto.UpdateDepartmentRequest{Name: "Science", Description: "updated"}); err != nil {
		t.Fatalf("update with unchanged name error = %v", err)
	}

	// Renaming onto another department's name is
	other, err := svc.Create(ctx, dto.CreateDepartmentRequest{Name: "English"})
	if err != nil {
		t.Fatalf("create error = %v", err)
	}
	_, err = svc.Update(ctx, other.ID, dto.UpdateDepartmentRequest{Name: "Science"})
	if !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
		t.Fatalf("rename onto taken name error = %v, want ErrDepartmentAlreadyExists", err)
	}
}

func TestDepartmentServiceDetailCountsSubjects(t *testing.T) {
	store := newFakeDepartmentStore()
	svc := NewDepartmentService(store, store)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateDepartmentRequest{Name: "Science"})
	if err != nil {
		t.Fatalf("create error = %v", err)
	}
	store.addSubject(created.ID, "Physics", "PHY101")
	store.addSubject(created.ID, "Chemistry", "CHE101")

	detail, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get error = %v", err)
	}
	if detail.SubjectCount != 2 {
		t.Errorf("SubjectCount = %d, want 2", detail.SubjectCount)
	}
	if len(detail.Subjects) != 2 {
		t.Errorf("len(Subjects) = %d, want 2", len(detail.Subjects))
	}
}

func TestDepartmentServiceDeleteCascades(t *testing.T) {
	store := newFakeDepartmentStore()
	svc := NewDepartmentService(store, store)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateDepartmentRequest{Name: "Science"})
	if err != nil {
		t.Fatalf("create error = %v", err)
	}
	store.addSubject(created.ID, "Physics", "PHY101")

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete error = %v", err)
	}
	if len(store.subjects[created.ID]) != 0 {
		t.Error("subjects should be gone with their department")
	}

	// Gone means gone
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, apperrors.ErrDepartmentNotFound) {
		t.Fatalf("second delete error = %v, want ErrDepartmentNotFound", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, apperrors.ErrDepartmentNotFound) {
		t.Fatalf("get after delete error = %v, want ErrDepartmentNotFound", err)
	}
}

func TestDepartmentServiceListTotals(t *testing.T) {
	store := newFakeDepartmentStore()
	svc := NewDepartmentService(store, store)
	ctx := context.Background()

	for _, name := range []string{"Mathematics", "Science", "English"} {
		if _, err := svc.Create(ctx, dto.CreateDepartmentRequest{Name: name}); err != nil {
			t.Fatalf("create %q error = %v", name, err)
		}
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if list.TotalDepartments != 3 {
		t.Errorf("TotalDepartments = %d, want 3", list.TotalDepartments)
	}
}
