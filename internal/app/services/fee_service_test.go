package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/preskool/school/internal/app/models"
	"github.com/preskool/school/internal/app/models/dto"
	"github.com/preskool/school/internal/pkg/apperrors"
)

type fakeFeeStore struct {
	fees   []*models.Fee
	nextID int64
}

func (f *fakeFeeStore) Create(_ context.Context, fee *models.Fee) error {
	f.nextID++
	fee.ID = f.nextID
	copied := *fee
	f.fees = append(f.fees, &copied)
	return nil
}

func (f *fakeFeeStore) GetByID(_ context.Context, id int64) (*models.Fee, error) {
	for _, fee := range f.fees {
		if fee.ID == id {
			copied := *fee
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeFeeStore) GetAll(_ context.Context) ([]*models.Fee, error) {
	return f.fees, nil
}

func (f *fakeFeeStore) GetByStudentID(_ context.Context, studentID int64) ([]*models.Fee, error) {
	var out []*models.Fee
	for _, fee := range f.fees {
		if fee.StudentID == studentID {
			out = append(out, fee)
		}
	}
	return out, nil
}

func (f *fakeFeeStore) Update(_ context.Context, updated *models.Fee) error {
	for i, fee := range f.fees {
		if fee.ID == updated.ID {
			copied := *updated
			f.fees[i] = &copied
			return nil
		}
	}
	return apperrors.ErrFeeNotFound
}

func (f *fakeFeeStore) Delete(_ context.Context, id int64) error {
	for i, fee := range f.fees {
		if fee.ID == id {
			f.fees = append(f.fees[:i], f.fees[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrFeeNotFound
}

type fakeUserGetter struct {
	users map[int64]*models.User
}

func (f *fakeUserGetter) GetByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func newFeeFixture() (*FeeService, *fakeFeeStore) {
	store := &fakeFeeStore{}
	users := &fakeUserGetter{users: map[int64]*models.User{
		1: {ID: 1, FirstName: "Admin", LastName: "User", Role: models.RoleAdmin, IsActive: true},
		2: {ID: 2, FirstName: "Student", LastName: "One", Role: models.RoleStudent, IsActive: true},
		3: {ID: 3, FirstName: "Student", LastName: "Two", Role: models.RoleStudent, IsActive: true},
	}}
	return NewFeeService(store, users), store
}

func TestFeeServiceAmountValidation(t *testing.T) {
	svc, _ := newFeeFixture()
	ctx := context.Background()

	tests := []struct {
		amount string
		ok     bool
	}{
		{"1500.00", true},
		{"1500", true},
		{"0.99", true},
		{"1500.123", false},
		{"-5", false},
		{"lots", false},
		{"", false},
	}

	for _, tt := range tests {
		_, err := svc.Create(ctx, dto.CreateFeeRequest{
			StudentID: 2,
			Amount:    tt.amount,
			DueDate:   "2026-10-01",
		})
		if tt.ok && err != nil {
			t.Errorf("Create(amount=%q) error = %v, want success", tt.amount, err)
		}
		if !tt.ok && !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("Create(amount=%q) error = %v, want ErrValidationFailed", tt.amount, err)
		}
	}
}

func TestFeeServiceStudentMustBeStudent(t *testing.T) {
	svc, _ := newFeeFixture()
	ctx := context.Background()

	// An admin cannot be billed as a student
	_, err := svc.Create(ctx, dto.CreateFeeRequest{StudentID: 1, Amount: "100.00", DueDate: "2026-10-01"})
	if !errors.Is(err, apperrors.ErrStudentForFee) {
		t.Fatalf("error = %v, want ErrStudentForFee", err)
	}

	// Nor can a user that does not exist
	_, err = svc.Create(ctx, dto.CreateFeeRequest{StudentID: 404, Amount: "100.00", DueDate: "2026-10-01"})
	if !errors.Is(err, apperrors.ErrStudentForFee) {
		t.Fatalf("error = %v, want ErrStudentForFee", err)
	}
}

func TestFeeServiceListScoping(t *testing.T) {
	svc, _ := newFeeFixture()
	ctx := context.Background()

	for _, req := range []dto.CreateFeeRequest{
		{StudentID: 2, Amount: "100.00", DueDate: "2026-10-01"},
		{StudentID: 2, Amount: "250.50", DueDate: "2026-11-01"},
		{StudentID: 3, Amount: "300.00", DueDate: "2026-10-01"},
	} {
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatalf("create error = %v", err)
		}
	}

	adminView, err := svc.List(ctx, 1, models.RoleAdmin)
	if err != nil {
		t.Fatalf("admin list error = %v", err)
	}
	if len(adminView) != 3 {
		t.Errorf("admin sees %d fees, want 3", len(adminView))
	}

	studentView, err := svc.List(ctx, 2, models.RoleStudent)
	if err != nil {
		t.Fatalf("student list error = %v", err)
	}
	if len(studentView) != 2 {
		t.Errorf("student two sees %d fees, want 2", len(studentView))
	}
	for _, fee := range studentView {
		if fee.StudentID != 2 {
			t.Errorf("student sees a fee of student %d", fee.StudentID)
		}
	}
}

func TestFeeServiceGetOwnership(t *testing.T) {
	svc, _ := newFeeFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateFeeRequest{StudentID: 2, Amount: "100.00", DueDate: "2026-10-01"})
	if err != nil {
		t.Fatalf("create error = %v", err)
	}

	// The owning student reads their own row
	if _, err := svc.Get(ctx, created.ID, 2, models.RoleStudent); err != nil {
		t.Fatalf("owner get error = %v", err)
	}

	// Another student does not
	_, err = svc.Get(ctx, created.ID, 3, models.RoleStudent)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("foreign get error = %v, want ErrPermissionDenied", err)
	}

	// Admins read everything
	if _, err := svc.Get(ctx, created.ID, 1, models.RoleAdmin); err != nil {
		t.Fatalf("admin get error = %v", err)
	}
}

func TestFeeServiceDueDateParsing(t *testing.T) {
	svc, store := newFeeFixture()

	created, err := svc.Create(context.Background(), dto.CreateFeeRequest{
		StudentID: 2,
		Amount:    "100.00",
		DueDate:   "2026-10-15",
	})
	if err != nil {
		t.Fatalf("create error = %v", err)
	}
	if created.DueDate != "2026-10-15" {
		t.Errorf("DueDate round trip = %q, want 2026-10-15", created.DueDate)
	}

	want := time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)
	if !store.fees[0].DueDate.Equal(want) {
		t.Errorf("stored DueDate = %v, want %v", store.fees[0].DueDate, want)
	}
}
