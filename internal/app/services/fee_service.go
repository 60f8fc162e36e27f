package services

import (
	"context"
	"fmt"
	"time"

	"github.com/preskool/school/internal/app/models"
	"github.com/preskool/school/internal/app/models/dto"
	"github.com/preskool/school/internal/pkg/apperrors"
	"github.com/preskool/school/internal/pkg/validation"
)

// FeeStore is the fee persistence surface the service needs.
type FeeStore interface {
	Create(ctx context.Context, fee *models.Fee) error
	GetByID(ctx context.Context, id int64) (*models.Fee, error)
	GetAll(ctx context.Context) ([]*models.Fee, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Fee, error)
	Update(ctx context.Context, fee *models.Fee) error
	Delete(ctx context.Context, id int64) error
}

// StudentGetter resolves a user record by ID.
type StudentGetter interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// FeeService manages student fees
type FeeService struct {
	feeStore FeeStore
	users    StudentGetter
}

// NewFeeService creates a new fee service
func NewFeeService(feeStore FeeStore, users StudentGetter) *FeeService {
	return &FeeService{
		feeStore: feeStore,
		users:    users,
	}
}

// List returns the fees visible to the caller: admins see everything,
// students only their own rows.
func (s *FeeService) List(ctx context.Context, callerID int64, role models.RoleType) ([]dto.FeeResponse, error) {
	var fees []*models.Fee
	var err error

	if role == models.RoleAdmin {
		fees, err = s.feeStore.GetAll(ctx)
	} else {
		fees, err = s.feeStore.GetByStudentID(ctx, callerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list fees: %w", err)
	}

	responses := make([]dto.FeeResponse, 0, len(fees))
	for _, f := range fees {
		responses = append(responses, toFeeResponse(f))
	}
	return responses, nil
}

// Get returns one fee. A student may only see their own row.
func (s *FeeService) Get(ctx context.Context, id, callerID int64, role models.RoleType) (*dto.FeeResponse, error) {
	fee, err := s.feeStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get fee: %w", err)
	}
	if fee == nil {
		return nil, apperrors.ErrFeeNotFound
	}

	if role != models.RoleAdmin && fee.StudentID != callerID {
		return nil, apperrors.NewForbiddenError("fee belongs to another student")
	}

	resp := toFeeResponse(fee)
	return &resp, nil
}

// Create validates and persists a new fee
func (s *FeeService) Create(ctx context.Context, req dto.CreateFeeRequest) (*dto.FeeResponse, error) {
	fee, err := s.buildFee(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.feeStore.Create(ctx, fee); err != nil {
		return nil, fmt.Errorf("failed to create fee: %w", err)
	}

	resp := toFeeResponse(fee)
	return &resp, nil
}

// Update validates and applies edits to an existing fee
func (s *FeeService) Update(ctx context.Context, id int64, req dto.UpdateFeeRequest) (*dto.FeeResponse, error) {
	existing, err := s.feeStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get fee: %w", err)
	}
	if existing == nil {
		return nil, apperrors.ErrFeeNotFound
	}

	fee, err := s.buildFee(ctx, req)
	if err != nil {
		return nil, err
	}

	fee.ID = id
	if err := s.feeStore.Update(ctx, fee); err != nil {
		return nil, fmt.Errorf("failed to update fee: %w", err)
	}

	resp := toFeeResponse(fee)
	return &resp, nil
}

// Delete removes a fee
func (s *FeeService) Delete(ctx context.Context, id int64) error {
	if err := s.feeStore.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

// buildFee validates the request. The amount stays a string end to end; the
// pattern check here and the NUMERIC cast in the store keep it well-formed
// without floating point anywhere.
func (s *FeeService) buildFee(ctx context.Context, req dto.CreateFeeRequest) (*models.Fee, error) {
	fieldErrs := validation.FieldErrors{}

	if !validation.ValidAmount(req.Amount) {
		fieldErrs.Add("amount", apperrors.ErrInvalidFeeAmount.Error())
	}

	var dueDate time.Time
	var err error
	if dueDate, err = validation.ParseDate(req.DueDate); err != nil {
		fieldErrs.Add("dueDate", "due date must be in YYYY-MM-DD format")
	}

	if fieldErrs.HasErrors() {
		return nil, apperrors.NewValidationError(fieldErrs)
	}

	student, err := s.users.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check student: %w", err)
	}
	if student == nil || student.Role != models.RoleStudent {
		return nil, apperrors.ErrStudentForFee
	}

	return &models.Fee{
		StudentID: req.StudentID,
		Amount:    req.Amount,
		DueDate:   dueDate,
		Paid:      req.Paid,
		Student:   student,
	}, nil
}

func toFeeResponse(f *models.Fee) dto.FeeResponse {
	resp := dto.FeeResponse{
		ID:        f.ID,
		StudentID: f.StudentID,
		Amount:    f.Amount,
		DueDate:   validation.FormatDate(f.DueDate),
		Paid:      f.Paid,
	}
	if f.Student != nil {
		resp.StudentName = f.Student.FullName()
	}
	return resp
}
