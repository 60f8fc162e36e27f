package services

import (
	"context"
	"fmt"
	"time"

	"github.com/preskool/school/internal/app/models"
	"github.com/preskool/school/internal/app/models/dto"
	"github.com/preskool/school/internal/pkg/apperrors"
	"github.com/preskool/school/internal/pkg/dberrors"
	"github.com/preskool/school/internal/pkg/validation"
)

// TeacherStore is the teacher persistence surface the service needs.
type TeacherStore interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetAll(ctx context.Context) ([]*models.Teacher, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id int64) error
}

// TeacherService manages teaching staff records
type TeacherService struct {
	teacherStore TeacherStore
}

// NewTeacherService creates a new teacher service
func NewTeacherService(teacherStore TeacherStore) *TeacherService {
	return &TeacherService{
		teacherStore: teacherStore,
	}
}

// List returns all teacher records ordered by name
func (s *TeacherService) List(ctx context.Context) ([]dto.TeacherResponse, error) {
	teachers, err := s.teacherStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}

	responses := make([]dto.TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		responses = append(responses, toTeacherResponse(t))
	}
	return responses, nil
}

// Get returns one teacher record
func (s *TeacherService) Get(ctx context.Context, id int64) (*dto.TeacherResponse, error) {
	teacher, err := s.teacherStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get teacher: %w", err)
	}
	if teacher == nil {
		return nil, apperrors.ErrTeacherNotFound
	}

	resp := toTeacherResponse(teacher)
	return &resp, nil
}

// Create validates and persists a new teacher record. Validation never
// partially applies; all field failures are reported together.
func (s *TeacherService) Create(ctx context.Context, req dto.CreateTeacherRequest) (*dto.TeacherResponse, error) {
	teacher, fieldErrs, err := s.buildTeacher(ctx, req, 0)
	if err != nil {
		return nil, err
	}
	if fieldErrs.HasErrors() {
		return nil, apperrors.NewValidationError(fieldErrs)
	}

	if err := s.teacherStore.Create(ctx, teacher); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrTeacherEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create teacher: %w", err)
	}

	resp := toTeacherResponse(teacher)
	return &resp, nil
}

// Update validates and applies edits to an existing teacher record
func (s *TeacherService) Update(ctx context.Context, id int64, req dto.UpdateTeacherRequest) (*dto.TeacherResponse, error) {
	existing, err := s.teacherStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get teacher: %w", err)
	}
	if existing == nil {
		return nil, apperrors.ErrTeacherNotFound
	}

	teacher, fieldErrs, err := s.buildTeacher(ctx, req, id)
	if err != nil {
		return nil, err
	}
	if fieldErrs.HasErrors() {
		return nil, apperrors.NewValidationError(fieldErrs)
	}

	teacher.ID = id
	if err := s.teacherStore.Update(ctx, teacher); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrTeacherEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to update teacher: %w", err)
	}

	resp := toTeacherResponse(teacher)
	return &resp, nil
}

// Delete removes a teacher record
func (s *TeacherService) Delete(ctx context.Context, id int64) error {
	if err := s.teacherStore.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

// buildTeacher validates the request and assembles the model. The uniqueness
// pre-check runs here; the database unique constraint remains the backstop
// for concurrent writers.
func (s *TeacherService) buildTeacher(ctx context.Context, req dto.CreateTeacherRequest, excludeID int64) (*models.Teacher, validation.FieldErrors, error) {
	fieldErrs := validation.FieldErrors{}

	if !validation.NewStringValidation(req.FirstName).WithMaxLength(100).Validate() {
		fieldErrs.Add("firstName", "first name is required and at most 100 characters")
	}
	if !validation.NewStringValidation(req.LastName).WithMaxLength(100).Validate() {
		fieldErrs.Add("lastName", "last name is required and at most 100 characters")
	}
	if !validation.NewStringValidation(req.Address).WithMaxLength(500).Validate() {
		fieldErrs.Add("address", "address is required and at most 500 characters")
	}
	if !validation.ValidEmail(req.Email) {
		fieldErrs.Add("email", "email address is not valid")
	}
	if !validation.ValidMobile(req.Mobile) {
		fieldErrs.Add("mobile", "mobile number is not valid")
	}

	gender := models.Gender(req.Gender)
	if !gender.Valid() {
		fieldErrs.Add("gender", "gender must be one of Male, Female, Others")
	}

	var dateOfBirth, joiningDate time.Time
	var err error
	if dateOfBirth, err = validation.ParseDate(req.DateOfBirth); err != nil {
		fieldErrs.Add("dateOfBirth", "date of birth must be in YYYY-MM-DD format")
	}
	if joiningDate, err = validation.ParseDate(req.JoiningDate); err != nil {
		fieldErrs.Add("joiningDate", "joining date must be in YYYY-MM-DD format")
	}

	if !fieldErrs.HasErrors() {
		exists, err := s.teacherStore.EmailExists(ctx, req.Email, excludeID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to check teacher email: %w", err)
		}
		if exists {
			return nil, nil, apperrors.ErrTeacherEmailAlreadyExists
		}
	}

	return &models.Teacher{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Mobile:      req.Mobile,
		Gender:      gender,
		DateOfBirth: dateOfBirth,
		Address:     req.Address,
		JoiningDate: joiningDate,
		ImageURL:    req.ImageURL,
	}, fieldErrs, nil
}

func toTeacherResponse(t *models.Teacher) dto.TeacherResponse {
	return dto.TeacherResponse{
		ID:          t.ID,
		FirstName:   t.FirstName,
		LastName:    t.LastName,
		FullName:    t.FullName(),
		Email:       t.Email,
		Mobile:      t.Mobile,
		Gender:      string(t.Gender),
		DateOfBirth: validation.FormatDate(t.DateOfBirth),
		Address:     t.Address,
		JoiningDate: validation.FormatDate(t.JoiningDate),
		ImageURL:    t.ImageURL,
	}
}
