package services

import (
	"context"
	"fmt"

	"github.com/preskool/school/internal/app/models"
	"github.com/preskool/school/internal/app/models/dto"
	"github.com/preskool/school/internal/pkg/apperrors"
	"github.com/preskool/school/internal/pkg/dberrors"
	"github.com/preskool/school/internal/pkg/logger"
)

// DepartmentStore is the department persistence surface the service needs.
type DepartmentStore interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) (int, error)
}

// DepartmentSubjects lists the subjects living under a department.
type DepartmentSubjects interface {
	GetByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Subject, error)
}

// DepartmentService manages academic departments
type DepartmentService struct {
	departmentStore DepartmentStore
	subjects        DepartmentSubjects
}

// NewDepartmentService creates a new department service
func NewDepartmentService(departmentStore DepartmentStore, subjects DepartmentSubjects) *DepartmentService {
	return &DepartmentService{
		departmentStore: departmentStore,
		subjects:        subjects,
	}
}

// List returns all departments with their subject counts
func (s *DepartmentService) List(ctx context.Context) (*dto.DepartmentListResponse, error) {
	departments, err := s.departmentStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	return &dto.DepartmentListResponse{
		Departments:      departments,
		TotalDepartments: len(departments),
	}, nil
}

// Get returns one department with its subjects; the same payload backs the
// delete-confirm screen, where SubjectCount is the cascade impact.
func (s *DepartmentService) Get(ctx context.Context, id int64) (*dto.DepartmentDetailResponse, error) {
	department, err := s.departmentStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	if department == nil {
		return nil, apperrors.ErrDepartmentNotFound
	}

	subjects, err := s.subjects.GetByDepartmentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list department subjects: %w", err)
	}

	department.SubjectCount = len(subjects)
	return &dto.DepartmentDetailResponse{
		Department:   department,
		Subjects:     subjects,
		SubjectCount: len(subjects),
	}, nil
}

// Create validates and persists a new department. Names are unique.
func (s *DepartmentService) Create(ctx context.Context, req dto.CreateDepartmentRequest) (*models.Department, error) {
	exists, err := s.departmentStore.NameExists(ctx, req.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check department name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDepartmentAlreadyExists
	}

	department := &models.Department{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.departmentStore.Create(ctx, department); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrDepartmentAlreadyExists
		}
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	return department, nil
}

// Update validates and applies edits to an existing department
func (s *DepartmentService) Update(ctx context.Context, id int64, req dto.UpdateDepartmentRequest) (*models.Department, error) {
	existing, err := s.departmentStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	if existing == nil {
		return nil, apperrors.ErrDepartmentNotFound
	}

	exists, err := s.departmentStore.NameExists(ctx, req.Name, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check department name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDepartmentAlreadyExists
	}

	department := &models.Department{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.departmentStore.Update(ctx, department); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrDepartmentAlreadyExists
		}
		return nil, fmt.Errorf("failed to update department: %w", err)
	}

	return department, nil
}

// Delete removes a department. Subjects under it go with it via the cascade.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	cascaded, err := s.departmentStore.Delete(ctx, id)
	if err != nil {
		return err
	}

	if cascaded > 0 {
		logger.Info().Int64("departmentId", id).Int("cascadedSubjects", cascaded).Msg("Department deleted with subjects")
	}
	return nil
}
