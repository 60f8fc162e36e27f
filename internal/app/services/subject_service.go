package services

import (
	"context"
	"fmt"

	"github.com/preskool/school/internal/app/models"
	"github.com/preskool/school/internal/app/models/dto"
	"github.com/preskool/school/internal/pkg/apperrors"
	"github.com/preskool/school/internal/pkg/dberrors"
)

// SubjectStore is the subject persistence surface the service needs.
type SubjectStore interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	GetAll(ctx context.Context) ([]*models.Subject, error)
	CodeExists(ctx context.Context, code string, excludeID int64) (bool, error)
	CountDistinctDepartments(ctx context.Context) (int, error)
	Update(ctx context.Context, subject *models.Subject) error
	Delete(ctx context.Context, id int64) error
}

// DepartmentGetter resolves a department by ID.
type DepartmentGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Department, error)
}

// SubjectService manages subjects
type SubjectService struct {
	subjectStore SubjectStore
	departments  DepartmentGetter
}

// NewSubjectService creates a new subject service
func NewSubjectService(subjectStore SubjectStore, departments DepartmentGetter) *SubjectService {
	return &SubjectService{
		subjectStore: subjectStore,
		departments:  departments,
	}
}

// List returns all subjects with the affordance flags for the caller's role.
// Every authenticated role can read the list; the flags only shape what the
// client renders, the guards on the mutation routes stay authoritative.
func (s *SubjectService) List(ctx context.Context, role models.RoleType) (*dto.SubjectListResponse, error) {
	subjects, err := s.subjectStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}

	departmentCount, err := s.subjectStore.CountDistinctDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count departments: %w", err)
	}

	// All three affordances track the same staff check; the route guard on
	// the mutation endpoints admits the same set.
	canMutate := role == models.RoleAdmin || role == models.RoleTeacher
	return &dto.SubjectListResponse{
		Subjects:        subjects,
		DepartmentCount: departmentCount,
		UserRole:        string(role),
		CanAdd:          canMutate,
		CanEdit:         canMutate,
		CanDelete:       canMutate,
	}, nil
}

// Get returns one subject with its department
func (s *SubjectService) Get(ctx context.Context, id int64) (*models.Subject, error) {
	subject, err := s.subjectStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}
	if subject == nil {
		return nil, apperrors.ErrSubjectNotFound
	}
	return subject, nil
}

// Create validates and persists a new subject. Codes are unique and the
// department must exist.
func (s *SubjectService) Create(ctx context.Context, req dto.CreateSubjectRequest) (*models.Subject, error) {
	if err := s.validateSubject(ctx, req, 0); err != nil {
		return nil, err
	}

	subject := &models.Subject{
		Name:         req.Name,
		Code:         req.Code,
		DepartmentID: req.DepartmentID,
	}

	if err := s.subjectStore.Create(ctx, subject); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrSubjectCodeAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrDepartmentForSubject
		}
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}

	return subject, nil
}

// Update validates and applies edits to an existing subject
func (s *SubjectService) Update(ctx context.Context, id int64, req dto.UpdateSubjectRequest) (*models.Subject, error) {
	existing, err := s.subjectStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}
	if existing == nil {
		return nil, apperrors.ErrSubjectNotFound
	}

	if err := s.validateSubject(ctx, req, id); err != nil {
		return nil, err
	}

	subject := &models.Subject{
		ID:           id,
		Name:         req.Name,
		Code:         req.Code,
		DepartmentID: req.DepartmentID,
	}

	if err := s.subjectStore.Update(ctx, subject); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrSubjectCodeAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrDepartmentForSubject
		}
		return nil, fmt.Errorf("failed to update subject: %w", err)
	}

	return subject, nil
}

// Delete removes a subject
func (s *SubjectService) Delete(ctx context.Context, id int64) error {
	if err := s.subjectStore.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

func (s *SubjectService) validateSubject(ctx context.Context, req dto.CreateSubjectRequest, excludeID int64) error {
	department, err := s.departments.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return fmt.Errorf("failed to check department: %w", err)
	}
	if department == nil {
		return apperrors.ErrDepartmentForSubject
	}

	exists, err := s.subjectStore.CodeExists(ctx, req.Code, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check subject code: %w", err)
	}
	if exists {
		return apperrors.ErrSubjectCodeAlreadyExists
	}

	return nil
}
