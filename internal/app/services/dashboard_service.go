package services

import (
	"context"
	"fmt"

	"github.com/preskool/school/internal/app/models"
	"github.com/preskool/school/internal/app/models/dto"
	"github.com/preskool/school/internal/pkg/apperrors"
)

// DashboardUserStore is the user surface the dashboard needs.
type DashboardUserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetAllByRole(ctx context.Context, role models.RoleType) ([]*models.User, error)
	CountByRole(ctx context.Context) (map[models.RoleType]int, error)
}

// DashboardTeacherStore lists teaching staff records.
type DashboardTeacherStore interface {
	GetAll(ctx context.Context) ([]*models.Teacher, error)
}

// DashboardService assembles the role-specific landing payloads
type DashboardService struct {
	users    DashboardUserStore
	teachers DashboardTeacherStore
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(users DashboardUserStore, teachers DashboardTeacherStore) *DashboardService {
	return &DashboardService{
		users:    users,
		teachers: teachers,
	}
}

// Dashboard builds the landing payload for the caller's role: admins get the
// population counts plus the student roster, teachers get the staff roster,
// students get the welcome payload alone.
func (s *DashboardService) Dashboard(ctx context.Context, userID int64, role models.RoleType) (*dto.DashboardResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	resp := &dto.DashboardResponse{
		WelcomeUser: user.FullName(),
	}

	switch role {
	case models.RoleAdmin:
		counts, err := s.users.CountByRole(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count users: %w", err)
		}
		resp.TotalStudents = counts[models.RoleStudent]
		resp.TotalTeachers = counts[models.RoleTeacher]
		resp.TotalAdmins = counts[models.RoleAdmin]
		resp.TotalUsers = resp.TotalStudents + resp.TotalTeachers + resp.TotalAdmins

		students, err := s.users.GetAllByRole(ctx, models.RoleStudent)
		if err != nil {
			return nil, fmt.Errorf("failed to list students: %w", err)
		}
		resp.Students = students

	case models.RoleTeacher:
		teachers, err := s.teachers.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list teachers: %w", err)
		}
		resp.Teachers = teachers
		resp.TotalTeachers = len(teachers)

	case models.RoleStudent:
		// The student landing page is the welcome payload alone

	default:
		return nil, apperrors.ErrPermissionDenied
	}

	return resp, nil
}
