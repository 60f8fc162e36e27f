package dto

import "github.com/preskool/school/internal/app/models"

// DashboardResponse is the role-specific landing payload. Admins get counts
// plus the student roster, teachers the staff roster, students neither.
type DashboardResponse struct {
	WelcomeUser   string            `json:"welcomeUser"`
	Students      []*models.User    `json:"students,omitempty"`
	Teachers      []*models.Teacher `json:"teachers,omitempty"`
	TotalStudents int               `json:"totalStudents,omitempty"`
	TotalTeachers int               `json:"totalTeachers,omitempty"`
	TotalAdmins   int               `json:"totalAdmins,omitempty"`
	TotalUsers    int               `json:"totalUsers,omitempty"`
}
