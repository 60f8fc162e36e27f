package dto

import "github.com/preskool/school/internal/app/models"

// CreateSubjectRequest is the payload for adding a subject
type CreateSubjectRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Code         string `json:"code" binding:"required,max=20"`
	DepartmentID int64  `json:"departmentId" binding:"required,gt=0"`
}

// UpdateSubjectRequest is the payload for editing a subject
type UpdateSubjectRequest = CreateSubjectRequest

// SubjectListResponse is the subject list screen payload; the affordance
// flags mirror what the caller's role allows.
type SubjectListResponse struct {
	Subjects        []*models.Subject `json:"subjects"`
	DepartmentCount int               `json:"departmentCount"`
	UserRole        string            `json:"userRole"`
	CanAdd          bool              `json:"canAdd"`
	CanEdit         bool              `json:"canEdit"`
	CanDelete       bool              `json:"canDelete"`
}
