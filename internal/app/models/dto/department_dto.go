package dto

import "github.com/preskool/school/internal/app/models"

// CreateDepartmentRequest is the payload for adding a department
type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty"`
}

// UpdateDepartmentRequest is the payload for editing a department
type UpdateDepartmentRequest = CreateDepartmentRequest

// DepartmentListResponse is the department list screen payload
type DepartmentListResponse struct {
	Departments      []*models.Department `json:"departments"`
	TotalDepartments int                  `json:"totalDepartments"`
}

// DepartmentDetailResponse is the department detail / delete-confirm payload;
// SubjectCount is the cascade impact shown before a delete.
type DepartmentDetailResponse struct {
	Department   *models.Department `json:"department"`
	Subjects     []*models.Subject  `json:"subjects"`
	SubjectCount int                `json:"subjectCount"`
}
