package models

// Subject represents a subject taught within a department
type Subject struct {
	ID           int64       `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	Code         string      `json:"code" db:"code"`
	DepartmentID int64       `json:"departmentId" db:"department_id"`
	Department   *Department `json:"department,omitempty"`
}
