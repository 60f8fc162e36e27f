package models

// Department represents an academic department. Deleting a department
// cascades to its subjects; a subject never outlives its department.
type Department struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Description  string `json:"description" db:"description"`
	SubjectCount int    `json:"subjectCount" db:"-"`
}
