package models

import "time"

// Fee represents a fee owed by a student. Amount is carried as a decimal
// string with two fractional digits and stored as NUMERIC(10,2).
type Fee struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	Amount    string    `json:"amount" db:"amount"`
	DueDate   time.Time `json:"dueDate" db:"due_date"`
	Paid      bool      `json:"paid" db:"paid"`
	Student   *User     `json:"student,omitempty"`
}
