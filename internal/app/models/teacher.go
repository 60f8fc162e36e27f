package models

import "time"

// Gender choices for the teacher record
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOthers Gender = "Others"
)

// Valid reports whether the gender is one of the allowed choices.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOthers:
		return true
	}
	return false
}

// Teacher represents a teaching staff record. Not to be confused with a User
// holding the TEACHER role; this is the administrative personnel record.
type Teacher struct {
	ID          int64     `json:"id" db:"id"`
	FirstName   string    `json:"firstName" db:"first_name"`
	LastName    string    `json:"lastName" db:"last_name"`
	Email       string    `json:"email" db:"email"`
	Mobile      string    `json:"mobile" db:"mobile"`
	Gender      Gender    `json:"gender" db:"gender"`
	DateOfBirth time.Time `json:"dateOfBirth" db:"date_of_birth"`
	Address     string    `json:"address" db:"address"`
	JoiningDate time.Time `json:"joiningDate" db:"joining_date"`
	ImageURL    *string   `json:"imageUrl,omitempty" db:"image_url"`
}

// FullName returns the teacher's display name
func (t *Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}
