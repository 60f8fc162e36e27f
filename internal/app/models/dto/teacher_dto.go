package dto

// CreateTeacherRequest is the payload for adding a teacher record
type CreateTeacherRequest struct {
	FirstName   string  `json:"firstName" binding:"required,max=100"`
	LastName    string  `json:"lastName" binding:"required,max=100"`
	Email       string  `json:"email" binding:"required,email,max=255"`
	Mobile      string  `json:"mobile" binding:"required,max=15"`
	Gender      string  `json:"gender" binding:"required,oneof=Male Female Others"`
	DateOfBirth string  `json:"dateOfBirth" binding:"required"`
	Address     string  `json:"address" binding:"required"`
	JoiningDate string  `json:"joiningDate" binding:"required"`
	ImageURL    *string `json:"imageUrl,omitempty" binding:"omitempty,max=500"`
}

// UpdateTeacherRequest is the payload for editing a teacher record
type UpdateTeacherRequest = CreateTeacherRequest

// TeacherResponse describes a teacher record on the wire
type TeacherResponse struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	FullName    string  `json:"fullName"`
	Email       string  `json:"email"`
	Mobile      string  `json:"mobile"`
	Gender      string  `json:"gender"`
	DateOfBirth string  `json:"dateOfBirth"`
	Address     string  `json:"address"`
	JoiningDate string  `json:"joiningDate"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}
