package dto

// CreateFeeRequest is the payload for adding a fee
type CreateFeeRequest struct {
	StudentID int64  `json:"studentId" binding:"required,gt=0"`
	Amount    string `json:"amount" binding:"required"`
	DueDate   string `json:"dueDate" binding:"required"`
	Paid      bool   `json:"paid"`
}

// UpdateFeeRequest is the payload for editing a fee
type UpdateFeeRequest = CreateFeeRequest

// FeeResponse describes a fee on the wire
type FeeResponse struct {
	ID          int64  `json:"id"`
	StudentID   int64  `json:"studentId"`
	StudentName string `json:"studentName,omitempty"`
	Amount      string `json:"amount"`
	DueDate     string `json:"dueDate"`
	Paid        bool   `json:"paid"`
}
