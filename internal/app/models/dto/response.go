package dto

import "time"

// APIResponse is the standard response envelope
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewAPIResponse wraps data in the standard envelope
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// SuccessResponse represents a standard success response with a notice
type SuccessResponse struct {
	Message string `json:"message"`
}

// StatusResponse is the minimal acknowledgment payload used by the
// notification mutation endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}

// StatusSuccess is the acknowledgment body for successful bulk mutations
var StatusSuccess = StatusResponse{Status: "success"}

// RedirectResponse carries the softer denial variant: a user-visible warning
// plus the safe page the client should continue on.
type RedirectResponse struct {
	Warning  string `json:"warning,omitempty"`
	Location string `json:"location"`
}
