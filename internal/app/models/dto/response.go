package dto

// MessageResponse represents a standard success message for API endpoints
type MessageResponse struct {
	Message string `json:"message"`
}
