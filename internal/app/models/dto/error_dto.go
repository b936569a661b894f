package dto

// ErrorResponse is the standard error body: a human-readable message plus an
// optional field hint for duplicate-unique-field conflicts.
type ErrorResponse struct {
	Error string `json:"error" example:"Student ID already exists"`
	Field string `json:"field,omitempty" example:"studentId"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}

// WithField adds a field hint to the error response
func (e *ErrorResponse) WithField(field string) *ErrorResponse {
	e.Field = field
	return e
}
