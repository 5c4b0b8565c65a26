package dto

// ErrorResponse is the uniform error envelope: {"error": "..."} with an
// optional details payload on validation failures.
type ErrorResponse struct {
	Error   string      `json:"error" example:"Missing required field: title"`
	Details interface{} `json:"details,omitempty"`
}

// NewErrorResponse builds the standard error body.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// WithDetails attaches extra context to an error response.
func (e ErrorResponse) WithDetails(details interface{}) ErrorResponse {
	e.Details = details
	return e
}
