package errors

// ErrorResponse is the JSON error envelope written by the error handler
// middleware for every failed request
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail carries the caller-facing parts of an error: the display
// message (from the hint chain) and any reportable details. The internal
// error text is only populated outside production deployments.
type ErrorDetail struct {
	Display       string         `json:"message"`
	InternalError string         `json:"internal_error,omitempty"`
	Details       map[string]any `json:"details,omitempty"`
}
