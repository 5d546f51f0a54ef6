package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	// Details maps a field path ("disciplines.0", "_errors") to its messages
	Details map[string][]string `json:"details,omitempty"`
}
