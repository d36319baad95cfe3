// Package apierror holds the error envelope returned by every 4xx/5xx response.
// Handlers never put raw Go errors in it, so Redis or runtime details stay in
// the logs.
package apierror

// APIError is the canonical error envelope.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Internal is the fixed body used for 500 responses.
func Internal() *APIError {
	return New("Error interno del servidor")
}
