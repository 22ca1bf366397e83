// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse is the wire shape of every error.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse is the wire shape of confirmation-only successes.
type MessageResponse struct {
	Message string `json:"message"`
}
