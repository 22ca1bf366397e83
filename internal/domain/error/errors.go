// Package error defines the domain error taxonomy for the Finwise API.
// The entrypoint layer maps these types to HTTP status codes; domain and
// application code never reason about wire formats or message strings.
package error

import "fmt"

// ValidationError reports a missing, malformed or out-of-range field.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports that a resource does not exist or is owned by
// another user. The two conditions are deliberately indistinguishable.
// Reference marks a dangling or cross-owner foreign key, which carries a
// longer message on the wire.
type NotFoundError struct {
	Resource  string
	Reference bool
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Reference {
		return e.Resource + " not found or does not belong to user"
	}
	return e.Resource + " not found"
}

// NewNotFoundError creates a NotFoundError for the given resource name.
func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// NewReferenceNotFoundError creates a NotFoundError for a cross-referenced
// resource named in another resource's payload.
func NewReferenceNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource, Reference: true}
}

// ConflictError reports a uniqueness violation (duplicate username or email).
type ConflictError struct {
	Field string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// NewConflictError creates a ConflictError for the given field.
func NewConflictError(field string) *ConflictError {
	return &ConflictError{Field: field}
}

// AuthError reports an authentication failure. Wrong username and wrong
// password produce the same error so callers cannot probe for accounts.
type AuthError struct {
	Message string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return e.Message
}

// NewAuthError creates an AuthError with the given message.
func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}

// InsufficientFundsError reports a withdrawal exceeding the current balance.
type InsufficientFundsError struct{}

// Error implements the error interface.
func (e *InsufficientFundsError) Error() string {
	return "Insufficient funds"
}

// NewInsufficientFundsError creates an InsufficientFundsError.
func NewInsufficientFundsError() *InsufficientFundsError {
	return &InsufficientFundsError{}
}
