// Package domain defines error types for the storefront client.
package domain

import (
	"errors"
	"fmt"
)

// AuthRequiredError is returned when the backend answers 401 or reports an
// unauthenticated session.
type AuthRequiredError struct{}

// Error implements the error interface for AuthRequiredError
func (e *AuthRequiredError) Error() string {
	return "authentication required: please log in"
}

// Is allows proper error type checking with errors.Is()
func (e *AuthRequiredError) Is(target error) bool {
	_, ok := target.(*AuthRequiredError)
	return ok
}

// AccessDeniedError is returned when the backend answers 403.
type AccessDeniedError struct{}

// Error implements the error interface for AccessDeniedError
func (e *AccessDeniedError) Error() string {
	return "access denied"
}

// Is allows proper error type checking with errors.Is()
func (e *AccessDeniedError) Is(target error) bool {
	_, ok := target.(*AccessDeniedError)
	return ok
}

// ServerError is returned for any other non-2xx backend response.
type ServerError struct {
	Status  int
	Message string
}

// Error implements the error interface for ServerError
func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error: status=%d, message=%s", e.Status, e.Message)
	}
	return fmt.Sprintf("server error: status=%d", e.Status)
}

// Is allows proper error type checking with errors.Is()
func (e *ServerError) Is(target error) bool {
	_, ok := target.(*ServerError)
	return ok
}

// NetworkError is returned when no response was received at all.
type NetworkError struct {
	URL string
	Err error
}

// Error implements the error interface for NetworkError
func (e *NetworkError) Error() string {
	return fmt.Sprintf("could not reach server: url=%s: %v", e.URL, e.Err)
}

// Unwrap exposes the underlying transport error.
func (e *NetworkError) Unwrap() error { return e.Err }

// Is allows proper error type checking with errors.Is()
func (e *NetworkError) Is(target error) bool {
	_, ok := target.(*NetworkError)
	return ok
}

// UnexpectedError is returned when a response could not be decoded or some
// other client-side logic failure occurred.
type UnexpectedError struct {
	Op  string
	Err error
}

// Error implements the error interface for UnexpectedError
func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected error: op=%s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *UnexpectedError) Unwrap() error { return e.Err }

// Is allows proper error type checking with errors.Is()
func (e *UnexpectedError) Is(target error) bool {
	_, ok := target.(*UnexpectedError)
	return ok
}

// LoginFailedError carries the server-provided login failure message verbatim.
type LoginFailedError struct {
	Message string
}

// Error implements the error interface for LoginFailedError
func (e *LoginFailedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("login failed: %s", e.Message)
	}
	return "login failed: invalid credentials"
}

// Is allows proper error type checking with errors.Is()
func (e *LoginFailedError) Is(target error) bool {
	_, ok := target.(*LoginFailedError)
	return ok
}

// InvalidQuantityError is returned when a cart add is attempted with a
// quantity below one.
type InvalidQuantityError struct {
	Quantity int
}

// Error implements the error interface for InvalidQuantityError
func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity: must be at least 1, got %d", e.Quantity)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidQuantityError) Is(target error) bool {
	_, ok := target.(*InvalidQuantityError)
	return ok
}

// EmptyCartError is returned when an order is submitted with no cart lines.
type EmptyCartError struct{}

// Error implements the error interface for EmptyCartError
func (e *EmptyCartError) Error() string {
	return "cart is empty: add at least one bread before ordering"
}

// Is allows proper error type checking with errors.Is()
func (e *EmptyCartError) Is(target error) bool {
	_, ok := target.(*EmptyCartError)
	return ok
}

// MissingFieldError is returned when a required customer field is empty.
type MissingFieldError struct {
	Field string
}

// Error implements the error interface for MissingFieldError
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Is allows proper error type checking with errors.Is()
func (e *MissingFieldError) Is(target error) bool {
	_, ok := target.(*MissingFieldError)
	return ok
}

// SubmitInProgressError is returned when a submission is attempted while
// another one is still in flight.
type SubmitInProgressError struct{}

// Error implements the error interface for SubmitInProgressError
func (e *SubmitInProgressError) Error() string {
	return "an order submission is already in progress"
}

// Is allows proper error type checking with errors.Is()
func (e *SubmitInProgressError) Is(target error) bool {
	_, ok := target.(*SubmitInProgressError)
	return ok
}

// Helper functions for creating errors with context

// NewAuthRequiredError creates a new AuthRequiredError
func NewAuthRequiredError() error { return &AuthRequiredError{} }

// NewAccessDeniedError creates a new AccessDeniedError
func NewAccessDeniedError() error { return &AccessDeniedError{} }

// NewServerError creates a new ServerError
func NewServerError(status int, message string) error {
	return &ServerError{Status: status, Message: message}
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(url string, err error) error {
	return &NetworkError{URL: url, Err: err}
}

// NewUnexpectedError creates a new UnexpectedError
func NewUnexpectedError(op string, err error) error {
	return &UnexpectedError{Op: op, Err: err}
}

// NewLoginFailedError creates a new LoginFailedError
func NewLoginFailedError(message string) error {
	return &LoginFailedError{Message: message}
}

// NewInvalidQuantityError creates a new InvalidQuantityError
func NewInvalidQuantityError(quantity int) error {
	return &InvalidQuantityError{Quantity: quantity}
}

// NewEmptyCartError creates a new EmptyCartError
func NewEmptyCartError() error { return &EmptyCartError{} }

// NewMissingFieldError creates a new MissingFieldError
func NewMissingFieldError(field string) error {
	return &MissingFieldError{Field: field}
}

// NewSubmitInProgressError creates a new SubmitInProgressError
func NewSubmitInProgressError() error { return &SubmitInProgressError{} }

// Type assertion helpers for use with errors.As()

// IsAuthRequiredError checks if an error is an AuthRequiredError
func IsAuthRequiredError(err error) bool {
	var e *AuthRequiredError
	return errors.As(err, &e)
}

// IsAccessDeniedError checks if an error is an AccessDeniedError
func IsAccessDeniedError(err error) bool {
	var e *AccessDeniedError
	return errors.As(err, &e)
}

// IsServerError checks if an error is a ServerError
func IsServerError(err error) bool {
	var e *ServerError
	return errors.As(err, &e)
}

// IsNetworkError checks if an error is a NetworkError
func IsNetworkError(err error) bool {
	var e *NetworkError
	return errors.As(err, &e)
}

// IsUnexpectedError checks if an error is an UnexpectedError
func IsUnexpectedError(err error) bool {
	var e *UnexpectedError
	return errors.As(err, &e)
}

// IsLoginFailedError checks if an error is a LoginFailedError
func IsLoginFailedError(err error) bool {
	var e *LoginFailedError
	return errors.As(err, &e)
}

// IsInvalidQuantityError checks if an error is an InvalidQuantityError
func IsInvalidQuantityError(err error) bool {
	var e *InvalidQuantityError
	return errors.As(err, &e)
}

// IsEmptyCartError checks if an error is an EmptyCartError
func IsEmptyCartError(err error) bool {
	var e *EmptyCartError
	return errors.As(err, &e)
}

// IsMissingFieldError checks if an error is a MissingFieldError
func IsMissingFieldError(err error) bool {
	var e *MissingFieldError
	return errors.As(err, &e)
}

// IsSubmitInProgressError checks if an error is a SubmitInProgressError
func IsSubmitInProgressError(err error) bool {
	var e *SubmitInProgressError
	return errors.As(err, &e)
}
