// Package common defines shared constants and sentinel errors used across
// MindCare components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Account errors.
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// Input validation errors. Wrap with context, e.g.
	// fmt.Errorf("%w: password must be at least 6 characters", ErrValidation).
	ErrValidation = errors.New("validation error")

	// Generic/internal flow control.
	ErrInternal = errors.New("internal error")
)
