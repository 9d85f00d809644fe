// Package apperrors defines the domain error taxonomy. Every failure a
// handler or service can produce maps to exactly one entry here; the error
// translator middleware turns them into HTTP responses, so no handler builds
// its own ad-hoc error body.
package apperrors

import "errors"

var (
	// ErrBadCredentials covers login failures without revealing whether the
	// username exists.
	ErrBadCredentials = errors.New("invalid username or password")

	// ErrTokenExpired and ErrTokenInvalid both surface as 401 but are kept
	// distinct so logs can tell a stale token from a tampered one.
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")

	// ErrUserNotFound is raised when a validated token carries a stale or
	// deleted subject id.
	ErrUserNotFound = errors.New("user not found")

	ErrCaseNotFound = errors.New("case not found")

	// ErrForbidden covers both role and ownership denial. Ownership checks
	// fold "does not exist" and "exists but not yours" into the same denial.
	ErrForbidden = errors.New("access denied")
)

// FieldErrors maps a field name to a message code resolved against the
// request locale by the translator.
type FieldErrors map[string]string

// ValidationError carries per-field failures so a client can highlight every
// offending field in one round trip.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string { return "field validation failed" }

// Validation builds a ValidationError from a field→code map.
func Validation(fields FieldErrors) *ValidationError {
	return &ValidationError{Fields: fields}
}

// DuplicateError reports a uniqueness conflict on a single field.
type DuplicateError struct {
	Field string
	Code  string
}

func (e *DuplicateError) Error() string { return "duplicate " + e.Field }

// DuplicateTitle is the per-owner title collision on case create/update.
func DuplicateTitle() *DuplicateError {
	return &DuplicateError{Field: "title", Code: "error.duplicate.title"}
}
