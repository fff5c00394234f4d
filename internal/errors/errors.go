// Package errors provides unified error handling across the promptdepot system.
//
// Every failure surfaced by the store, renderer, or manager carries one of four
// kinds so that callers can branch on the failure class without string matching:
//
//   - NotFound: a template, version, metadata file, or content file is absent
//   - AlreadyExists: an attempted creation collides with an existing version
//   - ValidationFailure: a record exists but does not parse into a well-formed value
//   - IOFailure: the filesystem failed for a reason other than absence
//
// Use the constructor functions (NotFoundError, AlreadyExistsError, ...) to
// create errors and the predicate functions (IsNotFound, ...) to check them.
// Predicates walk wrapped chains, so errors may be annotated with fmt.Errorf
// and %w without losing their kind.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind discriminates the failure classes surfaced by the store.
type Kind string

const (
	KindNotFound          Kind = "NOT_FOUND"
	KindAlreadyExists     Kind = "ALREADY_EXISTS"
	KindValidationFailure Kind = "VALIDATION_FAILURE"
	KindIOFailure         Kind = "IO_FAILURE"
)

// StoreError is a typed error carrying a kind, a human-readable message, and
// an optional underlying cause.
type StoreError struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *StoreError) Unwrap() error {
	return e.Cause
}

// NotFoundError reports an absent template, version, or file.
func NotFoundError(format string, args ...any) *StoreError {
	return &StoreError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// AlreadyExistsError reports a creation collision.
func AlreadyExistsError(format string, args ...any) *StoreError {
	return &StoreError{Kind: KindAlreadyExists, Message: fmt.Sprintf(format, args...)}
}

// ValidationError reports a record that exists but is malformed.
func ValidationError(message string, cause error) *StoreError {
	return &StoreError{Kind: KindValidationFailure, Message: message, Cause: cause}
}

// IOError reports a filesystem failure unrelated to absence.
func IOError(message string, cause error) *StoreError {
	return &StoreError{Kind: KindIOFailure, Message: message, Cause: cause}
}

// KindOf extracts the kind of an error, walking wrapped chains. Errors that do
// not carry a StoreError anywhere in their chain report KindIOFailure, the
// catch-all for unexpected failures.
func KindOf(err error) Kind {
	var se *StoreError
	if stderrors.As(err, &se) {
		return se.Kind
	}
	return KindIOFailure
}

// IsNotFound reports whether err carries KindNotFound.
func IsNotFound(err error) bool {
	var se *StoreError
	return stderrors.As(err, &se) && se.Kind == KindNotFound
}

// IsAlreadyExists reports whether err carries KindAlreadyExists.
func IsAlreadyExists(err error) bool {
	var se *StoreError
	return stderrors.As(err, &se) && se.Kind == KindAlreadyExists
}

// IsValidationFailure reports whether err carries KindValidationFailure.
func IsValidationFailure(err error) bool {
	var se *StoreError
	return stderrors.As(err, &se) && se.Kind == KindValidationFailure
}

// IsIOFailure reports whether err carries KindIOFailure.
func IsIOFailure(err error) bool {
	var se *StoreError
	return stderrors.As(err, &se) && se.Kind == KindIOFailure
}
