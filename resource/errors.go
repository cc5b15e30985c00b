package resource

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrNotFound reports both genuine absence and authorization denial on
// scoped records. The two are deliberately indistinguishable to the caller:
// the existence of another tenant's record is never disclosed.
var ErrNotFound = errors.New("resource not found")

// ValidationError carries the ordered list of violation messages for a
// rejected record. It maps to a 400 at the HTTP boundary.
type ValidationError struct {
	Violations []string
}

// NewValidationError builds a ValidationError from literal messages.
func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// ConflictError reports a mutation rejected because of related state, such as
// deleting a tenant that still owns users.
type ConflictError struct {
	Message string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return e.Message
}

// asValidationError converts a validator result into a *ValidationError with
// a deterministic message order. Errors that are not violation sets propagate
// unchanged; the caller surfaces them as compute failures.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}

	var ozzo validation.Errors
	if errors.As(err, &ozzo) {
		fields := make([]string, 0, len(ozzo))
		for field := range ozzo {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		violations := make([]string, 0, len(fields))
		for _, field := range fields {
			violations = append(violations, field+": "+ozzo[field].Error())
		}
		return &ValidationError{Violations: violations}
	}

	return err
}
