package errs

import (
	"errors"
	"fmt"
)

// ErrIntegrityConflict is the sentinel error for deletions blocked by
// referential integrity: the target is still referenced by live data.
var ErrIntegrityConflict = errors.New("object is still referenced")

// IntegrityConflictError reports that an object cannot be deleted because
// other rows still reference it (e.g. an order status with orders or
// history entries attached).
type IntegrityConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewIntegrityConflictError creates an IntegrityConflictError without a
// cause.
func NewIntegrityConflictError(paramName string, id any) *IntegrityConflictError {
	return &IntegrityConflictError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewIntegrityConflictErrorWithCause creates an IntegrityConflictError
// wrapping the underlying constraint violation.
func NewIntegrityConflictErrorWithCause(paramName string, id any, cause error) *IntegrityConflictError {
	return &IntegrityConflictError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *IntegrityConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrIntegrityConflict, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %v", ErrIntegrityConflict, e.ParamName, e.ID))
}

func (e *IntegrityConflictError) Unwrap() error {
	return ErrIntegrityConflict
}
