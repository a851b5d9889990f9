// Package errs provides standardized error types for the order workflow
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ObjectNotFoundError: for when an object cannot be found
//   - IntegrityConflictError: for when a deletion is blocked by live references
//   - DeliveryFailureError: for when a notification send to one recipient fails
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach improves error reporting, makes error handling
// more consistent, and enables classification with errors.Is at caller
// surfaces (e.g., mapping ObjectNotFound to HTTP 404 and IntegrityConflict
// to HTTP 409).
package errs

import "strings"

// sanitize flattens multi-line values so a single error never spans
// multiple log lines.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}
