// Package errs provides standardized error types for the marketplace backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ObjectNotFoundError: a lookup by identifier found nothing
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value fell outside its allowed bounds
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() producing a single-line message
//   - Unwrap() returning the sentinel for classification
//
// Higher layers rely on the sentinels to map domain failures to transport
// concerns, for example ErrObjectNotFound to HTTP 404.
package errs
