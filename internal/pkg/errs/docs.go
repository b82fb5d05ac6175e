// Package errs provides standardized error types for the packaging pipeline.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for malformed input rejected before any state is touched
//   - ValueIsOutOfRangeError: for numeric values outside their permitted bounds
//   - ObjectNotFoundError: for when a referenced object cannot be found
//   - InsufficientInventoryError: for mutations that would drive a stage counter negative
//   - ConflictError: for optimistic checks that lost a race with a concurrent mutation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application.
package errs
