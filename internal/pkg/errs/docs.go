// Package errs provides standardized error types for the fieldops service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ObjectNotFoundError: a referenced object is absent
//   - ValueIsInvalidError: a value violates a domain rule
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ValueIsRequiredError: a required value is missing
//   - IntervalIsInvalidError: a time interval ends at or before its start
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Business errors that belong to a single domain concept (illegal status
// transitions, unavailable slots) live next to that concept as package-local
// sentinels rather than here.
package errs
