// Package errs provides standardized detail errors for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that the domain uses to describe which value broke a rule.
//
// The package includes two error types:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is present but breaks a rule
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with the parameter name and an optional cause
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// Placement failures carry these errors as their cause, so callers can match
// both the business kind and the detail with errors.Is.
package errs
