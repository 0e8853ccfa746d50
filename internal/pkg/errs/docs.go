// Package errs provides the typed validation errors shared by the cargo domain
// and the application layer.
//
// Error types:
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value breaks a rule
//   - ValueIsOutOfRangeError: a value falls outside an allowed range
//   - ObjectNotFoundError: a lookup by ID found nothing
//
// Each type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired) returned by Unwrap
//   - A struct carrying ParamName and an optional Cause
//   - Constructor functions with and without cause
//
// Callers classify failures with errors.Is against the sentinels, or errors.As
// against the struct types, including when the errors are combined with errors.Join.
package errs
