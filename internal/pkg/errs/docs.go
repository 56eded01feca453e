// Package errs provides the shared error taxonomy for the booking platform.
//
// Each error type follows the same pattern: a sentinel variable (e.g.
// ErrValueIsRequired), a struct carrying the error details, constructors with
// and without a cause, and Error/Unwrap methods so errors.Is matches the
// sentinel. The covered scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value or state transition is invalid
//   - ValueIsOutOfRangeError: a numeric value falls outside its bounds
//   - ObjectNotFoundError: an aggregate cannot be found by its identifier
//   - VersionIsInvalidError: a guarded update saw a stale aggregate
//
// The HTTP adapter translates these sentinels into response status codes, so
// domain and application code never deals with HTTP concerns directly.
package errs
