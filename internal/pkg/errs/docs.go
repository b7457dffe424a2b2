// Package errs provides standardized error types for the marketplace application.
// Every error a caller can act on belongs to one of four kinds:
//   - authentication required: the action needs an identity and none was presented
//   - forbidden: the identity lacks the role or ownership the action demands
//   - not found: the target entity does not exist
//   - validation: the payload or the requested state transition is unacceptable
//     (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError)
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g., ErrValueIsRequired) returned by Unwrap
//   - a struct type carrying the details (ParamName is the field key reported to clients)
//   - constructor functions with and without cause
//
// Anything that does not unwrap to one of the sentinels is an unexpected failure.
package errs
