// Package errs provides standardized error types for the trade-finance
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package covers the failure classes of the escrow workflow:
//   - ObjectNotFoundError: a record required to exist is absent
//   - ObjectAlreadyExistsError: a record required to be absent is present
//   - ValueIsInvalidError / ValueIsRequiredError: malformed or missing input
//   - StateIsInvalidError: a lifecycle transition attempted from a state
//     that forbids it
//   - UnauthorizedError: a caller role mismatch
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrStateIsInvalid)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Operations abort on the first error and leave storage untouched, so an
// error from this package always describes a fully rejected request.
package errs
