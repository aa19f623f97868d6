// Package errs provides standardized error types for the fulfillment core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers two groups of errors:
//
// Validation errors, raised for malformed input and programmer mistakes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a value is outside its permitted range
//   - VersionIsInvalidError: an aggregate version is invalid
//
// Business-rule errors, returned (never panicked) by the mutation operations
// and recovered at the call boundary:
//   - ObjectNotFoundError: an order/item/customer/printshop id is unknown
//   - ForbiddenError: the acting role may not set the requested status
//   - TerminalStateError: the item already reached a terminal status
//   - ConflictError: the aggregate changed since it was read (optimistic lock)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound) usable with errors.Is
//   - A struct type carrying enough detail to explain why the operation failed
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for error-chain support
package errs
