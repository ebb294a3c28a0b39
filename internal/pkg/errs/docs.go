// Package errs provides the standardized error types used across the
// point-of-sale application.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct type carrying error details
//   - constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() so errors.Is matches the sentinel
//
// The sentinels make error classification uniform: validation failures in the
// cart and pricing layers, unknown identifiers, and out-of-range values all
// surface through the same small taxonomy and are recovered locally by the
// calling screen rather than propagated as crashes.
package errs
