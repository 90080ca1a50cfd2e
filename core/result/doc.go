// Package result defines the value every calculator tool hands back across the
// tool boundary: a [Result] that is either a success carrying a rendered report
// or an error carrying a human-readable message.
//
// Results are constructed only through [Success], [Invalid] and [ComputeFailed],
// which keeps exactly one variant populated. Go callers branch on
// [Result.IsSuccess] (or [Result.Status]) before reading the payload, and can
// recover a typed [*Error] with [Result.Err] for use with [errors.As].
package result
