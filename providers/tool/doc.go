// Package tool provides the types that expose calculator functions to an
// external agent as callable tools.
//
// A [Tool] wraps a typed Go function together with its name, description,
// cost metrics and an auto-derived JSON schema for its parameters. Every tool
// honours the same boundary contract: [GenericTool.Call] takes the model's
// JSON arguments and always answers with a result.Result encoded as JSON.
// Argument, validation and computation failures become error results; a Go
// error is returned only if the output cannot be encoded.
//
// The [Catalog] type offers a thread-safe, case-insensitive registry of tools.
// [Observe] and [Cache] decorate any [GenericTool] with spans and metrics or
// with result memoization.
package tool
