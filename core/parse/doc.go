// Package parse turns the raw argument string a language model supplies for a
// tool call into a typed Go value. Models routinely emit almost-JSON: single
// quotes, unquoted keys, trailing commas, markdown code fences, or schema-style
// {"type": ..., "value": ...} envelopes instead of plain values. This package
// applies a layered recovery strategy (fence stripping, automatic JSON repair,
// envelope unwrapping) before falling back to a clear error.
//
// The main entry point is the generic [ParseArguments] function.
package parse
