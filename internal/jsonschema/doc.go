// Package jsonschema derives JSON Schema documents from Go types using
// reflection, so that a tool's typed input struct doubles as the parameter
// schema advertised to a language model.
//
// It supports structs, primitives, slices, maps and pointers. Field-level
// details come from `json` tags (name, omitempty) and `jsonschema` tags
// (description, enum, default, minimum, maximum, required).
//
// The main entry point is [GenerateJSONSchema].
package jsonschema
