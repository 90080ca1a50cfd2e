package jsonschema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// maxDepth bounds nesting so a self-referencing type cannot recurse forever.
const maxDepth = 16

// Schema is the subset of JSON Schema used to describe tool parameters.
type Schema struct {
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Required    []string `json:"required,omitempty"`
	// Properties of an object schema, keyed by JSON field name
	Properties map[string]*Schema `json:"properties,omitempty"`
	// Items is the element schema of an array
	Items *Schema `json:"items,omitempty"`
	// AdditionalProperties is the value schema of a map-shaped object
	AdditionalProperties *Schema  `json:"additionalProperties,omitempty"`
	Default              any      `json:"default,omitempty"`
	Enum                 []any    `json:"enum,omitempty"`
	Minimum              *float64 `json:"minimum,omitempty"`
	Maximum              *float64 `json:"maximum,omitempty"`
}

// GenerateJSONSchema generates the schema for T.
// It returns an error when a jsonschema tag cannot be applied to its field.
func GenerateJSONSchema[T any]() (*Schema, error) {
	return generate(reflect.TypeFor[T](), 0)
}

// MustGenerateJSONSchema is like GenerateJSONSchema but panics on error.
// It is intended for package-level tool definitions whose input types are fixed.
func MustGenerateJSONSchema[T any]() *Schema {
	s, err := GenerateJSONSchema[T]()
	if err != nil {
		panic(err)
	}
	return s
}

func generate(t reflect.Type, depth int) (*Schema, error) {
	if depth > maxDepth {
		return &Schema{Type: "object"}, nil
	}

	switch t.Kind() {
	case reflect.Ptr:
		return generate(t.Elem(), depth)
	case reflect.Struct:
		return generateStruct(t, depth)
	case reflect.Slice, reflect.Array:
		items, err := generate(t.Elem(), depth+1)
		if err != nil {
			return nil, err
		}
		return &Schema{Type: "array", Items: items}, nil
	case reflect.Map:
		values, err := generate(t.Elem(), depth+1)
		if err != nil {
			return nil, err
		}
		return &Schema{Type: "object", AdditionalProperties: values}, nil
	default:
		return &Schema{Type: primitiveType(t)}, nil
	}
}

func primitiveType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	default:
		return "object"
	}
}

func generateStruct(t reflect.Type, depth int) (*Schema, error) {
	schema := &Schema{Type: "object", Properties: map[string]*Schema{}}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, omitEmpty, skip := jsonFieldName(field)
		if skip {
			continue
		}

		fieldSchema, err := generate(field.Type, depth+1)
		if err != nil {
			return nil, err
		}

		requiredByTag, err := applyTag(field.Type, field.Tag.Get("jsonschema"), fieldSchema)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", t.Name(), field.Name, err)
		}

		schema.Properties[name] = fieldSchema
		if (field.Type.Kind() != reflect.Ptr && !omitEmpty) || requiredByTag {
			schema.Required = append(schema.Required, name)
		}
	}

	return schema, nil
}

// jsonFieldName returns the JSON name of field and whether it is omitempty.
// skip is true for fields tagged json:"-".
func jsonFieldName(field reflect.StructField) (name string, omitEmpty bool, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}

	name = field.Name
	if tag == "" {
		return name, false, false
	}

	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		name = parts[0]
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" || opt == "omitzero" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

// applyTag applies a jsonschema struct tag to schema.
// Supported items, comma separated:
//
//	description=xxx
//	enum=a,enum=b          (values converted to the field's kind)
//	default=xxx            (converted to the field's kind)
//	minimum=1,maximum=7
//	required
//
// Descriptions therefore cannot contain commas.
func applyTag(fieldType reflect.Type, tag string, schema *Schema) (bool, error) {
	if tag == "" {
		return false, nil
	}

	required := false
	for _, item := range strings.Split(tag, ",") {
		key, value, hasValue := strings.Cut(item, "=")
		if !hasValue {
			if key == "required" {
				required = true
			}
			continue
		}

		switch key {
		case "description":
			schema.Description = value
		case "enum":
			v, err := convertValue(fieldType, value)
			if err != nil {
				return false, fmt.Errorf("enum %q: %w", value, err)
			}
			schema.Enum = append(schema.Enum, v)
		case "default":
			v, err := convertValue(fieldType, value)
			if err != nil {
				return false, fmt.Errorf("default %q: %w", value, err)
			}
			schema.Default = v
		case "minimum", "maximum":
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return false, fmt.Errorf("%s %q: %w", key, value, err)
			}
			if key == "minimum" {
				schema.Minimum = &f
			} else {
				schema.Maximum = &f
			}
		}
	}
	return required, nil
}

func convertValue(fieldType reflect.Type, value string) (any, error) {
	for fieldType.Kind() == reflect.Ptr {
		fieldType = fieldType.Elem()
	}

	switch fieldType.Kind() {
	case reflect.String:
		return value, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.ParseInt(value, 10, 64)
	case reflect.Float32, reflect.Float64:
		return strconv.ParseFloat(value, 64)
	case reflect.Bool:
		return strconv.ParseBool(value)
	default:
		return nil, fmt.Errorf("unsupported field type %v", fieldType)
	}
}

// JsonString returns the JSON form of the schema, indented when indent is true.
func (s *Schema) JsonString(indent ...bool) (string, error) {
	var (
		data []byte
		err  error
	)
	if len(indent) > 0 && indent[0] {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = json.Marshal(s)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}
	return string(data), nil
}

// String returns the compact JSON form of the schema.
func (s *Schema) String() string {
	jsonStr, err := s.JsonString()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return jsonStr
}
