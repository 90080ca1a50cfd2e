package parse

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ParseArguments parses a tool-call argument string into T.
// An empty or whitespace-only string is treated as "{}" so tools whose
// parameters are all optional can be called without arguments.
//
// If plain unmarshaling fails the content is repaired with jsonrepair and
// retried; if that still fails, schema-style envelopes are unwrapped and a
// final attempt is made.
//
// Example:
//
//	type Input struct {
//	    WeightKg float64 `json:"weight_kg"`
//	}
//
//	in, err := ParseArguments[Input](`{weight_kg: 70,}`)
func ParseArguments[T any](content string) (T, error) {
	var result T

	content = stripCodeFence(strings.TrimSpace(content))
	if content == "" {
		content = "{}"
	}

	err := json.Unmarshal([]byte(content), &result)
	if err == nil {
		return result, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(content)
	if repairErr != nil {
		return result, fmt.Errorf("failed to unmarshal arguments as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
	}

	// Start from a fresh value so a partial first decode cannot leak through.
	var retried T
	err = json.Unmarshal([]byte(repaired), &retried)
	if err == nil {
		return retried, nil
	}

	unwrapped, unwrapErr := unwrapSchemaValues(repaired)
	if unwrapErr == nil {
		var unwrappedResult T
		if err2 := json.Unmarshal([]byte(unwrapped), &unwrappedResult); err2 == nil {
			return unwrappedResult, nil
		}
	}

	return result, fmt.Errorf("failed to unmarshal repaired arguments as %T: %w (original: %s, repaired: %s)", result, err, content, repaired)
}

// stripCodeFence removes a surrounding ```json ... ``` markdown fence.
func stripCodeFence(content string) string {
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```")
	if nl := strings.IndexByte(content, '\n'); nl != -1 {
		// Drop the info string, e.g. "json".
		content = content[nl+1:]
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

// unwrapSchemaValues replaces every {"type": ..., "value": v} object with v.
//
// Example input:
//
//	{"weight_kg": {"type": "number", "value": 70}}
//
// Example output:
//
//	{"weight_kg": 70}
func unwrapSchemaValues(jsonStr string) (string, error) {
	var data any
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return "", err
	}

	out, err := json.Marshal(recursiveUnwrap(data))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func recursiveUnwrap(data any) any {
	switch v := data.(type) {
	case map[string]any:
		if _, hasType := v["type"]; hasType {
			if value, hasValue := v["value"]; hasValue && len(v) == 2 {
				return recursiveUnwrap(value)
			}
		}
		result := make(map[string]any, len(v))
		for key, val := range v {
			result[key] = recursiveUnwrap(val)
		}
		return result

	case []any:
		result := make([]any, len(v))
		for i, val := range v {
			result[i] = recursiveUnwrap(val)
		}
		return result

	default:
		return data
	}
}
