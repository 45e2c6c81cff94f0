// Package template replaces {placeholder} variables in endpoint templates.
package template

import (
	"regexp"
	"strings"
)

// Variable placeholder pattern: {varName}
var varPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// Substitute recursively replaces {name} placeholders with values from vars.
// Strings are substituted in a single pass (substituted output is not
// re-scanned, so variable values can never trigger further substitution),
// maps and slices are rebuilt with each element substituted, and all other
// values are returned unchanged.
//
// The input is never mutated. The same configuration document is reused
// across invocations within a process and must not accumulate substitutions.
func Substitute(value any, vars map[string]string) any {
	switch v := value.(type) {
	case string:
		return SubstituteString(v, vars)
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = Substitute(item, vars)
		}
		return out
	case map[string]string:
		out := make(map[string]string, len(v))
		for key, item := range v {
			out[key] = SubstituteString(item, vars)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Substitute(item, vars)
		}
		return out
	case []string:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = SubstituteString(item, vars)
		}
		return out
	default:
		return value
	}
}

// SubstituteString replaces every {name} placeholder that has a matching
// variable. Placeholders without a matching variable are left verbatim.
func SubstituteString(input string, vars map[string]string) string {
	if !strings.Contains(input, "{") {
		return input
	}
	return varPattern.ReplaceAllStringFunc(input, func(match string) string {
		name := match[1 : len(match)-1]
		if value, ok := vars[name]; ok {
			return value
		}
		return match
	})
}

// SubstituteMap substitutes every value of a string map, leaving keys
// unchanged. Returns nil for a nil input.
func SubstituteMap(input map[string]string, vars map[string]string) map[string]string {
	if input == nil {
		return nil
	}
	out := make(map[string]string, len(input))
	for key, value := range input {
		out[key] = SubstituteString(value, vars)
	}
	return out
}
