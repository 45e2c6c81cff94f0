// Package jsonpath extracts values from arbitrarily nested JSON-like
// structures using dot/bracket path expressions, e.g. "data.items[2].name".
//
// Paths are deliberately simpler than JMESPath: the response-field maps in
// the API configuration only ever need key access and integer indexing, and
// a malformed path must degrade to "absent" rather than produce an error.
package jsonpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolve walks data segment by segment and returns the value found at path.
// The second return value reports whether the path resolved; it is false for
// missing keys, out-of-range indices, type mismatches and malformed bracket
// content. A present-but-null value resolves to (nil, true), which keeps
// "key missing" distinguishable from "key present with null value".
//
// Resolution laws:
//   - an empty path returns data unchanged
//   - empty segments (consecutive dots) are skipped
//   - "name[2]" resolves name against a map, then indexes the result
//   - "[2]" indexes the current value directly if it is a slice
//
// Resolve never panics, regardless of path or data shape.
func Resolve(data any, path string) (any, bool) {
	if path == "" {
		return data, true
	}

	current := data
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			continue
		}

		name, index, hasIndex, ok := splitSegment(segment)
		if !ok {
			return nil, false
		}

		if name != "" {
			obj, isMap := current.(map[string]any)
			if !isMap {
				return nil, false
			}
			value, exists := obj[name]
			if !exists {
				return nil, false
			}
			current = value
		}

		if hasIndex {
			list, isList := current.([]any)
			if !isList || index < 0 || index >= len(list) {
				return nil, false
			}
			current = list[index]
		}
	}

	return current, true
}

// splitSegment splits a path segment into its name and optional bracket
// index. Non-integer bracket content fails the segment (ok=false).
func splitSegment(segment string) (name string, index int, hasIndex bool, ok bool) {
	open := strings.Index(segment, "[")
	if open == -1 || !strings.HasSuffix(segment, "]") {
		return segment, 0, false, true
	}

	name = segment[:open]
	raw := segment[open+1 : len(segment)-1]

	index, err := strconv.Atoi(raw)
	if err != nil {
		return "", 0, false, false
	}
	return name, index, true, true
}

// ResolveString resolves path and coerces the result to a string, returning
// fallback when the path is absent, null or resolves to an empty string.
func ResolveString(data any, path string, fallback string) string {
	value, ok := Resolve(data, path)
	if !ok || value == nil {
		return fallback
	}
	s := Stringify(value)
	if s == "" {
		return fallback
	}
	return s
}

// Stringify renders a JSON value for display. Numbers that are whole render
// without a decimal point (encoding/json decodes all numbers as float64,
// which would otherwise print counts as "42.000000"). Composite values fall
// back to their Go representation.
func Stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
