// Package filter applies JMESPath projections to raw API payloads. It backs
// the --query flag, which bypasses the normalized result shape and lets the
// caller select fields from the upstream response directly.
package filter

import (
	"encoding/json"
	"fmt"

	"github.com/jmespath/go-jmespath"
)

// Apply evaluates a JMESPath expression against a decoded JSON payload and
// renders the projection as indented JSON.
func Apply(payload any, expression string) (string, error) {
	jp, err := jmespath.Compile(expression)
	if err != nil {
		return "", fmt.Errorf("invalid JMESPath expression %q: %w", expression, err)
	}

	result, err := jp.Search(payload)
	if err != nil {
		return "", fmt.Errorf("failed to apply query: %w", err)
	}

	rendered, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render query result: %w", err)
	}
	return string(rendered), nil
}
