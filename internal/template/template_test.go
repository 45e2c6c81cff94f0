package template

import (
	"reflect"
	"testing"
)

func TestSubstituteString_SinglePlaceholder(t *testing.T) {
	result := SubstituteString("{api_token}", map[string]string{"api_token": "secret123"})
	if result != "secret123" {
		t.Errorf("expected 'secret123', got %q", result)
	}
}

func TestSubstituteString_MultiplePlaceholders(t *testing.T) {
	vars := map[string]string{"api_token": "abc", "project_hash": "xyz"}

	result := SubstituteString("token={api_token}&hash={project_hash}", vars)
	if result != "token=abc&hash=xyz" {
		t.Errorf("expected 'token=abc&hash=xyz', got %q", result)
	}
}

func TestSubstituteString_UnresolvedLeftVerbatim(t *testing.T) {
	result := SubstituteString("value={unknown}", map[string]string{"other": "x"})
	if result != "value={unknown}" {
		t.Errorf("expected unresolved placeholder to stay verbatim, got %q", result)
	}
}

func TestSubstituteString_NoRescanOfSubstitutedOutput(t *testing.T) {
	// A variable value containing a placeholder must not be expanded again.
	vars := map[string]string{"a": "{b}", "b": "evil"}

	result := SubstituteString("{a}", vars)
	if result != "{b}" {
		t.Errorf("expected single-pass substitution, got %q", result)
	}
}

func TestSubstitute_Map(t *testing.T) {
	input := map[string]any{"key": "{value}", "other": "static"}

	result := Substitute(input, map[string]string{"value": "dynamic"})
	want := map[string]any{"key": "dynamic", "other": "static"}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("expected %v, got %v", want, result)
	}

	// Input map must not be mutated.
	if input["key"] != "{value}" {
		t.Error("input map was mutated")
	}
}

func TestSubstitute_Slice(t *testing.T) {
	input := []any{"{a}", "{b}", "c"}

	result := Substitute(input, map[string]string{"a": "x", "b": "y"})
	want := []any{"x", "y", "c"}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("expected %v, got %v", want, result)
	}
	if input[0] != "{a}" {
		t.Error("input slice was mutated")
	}
}

func TestSubstitute_NestedStructure(t *testing.T) {
	input := map[string]any{
		"query": map[string]any{"token": "{api_token}"},
		"tags":  []any{"{project_hash}", float64(1)},
	}

	result := Substitute(input, map[string]string{"api_token": "t", "project_hash": "p"})
	want := map[string]any{
		"query": map[string]any{"token": "t"},
		"tags":  []any{"p", float64(1)},
	}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("expected %v, got %v", want, result)
	}
}

func TestSubstitute_NonStringUnchanged(t *testing.T) {
	vars := map[string]string{"x": "y"}

	if result := Substitute(123, vars); result != 123 {
		t.Errorf("expected 123, got %v", result)
	}
	if result := Substitute(nil, vars); result != nil {
		t.Errorf("expected nil, got %v", result)
	}
	if result := Substitute(true, vars); result != true {
		t.Errorf("expected true, got %v", result)
	}
}

func TestSubstituteMap(t *testing.T) {
	input := map[string]string{"q": "{keyword}"}

	result := SubstituteMap(input, map[string]string{"keyword": "seo"})
	if result["q"] != "seo" {
		t.Errorf("expected 'seo', got %q", result["q"])
	}
	if input["q"] != "{keyword}" {
		t.Error("input map was mutated")
	}

	if SubstituteMap(nil, nil) != nil {
		t.Error("expected nil for nil input")
	}
}
