package normalize

import (
	"fmt"
	"reflect"
	"testing"
)

func TestURLList_DictEntries(t *testing.T) {
	serp := []any{
		map[string]any{"url": "https://a.com"},
		map[string]any{"url": "https://b.com"},
	}

	result := URLList(serp, 0)
	want := []string{"https://a.com", "https://b.com"}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("expected %v, got %v", want, result)
	}
}

func TestURLList_MixedKeysAndStrings(t *testing.T) {
	serp := []any{
		map[string]any{"url": "https://a.com"},
		map[string]any{"link": "https://b.com"},
		"https://c.com",
	}

	result := URLList(serp, 0)
	want := []string{"https://a.com", "https://b.com", "https://c.com"}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("expected %v, got %v", want, result)
	}
}

func TestURLList_KeyPriority(t *testing.T) {
	// url wins over link/href/domain when several are present.
	serp := []any{
		map[string]any{"domain": "a.com", "url": "https://a.com/page"},
		map[string]any{"href": "https://b.com/x", "domain": "b.com"},
	}

	result := URLList(serp, 0)
	want := []string{"https://a.com/page", "https://b.com/x"}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("expected %v, got %v", want, result)
	}
}

func TestURLList_Limit(t *testing.T) {
	serp := []any{}
	for i := 0; i < 10; i++ {
		serp = append(serp, map[string]any{"url": fmt.Sprintf("https://%d.com", i)})
	}

	result := URLList(serp, 3)
	if len(result) != 3 {
		t.Fatalf("expected 3 urls, got %d", len(result))
	}
	if result[0] != "https://0.com" || result[2] != "https://2.com" {
		t.Errorf("expected original order preserved, got %v", result)
	}
}

func TestURLList_SkipsUnusableEntries(t *testing.T) {
	serp := []any{float64(1), map[string]any{"title": "no url"}, "https://a.com"}

	result := URLList(serp, 0)
	want := []string{"https://a.com"}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("expected %v, got %v", want, result)
	}
}

func TestURLList_NonListReturnsEmpty(t *testing.T) {
	if got := URLList(nil, 0); len(got) != 0 {
		t.Errorf("expected empty list for nil, got %v", got)
	}
	if got := URLList("string", 0); len(got) != 0 {
		t.Errorf("expected empty list for string, got %v", got)
	}
}

func TestCompetition_Buckets(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{nil, "unknown"},
		{float64(0), "low"},
		{0.33, "low"},
		{0.34, "medium"},
		{0.66, "medium"},
		{0.67, "high"},
		{float64(1), "high"},
		{"competitive", "competitive"},
		{map[string]any{"level": "high"}, "map[level:high]"},
	}

	for _, tt := range tests {
		if got := Competition(tt.value); got != tt.want {
			t.Errorf("Competition(%v): expected %q, got %q", tt.value, tt.want, got)
		}
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{nil, "unknown"},
		{float64(1200), "1200"},
		{"high", "high"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		if got := Display(tt.value); got != tt.want {
			t.Errorf("Display(%v): expected %q, got %q", tt.value, tt.want, got)
		}
	}
}

func TestStringList(t *testing.T) {
	value := []any{"a", float64(1), "b", nil, "c"}

	result := StringList(value, 2)
	want := []string{"a", "b"}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("expected %v, got %v", want, result)
	}

	if got := StringList(nil, 0); len(got) != 0 {
		t.Errorf("expected empty list for nil, got %v", got)
	}
}

func TestEntryFallbacks(t *testing.T) {
	entry := map[string]any{"name": "seo tools", "rank": float64(3), "volume": float64(880)}

	if got := EntryKeyword(entry); got != "seo tools" {
		t.Errorf("expected 'seo tools', got %q", got)
	}
	if got := EntryPosition(entry); got != "3" {
		t.Errorf("expected '3', got %q", got)
	}
	if got := EntryVolume(entry); got != "880" {
		t.Errorf("expected '880', got %q", got)
	}
	if got := EntryURL(entry); got != "" {
		t.Errorf("expected empty url, got %q", got)
	}

	primary := map[string]any{
		"keyword":  "primary",
		"name":     "secondary",
		"position": float64(1),
		"url":      "https://a.com",
	}
	if got := EntryKeyword(primary); got != "primary" {
		t.Errorf("expected primary key to win, got %q", got)
	}
	if got := EntryURL(primary); got != "https://a.com" {
		t.Errorf("expected 'https://a.com', got %q", got)
	}

	empty := map[string]any{}
	if got := EntryKeyword(empty); got != "unknown" {
		t.Errorf("expected 'unknown', got %q", got)
	}
	if got := EntryPosition(empty); got != "?" {
		t.Errorf("expected '?', got %q", got)
	}
}
