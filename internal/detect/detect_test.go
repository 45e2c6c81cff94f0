package detect

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestContainsKeywords(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"how is PageRangers doing", true},
		{"what is my ranking index", true},
		{"show me seo rankings", true},
		{"kpis for my seo project", true},
		{"seo prospects please", true},
		{"what is the weather", false},
		{"show rankings", false}, // command word without seo context
		{"", false},
	}

	for _, tt := range tests {
		if got := ContainsKeywords(tt.text); got != tt.want {
			t.Errorf("ContainsKeywords(%q): expected %v, got %v", tt.text, tt.want, got)
		}
	}
}

func TestParsePrompt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"json prompt", `{"prompt":"check seo rankings"}`, "check seo rankings"},
		{"json message", `{"message":"pagerangers kpis"}`, "pagerangers kpis"},
		{"json content", `{"content":"ranking index"}`, "ranking index"},
		{"prompt wins over message", `{"prompt":"a","message":"b"}`, "a"},
		{"plain text", "just some text", "just some text"},
		{"empty", "", ""},
		{"json without known keys", `{"other":"x"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParsePrompt(tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func writeCredFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env.pagerangers")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write credentials file: %v", err)
	}
	return path
}

func TestCheckCredentials_Valid(t *testing.T) {
	path := writeCredFile(t, "PAGERANGERS_API_TOKEN=abc\nPAGERANGERS_PROJECT_HASH=xyz\n")

	result := CheckCredentials(path)
	if !result.Valid {
		t.Errorf("expected valid credentials, got %q", result.Message)
	}
}

func TestCheckCredentials_MissingFile(t *testing.T) {
	result := CheckCredentials(filepath.Join(t.TempDir(), "nope"))
	if result.Valid {
		t.Error("expected invalid result for missing file")
	}
	if !strings.Contains(result.Message, "not found") {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestCheckCredentials_MissingVariable(t *testing.T) {
	path := writeCredFile(t, "PAGERANGERS_API_TOKEN=abc\n")

	result := CheckCredentials(path)
	if result.Valid {
		t.Error("expected invalid result")
	}
	if !strings.Contains(result.Message, "PAGERANGERS_PROJECT_HASH") {
		t.Errorf("expected missing variable named, got %q", result.Message)
	}
}

func TestCheckCredentials_EmptyValue(t *testing.T) {
	path := writeCredFile(t, "PAGERANGERS_API_TOKEN=\nPAGERANGERS_PROJECT_HASH=xyz\n")

	result := CheckCredentials(path)
	if result.Valid {
		t.Error("expected invalid result")
	}
	if !strings.Contains(result.Message, "Empty value for PAGERANGERS_API_TOKEN") {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestSetupInstructions(t *testing.T) {
	out := SetupInstructions("Credentials file not found: ~/.env.pagerangers")
	if !strings.Contains(out, "user-prompt-submit-hook") {
		t.Error("expected hook wrapper tags")
	}
	if !strings.Contains(out, "PAGERANGERS_API_TOKEN=your_api_key") {
		t.Error("expected setup instructions")
	}
	if !strings.Contains(out, "Get credentials from PageRangers → Profile → API Settings") {
		t.Error("expected the credentials pointer line")
	}
}
