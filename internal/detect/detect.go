// Package detect implements the prompt-submit hook: it decides whether a
// user prompt is about PageRangers SEO data and, if so, verifies that the
// credential file is usable, emitting setup instructions when it is not.
package detect

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Patterns that indicate PageRangers-specific queries.
var keywordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bpagerangers\b`),
	regexp.MustCompile(`\branking\s+index\b`),
}

// SEO + skill command combinations ("seo ... rankings", "kpis ... seo", ...).
var seoCommandPattern = regexp.MustCompile(
	`\bseo\b.*\b(rankings?|kpis?|prospects?)\b|\b(rankings?|kpis?|prospects?)\b.*\bseo\b`)

// RequiredVars are the credential keys that must be present and non-empty.
var RequiredVars = []string{"PAGERANGERS_API_TOKEN", "PAGERANGERS_PROJECT_HASH"}

// ContainsKeywords reports whether text looks like a PageRangers query.
func ContainsKeywords(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)

	for _, pattern := range keywordPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return seoCommandPattern.MatchString(lower)
}

// ParsePrompt extracts the prompt text from hook input, which may be a JSON
// document ({"prompt": ...}, {"message": ...} or {"content": ...}) or plain
// text. Plain text is returned as-is.
func ParsePrompt(input string) string {
	if input == "" {
		return ""
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(input), &doc); err != nil {
		return input
	}

	for _, key := range []string{"prompt", "message", "content"} {
		if value, ok := doc[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

// CheckResult is the outcome of a credential file check.
type CheckResult struct {
	Valid   bool
	Message string
}

// CheckCredentials verifies that the credential file at path exists and
// carries non-empty values for every required variable.
func CheckCredentials(path string) CheckResult {
	content, err := os.ReadFile(path)
	if err != nil {
		return CheckResult{Message: fmt.Sprintf("Credentials file not found: %s", path)}
	}

	text := string(content)

	var missing []string
	for _, name := range RequiredVars {
		if !strings.Contains(text, name+"=") {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return CheckResult{Message: "Missing required variables: " + strings.Join(missing, ", ")}
	}

	for _, name := range RequiredVars {
		empty := regexp.MustCompile(`(?m)^` + name + `=\s*$`)
		if empty.MatchString(text) {
			return CheckResult{Message: "Empty value for " + name}
		}
	}

	return CheckResult{Valid: true, Message: "Credentials valid"}
}

// SetupInstructions renders the hook output shown when credentials are
// missing or incomplete.
func SetupInstructions(errorMessage string) string {
	return fmt.Sprintf(`<user-prompt-submit-hook>
PageRangers credentials issue: %s

Create ~/.env.pagerangers with:

    PAGERANGERS_API_TOKEN=your_api_key
    PAGERANGERS_PROJECT_HASH=your_project_hash

Get credentials from PageRangers → Profile → API Settings
</user-prompt-submit-hook>`, errorMessage)
}
