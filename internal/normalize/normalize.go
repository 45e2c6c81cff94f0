// Package normalize coerces raw API field values into canonical output
// shapes. Upstream endpoints are inconsistent about field names and numeric
// types, so every helper here accepts any JSON value and degrades to a safe
// default instead of failing.
package normalize

import (
	"github.com/netresearch/pagerangers-skill/internal/jsonpath"
)

// Competition score thresholds.
const (
	competitionLowThreshold    = 0.33
	competitionMediumThreshold = 0.66
)

// URLList extracts an ordered list of URLs from a raw SERP result value.
// Elements that are maps yield the first present of url, link, href, domain;
// plain strings are taken directly; anything else is skipped. A non-list
// input yields an empty list. A positive limit truncates the result,
// preserving order.
func URLList(value any, limit int) []string {
	list, ok := value.([]any)
	if !ok {
		return []string{}
	}

	urls := []string{}
	for _, item := range list {
		switch v := item.(type) {
		case map[string]any:
			for _, key := range []string{"url", "link", "href", "domain"} {
				if url, ok := v[key].(string); ok && url != "" {
					urls = append(urls, url)
					break
				}
			}
		case string:
			urls = append(urls, v)
		}
	}

	if limit > 0 && len(urls) > limit {
		return urls[:limit]
	}
	return urls
}

// Competition buckets a numeric competition score into a tier label.
// Thresholds are inclusive on the lower bound: v <= 0.33 is "low",
// 0.33 < v <= 0.66 is "medium", v > 0.66 is "high". Nil maps to "unknown"
// and any non-numeric value passes through as its string representation.
func Competition(value any) string {
	if value == nil {
		return "unknown"
	}

	score, ok := asFloat(value)
	if !ok {
		return jsonpath.Stringify(value)
	}

	switch {
	case score <= competitionLowThreshold:
		return "low"
	case score <= competitionMediumThreshold:
		return "medium"
	default:
		return "high"
	}
}

// Display renders a value for presentation, mapping absent/nil/empty to
// "unknown".
func Display(value any) string {
	if value == nil {
		return "unknown"
	}
	if s := jsonpath.Stringify(value); s != "" {
		return s
	}
	return "unknown"
}

// StringList extracts the string elements of a raw list value, skipping
// anything that is not a string. A positive limit truncates the result.
func StringList(value any, limit int) []string {
	list, ok := value.([]any)
	if !ok {
		return []string{}
	}

	out := []string{}
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}

	if limit > 0 && len(out) > limit {
		return out[:limit]
	}
	return out
}

// The upstream API uses different field names for the same concept across
// endpoints. These helpers pick the first present alternative from a raw
// list entry.

// EntryKeyword returns the keyword name of a ranking/prospect entry.
func EntryKeyword(entry map[string]any) string {
	return firstField(entry, "unknown", "keyword", "name")
}

// EntryPosition returns the ranking position of an entry.
func EntryPosition(entry map[string]any) string {
	return firstField(entry, "?", "position", "rank")
}

// EntryURL returns the ranking URL of an entry, empty when absent.
func EntryURL(entry map[string]any) string {
	return firstField(entry, "", "url", "rankingUrl")
}

// EntryVolume returns the search volume of an entry.
func EntryVolume(entry map[string]any) string {
	return firstField(entry, "?", "searchVolume", "volume")
}

func firstField(entry map[string]any, fallback string, keys ...string) string {
	for _, key := range keys {
		if value, ok := entry[key]; ok && value != nil {
			if s := jsonpath.Stringify(value); s != "" {
				return s
			}
		}
	}
	return fallback
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
