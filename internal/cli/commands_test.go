package cli

import (
	"testing"
)

func TestRankingEntries(t *testing.T) {
	raw := []any{
		map[string]any{"keyword": "seo audit", "position": float64(3), "url": "https://a.com"},
		map[string]any{"name": "fallback name", "rank": float64(12), "rankingUrl": "https://b.com"},
		"not a map",
	}

	entries := rankingEntries(raw, 10)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].Keyword != "seo audit" || entries[0].Position != "3" || entries[0].URL != "https://a.com" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Keyword != "fallback name" || entries[1].Position != "12" || entries[1].URL != "https://b.com" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}

func TestRankingEntries_Limit(t *testing.T) {
	list := []any{}
	for i := 0; i < 5; i++ {
		list = append(list, map[string]any{"keyword": "kw"})
	}

	entries := rankingEntries(list, 2)
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}
}

func TestRankingEntries_NonList(t *testing.T) {
	if entries := rankingEntries(nil, 10); len(entries) != 0 {
		t.Errorf("expected empty list, got %v", entries)
	}
	if entries := rankingEntries("string", 10); len(entries) != 0 {
		t.Errorf("expected empty list, got %v", entries)
	}
}

func TestProspectEntries(t *testing.T) {
	raw := []any{
		map[string]any{"keyword": "seo tools", "position": float64(15), "searchVolume": float64(880)},
		map[string]any{"name": "alt", "rank": float64(40), "volume": float64(90)},
	}

	prospects := prospectEntries(raw, 10)
	if len(prospects) != 2 {
		t.Fatalf("expected 2 prospects, got %d", len(prospects))
	}

	if prospects[0].Keyword != "seo tools" || prospects[0].Position != "15" || prospects[0].SearchVolume != "880" {
		t.Errorf("unexpected first prospect: %+v", prospects[0])
	}
	if prospects[1].Keyword != "alt" || prospects[1].Position != "40" || prospects[1].SearchVolume != "90" {
		t.Errorf("unexpected second prospect: %+v", prospects[1])
	}
}

func TestResolveKPI(t *testing.T) {
	payload := map[string]any{
		"kpis": map[string]any{"rankingIndex": 42.5, "top10": float64(7)},
	}

	tests := []struct {
		path string
		want string
	}{
		{"kpis.rankingIndex", "42.5"},
		{"kpis.top10", "7"},
		{"kpis.missing", "N/A"},
		{"", "N/A"},
	}

	for _, tt := range tests {
		if got := resolveKPI(payload, tt.path); got != tt.want {
			t.Errorf("resolveKPI(%q): expected %q, got %q", tt.path, tt.want, got)
		}
	}
}
