package types

import "time"

// Config is the API configuration document. It maps endpoint names to
// request templates and is loaded once at startup; it is never mutated
// afterwards (variable substitution always produces new structures).
type Config struct {
	BaseURL   string              `json:"base_url"`
	Endpoints map[string]Endpoint `json:"endpoints"`
}

// Endpoint is a named HTTP call template. Path, query values, headers and
// body may contain {placeholder} variables. Response maps canonical output
// field names to dot/bracket paths into the raw upstream JSON payload.
type Endpoint struct {
	Method   string            `json:"method"`
	Path     string            `json:"path"`
	Query    map[string]string `json:"query,omitempty"`
	Headers  map[string]string `json:"headers,omitempty"`
	Body     any               `json:"body,omitempty"`
	Response map[string]string `json:"response,omitempty"`
}

// Credentials holds the runtime credential set sourced from the process
// environment and the ~/.env.pagerangers file.
type Credentials struct {
	Token       string
	ProjectHash string
	BaseURL     string // optional base URL override
	Timeout     time.Duration
}

// CommandContext carries everything a command handler needs for one
// invocation. Variables is additive: handlers may inject per-command values
// (e.g. the keyword argument) before calling the API.
type CommandContext struct {
	Config      *Config
	Credentials Credentials
	Variables   map[string]string
	Debug       bool
}

// KeywordReport is the normalized result of the keyword command.
type KeywordReport struct {
	MainKeyword       string   `json:"main_keyword" yaml:"main_keyword"`
	SearchVolume      string   `json:"search_volume" yaml:"search_volume"`
	Competition       string   `json:"competition" yaml:"competition"`
	TopURLs           []string `json:"top_urls" yaml:"top_urls"`
	ImportantKeywords []string `json:"important_keywords" yaml:"important_keywords"`
}

// RankingEntry is one keyword ranking row.
type RankingEntry struct {
	Keyword  string `json:"keyword" yaml:"keyword"`
	Position string `json:"position" yaml:"position"`
	URL      string `json:"url,omitempty" yaml:"url,omitempty"`
}

// KPIReport holds the project-level KPI values. Fields are display strings
// because the upstream API is inconsistent about numeric types; absent
// values render as "N/A".
type KPIReport struct {
	RankingIndex    string `json:"ranking_index" yaml:"ranking_index"`
	Top10Count      string `json:"top_10_count" yaml:"top_10_count"`
	Top100Count     string `json:"top_100_count" yaml:"top_100_count"`
	AveragePosition string `json:"average_position" yaml:"average_position"`
}

// Prospect is one high-opportunity keyword row.
type Prospect struct {
	Keyword      string `json:"keyword" yaml:"keyword"`
	Position     string `json:"position" yaml:"position"`
	SearchVolume string `json:"search_volume" yaml:"search_volume"`
}

// HistoryEntry is one recorded API invocation.
type HistoryEntry struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Command   string    `json:"command"`
	Endpoint  string    `json:"endpoint"`
	Method    string    `json:"method"`
	URL       string    `json:"url"`
	Status    int       `json:"status"`
	Duration  int64     `json:"duration_ms"`
	Error     string    `json:"error,omitempty"`
}
