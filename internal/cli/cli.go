// Package cli maps subcommands to configured endpoints, projects raw API
// payloads into normalized result records and renders them as text, JSON or
// YAML.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/netresearch/pagerangers-skill/internal/api"
	"github.com/netresearch/pagerangers-skill/internal/config"
	"github.com/netresearch/pagerangers-skill/internal/detect"
	"github.com/netresearch/pagerangers-skill/internal/history"
	"github.com/netresearch/pagerangers-skill/internal/types"
)

// Default limits, matching the upstream skill definition.
const (
	DefaultTopURLs     = 5
	DefaultLimit       = 20
	MaxRelatedKeywords = 10
)

// Options carries the global flags shared by every command.
type Options struct {
	ConfigPath string
	Output     string // text, json or yaml
	Query      string // optional JMESPath projection of the raw payload
	Debug      bool
	NoHistory  bool
}

// Setup loads the configuration document and credentials and builds the
// per-invocation command context. Missing credentials produce a setup
// message on stderr and an error.
func Setup(opts Options) (*types.CommandContext, error) {
	if err := config.Initialize(); err != nil {
		return nil, err
	}

	if opts.Debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	creds, err := config.LoadCredentials(config.EnvFilePath())
	if err != nil {
		if errors.Is(err, config.ErrMissingCredentials) {
			fmt.Fprintln(os.Stderr, "Error: Missing credentials.")
			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, "Set environment variables or create ~/.env.pagerangers with:")
			fmt.Fprintf(os.Stderr, "  %s=your_api_key\n", config.EnvAPIToken)
			fmt.Fprintf(os.Stderr, "  %s=your_project_hash\n", config.EnvProjectHash)
		}
		return nil, err
	}

	return &types.CommandContext{
		Config:      cfg,
		Credentials: creds,
		Variables: map[string]string{
			"api_token":    creds.Token,
			"project_hash": creds.ProjectHash,
		},
		Debug: opts.Debug,
	}, nil
}

// record appends the invocation to the history database. History failures
// never fail the command; they degrade to a stderr warning.
func record(opts Options, command, endpoint string, client *api.Client, callErr error) {
	if opts.NoHistory || config.DatabasePath == "" {
		return
	}

	info := client.LastCall()
	if info.Method == "" {
		// No request was issued (e.g. unknown endpoint).
		return
	}

	mgr, err := history.NewManager(config.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open history: %v\n", err)
		return
	}
	defer mgr.Close()

	entry := types.HistoryEntry{
		Command:  command,
		Endpoint: endpoint,
		Method:   info.Method,
		URL:      info.URL,
		Status:   info.Status,
		Duration: info.Duration.Milliseconds(),
	}
	if callErr != nil {
		entry.Error = callErr.Error()
	}

	if err := mgr.Save(entry); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save history: %v\n", err)
	}
}

// DetectOptions configures the Detect hook command.
type DetectOptions struct {
	CredentialsPath string
}

// Detect implements the prompt-submit hook: it reads the prompt from input,
// and when it looks like a PageRangers query with unusable credentials,
// prints setup instructions. Silent otherwise.
func Detect(input string, opts DetectOptions) {
	prompt := detect.ParsePrompt(input)
	if !detect.ContainsKeywords(prompt) {
		return
	}

	path := opts.CredentialsPath
	if path == "" {
		path = config.EnvFilePath()
	}

	if result := detect.CheckCredentials(path); !result.Valid {
		fmt.Println(detect.SetupInstructions(result.Message))
	}
}
