package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/netresearch/pagerangers-skill/internal/types"
)

const (
	// FilePermissions is the default permission mode for regular files
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories
	DirPermissions = 0755
)

var (
	// DataDir is the global data directory (~/.pagerangers)
	DataDir string

	// DatabasePath is the SQLite database file for invocation history
	DatabasePath string
)

// Initialize sets up the data directory and global paths. It creates
// ~/.pagerangers/ if it doesn't exist.
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	DataDir = filepath.Join(homeDir, ".pagerangers")
	DatabasePath = filepath.Join(DataDir, "history.db")

	if err := os.MkdirAll(DataDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", DataDir, err)
	}

	return nil
}

// Load reads and parses the API configuration document. The document is
// JSON; comments and trailing commas are tolerated so configs can be
// annotated in place.
func Load(path string) (*types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg types.Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Endpoints == nil {
		cfg.Endpoints = map[string]types.Endpoint{}
	}

	return &cfg, nil
}

// DefaultConfigPath returns the first existing config document among the
// well-known locations: ./pagerangers-api.json, then
// ~/.pagerangers/pagerangers-api.json. When neither exists the local path
// is returned so the resulting error names the most obvious location.
func DefaultConfigPath() string {
	local := "pagerangers-api.json"
	if _, err := os.Stat(local); err == nil {
		return local
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return local
	}
	global := filepath.Join(homeDir, ".pagerangers", "pagerangers-api.json")
	if _, err := os.Stat(global); err == nil {
		return global
	}
	return local
}
