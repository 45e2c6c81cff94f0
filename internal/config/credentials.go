package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/netresearch/pagerangers-skill/internal/types"
)

// Environment variable names for the credential set.
const (
	EnvAPIToken    = "PAGERANGERS_API_TOKEN"
	EnvProjectHash = "PAGERANGERS_PROJECT_HASH"
	EnvBaseURL     = "PAGERANGERS_BASE_URL"
	EnvTimeout     = "PAGERANGERS_TIMEOUT"

	// EnvFileName is the credential file in the user's home directory.
	EnvFileName = ".env.pagerangers"
)

// ErrMissingCredentials is returned when the required credential values are
// neither in the process environment nor in the credential file.
var ErrMissingCredentials = errors.New("missing credentials")

// EnvFilePath returns the default credential file path (~/.env.pagerangers).
func EnvFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return EnvFileName
	}
	return filepath.Join(homeDir, EnvFileName)
}

// LoadCredentials builds the credential set from the process environment,
// falling back to values from the credential file. Process environment
// values take precedence over file values; nothing is written back to the
// environment.
func LoadCredentials(envFilePath string) (types.Credentials, error) {
	fileVars, err := LoadEnvFile(envFilePath)
	if err != nil {
		return types.Credentials{}, err
	}

	lookup := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fileVars[key]
	}

	creds := types.Credentials{
		Token:       lookup(EnvAPIToken),
		ProjectHash: lookup(EnvProjectHash),
		BaseURL:     lookup(EnvBaseURL),
	}

	if raw := lookup(EnvTimeout); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return types.Credentials{}, fmt.Errorf("invalid %s value: %q", EnvTimeout, raw)
		}
		creds.Timeout = time.Duration(seconds) * time.Second
	}

	if creds.Token == "" || creds.ProjectHash == "" {
		return creds, ErrMissingCredentials
	}

	return creds, nil
}
