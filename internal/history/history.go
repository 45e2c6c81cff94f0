// Package history records API invocations in a local SQLite database so
// past lookups can be reviewed with the history subcommand. Only request
// metadata is stored; response payloads and credentials are not persisted,
// and recorded URLs arrive pre-masked from the caller.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/netresearch/pagerangers-skill/internal/types"
)

type Manager struct {
	db *sql.DB
}

// NewManager opens (and if needed creates) the history database at dbPath.
func NewManager(dbPath string) (*Manager, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	m := &Manager{db: db}
	if err := m.initSchema(); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Manager) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS invocations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		command TEXT NOT NULL,
		endpoint TEXT NOT NULL,
		method TEXT NOT NULL,
		url TEXT NOT NULL,
		status INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		error TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_invocations_timestamp ON invocations(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_invocations_command ON invocations(command);
	`

	if _, err := m.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return nil
}

// Save records one invocation.
func (m *Manager) Save(entry types.HistoryEntry) error {
	timestamp := entry.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	_, err := m.db.Exec(`
		INSERT INTO invocations (timestamp, command, endpoint, method, url, status, duration_ms, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		timestamp, entry.Command, entry.Endpoint, entry.Method, entry.URL,
		entry.Status, entry.Duration, entry.Error,
	)
	if err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}
	return nil
}

// List returns the most recent invocations, newest first.
func (m *Manager) List(limit int) ([]types.HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := m.db.Query(`
		SELECT id, timestamp, command, endpoint, method, url, status, duration_ms, COALESCE(error, '')
		FROM invocations
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []types.HistoryEntry
	for rows.Next() {
		var entry types.HistoryEntry
		err := rows.Scan(&entry.ID, &entry.Timestamp, &entry.Command, &entry.Endpoint,
			&entry.Method, &entry.URL, &entry.Status, &entry.Duration, &entry.Error)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Close closes the underlying database.
func (m *Manager) Close() error {
	return m.db.Close()
}
