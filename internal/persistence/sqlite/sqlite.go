// Package sqlite provides a SQLite-backed persistence gateway.
//
// The serialized state blob lives in a single-row table; SQLite gives us
// durable, transactional writes without a file-rename dance.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/poyhsiao/notekeep/internal/models"
)

// Gateway persists state in a SQLite database.
type Gateway struct {
	db *sql.DB
}

// Open opens (or creates) the database under dataDir.
// The database is opened with:
// - WAL mode for concurrent readers
// - A single writer connection (SQLite does not support multiple writers)
func Open(dataDir string) (*Gateway, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "notekeep.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	g := &Gateway{db: db}
	if err := g.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return g, nil
}

// OpenMemory opens an in-memory database, for tests.
func OpenMemory() (*Gateway, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	db.SetMaxOpenConns(1)

	g := &Gateway{db: db}
	if err := g.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return g, nil
}

// migrate creates the state table if it does not exist.
func (g *Gateway) migrate() error {
	_, err := g.db.Exec(`
	CREATE TABLE IF NOT EXISTS app_state (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		payload TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`)
	if err != nil {
		return fmt.Errorf("failed to create app_state table: %w", err)
	}
	return nil
}

// Load reads the state blob. Returns (nil, nil) if nothing has been saved.
func (g *Gateway) Load() (*models.State, error) {
	var payload string
	err := g.db.QueryRow(`SELECT payload FROM app_state WHERE id = 1`).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	var state models.State
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return nil, fmt.Errorf("failed to decode state payload: %w", err)
	}
	return &state, nil
}

// Save upserts the state blob.
func (g *Gateway) Save(state *models.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	_, err = g.db.Exec(`
	INSERT INTO app_state (id, payload, updated_at) VALUES (1, ?, ?)
	ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, string(payload), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (g *Gateway) Close() error {
	return g.db.Close()
}
