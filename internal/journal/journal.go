// Package journal records the edits an operator makes during inspection
// sessions. It is an audit trail only: the inspected state itself is never
// persisted.
package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/inspector/pkg/types"
)

// FileName is the journal database inside the data directory.
const FileName = "journal.db"

// Journal errors.
var (
	ErrClosed   = errors.New("journal is closed")
	ErrDisabled = errors.New("journal is disabled by config")
)

// Edit is one successful assignment made through a session.
type Edit struct {
	EditID   string    `json:"edit_id"`   // UUID v7, generated by Record when empty.
	Path     string    `json:"path"`      // Navigation path of the edited slot, e.g. "warehouse/Items/[0]/Qty".
	Member   string    `json:"member"`    // Member name of the edited slot.
	Before   string    `json:"before"`    // Rendered value before the edit; "" if it could not be read.
	After    string    `json:"after"`     // Rendered value after the edit.
	EditedAt time.Time `json:"edited_at"` // Set by Record when zero.
}

// Journal is a SQLite-backed edit log. It is safe for concurrent use.
type Journal struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
}

// Open creates the data directory if needed and opens (or creates) the
// journal database in it. Returns ErrDisabled when cfg turns the journal off.
func Open(cfg types.Config) (*Journal, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.JournalEnabled() {
		return nil, ErrDisabled
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	path := filepath.Join(dataDir, FileName)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init journal schema: %w", err)
	}
	return &Journal{db: db, path: path}, nil
}

// Path returns the database file location.
func (j *Journal) Path() string {
	return j.path
}

// Record stores e and returns its ID.
func (j *Journal) Record(e Edit) (string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.db == nil {
		return "", ErrClosed
	}
	if e.EditID == "" {
		e.EditID = generateUUID()
	}
	if e.EditedAt.IsZero() {
		e.EditedAt = time.Now()
	}

	_, err := j.db.Exec(insertEdit, e.EditID, e.Path, e.Member, e.Before, e.After,
		e.EditedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("record edit: %w", err)
	}
	return e.EditID, nil
}

// List returns up to limit edits, newest first. A limit <= 0 returns all.
func (j *Journal) List(limit int) ([]Edit, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := j.db.Query(selectEdits, limit)
	if err != nil {
		return nil, fmt.Errorf("list edits: %w", err)
	}
	defer rows.Close()

	edits := []Edit{}
	for rows.Next() {
		var e Edit
		var editedAt string
		if err := rows.Scan(&e.EditID, &e.Path, &e.Member, &e.Before, &e.After, &editedAt); err != nil {
			return nil, fmt.Errorf("scan edit: %w", err)
		}
		e.EditedAt, err = time.Parse(time.RFC3339Nano, editedAt)
		if err != nil {
			return nil, fmt.Errorf("parse edited_at: %w", err)
		}
		edits = append(edits, e)
	}
	return edits, rows.Err()
}

// Close releases the database. Idempotent.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	return err
}

// generateUUID generates a new UUID v7 for edit IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
