// Package store persists the form snapshot. The primary store is a
// single-row SQLite key-value table; a base64-encoded copy is kept in a
// cookie-jar file as a fallback, mirroring the original localStorage +
// cookie pair. Corrupt or missing state is never an error: Load simply
// reports that nothing is saved.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/RichNSD/Payroll-Calculator/internal/domain"
)

// StateKey is the fixed identifier the snapshot is stored under.
const StateKey = "payrollCalcState"

const (
	dbFileName     = "state.db"
	cookieFileName = "cookies.txt"
)

// Store owns both persistence targets.
type Store struct {
	db         *sql.DB
	cookiePath string
}

// Open creates or opens the store rooted at dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open state database: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &Store{
		db:         db,
		cookiePath: filepath.Join(dir, cookieFileName),
	}, nil
}

// DefaultDir returns the per-user state directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "payroll-calculator"), nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes the snapshot to both targets. The writes are independent: a
// failure of one does not block the other, and the error reports every
// target that failed.
func (s *Store) Save(state *domain.PersistedState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	var dbErr, cookieErr error
	if _, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		StateKey, string(data),
	); err != nil {
		dbErr = fmt.Errorf("write primary store: %w", err)
	}
	if err := writeCookie(s.cookiePath, StateKey, data); err != nil {
		cookieErr = fmt.Errorf("write cookie fallback: %w", err)
	}
	return errors.Join(dbErr, cookieErr)
}

// Load reads the saved snapshot: primary store first, then the cookie
// fallback. A missing, expired, or unparseable document in both places
// yields (nil, nil), meaning "start from defaults".
func (s *Store) Load() (*domain.PersistedState, error) {
	if state := s.loadPrimary(); state != nil {
		return state, nil
	}
	data, ok := readCookie(s.cookiePath, StateKey)
	if !ok {
		return nil, nil
	}
	return decodeState(data), nil
}

// Clear removes the saved snapshot from both targets.
func (s *Store) Clear() error {
	var dbErr, cookieErr error
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, StateKey); err != nil {
		dbErr = fmt.Errorf("clear primary store: %w", err)
	}
	if err := os.Remove(s.cookiePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		cookieErr = fmt.Errorf("clear cookie fallback: %w", err)
	}
	return errors.Join(dbErr, cookieErr)
}

func (s *Store) loadPrimary() *domain.PersistedState {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, StateKey).Scan(&raw)
	if err != nil {
		return nil
	}
	return decodeState([]byte(raw))
}

// decodeState parses a persisted document, returning nil for anything
// unparseable.
func decodeState(data []byte) *domain.PersistedState {
	var state domain.PersistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil
	}
	if state.Inputs == nil {
		state.Inputs = make(map[string]domain.FieldValue)
	}
	if state.Custom == nil {
		state.Custom = make(map[domain.ExpenseCategory][]domain.CustomItem)
	}
	return &state
}
