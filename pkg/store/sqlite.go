// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sapan15/Omni-IP-Scanner/internal/util"
	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
)

//go:embed schema.sql
var schemaFS embed.FS

// SQLiteStore implements Repository using a sqlite database. The whole
// state document is rewritten on every save.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) a sqlite store at dbPath
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0751); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// single writer, WAL keeps reads cheap
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema, err := schemaFS.ReadFile("schema.sql")

	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	if _, err := db.Exec(string(schema)); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to execute schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// LoadState returns the saved state, or an empty state when nothing
// has been saved yet
func (s *SQLiteStore) LoadState() (*State, error) {
	var payload string

	err := s.db.QueryRow(`SELECT payload FROM state WHERE id=1`).Scan(&payload)

	if errors.Is(err, sql.ErrNoRows) {
		return &State{Devices: []device.Device{}}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("load state failed: %w", err)
	}

	state := &State{}

	if err := json.Unmarshal([]byte(payload), state); err != nil {
		return nil, fmt.Errorf("state payload is corrupt: %w", err)
	}

	if state.Devices == nil {
		state.Devices = []device.Device{}
	}

	// records without an ip cannot be keyed in the registry
	state.Devices = util.FilterSlice(state.Devices, func(d device.Device) bool {
		return d.IP != ""
	})

	return state, nil
}

// SaveState replaces the entire saved state with the given one
func (s *SQLiteStore) SaveState(state *State) error {
	state.SavedAt = time.Now()

	payload, err := json.Marshal(state)

	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO state(id, payload, saved_at) VALUES(1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		  payload=excluded.payload,
		  saved_at=excluded.saved_at
	`, string(payload), state.SavedAt)

	if err != nil {
		return fmt.Errorf("save state failed: %w", err)
	}

	return nil
}

// SaveReport appends an audit report
func (s *SQLiteStore) SaveReport(kind, body string) error {
	_, err := s.db.Exec(
		`INSERT INTO reports(kind, body, created_at) VALUES(?, ?, ?)`,
		kind,
		body,
		time.Now(),
	)

	if err != nil {
		return fmt.Errorf("save report failed: %w", err)
	}

	return nil
}

// Reports returns the most recent reports, newest first
func (s *SQLiteStore) Reports(limit int) ([]Report, error) {
	rows, err := s.db.Query(
		`SELECT id, kind, body, created_at FROM reports
		 ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)

	if err != nil {
		return nil, fmt.Errorf("query reports failed: %w", err)
	}

	defer rows.Close()

	reports := []Report{}

	for rows.Next() {
		var r Report

		if err := rows.Scan(&r.ID, &r.Kind, &r.Body, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report failed: %w", err)
		}

		reports = append(reports, r)
	}

	return reports, rows.Err()
}

// Reset removes all saved state and reports
func (s *SQLiteStore) Reset() error {
	if _, err := s.db.Exec(`DELETE FROM state`); err != nil {
		return fmt.Errorf("reset state failed: %w", err)
	}

	if _, err := s.db.Exec(`DELETE FROM reports`); err != nil {
		return fmt.Errorf("reset reports failed: %w", err)
	}

	return nil
}

// Close releases database resources
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
