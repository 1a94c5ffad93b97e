package db

import (
	"database/sql"
	"errors"
	"fmt"
)

const viewModeKey = "view_mode"

// Valid view modes. Anything else stored falls back to table.
const (
	ViewModeTable = "table"
	ViewModeGrid  = "grid"
)

// ViewMode returns the persisted view mode, defaulting to table.
func (db *DB) ViewMode() (string, error) {
	var value string
	err := db.QueryRow("SELECT value FROM app_state WHERE key = ?", viewModeKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return ViewModeTable, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read view mode: %w", err)
	}

	if value != ViewModeTable && value != ViewModeGrid {
		return ViewModeTable, nil
	}
	return value, nil
}

// SetViewMode persists the view mode. Invalid values are rejected.
func (db *DB) SetViewMode(mode string) error {
	if mode != ViewModeTable && mode != ViewModeGrid {
		return fmt.Errorf("invalid view mode: %s (want %s or %s)", mode, ViewModeTable, ViewModeGrid)
	}

	_, err := db.Exec(`
		INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, viewModeKey, mode)
	if err != nil {
		return fmt.Errorf("failed to save view mode: %w", err)
	}
	return nil
}
