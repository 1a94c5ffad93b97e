package db

import (
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// ToggleBookmark adds the company id if absent and removes it if present.
// Returns the new bookmark state (true = bookmarked). The insert-or-delete
// pair runs in one transaction so concurrent toggles of the same id cannot
// trip the UNIQUE constraint.
func (db *DB) ToggleBookmark(companyID string) (bool, error) {
	tx, err := db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := sq.Insert("bookmarks").
		Columns("company_id").
		Values(companyID).
		Suffix("ON CONFLICT(company_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build insert: %w", err)
	}
	res, err := tx.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to add bookmark: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read insert result: %w", err)
	}

	// Zero rows inserted means the bookmark already existed: toggle off.
	if inserted == 0 {
		query, args, err := sq.Delete("bookmarks").
			Where(sq.Eq{"company_id": companyID}).
			ToSql()
		if err != nil {
			return false, fmt.Errorf("failed to build delete: %w", err)
		}
		if _, err := tx.Exec(query, args...); err != nil {
			return false, fmt.Errorf("failed to remove bookmark: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit toggle: %w", err)
	}
	return inserted > 0, nil
}

// IsBookmarked is a pure membership check.
func (db *DB) IsBookmarked(companyID string) (bool, error) {
	query, args, err := sq.Select("1").
		From("bookmarks").
		Where(sq.Eq{"company_id": companyID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	var one int
	err = db.QueryRow(query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check bookmark: %w", err)
	}
	return true, nil
}

// ListBookmarks returns all bookmarked company ids in the order they were
// first bookmarked.
func (db *DB) ListBookmarks() ([]string, error) {
	query, args, err := sq.Select("company_id").
		From("bookmarks").
		OrderBy("bookmark_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookmarks: %w", err)
	}
	return ids, nil
}

// BookmarkCount returns the number of bookmarked companies.
func (db *DB) BookmarkCount() (int, error) {
	query, args, err := sq.Select("COUNT(*)").From("bookmarks").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var count int
	if err := db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bookmarks: %w", err)
	}
	return count, nil
}
