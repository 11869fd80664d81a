package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vijay-prabhu/disha/internal/assessment"
	"github.com/vijay-prabhu/disha/internal/store"
)

var _ store.ScoreStore = (*DB)(nil)

// Get returns the score map stored under key; a missing key is an empty map
func (db *DB) Get(ctx context.Context, key string) (assessment.RawScoreMap, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT category, value FROM score_entries WHERE score_key = ?
	`, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := assessment.RawScoreMap{}
	for rows.Next() {
		var category string
		var value int
		if err := rows.Scan(&category, &value); err != nil {
			return nil, err
		}
		scores[category] = value
	}
	return scores, rows.Err()
}

// Put replaces the map stored under key
func (db *DB) Put(ctx context.Context, key string, scores assessment.RawScoreMap) error {
	return db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM score_entries WHERE score_key = ?`, key); err != nil {
			return err
		}
		now := time.Now()
		for _, category := range scores.Categories() {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO score_entries (score_key, category, value, updated_at)
				VALUES (?, ?, ?, ?)
			`, key, category, scores[category], now); err != nil {
				return fmt.Errorf("failed to store %s/%s: %w", key, category, err)
			}
		}
		return nil
	})
}

// AddScores adds each category of delta to the map under key
func (db *DB) AddScores(ctx context.Context, key string, delta assessment.RawScoreMap) error {
	return db.Transaction(ctx, func(tx *sql.Tx) error {
		now := time.Now()
		for _, category := range delta.Categories() {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO score_entries (score_key, category, value, updated_at)
				VALUES (?, ?, ?, ?)
				ON CONFLICT(score_key, category) DO UPDATE SET
					value = value + excluded.value,
					updated_at = excluded.updated_at
			`, key, category, delta[category], now); err != nil {
				return fmt.Errorf("failed to add %s/%s: %w", key, category, err)
			}
		}
		return nil
	})
}

// ClearScores deletes the map under key; an empty key clears every map
func (db *DB) ClearScores(ctx context.Context, key string) (int64, error) {
	var result sql.Result
	var err error
	if key == "" {
		result, err = db.ExecContext(ctx, `DELETE FROM score_entries`)
	} else {
		result, err = db.ExecContext(ctx, `DELETE FROM score_entries WHERE score_key = ?`, key)
	}
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// ListScoreEntries returns every stored category ordered by key and category
func (db *DB) ListScoreEntries(ctx context.Context) ([]ScoreEntry, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT score_key, category, value, updated_at
		FROM score_entries ORDER BY score_key, category
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		if err := rows.Scan(&e.Key, &e.Category, &e.Value, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
