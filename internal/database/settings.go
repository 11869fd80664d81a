package database

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"
)

// SettingConsent records whether the user agreed to telemetry
const SettingConsent = "consent"

// GetSetting returns a setting value and whether it exists
func (db *DB) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// SetSetting stores a setting value
func (db *DB) SetSetting(ctx context.Context, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now())
	return err
}

// Consent reports whether telemetry consent was granted. Absent means no.
func (db *DB) Consent(ctx context.Context) (bool, error) {
	value, ok, err := db.GetSetting(ctx, SettingConsent)
	if err != nil || !ok {
		return false, err
	}
	granted, err := strconv.ParseBool(value)
	if err != nil {
		return false, nil
	}
	return granted, nil
}

// SetConsent grants or revokes telemetry consent
func (db *DB) SetConsent(ctx context.Context, granted bool) error {
	return db.SetSetting(ctx, SettingConsent, strconv.FormatBool(granted))
}
