package database

import (
	"database/sql"
	"encoding/json"
	"time"
)

// ScoreEntry is one stored category of a raw score map
type ScoreEntry struct {
	Key       string    `json:"key"`
	Category  string    `json:"category"`
	Value     int       `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summary counts what is stored
type Summary struct {
	ScoreKeys    int  `json:"score_keys"`
	ScoreEntries int  `json:"score_entries"`
	HasStats     bool `json:"has_physical_stats"`
	Scholarships int  `json:"scholarships"`
	Interactions int  `json:"interactions"`
}

// NullString maps an empty string to SQL NULL
func NullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// NullFloat64 maps zero to SQL NULL
func NullFloat64(f float64) sql.NullFloat64 {
	if f == 0 {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}

func encodeStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeStrings(raw string) ([]string, error) {
	values := []string{}
	if raw == "" {
		return values, nil
	}
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, err
	}
	return values, nil
}
