package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/vijay-prabhu/disha/internal/session"
)

var _ session.LogSink = (*DB)(nil)

// AppendInteraction stores one telemetry event
func (db *DB) AppendInteraction(ctx context.Context, in session.Interaction) error {
	var metadata sql.NullString
	if len(in.Metadata) > 0 {
		b, err := json.Marshal(in.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode metadata: %w", err)
		}
		metadata = sql.NullString{String: string(b), Valid: true}
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO interaction_logs (id, session_id, action, target_id, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, in.ID, in.SessionID, in.Action, NullString(in.TargetID), metadata, in.Timestamp)
	return err
}

// TrimInteractions keeps only the newest keep events
func (db *DB) TrimInteractions(ctx context.Context, keep int) error {
	_, err := db.ExecContext(ctx, `
		DELETE FROM interaction_logs WHERE seq NOT IN (
			SELECT seq FROM interaction_logs ORDER BY seq DESC LIMIT ?
		)
	`, keep)
	return err
}

// ListInteractions returns stored events oldest first, at most limit when positive
func (db *DB) ListInteractions(ctx context.Context, limit int) ([]session.Interaction, error) {
	query := `
		SELECT id, session_id, action, target_id, metadata, created_at
		FROM (SELECT * FROM interaction_logs ORDER BY seq DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	query += `) ORDER BY seq ASC`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []session.Interaction
	for rows.Next() {
		var in session.Interaction
		var target, metadata sql.NullString
		if err := rows.Scan(&in.ID, &in.SessionID, &in.Action, &target, &metadata, &in.Timestamp); err != nil {
			return nil, err
		}
		in.TargetID = target.String
		if metadata.Valid {
			if err := json.Unmarshal([]byte(metadata.String), &in.Metadata); err != nil {
				return nil, fmt.Errorf("interaction %s: bad metadata: %w", in.ID, err)
			}
		}
		logs = append(logs, in)
	}
	return logs, rows.Err()
}

// ClearInteractions deletes every stored event
func (db *DB) ClearInteractions(ctx context.Context) error {
	_, err := db.ExecContext(ctx, `DELETE FROM interaction_logs`)
	return err
}

// GetSummary counts stored rows
func (db *DB) GetSummary(ctx context.Context) (*Summary, error) {
	s := &Summary{}
	var stats int
	err := db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(DISTINCT score_key) FROM score_entries),
			(SELECT COUNT(*) FROM score_entries),
			(SELECT COUNT(*) FROM physical_stats),
			(SELECT COUNT(*) FROM scholarships),
			(SELECT COUNT(*) FROM interaction_logs)
	`).Scan(&s.ScoreKeys, &s.ScoreEntries, &stats, &s.Scholarships, &s.Interactions)
	if err != nil {
		return nil, err
	}
	s.HasStats = stats > 0
	return s, nil
}
