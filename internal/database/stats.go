package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vijay-prabhu/disha/internal/assessment"
)

// GetPhysicalStats returns the stored physical profile, or nil if none was saved
func (db *DB) GetPhysicalStats(ctx context.Context) (*assessment.PhysicalStats, error) {
	p := &assessment.PhysicalStats{}
	var hand sql.NullString

	err := db.QueryRowContext(ctx, `
		SELECT age, gender, height_cm, weight_kg, dominant_hand, location_type,
		       has_playground, has_coaching
		FROM physical_stats WHERE id = 1
	`).Scan(
		&p.Age, &p.Gender, &p.HeightCm, &p.WeightKg, &hand, &p.LocationType,
		&p.HasPlayground, &p.HasCoaching,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p.DominantHand = assessment.DominantHand(hand.String)
	return p, nil
}

// SavePhysicalStats stores the physical profile, replacing any earlier one
func (db *DB) SavePhysicalStats(ctx context.Context, p assessment.PhysicalStats) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO physical_stats (
			id, age, gender, height_cm, weight_kg, dominant_hand, location_type,
			has_playground, has_coaching, updated_at
		) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			age = excluded.age,
			gender = excluded.gender,
			height_cm = excluded.height_cm,
			weight_kg = excluded.weight_kg,
			dominant_hand = excluded.dominant_hand,
			location_type = excluded.location_type,
			has_playground = excluded.has_playground,
			has_coaching = excluded.has_coaching,
			updated_at = excluded.updated_at
	`,
		p.Age, p.Gender, p.HeightCm, p.WeightKg, NullString(string(p.DominantHand)), p.LocationType,
		p.HasPlayground, p.HasCoaching, time.Now(),
	)
	return err
}
