package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vijay-prabhu/disha/internal/scholarship"
)

const scholarshipColumns = `
	id, name, provider, category, provider_type, level, art_field, income_limit,
	social_groups, career_goals, benefits, start_date, deadline, is_recurring,
	last_verified, apply_link`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScholarship(row rowScanner) (*scholarship.Record, error) {
	r := &scholarship.Record{}
	var providerType, level, artField, benefits, startDate, deadline, lastVerified, applyLink sql.NullString
	var incomeLimit sql.NullFloat64
	var groups, goals string

	if err := row.Scan(
		&r.ID, &r.Name, &r.Provider, &r.Category, &providerType, &level, &artField, &incomeLimit,
		&groups, &goals, &benefits, &startDate, &deadline, &r.IsRecurring,
		&lastVerified, &applyLink,
	); err != nil {
		return nil, err
	}

	var err error
	if r.SocialGroups, err = decodeStrings(groups); err != nil {
		return nil, fmt.Errorf("scholarship %s: bad social groups: %w", r.ID, err)
	}
	if r.CareerGoals, err = decodeStrings(goals); err != nil {
		return nil, fmt.Errorf("scholarship %s: bad career goals: %w", r.ID, err)
	}

	r.ProviderType = providerType.String
	r.Level = level.String
	r.ArtField = artField.String
	r.IncomeLimit = incomeLimit.Float64
	r.Benefits = benefits.String
	r.StartDate = startDate.String
	r.Deadline = deadline.String
	r.LastVerified = lastVerified.String
	r.ApplyLink = applyLink.String
	return r, nil
}

// CreateScholarship inserts a scholarship, assigning an id when empty
func (db *DB) CreateScholarship(ctx context.Context, r *scholarship.Record) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	groups, err := encodeStrings(r.SocialGroups)
	if err != nil {
		return err
	}
	goals, err := encodeStrings(r.CareerGoals)
	if err != nil {
		return err
	}
	now := time.Now()

	_, err = db.ExecContext(ctx, `
		INSERT INTO scholarships (`+scholarshipColumns+`, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		r.ID, r.Name, r.Provider, r.Category, NullString(r.ProviderType), NullString(r.Level),
		NullString(r.ArtField), NullFloat64(r.IncomeLimit), groups, goals, NullString(r.Benefits),
		NullString(r.StartDate), NullString(r.Deadline), r.IsRecurring,
		NullString(r.LastVerified), NullString(r.ApplyLink), now, now,
	)
	return err
}

// GetScholarship retrieves a scholarship by id, or nil when absent
func (db *DB) GetScholarship(ctx context.Context, id string) (*scholarship.Record, error) {
	r, err := scanScholarship(db.QueryRowContext(ctx,
		`SELECT `+scholarshipColumns+` FROM scholarships WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return r, err
}

// ListScholarships returns every scholarship ordered by name
func (db *DB) ListScholarships(ctx context.Context) ([]scholarship.Record, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+scholarshipColumns+` FROM scholarships ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []scholarship.Record
	for rows.Next() {
		r, err := scanScholarship(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *r)
	}
	return records, rows.Err()
}

// MarkVerified stamps a scholarship as checked at now
func (db *DB) MarkVerified(ctx context.Context, id string, now time.Time) (*scholarship.Record, error) {
	r, err := db.GetScholarship(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("scholarship not found: %s", id)
	}

	verified := scholarship.Verify(*r, now)
	if _, err := db.ExecContext(ctx, `
		UPDATE scholarships SET last_verified = ?, updated_at = ? WHERE id = ?
	`, verified.LastVerified, time.Now(), id); err != nil {
		return nil, err
	}
	return &verified, nil
}

// DeleteScholarship deletes a scholarship by id
func (db *DB) DeleteScholarship(ctx context.Context, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM scholarships WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("scholarship not found: %s", id)
	}
	return nil
}
