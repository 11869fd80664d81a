package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vijay-prabhu/disha/internal/assessment"
	"github.com/vijay-prabhu/disha/internal/holistic"
	"github.com/vijay-prabhu/disha/internal/scholarship"
	"github.com/vijay-prabhu/disha/internal/session"
)

func setupTestDB(t *testing.T) (*DB, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "disha-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	db, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to open database: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return db, cleanup
}

func TestOpen(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	for _, table := range []string{"score_entries", "physical_stats", "scholarships", "settings", "interaction_logs"} {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		if err != nil {
			t.Fatalf("failed to query tables: %v", err)
		}
		if count != 1 {
			t.Errorf("expected %s table to exist", table)
		}
	}
}

func TestOpen_Reopen(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "disha.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	ctx := context.Background()
	if err := db.Put(ctx, "skill_scores", assessment.RawScoreMap{"Logical": 4}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db.Close()

	got, _ := db.Get(ctx, "skill_scores")
	if got["Logical"] != 4 {
		t.Errorf("expected Logical=4 after reopen, got %d", got["Logical"])
	}
}

func TestScoreStore(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	// Missing key
	got, err := db.Get(ctx, "psych_scores")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty map for missing key, got %v", got)
	}

	// Put replaces
	if err := db.Put(ctx, "psych_scores", assessment.RawScoreMap{"Openness": 12, "Empathy": -3}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := db.Put(ctx, "psych_scores", assessment.RawScoreMap{"Openness": 7}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, _ = db.Get(ctx, "psych_scores")
	if len(got) != 1 || got["Openness"] != 7 {
		t.Errorf("expected {Openness:7}, got %v", got)
	}

	// Add accumulates
	if err := db.AddScores(ctx, "psych_scores", assessment.RawScoreMap{"Openness": 3, "Empathy": 2}); err != nil {
		t.Fatalf("AddScores failed: %v", err)
	}
	got, _ = db.Get(ctx, "psych_scores")
	if got["Openness"] != 10 || got["Empathy"] != 2 {
		t.Errorf("expected Openness=10 Empathy=2, got %v", got)
	}

	entries, err := db.ListScoreEntries(ctx)
	if err != nil {
		t.Fatalf("ListScoreEntries failed: %v", err)
	}
	if len(entries) != 2 || entries[0].Category != "Empathy" {
		t.Errorf("expected 2 sorted entries, got %v", entries)
	}

	// Clear
	n, err := db.ClearScores(ctx, "psych_scores")
	if err != nil {
		t.Fatalf("ClearScores failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 rows cleared, got %d", n)
	}
}

func TestScoreStore_FeedsHolisticProfile(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	profile, err := holistic.New(holistic.DefaultConfig()).FromStore(ctx, db)
	if err != nil {
		t.Fatalf("FromStore failed: %v", err)
	}
	if profile != nil {
		t.Error("expected nil profile for empty database")
	}

	db.Put(ctx, assessment.KindSkills.StoreKey(), assessment.RawScoreMap{"Numerical": 30, "Logical": 30, "Spatial": 30})
	profile, err = holistic.New(holistic.DefaultConfig()).FromStore(ctx, db)
	if err != nil {
		t.Fatalf("FromStore failed: %v", err)
	}
	if profile == nil || profile.Academic[0].Stream != "PCM (Engineering / Phy-Math)" {
		t.Errorf("expected PCM to rank first, got %+v", profile)
	}
}

func TestPhysicalStats(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	stats, err := db.GetPhysicalStats(ctx)
	if err != nil {
		t.Fatalf("GetPhysicalStats failed: %v", err)
	}
	if stats != nil {
		t.Error("expected nil stats before save")
	}

	want := assessment.DefaultPhysicalStats()
	want.HeightCm = 172.5
	want.LocationType = assessment.LocationCoastal
	if err := db.SavePhysicalStats(ctx, want); err != nil {
		t.Fatalf("SavePhysicalStats failed: %v", err)
	}

	want.WeightKg = 61
	if err := db.SavePhysicalStats(ctx, want); err != nil {
		t.Fatalf("SavePhysicalStats failed: %v", err)
	}

	stats, _ = db.GetPhysicalStats(ctx)
	if stats == nil || *stats != want {
		t.Errorf("expected %+v, got %+v", want, stats)
	}
}

func TestScholarshipCRUD(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	r := &scholarship.Record{
		Name:         "INSPIRE Scholarship",
		Provider:     "DST",
		Category:     scholarship.CategoryMerit,
		Level:        "National",
		IncomeLimit:  4.5,
		SocialGroups: []string{scholarship.GroupAll},
		CareerGoals:  []string{"Research", "STEM"},
		Deadline:     "2023-10-31",
		IsRecurring:  true,
	}
	if err := db.CreateScholarship(ctx, r); err != nil {
		t.Fatalf("CreateScholarship failed: %v", err)
	}
	if r.ID == "" {
		t.Error("expected ID to be set after create")
	}

	fetched, err := db.GetScholarship(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetScholarship failed: %v", err)
	}
	if fetched == nil {
		t.Fatal("expected scholarship to be found")
	}
	if fetched.Name != r.Name || fetched.IncomeLimit != 4.5 || !fetched.IsRecurring {
		t.Errorf("unexpected record %+v", fetched)
	}
	if len(fetched.CareerGoals) != 2 || fetched.CareerGoals[1] != "STEM" {
		t.Errorf("expected career goals to round trip, got %v", fetched.CareerGoals)
	}
	if fetched.ProviderType != "" || fetched.StartDate != "" {
		t.Errorf("expected empty optional fields, got %+v", fetched)
	}

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	verified, err := db.MarkVerified(ctx, r.ID, now)
	if err != nil {
		t.Fatalf("MarkVerified failed: %v", err)
	}
	if verified.LastVerified != "2025-03-01T12:00:00Z" {
		t.Errorf("unexpected LastVerified %q", verified.LastVerified)
	}

	if _, err := db.MarkVerified(ctx, "missing", now); err == nil {
		t.Error("expected error verifying missing scholarship")
	}

	missing, _ := db.GetScholarship(ctx, "missing")
	if missing != nil {
		t.Error("expected nil for missing scholarship")
	}

	if err := db.DeleteScholarship(ctx, r.ID); err != nil {
		t.Fatalf("DeleteScholarship failed: %v", err)
	}
	if err := db.DeleteScholarship(ctx, r.ID); err == nil {
		t.Error("expected error deleting twice")
	}
}

func TestListScholarships(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	for _, name := range []string{"Zeta Grant", "Alpha Award", "Mid Fellowship"} {
		db.CreateScholarship(ctx, &scholarship.Record{Name: name, Provider: "P", Category: scholarship.CategoryMerit})
	}

	records, err := db.ListScholarships(ctx)
	if err != nil {
		t.Fatalf("ListScholarships failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 scholarships, got %d", len(records))
	}
	if records[0].Name != "Alpha Award" {
		t.Errorf("expected name order, got %s first", records[0].Name)
	}
}

func TestConsent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	granted, err := db.Consent(ctx)
	if err != nil {
		t.Fatalf("Consent failed: %v", err)
	}
	if granted {
		t.Error("expected no consent by default")
	}

	db.SetConsent(ctx, true)
	if granted, _ = db.Consent(ctx); !granted {
		t.Error("expected consent after grant")
	}

	db.SetConsent(ctx, false)
	if granted, _ = db.Consent(ctx); granted {
		t.Error("expected no consent after revoke")
	}
}

func TestInteractionLogs(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tel := session.NewTelemetry(db, session.TelemetryOptions{SessionID: "s1", Consent: true, MaxLogs: 3})
	for i := 0; i < 5; i++ {
		if _, err := tel.Log(ctx, session.ActionClickCareer, fmt.Sprintf("c%d", i), map[string]any{"rank": i}); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	logs, err := db.ListInteractions(ctx, 0)
	if err != nil {
		t.Fatalf("ListInteractions failed: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("expected 3 retained interactions, got %d", len(logs))
	}
	if logs[0].TargetID != "c2" || logs[2].TargetID != "c4" {
		t.Errorf("expected newest three oldest first, got %s..%s", logs[0].TargetID, logs[2].TargetID)
	}
	if logs[2].Metadata["rank"] != float64(4) {
		t.Errorf("expected metadata to round trip, got %v", logs[2].Metadata)
	}

	latest, _ := db.ListInteractions(ctx, 1)
	if len(latest) != 1 || latest[0].TargetID != "c4" {
		t.Errorf("expected only the newest interaction, got %v", latest)
	}

	summary, err := db.GetSummary(ctx)
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	if summary.Interactions != 3 {
		t.Errorf("expected 3 interactions in summary, got %d", summary.Interactions)
	}
}

func TestTransactionRollback(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	err := db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO settings (key, value, updated_at) VALUES ('k', 'v', ?)`, time.Now()); err != nil {
			return err
		}
		return fmt.Errorf("abort")
	})
	if err == nil {
		t.Fatal("expected transaction error")
	}

	_, ok, _ := db.GetSetting(ctx, "k")
	if ok {
		t.Error("expected rollback to discard the setting")
	}
}
