package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/disha/internal/catalog"
	"github.com/vijay-prabhu/disha/internal/config"
	"github.com/vijay-prabhu/disha/internal/database"
	"github.com/vijay-prabhu/disha/internal/holistic"
	"github.com/vijay-prabhu/disha/internal/logging"
	"github.com/vijay-prabhu/disha/internal/output"
	"github.com/vijay-prabhu/disha/internal/scholarship"
	"github.com/vijay-prabhu/disha/internal/session"
)

// app bundles what most commands need: configuration, logger and database
type app struct {
	cfg     *config.Config
	logger  *logging.Logger
	db      *database.DB
	printer *output.Printer
}

// openApp loads the configuration (defaults when no file exists) and
// opens the database
func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	printer := output.NewPrinter(outputFmt)
	printer.W = cmd.OutOrStdout()
	printer.Badge = NewTerminal().Badge

	return &app{cfg: cfg, logger: logger, db: db, printer: printer}, nil
}

// Close releases the database
func (a *app) Close() error {
	return a.db.Close()
}

// engine builds the deadline status engine from config
func (a *app) engine() (*scholarship.Engine, error) {
	return scholarship.NewEngine(a.cfg.Deadlines.Engine())
}

// catalog returns the configured sports catalog, or the built-in one
func (a *app) catalog() (*catalog.Catalog, error) {
	if a.cfg.Scoring.CatalogPath == "" {
		return catalog.Sports(), nil
	}
	return catalog.LoadFile(a.cfg.Scoring.CatalogPath)
}

func (a *app) aggregator() *holistic.Aggregator {
	return holistic.New(a.cfg.Holistic.Aggregator())
}

// telemetry returns a Telemetry honoring the stored consent flag
func (a *app) telemetry(ctx context.Context) (*session.Telemetry, error) {
	consent, err := a.db.Consent(ctx)
	if err != nil {
		return nil, err
	}
	return session.NewTelemetry(a.db, session.TelemetryOptions{
		Consent: consent,
		MaxLogs: a.cfg.Telemetry.MaxLogs,
		Logger:  a.logger,
	}), nil
}
