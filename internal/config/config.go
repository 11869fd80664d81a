package config

import (
	"github.com/vijay-prabhu/disha/internal/holistic"
	"github.com/vijay-prabhu/disha/internal/scholarship"
	"github.com/vijay-prabhu/disha/internal/scoring"
)

// Config represents the application configuration
type Config struct {
	Database  DatabaseConfig  `toml:"database"`
	Logging   LoggingConfig   `toml:"logging"`
	Scoring   ScoringConfig   `toml:"scoring"`
	Holistic  HolisticConfig  `toml:"holistic"`
	Deadlines DeadlineConfig  `toml:"deadlines"`
	Telemetry TelemetryConfig `toml:"telemetry"`
	MCP       MCPConfig       `toml:"mcp"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig contains log settings
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// ScoringConfig contains suitability scorer settings
type ScoringConfig struct {
	CatalogPath     string          `toml:"catalog_path"` // optional TOML catalog replacing the built-in sports
	MaxResults      int             `toml:"max_results"`
	GapThreshold    float64         `toml:"gap_threshold"`
	MaxImprovements int             `toml:"max_improvements"`
	CategoryMax     float64         `toml:"category_max"`
	Weights         scoring.Weights `toml:"weights"`
}

// Scorer converts the section into a scorer configuration
func (s ScoringConfig) Scorer() scoring.Config {
	return scoring.Config{
		Weights:         s.Weights,
		MaxResults:      s.MaxResults,
		GapThreshold:    s.GapThreshold,
		MaxImprovements: s.MaxImprovements,
	}
}

// HolisticConfig contains aggregator settings
type HolisticConfig struct {
	SkillMax             float64 `toml:"skill_max"`
	PersonalityMax       float64 `toml:"personality_max"`
	PersonalityThreshold float64 `toml:"personality_threshold"`
	TopSports            int     `toml:"top_sports"`
	TopCreative          int     `toml:"top_creative"`
}

// Aggregator converts the section into an aggregator configuration
func (h HolisticConfig) Aggregator() holistic.Config {
	return holistic.Config(h)
}

// DeadlineConfig contains scholarship status settings
type DeadlineConfig struct {
	ClosingSoonDays int    `toml:"closing_soon_days"`
	Locale          string `toml:"locale"`
	Timezone        string `toml:"timezone"`
}

// Engine converts the section into status engine options
func (d DeadlineConfig) Engine() scholarship.Options {
	return scholarship.Options{
		Timezone:        d.Timezone,
		Locale:          d.Locale,
		ClosingSoonDays: d.ClosingSoonDays,
	}
}

// TelemetryConfig contains interaction log settings
type TelemetryConfig struct {
	MaxLogs int `toml:"max_logs"`
}

// MCPConfig contains MCP server settings
type MCPConfig struct {
	Enabled   bool   `toml:"enabled"`
	Transport string `toml:"transport"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	sc := scoring.DefaultConfig()
	hc := holistic.DefaultConfig()

	return &Config{
		Database: DatabaseConfig{
			Path: "~/.local/share/disha/disha.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Scoring: ScoringConfig{
			MaxResults:      sc.MaxResults,
			GapThreshold:    sc.GapThreshold,
			MaxImprovements: sc.MaxImprovements,
			CategoryMax:     30,
			Weights:         sc.Weights,
		},
		Holistic: HolisticConfig(hc),
		Deadlines: DeadlineConfig{
			ClosingSoonDays: scholarship.DefaultClosingSoonDays,
			Locale:          scholarship.DefaultLocale,
			Timezone:        "Asia/Kolkata",
		},
		Telemetry: TelemetryConfig{
			MaxLogs: 50,
		},
		MCP: MCPConfig{
			Enabled:   true,
			Transport: "stdio",
		},
	}
}
