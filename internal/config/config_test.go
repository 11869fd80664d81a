package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Scoring.MaxResults != 10 {
		t.Errorf("expected MaxResults=10, got %d", cfg.Scoring.MaxResults)
	}

	if cfg.Scoring.Weights.Physical != 0.25 {
		t.Errorf("expected physical weight 0.25, got %v", cfg.Scoring.Weights.Physical)
	}

	if cfg.Holistic.SkillMax != 30 || cfg.Holistic.PersonalityMax != 20 {
		t.Errorf("expected skill/personality max 30/20, got %v/%v", cfg.Holistic.SkillMax, cfg.Holistic.PersonalityMax)
	}

	if cfg.Deadlines.ClosingSoonDays != 7 {
		t.Errorf("expected ClosingSoonDays=7, got %d", cfg.Deadlines.ClosingSoonDays)
	}

	if cfg.Telemetry.MaxLogs != 50 {
		t.Errorf("expected MaxLogs=50, got %d", cfg.Telemetry.MaxLogs)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid default config",
			modify: func(c *Config) {},
		},
		{
			name: "weights not summing to one",
			modify: func(c *Config) {
				c.Scoring.Weights.Physical = 0.5
			},
			wantErr: "must sum to 1.0",
		},
		{
			name: "negative weight",
			modify: func(c *Config) {
				c.Scoring.Weights.Physical = -0.1
				c.Scoring.Weights.Skill = 0.55
			},
			wantErr: "scoring.weights.physical",
		},
		{
			name: "recalibrated weights",
			modify: func(c *Config) {
				c.Scoring.Weights.Physical = 0.30
				c.Scoring.Weights.Interest = 0.10
			},
		},
		{
			name: "invalid max_results",
			modify: func(c *Config) {
				c.Scoring.MaxResults = 0
			},
			wantErr: "scoring.max_results",
		},
		{
			name: "invalid locale",
			modify: func(c *Config) {
				c.Deadlines.Locale = "not a locale!"
			},
			wantErr: "deadlines.locale",
		},
		{
			name: "invalid timezone",
			modify: func(c *Config) {
				c.Deadlines.Timezone = "Mars/Olympus"
			},
			wantErr: "deadlines.timezone",
		},
		{
			name: "invalid log level",
			modify: func(c *Config) {
				c.Logging.Level = "loud"
			},
			wantErr: "logging.level",
		},
		{
			name: "invalid mcp transport",
			modify: func(c *Config) {
				c.MCP.Transport = "http"
			},
			wantErr: "mcp.transport",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
[scoring]
max_results = 5

[scoring.weights]
physical = 0.3
skill = 0.2
psychological = 0.2
interest = 0.1
environment = 0.1
anthropometric = 0.1

[deadlines]
locale = "en-US"
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Scoring.MaxResults != 5 {
		t.Errorf("expected MaxResults=5, got %d", cfg.Scoring.MaxResults)
	}
	if cfg.Scoring.Weights.Physical != 0.3 {
		t.Errorf("expected physical weight 0.3, got %v", cfg.Scoring.Weights.Physical)
	}
	if cfg.Deadlines.Timezone != "Asia/Kolkata" {
		t.Errorf("expected default timezone to survive, got %s", cfg.Deadlines.Timezone)
	}
	if strings.HasPrefix(cfg.Database.Path, "~") {
		t.Errorf("expected database path to be expanded, got %s", cfg.Database.Path)
	}

	if _, err := Parse([]byte("[scoring\nmax_results=")); err == nil {
		t.Error("expected parse error for malformed TOML")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "disha config init") {
		t.Errorf("expected not-found hint, got %v", err)
	}

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if cfg.Scoring.MaxResults != 10 {
		t.Errorf("expected defaults, got MaxResults=%d", cfg.Scoring.MaxResults)
	}

	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("Load of marshalled defaults failed: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input    string
		expected string
	}{
		{"~/test", filepath.Join(home, "test")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"", ""},
	}

	for _, tt := range tests {
		result, err := ExpandPath(tt.input)
		if err != nil {
			t.Errorf("ExpandPath(%q) error: %v", tt.input, err)
		}
		if result != tt.expected {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestSectionConversions(t *testing.T) {
	cfg := Default()

	if got := cfg.Scoring.Scorer(); got.MaxResults != 10 || got.MaxImprovements != 3 {
		t.Errorf("unexpected scorer config %+v", got)
	}
	if got := cfg.Holistic.Aggregator(); got.TopSports != 3 || got.PersonalityThreshold != 70 {
		t.Errorf("unexpected aggregator config %+v", got)
	}
	if got := cfg.Deadlines.Engine(); got.Locale != "en-IN" || got.Timezone != "Asia/Kolkata" {
		t.Errorf("unexpected engine options %+v", got)
	}
}
