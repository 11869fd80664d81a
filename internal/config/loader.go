package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// DefaultPath is where config init writes the file
const DefaultPath = "~/.config/disha/config.toml"

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	expandedPath, err := ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'disha config init' to create)", expandedPath)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// LoadOrDefault loads path, falling back to defaults when the file is missing
func LoadOrDefault(path string) (*Config, error) {
	expandedPath, err := ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}
	if _, err := os.Stat(expandedPath); os.IsNotExist(err) {
		cfg := Default()
		if err := cfg.ExpandPaths(); err != nil {
			return nil, fmt.Errorf("failed to expand paths: %w", err)
		}
		return cfg, nil
	}
	return Load(path)
}

// Parse decodes TOML on top of the defaults, expands paths and validates
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Marshal encodes the config as TOML
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// ExpandPaths expands ~ in all path fields
func (c *Config) ExpandPaths() error {
	var err error

	c.Database.Path, err = ExpandPath(c.Database.Path)
	if err != nil {
		return err
	}

	c.Scoring.CatalogPath, err = ExpandPath(c.Scoring.CatalogPath)
	return err
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level must be debug, info, warn or error, got '%s'", c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be 'text' or 'json', got '%s'", c.Logging.Format))
	}

	// Scoring
	if c.Scoring.MaxResults < 1 {
		errs = append(errs, errors.New("scoring.max_results must be at least 1"))
	}
	if c.Scoring.GapThreshold < 0 || c.Scoring.GapThreshold > 1 {
		errs = append(errs, errors.New("scoring.gap_threshold must be between 0 and 1"))
	}
	if c.Scoring.MaxImprovements < 0 {
		errs = append(errs, errors.New("scoring.max_improvements must not be negative"))
	}
	if c.Scoring.CategoryMax <= 0 {
		errs = append(errs, errors.New("scoring.category_max must be positive"))
	}
	w := c.Scoring.Weights
	for name, v := range map[string]float64{
		"physical":       w.Physical,
		"skill":          w.Skill,
		"psychological":  w.Psychological,
		"interest":       w.Interest,
		"environment":    w.Environment,
		"anthropometric": w.Anthropometric,
	} {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("scoring.weights.%s must be between 0 and 1, got %v", name, v))
		}
	}
	if sum := w.Sum(); math.Abs(sum-1) > 1e-6 {
		errs = append(errs, fmt.Errorf("scoring.weights must sum to 1.0, got %v", sum))
	}

	// Holistic
	if c.Holistic.SkillMax <= 0 || c.Holistic.PersonalityMax <= 0 {
		errs = append(errs, errors.New("holistic.skill_max and holistic.personality_max must be positive"))
	}
	if c.Holistic.PersonalityThreshold < 0 || c.Holistic.PersonalityThreshold > 100 {
		errs = append(errs, errors.New("holistic.personality_threshold must be between 0 and 100"))
	}
	if c.Holistic.TopSports < 1 || c.Holistic.TopCreative < 1 {
		errs = append(errs, errors.New("holistic.top_sports and holistic.top_creative must be at least 1"))
	}

	// Deadlines
	if c.Deadlines.ClosingSoonDays < 0 {
		errs = append(errs, errors.New("deadlines.closing_soon_days must not be negative"))
	}
	if _, err := language.Parse(c.Deadlines.Locale); err != nil {
		errs = append(errs, fmt.Errorf("deadlines.locale '%s' is not a valid BCP 47 tag", c.Deadlines.Locale))
	}
	if _, err := time.LoadLocation(c.Deadlines.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("deadlines.timezone '%s' is not a known zone", c.Deadlines.Timezone))
	}

	if c.Telemetry.MaxLogs < 1 {
		errs = append(errs, errors.New("telemetry.max_logs must be at least 1"))
	}

	if c.MCP.Transport != "stdio" {
		errs = append(errs, fmt.Errorf("mcp.transport must be 'stdio', got '%s'", c.MCP.Transport))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// EnsureDirectories creates the database directory
func (c *Config) EnsureDirectories() error {
	dir := filepath.Dir(c.Database.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
