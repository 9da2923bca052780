package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Athlete AthleteConfig `json:"athlete"`
	Paths   PathsConfig   `json:"paths"`
	Display DisplayConfig `json:"display"`
}

// AthleteConfig holds personal settings that feed the scoring engine
type AthleteConfig struct {
	// MaxHR is the estimated maximum heart rate (e.g. 220 - age),
	// used to turn average-HR readings into effort zones.
	MaxHR float64 `json:"max_hr"`
}

// PathsConfig holds file locations
type PathsConfig struct {
	Database   string `json:"database"`
	ReportsDir string `json:"reports_dir"`
	// ScoringFile points at an optional YAML file overriding the
	// scoring thresholds. Missing file means stock thresholds.
	ScoringFile string `json:"scoring_file"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	ChartWidth  int `json:"chart_width"`
	ChartHeight int `json:"chart_height"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Athlete: AthleteConfig{
			MaxHR: 198,
		},
		Display: DisplayConfig{
			ChartWidth:  60,
			ChartHeight: 8,
		},
	}
}

// Load reads the configuration from ~/.daylog/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills missing values, deriving paths from the config
// directory when unset.
func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()
	if cfg.Athlete.MaxHR == 0 {
		cfg.Athlete.MaxHR = defaults.Athlete.MaxHR
	}
	if cfg.Display.ChartWidth == 0 {
		cfg.Display.ChartWidth = defaults.Display.ChartWidth
	}
	if cfg.Display.ChartHeight == 0 {
		cfg.Display.ChartHeight = defaults.Display.ChartHeight
	}

	dir, err := GetConfigDir()
	if err != nil {
		return
	}
	if cfg.Paths.Database == "" {
		cfg.Paths.Database = filepath.Join(dir, "data.db")
	}
	if cfg.Paths.ReportsDir == "" {
		cfg.Paths.ReportsDir = filepath.Join(dir, "reports")
	}
	if cfg.Paths.ScoringFile == "" {
		cfg.Paths.ScoringFile = filepath.Join(dir, "scoring.yaml")
	}
}

// Save writes the configuration to ~/.daylog/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return Save(&example)
}

// Validate checks if the config has sensible values
func (c *Config) Validate() error {
	if c.Athlete.MaxHR <= 0 {
		return errors.New("athlete.max_hr must be positive (try 220 minus your age)")
	}
	if c.Athlete.MaxHR < 120 || c.Athlete.MaxHR > 230 {
		return fmt.Errorf("athlete.max_hr %v is outside a plausible range [120,230]", c.Athlete.MaxHR)
	}
	if c.Display.ChartWidth <= 0 || c.Display.ChartHeight <= 0 {
		return errors.New("display chart dimensions must be positive")
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".daylog"), nil
}
