// Package config assembles runtime settings for the MindCare CLI from
// defaults, an optional JSON file, environment variables, and command-line
// flags, in that order. Later sources take precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the MindCare CLI.
//
// Fields:
//   - DatabasePath: path of the SQLite profile store.
//   - KeyPrefix: prefix for the application-level store keys.
//   - LookbackDays: dashboard rebuild scan window, in days.
//   - ExportPath: file the data export is written to.
//   - TypingDelay: base of the companion's simulated typing pause.
//
// Units: TypingDelay is a time.Duration (e.g., time.Second).
type Config struct {
	DatabasePath string
	KeyPrefix    string
	LookbackDays int
	ExportPath   string
	TypingDelay  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "mindcare.db"
	c.KeyPrefix = "mindcare"
	c.LookbackDays = 30
	c.ExportPath = "mindcare-data.json"
	c.TypingDelay = time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
