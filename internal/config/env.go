package config

import "github.com/kelseyhightower/envconfig"

// envOverrides mirrors Config for environment parsing. Pointer fields
// distinguish "unset" from explicit zero values.
type envOverrides struct {
	DatabasePath *string `envconfig:"DATABASE_PATH"`
	KeyPrefix    *string `envconfig:"KEY_PREFIX"`
	LookbackDays *int    `envconfig:"LOOKBACK_DAYS"`
	ExportPath   *string `envconfig:"EXPORT_PATH"`
}

// parseEnv overlays cfg with MINDCARE_* environment variables.
func parseEnv(cfg *Config) {
	var env envOverrides
	if err := envconfig.Process("MINDCARE", &env); err != nil {
		panic(err)
	}

	if env.DatabasePath != nil {
		cfg.DatabasePath = *env.DatabasePath
	}
	if env.KeyPrefix != nil {
		cfg.KeyPrefix = *env.KeyPrefix
	}
	if env.LookbackDays != nil {
		cfg.LookbackDays = *env.LookbackDays
	}
	if env.ExportPath != nil {
		cfg.ExportPath = *env.ExportPath
	}
}
