package config

import (
	"encoding/json"
	"os"

	"github.com/mindcare-app/mindcare/internal/flagx"
	"github.com/mindcare-app/mindcare/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// stay nil and leave the runtime Config untouched. Durations use
// timex.Duration so JSON can specify them either as strings like "3s" or as
// integer nanoseconds.
type jsonConfig struct {
	DatabasePath *string         `json:"database_path"`
	KeyPrefix    *string         `json:"key_prefix"`
	LookbackDays *int            `json:"lookback_days"`
	ExportPath   *string         `json:"export_path"`
	TypingDelay  *timex.Duration `json:"typing_delay"`
}

// parseJSON overlays cfg with values loaded from the JSON file given via
// -c/-config. When no file is given the function is a no-op; read or parse
// failures panic, since a config file that exists but cannot be used is a
// startup defect.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.KeyPrefix != nil {
		cfg.KeyPrefix = *jc.KeyPrefix
	}
	if jc.LookbackDays != nil {
		cfg.LookbackDays = *jc.LookbackDays
	}
	if jc.ExportPath != nil {
		cfg.ExportPath = *jc.ExportPath
	}
	if jc.TypingDelay != nil {
		cfg.TypingDelay = jc.TypingDelay.Duration
	}
}
