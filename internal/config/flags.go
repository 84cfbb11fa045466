package config

import (
	"flag"
	"os"

	"github.com/mindcare-app/mindcare/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the profile database (default from Config)
//	-l int      dashboard lookback window in days (default from Config)
//	-o string   export output file (default from Config)
//
// The function filters os.Args to only the flags it owns, via
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the profile database")
	fs.IntVar(&cfg.LookbackDays, "l", cfg.LookbackDays, "dashboard lookback window (days)")
	fs.StringVar(&cfg.ExportPath, "o", cfg.ExportPath, "export output file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
