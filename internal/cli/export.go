package cli

import (
	"context"
	"encoding/json"
	"os"
)

// Export assembles the full data export and writes it as indented JSON to
// the configured export path.
func (a *App) Export(ctx context.Context) error {
	if !a.requireSession() {
		return nil
	}

	doc, err := a.settings.Export(ctx)
	if err != nil {
		a.log.Error(ctx, "export failed", "error", err)
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		a.log.Error(ctx, "export encode failed", "error", err)
		return err
	}

	if err := os.WriteFile(a.config.ExportPath, data, 0o600); err != nil {
		a.log.Error(ctx, "export write failed", "path", a.config.ExportPath, "error", err)
		return err
	}

	printlnFn("Export written to " + a.config.ExportPath)
	return nil
}
