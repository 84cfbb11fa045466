package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mindcare-app/mindcare/internal/buildinfo"
	"github.com/mindcare-app/mindcare/internal/cli"
	"github.com/mindcare-app/mindcare/internal/config"
	"github.com/mindcare-app/mindcare/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)

}
