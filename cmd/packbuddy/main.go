// Package main is the entry point for the packbuddy CLI.
// Its sole responsibility is wiring dependencies together and dispatching
// to the command tree. No business logic belongs here.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jvieri/pack-buddy/internal/cli"
	"github.com/jvieri/pack-buddy/internal/config"
	"github.com/jvieri/pack-buddy/internal/repo"
	"github.com/jvieri/pack-buddy/internal/service"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// Logs go to stderr so command output on stdout stays clean and pipeable.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Store ------------------------------------------------------------
	// Open creates the database file on first use and brings the schema up
	// to date, so a fresh install needs no separate setup step.
	db, err := repo.Open(context.Background(), cfg.DBPath)
	if err != nil {
		slog.Error("failed to open store", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// --- Services ---------------------------------------------------------
	packings := repo.NewPackingRepo(db)
	categories := repo.NewCategoryRepo(db)
	items := repo.NewItemRepo(db)

	app := &cli.App{
		Packings:   service.NewPackingService(packings, categories, items),
		Categories: service.NewCategoryService(packings, categories, items),
		Items:      service.NewItemService(categories, items),
		Export:     service.NewExportService(packings, categories, items),
	}

	// --- Commands ---------------------------------------------------------
	if err := cli.NewRootCmd(app).Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
