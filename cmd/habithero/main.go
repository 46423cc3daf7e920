package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/habitheroapp/habithero/internal/app"
	"github.com/habitheroapp/habithero/internal/cli"
	"github.com/habitheroapp/habithero/internal/errfmt"
	"github.com/habitheroapp/habithero/internal/logger"
	"github.com/habitheroapp/habithero/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/habithero/habithero.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init  cli.InitCmd  `cmd:"" help:"Initialize habithero storage."`
	Tui   cli.TuiCmd   `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Habit cli.HabitCmd `cmd:"" help:"Manage habits."`
	Mood  cli.MoodCmd  `cmd:"" help:"Record today's mood."`

	Stats        cli.StatsCmd        `cmd:"" help:"Show level, XP and badges."`
	Achievements cli.AchievementsCmd `cmd:"" help:"Show achievement progress."`
	Analytics    cli.AnalyticsCmd    `cmd:"" help:"Show completion and mood analytics."`

	Export cli.ExportCmd `cmd:"" help:"Export all data as JSON."`
	Import cli.ImportCmd `cmd:"" help:"Replace all data from an export."`
	Reset  cli.ResetCmd  `cmd:"" help:"Delete all data and restore defaults."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habithero"),
		kong.Description("Gamified habit tracker: streaks, XP, achievements"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.3.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
	}

	// Storage backend by extension: .json means the plain-file store,
	// anything else the SQLite store.
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	svc := app.New(store)
	if err := svc.Open(); err != nil {
		errfmt.Fatal(err)
	}
	defer svc.Close()

	appCtx := &cli.Context{
		Service:    svc,
		ConfigPath: CLI.Config,
	}

	if err := ctx.Run(appCtx); err != nil {
		svc.Close()
		errfmt.Fatal(err)
	}
}
