package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/carlamendes/bloom/internal/app"
	"github.com/carlamendes/bloom/internal/cli"
	"github.com/carlamendes/bloom/internal/constants"
	"github.com/carlamendes/bloom/internal/errors"
	"github.com/carlamendes/bloom/internal/logger"
	"github.com/carlamendes/bloom/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path (.db for SQLite, .json for plain JSON)." type:"path" default:"~/.config/bloom/bloom.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init         cli.InitCmd         `cmd:"" help:"Set up your profile and storage."`
	Tui          cli.TuiCmd          `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Status       cli.StatusCmd       `cmd:"" help:"Show your progress and today's stats."`
	Water        cli.WaterCmd        `cmd:"" help:"Track hydration."`
	Mood         cli.MoodCmd         `cmd:"" help:"Log and review moods."`
	Workout      cli.WorkoutCmd      `cmd:"" help:"Manage today's workouts."`
	Challenge    cli.ChallengeCmd    `cmd:"" help:"Work through the 30-day challenge."`
	Meal         cli.MealCmd         `cmd:"" help:"Log and review meals."`
	Ritual       cli.RitualCmd       `cmd:"" help:"Log a quiet breathing minute."`
	Photo        cli.PhotoCmd        `cmd:"" help:"Save progress photos."`
	Measure      cli.MeasureCmd      `cmd:"" help:"Record body measurements."`
	Achievements cli.AchievementsCmd `cmd:"" help:"Show achievements."`
	Backup       cli.BackupCmd       `cmd:"" help:"Manage storage backups."`
	Keyring      cli.KeyringCmd      `cmd:"" help:"Manage the enhancement API key."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Gentle daily wellness companion for new mothers"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	// Pick a backend from the storage file extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		App:   app.New(store),
	}

	// Load the store before running the command (Init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
