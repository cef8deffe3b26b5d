package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/akarlsen/pomoplan/internal/cli"
	"github.com/akarlsen/pomoplan/internal/db"
	"github.com/akarlsen/pomoplan/internal/quotes"
	"github.com/akarlsen/pomoplan/internal/repository"
	"github.com/akarlsen/pomoplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.pomoplan/pomoplan.db
	dbPath := os.Getenv("POMOPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".pomoplan", "pomoplan.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Quote catalog: user override via env var, embedded defaults otherwise.
	var catalog *quotes.Catalog
	if path := os.Getenv("POMOPLAN_QUOTES"); path != "" {
		catalog, err = quotes.LoadFile(path)
	} else {
		catalog, err = quotes.Load()
	}
	if err != nil {
		return fmt.Errorf("loading quotes: %w", err)
	}

	// Wire repositories
	presetRepo := repository.NewSQLitePresetRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Plans:   service.NewPlanService(profileRepo, quotes.NewPicker(catalog, nil)),
		Presets: service.NewPresetService(presetRepo, uow),
		Profile: service.NewProfileService(profileRepo),

		IsInteractive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
