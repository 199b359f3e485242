package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/renoboard/internal/cli"
	"github.com/alexanderramin/renoboard/internal/config"
	"github.com/alexanderramin/renoboard/internal/db"
	"github.com/alexanderramin/renoboard/internal/repository"
	"github.com/alexanderramin/renoboard/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	entityRepo := repository.NewSQLiteEntityRepo(database)
	sectionRepo := repository.NewSQLiteSectionRepo(database)

	// Wire unit of work for transactional imports
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	resolver := cfg.Resolver()
	app := &cli.App{
		Timeline: service.NewTimelineService(entityRepo, sectionRepo, service.TimelineOptions{
			Resolver:        resolver,
			WeekStart:       cfg.WeekStartDay(),
			OverflowLimit:   cfg.OverflowLimit,
			MinVisibleRatio: cfg.MinVisibleRatio(),
			CacheSize:       cfg.CacheSize,
		}, observers...),
		Entities: service.NewEntityService(entityRepo),
		Sections: service.NewSectionService(sectionRepo),
		Import:   service.NewImportService(uow, resolver, observers...),
		Resolver: resolver,
		HTTPAddr: cfg.HTTPAddr,
		HTTPLog:  os.Stderr,
	}

	// Detect interactive terminal for prompts and forms.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(context.Background())
}
