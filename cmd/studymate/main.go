package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/studymate/internal/cli"
	"github.com/alexanderramin/studymate/internal/config"
	"github.com/alexanderramin/studymate/internal/query"
	"github.com/alexanderramin/studymate/internal/repository"
	"github.com/alexanderramin/studymate/internal/service"
	"github.com/alexanderramin/studymate/internal/storage"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultDir())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := config.NewLogger(os.Stderr, cfg)

	defaultSort, err := query.ParseSortKey(cfg.DefaultSort)
	if err != nil {
		return fmt.Errorf("parsing default_sort: %w", err)
	}

	// Open storage; falls back to memory when the file is unusable.
	store := storage.Open(cfg.DBPath, logger)
	defer store.Close()

	// Wire repositories
	ctx := context.Background()
	opts := []repository.Option{repository.WithLogger(logger)}
	courses := repository.NewStoreCourseRepo(ctx, store, opts...)
	tasks := repository.NewStoreTaskRepo(ctx, store, opts...)

	app := &cli.App{
		Tracker:     service.NewTracker(courses, tasks, service.NewLogUseCaseObserver(logger)),
		DefaultSort: defaultSort,
	}

	// Forms and the board only run on an interactive terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
