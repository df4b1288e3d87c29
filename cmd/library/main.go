package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/library-service/cmd/library/cli"
	"github.com/library-service/cmd/library/config"
	"github.com/library-service/cmd/library/inmemory"
	"github.com/library-service/cmd/library/library"

	"github.com/joho/godotenv"
)

func main() {
	err := run()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	// a missing .env is fine, the environment alone is enough
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := newLogger(cfg)

	store, err := inmemory.NewInMemoryStore()
	if err != nil {
		return fmt.Errorf("creating store: %w", err)
	}

	var ids library.IDGenerator = library.NewSequentialIDs()
	if cfg.IDStrategy == config.IDStrategyUUID {
		ids = library.UUIDs{}
	}

	libraryService := library.NewService(store,
		library.WithIDGenerator(ids),
		library.WithLogger(logger),
		library.WithLoanPeriod(cfg.LoanPeriod),
		library.WithMaxActiveBorrows(cfg.MaxActiveBorrows),
		library.WithDuplicatePolicy(cfg.DuplicateIDs),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCommand(libraryService, logger).ExecuteContext(ctx)
}

func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
