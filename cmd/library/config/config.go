package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/library-service/cmd/library/library"
)

const (
	IDStrategySequential = "sequential"
	IDStrategyUUID       = "uuid"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Config struct {
	LoanPeriod       time.Duration
	MaxActiveBorrows int
	IDStrategy       string
	DuplicateIDs     library.DuplicatePolicy
	LogLevel         slog.Level
	LogFormat        string
}

/* Reads the LIBRARY_* environment. Unset variables fall back to defaults, malformed ones are errors. */
func Load() (Config, error) {
	cfg := Config{
		IDStrategy: strings.ToLower(getenv("LIBRARY_ID_STRATEGY", IDStrategySequential)),
		LogFormat:  strings.ToLower(getenv("LIBRARY_LOG_FORMAT", LogFormatText)),
	}

	loan, err := time.ParseDuration(getenv("LIBRARY_LOAN_PERIOD", library.DefaultLoanPeriod.String()))
	if err != nil {
		return Config{}, fmt.Errorf("parsing LIBRARY_LOAN_PERIOD: %w", err)
	}
	if loan <= 0 {
		return Config{}, fmt.Errorf("LIBRARY_LOAN_PERIOD must be positive, got %s", loan)
	}
	cfg.LoanPeriod = loan

	maxBorrows, err := strconv.Atoi(getenv("LIBRARY_MAX_ACTIVE_BORROWS", strconv.Itoa(library.DefaultMaxActiveBorrows)))
	if err != nil {
		return Config{}, fmt.Errorf("parsing LIBRARY_MAX_ACTIVE_BORROWS: %w", err)
	}
	if maxBorrows <= 0 {
		return Config{}, fmt.Errorf("LIBRARY_MAX_ACTIVE_BORROWS must be positive, got %d", maxBorrows)
	}
	cfg.MaxActiveBorrows = maxBorrows

	switch cfg.IDStrategy {
	case IDStrategySequential, IDStrategyUUID:
	default:
		return Config{}, fmt.Errorf("unknown LIBRARY_ID_STRATEGY %q", cfg.IDStrategy)
	}

	switch p := library.DuplicatePolicy(strings.ToLower(getenv("LIBRARY_DUPLICATE_IDS", string(library.DuplicateOverwrite)))); p {
	case library.DuplicateOverwrite, library.DuplicateReject:
		cfg.DuplicateIDs = p
	default:
		return Config{}, fmt.Errorf("unknown LIBRARY_DUPLICATE_IDS %q", p)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getenv("LIBRARY_LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("parsing LIBRARY_LOG_LEVEL: %w", err)
	}

	switch cfg.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return Config{}, fmt.Errorf("unknown LIBRARY_LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
