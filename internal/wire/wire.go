// Package wire provides dependency injection for the tradepost application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/tradepost/internal/adapters/catalog"
	"github.com/example/tradepost/internal/adapters/sqlite"
	"github.com/example/tradepost/internal/app"
	"github.com/example/tradepost/internal/config"
	"github.com/example/tradepost/internal/db"
	"github.com/example/tradepost/internal/ports/primary"
	"github.com/example/tradepost/internal/ports/secondary"
)

var (
	cfg             *config.Config
	logger          zerolog.Logger
	priceService    primary.PriceService
	resolverService primary.ResolverService
	profitService   primary.ProfitService
	once            sync.Once
)

// Config returns the active configuration (the config file in the current
// directory when present, built-in defaults otherwise).
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Logger returns the shared application logger.
func Logger() zerolog.Logger {
	once.Do(initServices)
	return logger
}

// PriceService returns the singleton PriceService instance.
func PriceService() primary.PriceService {
	once.Do(initServices)
	return priceService
}

// ResolverService returns the singleton ResolverService instance.
func ResolverService() primary.ResolverService {
	once.Do(initServices)
	return resolverService
}

// ProfitService returns the singleton ProfitService instance.
func ProfitService() primary.ProfitService {
	once.Do(initServices)
	return profitService
}

// CommandContext returns a context bounded by the configured wait timeout,
// for use by CLI commands.
func CommandContext() (context.Context, context.CancelFunc) {
	once.Do(initServices)
	timeout := time.Duration(cfg.WaitTimeoutSeconds) * time.Second
	return context.WithTimeout(context.Background(), timeout)
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	logger = newLogger()

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	cfg, err = config.Load(cwd)
	if err != nil {
		cfg = config.Default()
	}

	// The open function performs the one-time storage initialization; the
	// store service runs it in the background and owns the lifecycle.
	openStore := func(ctx context.Context) (secondary.PriceRepository, error) {
		path, err := cfg.DBPath()
		if err != nil {
			return nil, err
		}
		database, err := db.Open(path)
		if err != nil {
			return nil, err
		}
		if err := db.InitSchema(database); err != nil {
			database.Close()
			return nil, err
		}
		return sqlite.NewPriceRepository(database), nil
	}

	store := app.NewPriceStoreService(openStore, logger.With().Str("component", "pricestore").Logger())
	resolver := app.NewResolverService(catalog.New(), store, logger.With().Str("component", "resolver").Logger())

	priceService = store
	resolverService = resolver
	profitService = app.NewProfitService(resolver, cfg.NonSellable, logger.With().Str("component", "profit").Logger())
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if os.Getenv("TRADEPOST_DEBUG") != "" {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
