// Command ziwei computes Zi Wei Dou Shu natal charts.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/ziwei/internal/adapters/driven/config/env"
	"github.com/custodia-labs/ziwei/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ziwei/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ziwei/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/ziwei/internal/adapters/driving/cli"
	"github.com/custodia-labs/ziwei/internal/core/domain"
	"github.com/custodia-labs/ziwei/internal/core/ports/driven"
	"github.com/custodia-labs/ziwei/internal/core/services"
	"github.com/custodia-labs/ziwei/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := env.Load()
	if err != nil {
		return err
	}
	logger.SetVerbose(cfg.Verbose)

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	cli.SetVersion(version)
	cli.SetServices(a.chart, a.settings)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.ExecuteContext(ctx)
}

// app holds the wired services and releases their stores on close.
type app struct {
	chart    *services.ChartService
	settings *services.SettingsService
	close    func()
}

// newApp opens the stores under cfg.Home and builds the services. An
// unreadable or malformed config.toml is an error.
func newApp(cfg env.Config) (*app, error) {
	configStore, err := file.NewConfigStore(cfg.Home)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	backend := cfg.Storage
	if backend == "" {
		settings, err := settingsService.Get()
		if err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}
		backend = settings.Storage.Backend
	}

	chartStore, closeStore := openChartStore(backend, cfg.Home)
	return &app{
		chart:    services.NewChartService(chartStore),
		settings: settingsService,
		close:    closeStore,
	}, nil
}

// openChartStore returns the history store for backend. A SQLite failure
// leaves charts computable but history unavailable.
func openChartStore(backend domain.StorageBackend, home string) (driven.ChartStore, func()) {
	if backend == domain.StorageMemory {
		return memory.NewChartStore(), func() {}
	}

	store, err := sqlite.NewStore(filepath.Dir(env.DatabasePath(home)))
	if err != nil {
		logger.Warn("chart history unavailable: %v", err)
		return nil, func() {}
	}
	return store.ChartStore(), func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing chart store: %v", err)
		}
	}
}
