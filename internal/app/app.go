package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"job-efficiency/internal/aggregators"
	"job-efficiency/internal/calculators"
	"job-efficiency/internal/extractors"
	internalhttp "job-efficiency/internal/http"
	"job-efficiency/internal/shared/configs"
	"job-efficiency/internal/shared/filestorages"
	"job-efficiency/internal/shared/loggers"
	"job-efficiency/internal/sources"
	"job-efficiency/internal/stores"
	"job-efficiency/internal/summarizers"
)

const appName = "job-efficiency"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := NewLogger(config)
	if err != nil {
		return nil, err
	}

	efficiencyService, err := NewEfficiencyService(config)
	if err != nil {
		return nil, err
	}

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(efficiencyService, httpLogger, config.Server.StaticDir)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

// NewLogger builds the application logger tagged with the app name.
func NewLogger(config *configs.Config) (loggers.Logger, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return loggers.Logger{}, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger(), nil
}

// NewEfficiencyService wires the snapshot source selected in config into the summary pipeline.
func NewEfficiencyService(config *configs.Config) (aggregators.EfficiencyService, error) {
	source, err := newSnapshotSource(config)
	if err != nil {
		return nil, err
	}

	windowAggregator := aggregators.NewWindowAggregator(
		source,
		extractors.NewRecordExtractor(),
		calculators.NewEfficiencyCalculator(),
		summarizers.NewWindowSummarizer(),
	)
	return aggregators.NewEfficiencyService(windowAggregator), nil
}

// NewSnapshotCapturer runs the accounting command and stores its output under the file
// storage root, ready for the file source.
func NewSnapshotCapturer(config *configs.Config) (*sources.SnapshotCapturer, error) {
	accountUser, err := sources.ResolveUser(config.Accounting.User)
	if err != nil {
		return nil, err
	}

	snapshotStore, err := newSnapshotStore(config)
	if err != nil {
		return nil, err
	}

	return sources.NewSnapshotCapturer(newCommandSource(config, accountUser), snapshotStore, accountUser), nil
}

func newSnapshotSource(config *configs.Config) (sources.SnapshotSource, error) {
	switch config.Accounting.Source {
	case configs.AccountingSourceFile:
		accountUser, err := sources.ResolveUser(config.Accounting.User)
		if err != nil {
			return nil, err
		}
		snapshotStore, err := newSnapshotStore(config)
		if err != nil {
			return nil, err
		}
		return sources.NewFileSource(snapshotStore, accountUser), nil
	case configs.AccountingSourceCommand:
		return newCommandSource(config, config.Accounting.User), nil
	default:
		return nil, fmt.Errorf("unknown accounting source %q", config.Accounting.Source)
	}
}

func newCommandSource(config *configs.Config, accountUser string) sources.SnapshotSource {
	return sources.NewCommandSource(sources.NewExecRunner(), sources.CommandSourceOptions{
		Command: config.Accounting.Command,
		User:    accountUser,
		Timeout: time.Duration(config.Accounting.CommandTimeout) * time.Second,
	})
}

func newSnapshotStore(config *configs.Config) (stores.SnapshotStore, error) {
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return stores.NewSnapshotStore(fileStorage), nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting %s service on port %d (log_level=%s, accounting_source=%s, static_dir=%q)",
			appName,
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Accounting.Source,
			app.config.Server.StaticDir)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application. In-flight summary requests are allowed to
// finish until ctx expires.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return nil
}
