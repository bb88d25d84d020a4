package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"job-efficiency/internal/app"
	"job-efficiency/internal/shared/configs"

	"github.com/alecthomas/kingpin/v2"
	"github.com/prometheus/common/version"
)

func main() {
	var (
		configPath      string
		shutdownTimeout time.Duration
	)
	cli := kingpin.New(filepath.Base(os.Args[0]), "Job efficiency summary server.")
	cli.HelpFlag.Short('h')
	cli.Flag("config", "Path to the YAML configuration file.").Short('c').Default("./configs/configs.yml").StringVar(&configPath)
	cli.Flag("shutdown-timeout", "Graceful shutdown timeout (e.g. 10s).").Default("10s").DurationVar(&shutdownTimeout)
	cli.Version(version.Print("job-efficiency"))

	if _, err := cli.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("failed to parse commandline arguments: %w", err))
		cli.Usage(os.Args[1:])
		os.Exit(2)
	}

	// Load configuration
	cfg, err := configs.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize application
	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	// Start server in background
	serverErr := make(chan error, 1)
	go func() {
		if err := application.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
		os.Exit(1)
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
	}
}
