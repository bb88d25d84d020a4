package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"job-efficiency/internal/app"
	"job-efficiency/internal/models"
	"job-efficiency/internal/reports"
	"job-efficiency/internal/shared/configs"
	"job-efficiency/internal/shared/loggers"
	"job-efficiency/internal/stores"

	"github.com/alecthomas/kingpin/v2"
	"github.com/prometheus/common/version"
)

type options struct {
	configPath  string
	timeout     time.Duration
	stateFilter string
	asJSON      bool
	noColor     bool
	force       bool
}

func main() {
	var opts options

	cli := kingpin.New(filepath.Base(os.Args[0]), "Job efficiency reports from the command line.")
	cli.HelpFlag.Short('h')
	cli.Flag("config", "Path to the YAML configuration file.").Short('c').Default("./configs/configs.yml").StringVar(&opts.configPath)
	cli.Flag("timeout", "Give up after this long (e.g. 2m).").Default("5m").DurationVar(&opts.timeout)
	cli.Version(version.Print("effreport"))

	summaryCmd := cli.Command("summary", "Print the 7 and 30 day efficiency summary.").Default()
	summaryCmd.Flag("state-filter", "Which finished jobs to include.").Default(string(models.StateFilterTotal)).
		EnumVar(&opts.stateFilter, string(models.StateFilterCompleted), string(models.StateFilterTotal))
	summaryCmd.Flag("json", "Print the summary as JSON.").BoolVar(&opts.asJSON)
	summaryCmd.Flag("no-color", "Disable colors.").BoolVar(&opts.noColor)

	captureCmd := cli.Command("capture", "Run the accounting command and store its output for replay.")
	captureCmd.Flag("force", "Overwrite snapshots that already exist.").BoolVar(&opts.force)

	command, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("failed to parse commandline arguments: %w", err))
		cli.Usage(os.Args[1:])
		os.Exit(2)
	}

	cfg, err := configs.LoadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := loggers.NewWithWriter(cfg.Log.Level, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger = logger.With().Str(loggers.FieldApp, "effreport").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()
	ctx = logger.WithContext(ctx)

	switch command {
	case summaryCmd.FullCommand():
		err = runSummary(ctx, cfg, opts, os.Stdout)
	case captureCmd.FullCommand():
		err = runCapture(ctx, cfg, opts, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", command, err)
		os.Exit(1)
	}
}

func runSummary(ctx context.Context, cfg *configs.Config, opts options, out io.Writer) error {
	service, err := app.NewEfficiencyService(cfg)
	if err != nil {
		return err
	}

	summary, svcErr := service.ComputeEfficiencySummary(ctx, models.StateFilter(opts.stateFilter))
	if svcErr != nil {
		return svcErr
	}

	if opts.asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	}

	_, err = io.WriteString(out, reports.NewSummaryRenderer(opts.noColor).Render(summary))
	return err
}

func runCapture(ctx context.Context, cfg *configs.Config, opts options, out io.Writer) error {
	capturer, err := app.NewSnapshotCapturer(cfg)
	if err != nil {
		return err
	}

	keys, err := capturer.Capture(ctx, opts.force)
	for _, key := range keys {
		fmt.Fprintf(out, "captured %s\n", filepath.Join(cfg.FileStorage.RootDir, key))
	}
	if errors.Is(err, stores.ErrSnapshotAlreadyExist) {
		return fmt.Errorf("%w (use --force to overwrite)", err)
	}
	return err
}
