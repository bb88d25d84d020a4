package sources

import (
	"context"
	"errors"
	"os"
	"os/user"
	"strings"
	"time"

	"job-efficiency/internal/models"
	"job-efficiency/internal/shared/loggers"
	"job-efficiency/internal/shared/metrics"

	"golang.org/x/sync/singleflight"
)

type CommandSourceOptions struct {
	// Command is the sacct executable, looked up in PATH when not absolute.
	Command string
	// User whose jobs are reported. Empty means the user running the service.
	User    string
	Timeout time.Duration
}

type commandSource struct {
	runner  CommandRunner
	command string
	user    string
	timeout time.Duration
	now     func() time.Time
	group   singleflight.Group
}

const defaultCommandTimeout = time.Minute

func NewCommandSource(runner CommandRunner, opts CommandSourceOptions) SnapshotSource {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultCommandTimeout
	}
	command := opts.Command
	if command == "" {
		command = "sacct"
	}
	return &commandSource{
		runner:  runner,
		command: command,
		user:    opts.User,
		timeout: timeout,
		now:     time.Now,
	}
}

func (s *commandSource) Name() string {
	return SourceCommand
}

// Fetch runs sacct for the window's date range. Identical fetches that overlap in time share
// one run; the run is detached from the caller's cancellation and bounded by the command
// timeout instead, so one impatient caller cannot fail the others.
func (s *commandSource) Fetch(ctx context.Context, window models.LookbackWindow) FetchResult {
	accountUser, err := ResolveUser(s.user)
	if err != nil {
		return FetchResult{Err: errUnknownUser()}
	}

	start, end := window.TimeRange(s.now())
	args := AccountingArgs(accountUser, start, end)
	key := strings.Join(args, " ")

	runCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		return s.run(runCtx, args), nil
	})

	select {
	case <-ctx.Done():
		return FetchResult{Err: errCancelled(ctx.Err())}
	case res := <-ch:
		if res.Shared {
			loggers.Ctx(ctx).Debug().Int(loggers.FieldWindowDays, window.Days()).Msg("shared accounting command result")
			metricFetchCoalescedTotal.WithLabelValues(window.Label()).Inc()
		}
		return res.Val.(FetchResult)
	}
}

func (s *commandSource) run(ctx context.Context, args []string) FetchResult {
	cmdCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	startedAt := time.Now()
	res, err := s.runner.Run(cmdCtx, s.command, args)
	if err == nil {
		metricCommandDurationSeconds.WithLabelValues(metrics.ValueNoError).Observe(time.Since(startedAt).Seconds())
		return FetchResult{Payload: res.Stdout}
	}

	var runErr *RunError
	if !errors.As(err, &runErr) {
		runErr = &RunError{Command: s.command, Err: err}
	}
	fetchErr := errCommand(runErr)
	metricCommandDurationSeconds.WithLabelValues(fetchErr.Code).Observe(time.Since(startedAt).Seconds())

	// Rows printed before a failed exit or a signal are still usable. A timed out run is
	// cut off mid-listing and a command that never started printed nothing.
	if runErr.Started && !runErr.Timeout {
		return FetchResult{Payload: res.Stdout, Err: fetchErr}
	}
	return FetchResult{Err: fetchErr}
}

// ResolveUser returns configured when set, otherwise the user running the process.
func ResolveUser(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	if name := os.Getenv("USER"); name != "" {
		return name, nil
	}
	current, err := user.Current()
	if err != nil || current.Username == "" {
		return "", ErrUnknownUser
	}
	return current.Username, nil
}

// AccountingArgs builds the sacct arguments listing one user's jobs between two dates in
// parsable form, one '|' separated row per job and step.
func AccountingArgs(accountUser, start, end string) []string {
	return []string{
		"--user=" + accountUser,
		"--starttime", start,
		"--endtime", end,
		"--format=" + models.AccountingFormat,
		"--noheader",
		"--parsable2",
	}
}
