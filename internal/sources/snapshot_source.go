package sources

import (
	"context"

	"job-efficiency/internal/models"
)

const (
	SourceCommand = "command"
	SourceFile    = "file"
)

// FetchResult carries the raw accounting text of one window. Payload may be non-empty even
// when Err is set, e.g. when the accounting command printed rows and then exited non-zero.
type FetchResult struct {
	Payload string
	Err     error
}

//go:generate mockgen -source=snapshot_source.go -destination=./mocks/snapshot_source_mock.go -package=mocks
type SnapshotSource interface {
	// Fetch never fails outright: failures are reported in FetchResult.Err.
	Fetch(ctx context.Context, window models.LookbackWindow) FetchResult
	// Name identifies the source in logs and metrics.
	Name() string
}
