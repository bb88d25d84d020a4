package sources

import (
	"context"
	"fmt"
	"time"

	"job-efficiency/internal/models"
	"job-efficiency/internal/shared/loggers"
	"job-efficiency/internal/stores"
)

// SnapshotCapturer records what a live source returns so the file source can replay it later.
type SnapshotCapturer struct {
	source SnapshotSource
	store  stores.SnapshotStore
	user   string
	now    func() time.Time
}

func NewSnapshotCapturer(source SnapshotSource, store stores.SnapshotStore, user string) *SnapshotCapturer {
	return &SnapshotCapturer{source: source, store: store, user: user, now: time.Now}
}

// Capture fetches every summary window and stores it, returning the keys written.
// A window whose fetch reported any failure is not stored and stops the capture, since a
// partial payload replayed later would look like a complete one.
func (c *SnapshotCapturer) Capture(ctx context.Context, overwrite bool) ([]string, error) {
	logger := loggers.Ctx(ctx)
	keys := make([]string, 0, len(models.SummaryWindows))

	for _, window := range models.SummaryWindows {
		result := c.source.Fetch(ctx, window)
		if result.Err != nil {
			return keys, fmt.Errorf("failed to fetch %s: %w", window.Label(), result.Err)
		}

		snapshot := &models.AccountingSnapshot{
			User:       c.user,
			Window:     window,
			Payload:    result.Payload,
			CapturedAt: c.now(),
		}
		key, err := c.store.Save(ctx, snapshot, overwrite)
		if err != nil {
			return keys, fmt.Errorf("failed to save %s: %w", window.Label(), err)
		}

		logger.Info().
			Int(loggers.FieldWindowDays, window.Days()).
			Str(loggers.FieldSource, c.source.Name()).
			Str("key", key).
			Int("payload_bytes", len(result.Payload)).
			Msg("accounting snapshot captured")
		keys = append(keys, key)
	}

	return keys, nil
}
