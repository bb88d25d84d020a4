package sources

import (
	"context"
	"time"

	"job-efficiency/internal/models"
	"job-efficiency/internal/shared/loggers"
	"job-efficiency/internal/stores"
)

type fileSource struct {
	store stores.SnapshotStore
	user  string
	now   func() time.Time
}

// NewFileSource replays snapshots captured earlier for user instead of querying the
// accounting database.
func NewFileSource(store stores.SnapshotStore, user string) SnapshotSource {
	return &fileSource{store: store, user: user, now: time.Now}
}

func (s *fileSource) Name() string {
	return SourceFile
}

func (s *fileSource) Fetch(ctx context.Context, window models.LookbackWindow) FetchResult {
	if s.user == "" {
		return FetchResult{Err: errUnknownUser()}
	}

	snapshot, err := s.store.Load(ctx, s.user, window)
	if err != nil {
		return FetchResult{Err: errSnapshot(err)}
	}

	loggers.Ctx(ctx).Debug().
		Int(loggers.FieldWindowDays, window.Days()).
		Dur("snapshot_age", s.now().Sub(snapshot.CapturedAt)).
		Msg("replaying accounting snapshot")

	return FetchResult{Payload: snapshot.Payload}
}
