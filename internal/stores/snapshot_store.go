package stores

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"job-efficiency/internal/models"
	"job-efficiency/internal/shared/filestorages"
)

var (
	ErrSnapshotAlreadyExist = errors.New("snapshot already exists")
	ErrSnapshotNotFound     = errors.New("snapshot not found")
	ErrInvalidSnapshotUser  = errors.New("invalid snapshot user")
)

// SnapshotStore keeps captured accounting output under "snapshots/<user>/last-<days>-days.txt"
// so that summaries can be replayed without access to the accounting database.
//
// Save without overwrite is an atomic create-if-not-exists: when two captures race for the
// same user and window, exactly one wins and the other gets ErrSnapshotAlreadyExist.
//
//go:generate mockgen -source=snapshot_store.go -destination=./mocks/snapshot_store_mock.go -package=mocks
type SnapshotStore interface {
	Save(ctx context.Context, snapshot *models.AccountingSnapshot, overwrite bool) (string, error)
	Load(ctx context.Context, user string, window models.LookbackWindow) (*models.AccountingSnapshot, error)
}

type snapshotStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewSnapshotStore(fileStorage filestorages.FileStorage) SnapshotStore {
	return &snapshotStore{fileStorage: fileStorage, dir: "snapshots"}
}

// Save stores the snapshot payload and returns its key.
func (s *snapshotStore) Save(ctx context.Context, snapshot *models.AccountingSnapshot, overwrite bool) (string, error) {
	key, err := s.getKey(snapshot.User, snapshot.Window)
	if err != nil {
		return "", err
	}

	_, err = s.fileStorage.Put(ctx, key, strings.NewReader(snapshot.Payload), filestorages.PutOptions{AllowOverwrite: overwrite})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return key, ErrSnapshotAlreadyExist
		}
		return key, fmt.Errorf("failed to put snapshot: %w", err)
	}
	return key, nil
}

// Load reads a stored snapshot. CapturedAt is the time the snapshot file was written.
func (s *snapshotStore) Load(ctx context.Context, user string, window models.LookbackWindow) (*models.AccountingSnapshot, error) {
	key, err := s.getKey(user, window)
	if err != nil {
		return nil, err
	}

	info, err := s.fileStorage.Stat(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, key)
		}
		return nil, fmt.Errorf("failed to stat snapshot: %w", err)
	}

	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, key)
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	return &models.AccountingSnapshot{
		User:       user,
		Window:     window,
		Payload:    string(data),
		CapturedAt: info.ModifiedAt,
	}, nil
}

func (s *snapshotStore) getKey(user string, window models.LookbackWindow) (string, error) {
	if user == "" || strings.ContainsAny(user, `/\`) || user == "." || user == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidSnapshotUser, user)
	}
	return fmt.Sprintf("%s/%s/%s.txt", s.dir, user, window.Label()), nil
}
