package sources

import (
	"errors"
	"fmt"

	"job-efficiency/internal/stores"
)

const (
	codeCommandFailed     = "SRC_5001"
	codeCommandTimeout    = "SRC_5002"
	codeCommandNotStarted = "SRC_5003"
	codeCommandKilled     = "SRC_5005"
	codeUnknownUser       = "SRC_4001"
	codeSnapshotMissing   = "SRC_4004"
	codeSnapshotFailed    = "SRC_5004"
	codeFetchCancelled    = "SRC_4999"
)

var ErrUnknownUser = errors.New("accounting user is not configured and $USER is not set")

// FetchError is a snapshot fetch failure with a stable code for logs and metrics.
type FetchError struct {
	Code string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the code of a fetch failure, or "" for nil.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Code
	}
	return codeSnapshotFailed
}

func errCommand(runErr *RunError) *FetchError {
	switch {
	case runErr.Timeout:
		return &FetchError{Code: codeCommandTimeout, Err: runErr}
	case runErr.Exited:
		return &FetchError{Code: codeCommandFailed, Err: runErr}
	case runErr.Started:
		return &FetchError{Code: codeCommandKilled, Err: runErr}
	default:
		return &FetchError{Code: codeCommandNotStarted, Err: runErr}
	}
}

func errUnknownUser() *FetchError {
	return &FetchError{Code: codeUnknownUser, Err: ErrUnknownUser}
}

func errSnapshot(cause error) *FetchError {
	if errors.Is(cause, stores.ErrSnapshotNotFound) {
		return &FetchError{Code: codeSnapshotMissing, Err: cause}
	}
	return &FetchError{Code: codeSnapshotFailed, Err: cause}
}

func errCancelled(cause error) *FetchError {
	return &FetchError{Code: codeFetchCancelled, Err: cause}
}
