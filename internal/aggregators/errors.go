package aggregators

import (
	"fmt"

	"job-efficiency/internal/shared/svcerrors"
)

const (
	codeInternalWindowComputationFailed = "EFF_9000"
	codeUnavailableComputationAbandoned = "EFF_5030"
)

// errInternalWindowComputationFailed returns an error when summarizing a window blew up.
func errInternalWindowComputationFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalWindowComputationFailed, fmt.Errorf("windowComputationFailed: %w", cause))
}

// errUnavailableComputationAbandoned returns an error when the caller went away or its deadline
// passed before the summary was ready.
func errUnavailableComputationAbandoned(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeUnavailableComputationAbandoned, "efficiency summary computation was abandoned", fmt.Errorf("computationAbandoned: %w", cause))
}
