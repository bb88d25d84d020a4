package models

// Job states as printed by sacct.
const (
	JobStateRunning     = "RUNNING"
	JobStatePending     = "PENDING"
	JobStateConfiguring = "CONFIGURING"
	JobStateCompleting  = "COMPLETING"
	JobStateSuspended   = "SUSPENDED"

	JobStateCompleted   = "COMPLETED"
	JobStateFailed      = "FAILED"
	JobStateCancelled   = "CANCELLED"
	JobStateTimeout     = "TIMEOUT"
	JobStateOutOfMemory = "OUT_OF_MEMORY"
	JobStatePreempted   = "PREEMPTED"
	JobStateNodeFail    = "NODE_FAIL"
	JobStateDeadline    = "DEADLINE"
	JobStateBootFail    = "BOOT_FAIL"
)

// StateFilter selects which finished jobs count towards a summary.
type StateFilter string

const (
	StateFilterCompleted StateFilter = "completed"
	StateFilterTotal     StateFilter = "total"
)

// IsInFlight reports whether a job has not finished yet and so has nothing to measure.
func IsInFlight(state string) bool {
	switch state {
	case JobStateRunning, JobStatePending, JobStateConfiguring, JobStateCompleting:
		return true
	}
	return false
}

// IsTerminalState reports whether state is one of the finished states sacct reports.
func IsTerminalState(state string) bool {
	switch state {
	case JobStateCompleted, JobStateFailed, JobStateCancelled, JobStateTimeout, JobStateOutOfMemory,
		JobStatePreempted, JobStateNodeFail, JobStateDeadline, JobStateBootFail:
		return true
	}
	return false
}

// Admits reports whether a job in the given (upper-cased) state counts under the filter.
// Any filter other than completed behaves as total. Under total, states that are neither
// active nor a known terminal state are admitted as well.
func (f StateFilter) Admits(state string) bool {
	if f == StateFilterCompleted {
		return state == JobStateCompleted
	}

	switch state {
	case JobStateRunning, JobStatePending, JobStateConfiguring, JobStateCompleting, JobStateSuspended:
		return false
	}
	// Unrecognised states count as finished.
	return true
}
