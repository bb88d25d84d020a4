package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateFilter_Admits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		state     string
		completed bool
	}{
		{name: "completed", state: JobStateCompleted, completed: true},
		{name: "failed", state: JobStateFailed},
		{name: "cancelled", state: JobStateCancelled},
		{name: "timeout", state: JobStateTimeout},
		{name: "out of memory", state: JobStateOutOfMemory},
		{name: "preempted", state: JobStatePreempted},
		{name: "node fail", state: JobStateNodeFail},
		{name: "deadline", state: JobStateDeadline},
		{name: "boot fail", state: JobStateBootFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, StateFilterTotal.Admits(tt.state), "total should admit %s", tt.state)
			assert.Equal(t, tt.completed, StateFilterCompleted.Admits(tt.state))
		})
	}
}

func TestStateFilter_Admits_ActiveStatesNeverCount(t *testing.T) {
	t.Parallel()

	for _, state := range []string{JobStateRunning, JobStatePending, JobStateConfiguring, JobStateCompleting, JobStateSuspended} {
		assert.False(t, StateFilterTotal.Admits(state), "total should not admit %s", state)
		assert.False(t, StateFilterCompleted.Admits(state), "completed should not admit %s", state)
	}
}

func TestStateFilter_Admits_UnrecognisedStateCountsUnderTotal(t *testing.T) {
	t.Parallel()

	assert.True(t, StateFilterTotal.Admits("CANCELLED BY 1234"))
	assert.True(t, StateFilterTotal.Admits("REQUEUED"))
	assert.False(t, StateFilterCompleted.Admits("CANCELLED BY 1234"))
}

func TestStateFilter_Admits_UnknownFilterBehavesAsTotal(t *testing.T) {
	t.Parallel()

	unknown := StateFilter("terminal")
	assert.True(t, unknown.Admits(JobStateFailed))
	assert.False(t, unknown.Admits(JobStateRunning))
}

func TestIsInFlight(t *testing.T) {
	t.Parallel()

	assert.True(t, IsInFlight(JobStateRunning))
	assert.True(t, IsInFlight(JobStatePending))
	assert.True(t, IsInFlight(JobStateConfiguring))
	assert.True(t, IsInFlight(JobStateCompleting))
	assert.False(t, IsInFlight(JobStateSuspended))
	assert.False(t, IsInFlight(JobStateCompleted))
}

func TestMainJobID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "100", MainJobID("100"))
	assert.Equal(t, "100", MainJobID("100.0"))
	assert.Equal(t, "100", MainJobID("100.batch"))
	assert.Equal(t, "100_3", MainJobID("100_3.extern"))
	assert.True(t, IsStepJobID("100.extern"))
	assert.False(t, IsStepJobID("100"))
}
