package sources

import (
	"job-efficiency/internal/shared/metrics"
)

// metricCommandDurationSeconds measures accounting command runs, labelled with the failure
// code or "" on success.
var (
	metricCommandDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "command_duration_seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricFetchCoalescedTotal counts fetches answered by a run started for another caller.
	metricFetchCoalescedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "fetch_coalesced_total",
		},
		[]string{"window"},
	)
)
