package aggregators

import (
	"job-efficiency/internal/shared/metrics"
)

const (
	fieldWindow      = "window"
	fieldStateFilter = "state_filter"
	fieldSource      = "source"
)

// metricWindowComputationDurationSeconds measures how long one window takes end to end,
// snapshot fetch included. The window label is "last-7-days" or "last-30-days".
//
// metricJobsConsidered is the number of jobs that counted towards the most recent summary of
// a window under a filter. A sudden drop to 0 with fetch failures rising usually means the
// accounting command stopped working rather than that nobody ran jobs.
//
// metricSnapshotFetchFailedTotal counts snapshot fetches that failed, by source and error code.
// The summary is still served from whatever was returned.
var (
	metricWindowComputationDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "window_computation_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{fieldWindow, fieldStateFilter},
	)

	metricJobsConsidered = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "jobs_considered",
		},
		[]string{fieldWindow, fieldStateFilter},
	)

	metricSnapshotFetchFailedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "snapshot_fetch_failed_total",
		},
		[]string{fieldSource, fieldWindow, metrics.FieldErrorCode},
	)
)
