package models

// EfficiencySummary is the efficiency report for the caller's jobs over every summary window.
//
// Example JSON (abridged):
//
//	{
//	  "state_filter": "completed",
//	  "last_7_days": {
//	    "days": 7,
//	    "jobs_considered": 2,
//	    "requested_cpu": {"count": 2, "min": 4, "median": 6, "max": 8},
//	    "requested_gpu": {"count": 2, "min": 0, "median": 0.5, "max": 1},
//	    "requested_memory": {"count": 2, "min": 4294967296, "median": 6442450944, "max": 8589934592},
//	    "requested_runtime": {"count": 2, "min": 3600, "median": 5400, "max": 7200},
//	    "cpu": {"count": 2, "mean": 62.5, "p50": 75, "p90": 75,
//	            "buckets": {"0-25%": 0, "25-50%": 1, "50-75%": 0, "75-100%": 1}},
//	    "memory": {"count": 2, "mean": 60, "p50": 75, "p90": 75,
//	               "buckets": {"0-25%": 0, "25-50%": 1, "50-75%": 0, "75-100%": 1},
//	               "max_used_bytes": 3221225472, "avg_used_bytes": 3758096384},
//	    "runtime": {"count": 0, "mean": null, "p50": null, "p90": null,
//	                "buckets": {"0-25%": 0, "25-50%": 0, "50-75%": 0, "75-100%": 0}}
//	  },
//	  "last_30_days": {...}
//	}
type EfficiencySummary struct {
	StateFilter StateFilter   `json:"state_filter"`
	Last7Days   WindowSummary `json:"last_7_days"`
	Last30Days  WindowSummary `json:"last_30_days"`
}

// WindowSummary holds the requested-resource ranges and efficiency distributions of one lookback window.
type WindowSummary struct {
	Days             int                 `json:"days"`
	JobsConsidered   int                 `json:"jobs_considered"`
	RequestedCPU     RangeSummary        `json:"requested_cpu"`
	RequestedGPU     RangeSummary        `json:"requested_gpu"`
	RequestedMemory  RangeSummary        `json:"requested_memory"`
	RequestedRuntime RangeSummary        `json:"requested_runtime"`
	CPU              MetricSummary       `json:"cpu"`
	Memory           MemoryMetricSummary `json:"memory"`
	Runtime          MetricSummary       `json:"runtime"`
}

// MetricSummary is the distribution of one efficiency percentage. Nil fields encode as null.
type MetricSummary struct {
	Count   int               `json:"count"`
	Mean    *float64          `json:"mean"`
	P50     *float64          `json:"p50"`
	P90     *float64          `json:"p90"`
	Buckets EfficiencyBuckets `json:"buckets"`
}

// MemoryMetricSummary adds observed memory usage to the memory efficiency distribution.
type MemoryMetricSummary struct {
	MetricSummary
	MaxUsedBytes *int64 `json:"max_used_bytes"`
	AvgUsedBytes *int64 `json:"avg_used_bytes"`
}

// EfficiencyBuckets counts percentages in four half-open ranges. The last range also holds
// everything above 100%.
type EfficiencyBuckets struct {
	Below25     int `json:"0-25%"`
	From25To50  int `json:"25-50%"`
	From50To75  int `json:"50-75%"`
	From75AndUp int `json:"75-100%"`
}

func (b EfficiencyBuckets) Total() int {
	return b.Below25 + b.From25To50 + b.From50To75 + b.From75AndUp
}

// RangeSummary describes raw requested values. Nil fields encode as null.
type RangeSummary struct {
	Count  int      `json:"count"`
	Min    *float64 `json:"min"`
	Median *float64 `json:"median"`
	Max    *float64 `json:"max"`
}
