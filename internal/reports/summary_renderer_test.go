package reports

import (
	"testing"

	"job-efficiency/internal/models"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestSummaryRenderer_Render(t *testing.T) {
	t.Parallel()

	summary := &models.EfficiencySummary{
		StateFilter: models.StateFilterCompleted,
		Last7Days: models.WindowSummary{
			Days:           7,
			JobsConsidered: 2,
			RequestedCPU:   models.RangeSummary{Count: 2, Min: ptr(4.0), Median: ptr(6.0), Max: ptr(8.0)},
			RequestedGPU:   models.RangeSummary{Count: 2, Min: ptr(0.0), Median: ptr(0.5), Max: ptr(1.0)},
			RequestedMemory: models.RangeSummary{
				Count: 1, Min: ptr(4294967296.0), Median: ptr(4294967296.0), Max: ptr(4294967296.0),
			},
			RequestedRuntime: models.RangeSummary{Count: 1, Min: ptr(3600.0), Median: ptr(3600.0), Max: ptr(3600.0)},
			CPU: models.MetricSummary{
				Count: 2, Mean: ptr(62.5), P50: ptr(50.0), P90: ptr(75.0),
				Buckets: models.EfficiencyBuckets{From50To75: 1, From75AndUp: 1},
			},
			Memory: models.MemoryMetricSummary{
				MetricSummary: models.MetricSummary{Count: 1, Mean: ptr(75.0), P50: ptr(75.0), P90: ptr(75.0)},
				MaxUsedBytes:  ptr(int64(3221225472)),
				AvgUsedBytes:  ptr(int64(3221225472)),
			},
		},
		Last30Days: models.WindowSummary{Days: 30},
	}

	out := NewSummaryRenderer(true).Render(summary)

	assert.Contains(t, out, "state filter:")
	assert.Contains(t, out, "completed")
	assert.Contains(t, out, "Last 7 days")
	assert.Contains(t, out, "Last 30 days")
	assert.Contains(t, out, "4 / 6 / 8")
	assert.Contains(t, out, "0 / 0.5 / 1")
	assert.Contains(t, out, "4.0 GiB / 4.0 GiB / 4.0 GiB")
	assert.Contains(t, out, "1:00:00 / 1:00:00 / 1:00:00")
	assert.Contains(t, out, "62.50% / 50.00% / 75.00%")
	assert.Contains(t, out, "3.0 GiB")
	assert.Contains(t, out, "n/a")
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    float64
		expected string
	}{
		{input: 0, expected: "0 B"},
		{input: 1023, expected: "1023 B"},
		{input: 1536, expected: "1.5 KiB"},
		{input: 3 << 30, expected: "3.0 GiB"},
		{input: 1 << 40, expected: "1.0 TiB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, formatBytes(tt.input))
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0:00:00", formatSeconds(0))
	assert.Equal(t, "1:01:01", formatSeconds(3661))
	assert.Equal(t, "48:00:00", formatSeconds(172800))
}

func TestFormatRange_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, notAvailable, formatRange(models.RangeSummary{}, formatCount))
}
