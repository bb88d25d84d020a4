package summarizers

import (
	"slices"

	"job-efficiency/internal/models"
	"job-efficiency/internal/shared/rounding"

	"github.com/shopspring/decimal"
)

const (
	ratioP50 = 0.50
	ratioP90 = 0.90
)

// SummarizeMetric describes a list of efficiency percentages. An empty list yields a zero
// count, null statistics and empty buckets.
func SummarizeMetric(samples []float64) models.MetricSummary {
	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	summary := models.MetricSummary{
		Count:   len(sorted),
		P50:     percentile(sorted, ratioP50),
		P90:     percentile(sorted, ratioP90),
		Buckets: bucketize(sorted),
	}
	if len(sorted) > 0 {
		mean := rounding.Hundredths(sum(sorted) / float64(len(sorted)))
		summary.Mean = &mean
	}
	return summary
}

// SummarizeMemoryMetric is SummarizeMetric plus the largest and the average memory actually
// used. Non-positive byte samples are ignored.
func SummarizeMemoryMetric(samples []float64, usedBytes []int64) models.MemoryMetricSummary {
	summary := models.MemoryMetricSummary{MetricSummary: SummarizeMetric(samples)}

	var (
		total    decimal.Decimal
		count    int
		maxBytes int64
	)
	for _, b := range usedBytes {
		if b <= 0 {
			continue
		}
		total = total.Add(decimal.NewFromInt(b))
		count++
		maxBytes = max(maxBytes, b)
	}
	if count == 0 {
		return summary
	}

	avgBytes := rounding.Integer(total.InexactFloat64() / float64(count))
	summary.MaxUsedBytes = &maxBytes
	summary.AvgUsedBytes = &avgBytes
	return summary
}

// SummarizeRange describes raw requested quantities with their min, median and max. The
// median of an even number of values is the mean of the middle two.
func SummarizeRange(samples []int64) models.RangeSummary {
	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	count := len(sorted)
	if count == 0 {
		return models.RangeSummary{}
	}

	mid := count / 2
	median := float64(sorted[mid])
	if count%2 == 0 {
		median = (float64(sorted[mid-1]) + float64(sorted[mid])) / 2.0
	}
	minValue := float64(sorted[0])
	maxValue := float64(sorted[count-1])

	return models.RangeSummary{
		Count:  count,
		Min:    &minValue,
		Median: &median,
		Max:    &maxValue,
	}
}

// percentile picks the element at round((n-1)*ratio), rounding halves away from zero, and
// rounds it to 2 decimals. sorted must be ascending.
func percentile(sorted []float64, ratio float64) *float64 {
	if len(sorted) == 0 {
		return nil
	}
	idx := rounding.Integer(float64(len(sorted)-1) * ratio)
	value := rounding.Hundredths(sorted[idx])
	return &value
}

func bucketize(values []float64) models.EfficiencyBuckets {
	var buckets models.EfficiencyBuckets
	for _, v := range values {
		switch {
		case v < 25:
			buckets.Below25++
		case v < 50:
			buckets.From25To50++
		case v < 75:
			buckets.From50To75++
		default:
			buckets.From75AndUp++
		}
	}
	return buckets
}

// sum adds values as decimals so that long lists of percentages do not drift.
func sum(values []float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.InexactFloat64()
}
