package calculators

import (
	"context"

	"job-efficiency/internal/models"
	"job-efficiency/internal/shared/loggers"
	"job-efficiency/internal/shared/rounding"
)

// JobEfficiency holds the efficiency percentages of one job. A percentage is only set when
// its Has flag is true.
type JobEfficiency struct {
	CPU        float64
	HasCPU     bool
	Memory     float64
	HasMemory  bool
	Runtime    float64
	HasRuntime bool
}

// Samples are the per-job values collected for one window, in record order.
type Samples struct {
	JobsConsidered int

	CPUEfficiency     []float64
	MemoryEfficiency  []float64
	RuntimeEfficiency []float64
	MemoryUsedBytes   []int64

	RequestedCPU            []int64
	RequestedGPU            []int64
	RequestedMemoryBytes    []int64
	RequestedRuntimeSeconds []int64
}

//go:generate mockgen -source=efficiency_calculator.go -destination=./mocks/efficiency_calculator_mock.go -package=mocks
type EfficiencyCalculator interface {
	// Evaluate computes the efficiency percentages of a single job.
	Evaluate(record *models.JobRecord) JobEfficiency
	// Accumulate collects samples from every record admitted by filter.
	Accumulate(ctx context.Context, records []*models.JobRecord, filter models.StateFilter) *Samples
}

type efficiencyCalculator struct{}

func NewEfficiencyCalculator() EfficiencyCalculator {
	return &efficiencyCalculator{}
}

// Percentage returns actual as a percentage of requested, rounded to 2 decimals. It reports
// false when requested is not positive. Values above 100 are kept as is.
func Percentage(actual, requested float64) (float64, bool) {
	if requested <= 0 {
		return 0, false
	}
	return rounding.Hundredths(actual / requested * 100.0), true
}

// Evaluate derives CPU and runtime efficiency only for jobs that actually ran, and memory
// efficiency whenever the requested memory is known.
func (c *efficiencyCalculator) Evaluate(record *models.JobRecord) JobEfficiency {
	var eff JobEfficiency

	if record.ElapsedSeconds > 0 {
		allocatedCPUSeconds := record.ElapsedSeconds * max(record.CPUCount, 1)
		eff.CPU, eff.HasCPU = Percentage(record.TotalCPUSeconds, float64(allocatedCPUSeconds))
		eff.Runtime, eff.HasRuntime = Percentage(float64(record.ElapsedSeconds), float64(record.TimelimitSeconds()))
	}

	if record.RequestedMemoryKnown {
		eff.Memory, eff.HasMemory = Percentage(float64(record.MaxRSSBytes), float64(record.RequestedMemoryBytes))
	}

	return eff
}

func (c *efficiencyCalculator) Accumulate(ctx context.Context, records []*models.JobRecord, filter models.StateFilter) *Samples {
	logger := loggers.Ctx(ctx)
	samples := &Samples{}

	for _, record := range records {
		if !filter.Admits(record.State) {
			continue
		}
		if !models.IsTerminalState(record.State) {
			logger.Debug().
				Str(loggers.FieldJobID, record.JobID).
				Str(loggers.FieldJobState, record.State).
				Str(loggers.FieldStateFilter, string(filter)).
				Msg("counting job with unrecognised state")
		}

		samples.JobsConsidered++
		c.collectRequested(samples, record)

		eff := c.Evaluate(record)
		if eff.HasCPU {
			samples.CPUEfficiency = append(samples.CPUEfficiency, eff.CPU)
		}
		if eff.HasRuntime {
			samples.RuntimeEfficiency = append(samples.RuntimeEfficiency, eff.Runtime)
		}
		if eff.HasMemory {
			samples.MemoryEfficiency = append(samples.MemoryEfficiency, eff.Memory)
		}
		if record.MaxRSSBytes > 0 {
			samples.MemoryUsedBytes = append(samples.MemoryUsedBytes, record.MaxRSSBytes)
		}
	}

	return samples
}

func (c *efficiencyCalculator) collectRequested(samples *Samples, record *models.JobRecord) {
	if record.CPUCount > 0 {
		samples.RequestedCPU = append(samples.RequestedCPU, record.CPUCount)
	}
	if record.RequestedGPUCount >= 0 {
		samples.RequestedGPU = append(samples.RequestedGPU, record.RequestedGPUCount)
	}
	if timelimit := record.TimelimitSeconds(); timelimit > 0 {
		samples.RequestedRuntimeSeconds = append(samples.RequestedRuntimeSeconds, timelimit)
	}
	if record.RequestedMemoryKnown && record.RequestedMemoryBytes > 0 {
		samples.RequestedMemoryBytes = append(samples.RequestedMemoryBytes, record.RequestedMemoryBytes)
	}
}
