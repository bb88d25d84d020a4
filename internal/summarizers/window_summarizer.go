package summarizers

import (
	"job-efficiency/internal/calculators"
	"job-efficiency/internal/models"
)

//go:generate mockgen -source=window_summarizer.go -destination=./mocks/window_summarizer_mock.go -package=mocks
type WindowSummarizer interface {
	// Summarize turns the samples collected for a window into its report section.
	Summarize(window models.LookbackWindow, samples *calculators.Samples) models.WindowSummary
}

type windowSummarizer struct{}

func NewWindowSummarizer() WindowSummarizer {
	return &windowSummarizer{}
}

func (s *windowSummarizer) Summarize(window models.LookbackWindow, samples *calculators.Samples) models.WindowSummary {
	return models.WindowSummary{
		Days:             window.Days(),
		JobsConsidered:   samples.JobsConsidered,
		RequestedCPU:     SummarizeRange(samples.RequestedCPU),
		RequestedGPU:     SummarizeRange(samples.RequestedGPU),
		RequestedMemory:  SummarizeRange(samples.RequestedMemoryBytes),
		RequestedRuntime: SummarizeRange(samples.RequestedRuntimeSeconds),
		CPU:              SummarizeMetric(samples.CPUEfficiency),
		Memory:           SummarizeMemoryMetric(samples.MemoryEfficiency, samples.MemoryUsedBytes),
		Runtime:          SummarizeMetric(samples.RuntimeEfficiency),
	}
}
