package aggregators

import (
	"context"

	"job-efficiency/internal/calculators"
	"job-efficiency/internal/extractors"
	"job-efficiency/internal/models"
	"job-efficiency/internal/shared/loggers"
	"job-efficiency/internal/sources"
	"job-efficiency/internal/summarizers"
)

//go:generate mockgen -source=window_aggregator.go -destination=./mocks/window_aggregator_mock.go -package=mocks
type WindowAggregator interface {
	// Aggregate summarizes the jobs of one lookback window. A failed snapshot fetch is logged
	// and counted, and whatever payload came back is summarized anyway.
	Aggregate(ctx context.Context, window models.LookbackWindow, filter models.StateFilter) models.WindowSummary
}

type windowAggregator struct {
	source     sources.SnapshotSource
	extractor  extractors.RecordExtractor
	calculator calculators.EfficiencyCalculator
	summarizer summarizers.WindowSummarizer
}

func NewWindowAggregator(
	source sources.SnapshotSource,
	extractor extractors.RecordExtractor,
	calculator calculators.EfficiencyCalculator,
	summarizer summarizers.WindowSummarizer,
) WindowAggregator {
	return &windowAggregator{
		source:     source,
		extractor:  extractor,
		calculator: calculator,
		summarizer: summarizer,
	}
}

func (a *windowAggregator) Aggregate(ctx context.Context, window models.LookbackWindow, filter models.StateFilter) models.WindowSummary {
	logger := loggers.Ctx(ctx).With().
		Int(loggers.FieldWindowDays, window.Days()).
		Str(loggers.FieldStateFilter, string(filter)).
		Logger()

	fetched := a.source.Fetch(ctx, window)
	if fetched.Err != nil {
		errorCode := sources.ErrorCode(fetched.Err)
		logger.Warn().
			Err(fetched.Err).
			Str(loggers.FieldSource, a.source.Name()).
			Str(loggers.FieldErrorCode, errorCode).
			Int("payload_bytes", len(fetched.Payload)).
			Msg("accounting snapshot fetch failed, summarizing what was returned")
		metricSnapshotFetchFailedTotal.WithLabelValues(a.source.Name(), window.Label(), errorCode).Inc()
	}

	records := a.extractor.Extract(fetched.Payload)
	samples := a.calculator.Accumulate(logger.WithContext(ctx), records, filter)
	summary := a.summarizer.Summarize(window, samples)

	logger.Debug().
		Int(loggers.FieldJobsConsidered, summary.JobsConsidered).
		Int("records", len(records)).
		Msg("window summarized")
	metricJobsConsidered.WithLabelValues(window.Label(), string(filter)).Set(float64(summary.JobsConsidered))

	return summary
}
