package aggregators

import (
	"context"
	"fmt"
	"time"

	"job-efficiency/internal/models"
	"job-efficiency/internal/shared/loggers"
	"job-efficiency/internal/shared/svcerrors"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=efficiency_service.go -destination=./mocks/efficiency_service_mock.go -package=mocks
type EfficiencyService interface {
	// ComputeEfficiencySummary reports the caller's job efficiency over the last 7 and 30 days.
	// Any filter other than completed is treated as total.
	ComputeEfficiencySummary(ctx context.Context, filter models.StateFilter) (*models.EfficiencySummary, *svcerrors.ServiceError)
}

type efficiencyService struct {
	windowAggregator WindowAggregator
}

func NewEfficiencyService(windowAggregator WindowAggregator) EfficiencyService {
	return &efficiencyService{windowAggregator: windowAggregator}
}

func (s *efficiencyService) ComputeEfficiencySummary(ctx context.Context, filter models.StateFilter) (*models.EfficiencySummary, *svcerrors.ServiceError) {
	filter = NormalizeStateFilter(filter)
	logger := loggers.Ctx(ctx)

	if err := ctx.Err(); err != nil {
		return nil, errUnavailableComputationAbandoned(err)
	}

	windows := models.SummaryWindows
	summaries := make([]models.WindowSummary, len(windows))

	g, gctx := errgroup.WithContext(ctx)
	for i, window := range windows {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("window %s: panic: %v", window.Label(), r)
				}
			}()

			startedAt := time.Now()
			summaries[i] = s.windowAggregator.Aggregate(gctx, window, filter)
			metricWindowComputationDurationSeconds.
				WithLabelValues(window.Label(), string(filter)).
				Observe(time.Since(startedAt).Seconds())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errInternalWindowComputationFailed(err)
	}

	// Fetches swallow cancellation, so the summaries may be built from nothing.
	if err := ctx.Err(); err != nil {
		return nil, errUnavailableComputationAbandoned(err)
	}

	logger.Debug().
		Str(loggers.FieldStateFilter, string(filter)).
		Int("last_7_days_jobs", summaries[0].JobsConsidered).
		Int("last_30_days_jobs", summaries[1].JobsConsidered).
		Msg("efficiency summary computed")

	return &models.EfficiencySummary{
		StateFilter: filter,
		Last7Days:   summaries[0],
		Last30Days:  summaries[1],
	}, nil
}

// NormalizeStateFilter maps every filter other than completed to total.
func NormalizeStateFilter(filter models.StateFilter) models.StateFilter {
	if filter == models.StateFilterCompleted {
		return models.StateFilterCompleted
	}
	return models.StateFilterTotal
}
