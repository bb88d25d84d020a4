package aggregators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"job-efficiency/internal/calculators"
	calculatormocks "job-efficiency/internal/calculators/mocks"
	"job-efficiency/internal/extractors"
	extractormocks "job-efficiency/internal/extractors/mocks"
	"job-efficiency/internal/models"
	"job-efficiency/internal/sources"
	sourcemocks "job-efficiency/internal/sources/mocks"
	"job-efficiency/internal/summarizers"
	summarizermocks "job-efficiency/internal/summarizers/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const gib = int64(1) << 30

func newTestWindowAggregator(source sources.SnapshotSource) WindowAggregator {
	return NewWindowAggregator(
		source,
		extractors.NewRecordExtractor(),
		calculators.NewEfficiencyCalculator(),
		summarizers.NewWindowSummarizer(),
	)
}

func TestWindowAggregator_Aggregate_StepMemoryAndEfficiencies(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := sourcemocks.NewMockSnapshotSource(ctrl)
	aggregator := newTestWindowAggregator(mockSource)
	ctx := context.Background()

	payload := strings.Join([]string{
		"100|COMPLETED|3600|60|4|1|02:00:00|2G|4G|mem=2G|cpu=4",
		"100.0|COMPLETED|3600|60|4|1|02:00:00|3G|4G|mem=3G|cpu=4",
	}, "\n")
	mockSource.EXPECT().Fetch(ctx, models.WindowLast7Days).Return(sources.FetchResult{Payload: payload})

	summary := aggregator.Aggregate(ctx, models.WindowLast7Days, models.StateFilterTotal)

	assert.Equal(t, 7, summary.Days)
	assert.Equal(t, 1, summary.JobsConsidered)
	require.NotNil(t, summary.CPU.P50)
	assert.Equal(t, 50.0, *summary.CPU.P50)
	require.NotNil(t, summary.Memory.P50)
	assert.Equal(t, 75.0, *summary.Memory.P50)
	require.NotNil(t, summary.Runtime.P50)
	assert.Equal(t, 100.0, *summary.Runtime.P50)
	require.NotNil(t, summary.Memory.MaxUsedBytes)
	assert.Equal(t, 3*gib, *summary.Memory.MaxUsedBytes)
	assert.Equal(t, 3*gib, *summary.Memory.AvgUsedBytes)
	assert.Equal(t, float64(4*gib), *summary.RequestedMemory.Median)
	assert.Equal(t, 4.0, *summary.RequestedCPU.Max)
	assert.Equal(t, 0.0, *summary.RequestedGPU.Max)
	assert.Equal(t, 3600.0, *summary.RequestedRuntime.Min)
}

func TestWindowAggregator_Aggregate_RunningJobsNeverCount(t *testing.T) {
	t.Parallel()

	payload := strings.Join([]string{
		"1|RUNNING|100|60|4|1|00:01:00|1G|2G||gres/gpu=1",
		"1.0|RUNNING|100|60|4|1|00:01:00|1G|2G||",
		"2|COMPLETED|100|60|4|1|00:01:00|1G|2G||",
	}, "\n")

	for _, filter := range []models.StateFilter{models.StateFilterCompleted, models.StateFilterTotal} {
		for _, window := range models.SummaryWindows {
			t.Run(string(filter)+"/"+window.Label(), func(t *testing.T) {
				t.Parallel()

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				mockSource := sourcemocks.NewMockSnapshotSource(ctrl)
				mockSource.EXPECT().Fetch(gomock.Any(), window).Return(sources.FetchResult{Payload: payload})

				summary := newTestWindowAggregator(mockSource).Aggregate(context.Background(), window, filter)

				assert.Equal(t, 1, summary.JobsConsidered)
				assert.Equal(t, 1, summary.RequestedGPU.Count)
				assert.Equal(t, 0.0, *summary.RequestedGPU.Max, "the running job's gpu request must not show up")
			})
		}
	}
}

func TestWindowAggregator_Aggregate_FilterSelectsStates(t *testing.T) {
	t.Parallel()

	payload := strings.Join([]string{
		"1|COMPLETED|100|60|1|1|00:01:00|1G|2G||",
		"2|FAILED|100|60|1|1|00:01:00|1G|2G||",
		"3|TIMEOUT|3600|60|1|1|00:01:00|1G|2G||",
		"4|SUSPENDED|100|60|1|1|00:01:00|1G|2G||",
	}, "\n")

	tests := []struct {
		filter   models.StateFilter
		expected int
	}{
		{filter: models.StateFilterCompleted, expected: 1},
		{filter: models.StateFilterTotal, expected: 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSource := sourcemocks.NewMockSnapshotSource(ctrl)
			mockSource.EXPECT().Fetch(gomock.Any(), models.WindowLast30Days).Return(sources.FetchResult{Payload: payload})

			summary := newTestWindowAggregator(mockSource).Aggregate(context.Background(), models.WindowLast30Days, tt.filter)

			assert.Equal(t, tt.expected, summary.JobsConsidered)
			assert.Equal(t, tt.expected, summary.CPU.Count)
		})
	}
}

func TestWindowAggregator_Aggregate_FetchFailureStillSummarizesPayload(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := sourcemocks.NewMockSnapshotSource(ctrl)
	mockSource.EXPECT().Name().Return(sources.SourceCommand).AnyTimes()
	mockSource.EXPECT().
		Fetch(gomock.Any(), models.WindowLast7Days).
		Return(sources.FetchResult{
			Payload: "1|COMPLETED|100|60|1|1|00:01:00|1G|2G||\n",
			Err:     &sources.FetchError{Code: "SRC_5001", Err: errors.New("exit status 1")},
		})

	summary := newTestWindowAggregator(mockSource).Aggregate(context.Background(), models.WindowLast7Days, models.StateFilterTotal)

	assert.Equal(t, 1, summary.JobsConsidered)
}

func TestWindowAggregator_Aggregate_FetchFailureWithoutPayload(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := sourcemocks.NewMockSnapshotSource(ctrl)
	mockSource.EXPECT().Name().Return(sources.SourceFile).AnyTimes()
	mockSource.EXPECT().
		Fetch(gomock.Any(), models.WindowLast30Days).
		Return(sources.FetchResult{Err: errors.New("snapshot missing")})

	summary := newTestWindowAggregator(mockSource).Aggregate(context.Background(), models.WindowLast30Days, models.StateFilterCompleted)

	assert.Equal(t, models.WindowSummary{Days: 30}, summary)
}

func TestWindowAggregator_Aggregate_PipelineWiring(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := sourcemocks.NewMockSnapshotSource(ctrl)
	mockExtractor := extractormocks.NewMockRecordExtractor(ctrl)
	mockCalculator := calculatormocks.NewMockEfficiencyCalculator(ctrl)
	mockSummarizer := summarizermocks.NewMockWindowSummarizer(ctrl)

	aggregator := NewWindowAggregator(mockSource, mockExtractor, mockCalculator, mockSummarizer)

	records := []*models.JobRecord{{JobID: "1", State: models.JobStateCompleted}}
	samples := &calculators.Samples{JobsConsidered: 1}
	expected := models.WindowSummary{Days: 7, JobsConsidered: 1}

	gomock.InOrder(
		mockSource.EXPECT().Fetch(gomock.Any(), models.WindowLast7Days).Return(sources.FetchResult{Payload: "raw"}),
		mockExtractor.EXPECT().Extract("raw").Return(records),
		mockCalculator.EXPECT().Accumulate(gomock.Any(), records, models.StateFilterCompleted).Return(samples),
		mockSummarizer.EXPECT().Summarize(models.WindowLast7Days, samples).Return(expected),
	)

	summary := aggregator.Aggregate(context.Background(), models.WindowLast7Days, models.StateFilterCompleted)

	assert.Equal(t, expected, summary)
}
