package http

import (
	"net/http"

	"job-efficiency/internal/aggregators"
	"job-efficiency/internal/models"
	"job-efficiency/internal/shared/loggers"
	"job-efficiency/internal/shared/validators"
)

type efficiencySummaryHandler struct {
	efficiencyService aggregators.EfficiencyService
}

func NewEfficiencySummaryHandler(efficiencyService aggregators.EfficiencyService) AppHttpHandler {
	return &efficiencySummaryHandler{efficiencyService: efficiencyService}
}

// Handle processes GET /api/job-efficiency-summary?state_filter=completed|total.
func (h *efficiencySummaryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	filter := h.stateFilter(r)

	summary, svcErr := h.efficiencyService.ComputeEfficiencySummary(r.Context(), filter)
	if svcErr != nil {
		return svcErr
	}

	writeSuccessResponse(w, summary)
	return nil
}

// stateFilter reads the state_filter query parameter. "terminal", a missing value and any
// unrecognised value all mean total.
func (h *efficiencySummaryHandler) stateFilter(r *http.Request) models.StateFilter {
	raw := stateFilterParam(r)
	if !validators.IsOneOf(raw, string(models.StateFilterCompleted), string(models.StateFilterTotal)) {
		if raw != "" && raw != "terminal" {
			loggers.Ctx(r.Context()).Debug().
				Str(loggers.FieldStateFilter, raw).
				Msg("unrecognised state filter, using total")
		}
		return models.StateFilterTotal
	}
	return models.StateFilter(raw)
}
