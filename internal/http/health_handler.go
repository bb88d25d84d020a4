package http

import (
	"net/http"
	"time"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

type healthHandler struct {
	now func() time.Time
}

func NewHealthHandler() AppHttpHandler {
	return &healthHandler{now: time.Now}
}

// Handle processes GET /health. It reports liveness only and never touches the accounting source.
func (h *healthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now().Unix()})
	return nil
}
