package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID = "x-request-id"
	headerUserAgent = "user-agent"

	queryStateFilter = "state_filter"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func userAgent(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerUserAgent))
}

func stateFilterParam(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get(queryStateFilter))
}
