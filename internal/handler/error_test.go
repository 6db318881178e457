package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"coinwatch-api/internal/aggregate"
	"coinwatch-api/internal/analysis"
	"coinwatch-api/internal/logic"
	"coinwatch-api/internal/store"
	"coinwatch-api/pkg/feed"
)

func doRespond(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	respond(w, r, nil, err)
	return w
}

func TestRespond_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", store.ErrNotFound, http.StatusNotFound},
		{"no assets", analysis.ErrNoAssets, http.StatusNotFound},
		{"symbol taken", fmt.Errorf("store.UpdateAsset: %w", store.ErrSymbolTaken), http.StatusConflict},
		{"bad request", fmt.Errorf("%w: symbol is required", logic.ErrBadRequest), http.StatusBadRequest},
		{"invalid page", aggregate.ErrInvalidPage, http.StatusBadRequest},
		{"invalid budget", analysis.ErrInvalidBudget, http.StatusBadRequest},
		{"feed down", fmt.Errorf("fetch quotes: %w", feed.ErrFeedUnavailable), http.StatusBadGateway},
		{"malformed feed", feed.ErrMalformedResponse, http.StatusBadGateway},
		{"unavailable", fmt.Errorf("%w: ingestion not configured", logic.ErrUnavailable), http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRespond(t, tc.err)
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestRespond_UnexpectedErrorIsGeneric(t *testing.T) {
	w := doRespond(t, fmt.Errorf("pq: connection refused to 10.0.0.5"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal error")
	assert.False(t, strings.Contains(w.Body.String(), "10.0.0.5"), "internals must not leak to clients")
}

func TestRespond_WrappedFeedErrorMasksDetail(t *testing.T) {
	w := doRespond(t, fmt.Errorf("ingest: fetch quotes: %w: status 500", feed.ErrFeedUnavailable))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "price feed unavailable")
	assert.False(t, strings.Contains(w.Body.String(), "500"), "upstream detail stays server side")
}

func TestRespond_Success(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	respond(w, r, map[string]string{"status": "ok"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
}
