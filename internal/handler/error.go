package handler

import (
	"errors"
	"net/http"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"

	"coinwatch-api/internal/aggregate"
	"coinwatch-api/internal/analysis"
	"coinwatch-api/internal/logic"
	"coinwatch-api/internal/store"
	"coinwatch-api/pkg/feed"
)

type errorBody struct {
	Error string `json:"error"`
}

// respond writes resp on success, or maps err to a status code without
// leaking internals for unexpected failures.
func respond(w http.ResponseWriter, r *http.Request, resp any, err error) {
	if err == nil {
		httpx.OkJsonCtx(r.Context(), w, resp)
		return
	}

	status := http.StatusInternalServerError
	msg := "internal error"
	switch {
	case errors.Is(err, store.ErrNotFound):
		status, msg = http.StatusNotFound, "not found"
	case errors.Is(err, analysis.ErrNoAssets):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, store.ErrSymbolTaken):
		status, msg = http.StatusConflict, "symbol already taken"
	case errors.Is(err, logic.ErrBadRequest),
		errors.Is(err, aggregate.ErrInvalidPage),
		errors.Is(err, analysis.ErrInvalidBudget):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, feed.ErrFeedUnavailable),
		errors.Is(err, feed.ErrMalformedResponse):
		status, msg = http.StatusBadGateway, "price feed unavailable"
	case errors.Is(err, logic.ErrUnavailable):
		status, msg = http.StatusServiceUnavailable, err.Error()
	}

	if status == http.StatusInternalServerError {
		logx.WithContext(r.Context()).Errorf("request failed: %v", err)
	}
	httpx.WriteJsonCtx(r.Context(), w, status, errorBody{Error: msg})
}

func parseError(w http.ResponseWriter, r *http.Request, err error) {
	httpx.WriteJsonCtx(r.Context(), w, http.StatusBadRequest, errorBody{Error: err.Error()})
}
