package handler

import (
	"net/http"

	"coinwatch-api/internal/logic"
	"coinwatch-api/internal/svc"
)

func ingestHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewIngestLogic(r.Context(), svcCtx)
		resp, err := l.Ingest()
		respond(w, r, resp, err)
	}
}
