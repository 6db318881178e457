package handler

import (
	"net/http"

	"coinwatch-api/internal/logic"
	"coinwatch-api/internal/svc"
)

func listAssetsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewListAssetsLogic(r.Context(), svcCtx)
		resp, err := l.ListAssets()
		respond(w, r, resp, err)
	}
}
