package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"coinwatch-api/internal/logic"
	"coinwatch-api/internal/svc"
	"coinwatch-api/internal/types"
)

func createAssetHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CreateAssetReq
		if err := httpx.Parse(r, &req); err != nil {
			parseError(w, r, err)
			return
		}

		l := logic.NewCreateAssetLogic(r.Context(), svcCtx)
		resp, err := l.CreateAsset(&req)
		respond(w, r, resp, err)
	}
}
