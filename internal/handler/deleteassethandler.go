package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"coinwatch-api/internal/logic"
	"coinwatch-api/internal/svc"
	"coinwatch-api/internal/types"
)

func deleteAssetHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AssetIdReq
		if err := httpx.Parse(r, &req); err != nil {
			parseError(w, r, err)
			return
		}

		l := logic.NewDeleteAssetLogic(r.Context(), svcCtx)
		resp, err := l.DeleteAsset(&req)
		respond(w, r, resp, err)
	}
}
