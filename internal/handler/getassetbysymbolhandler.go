package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"coinwatch-api/internal/logic"
	"coinwatch-api/internal/svc"
	"coinwatch-api/internal/types"
)

func getAssetBySymbolHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AssetSymbolReq
		if err := httpx.Parse(r, &req); err != nil {
			parseError(w, r, err)
			return
		}

		l := logic.NewGetAssetBySymbolLogic(r.Context(), svcCtx)
		resp, err := l.GetAssetBySymbol(&req)
		respond(w, r, resp, err)
	}
}
