package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"coinwatch-api/internal/svc"
	"coinwatch-api/internal/types"
)

type GetAssetBySymbolLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetAssetBySymbolLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetAssetBySymbolLogic {
	return &GetAssetBySymbolLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetAssetBySymbolLogic) GetAssetBySymbol(req *types.AssetSymbolReq) (*types.AssetWithHistory, error) {
	history, err := l.svcCtx.Store.GetAssetWithHistoryBySymbol(l.ctx, req.Symbol, true)
	if err != nil {
		return nil, err
	}
	return toAssetWithHistory(history), nil
}
