package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"coinwatch-api/internal/svc"
	"coinwatch-api/internal/types"
)

type GetAssetLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetAssetLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetAssetLogic {
	return &GetAssetLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetAssetLogic) GetAsset(req *types.AssetIdReq) (*types.AssetWithHistory, error) {
	history, err := l.svcCtx.Store.GetAssetWithHistory(l.ctx, req.Id, true)
	if err != nil {
		return nil, err
	}
	return toAssetWithHistory(history), nil
}
