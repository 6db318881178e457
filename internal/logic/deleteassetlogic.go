package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"coinwatch-api/internal/svc"
	"coinwatch-api/internal/types"
)

type DeleteAssetLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteAssetLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteAssetLogic {
	return &DeleteAssetLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// DeleteAsset removes the asset and, through the schema's cascade, its full
// snapshot history.
func (l *DeleteAssetLogic) DeleteAsset(req *types.AssetIdReq) (*types.Asset, error) {
	asset, err := l.svcCtx.Store.DeleteAsset(l.ctx, req.Id)
	if err != nil {
		return nil, err
	}

	l.Infof("deleted asset %d (%s)", asset.ID, asset.Symbol)
	out := toAsset(asset)
	return &out, nil
}
