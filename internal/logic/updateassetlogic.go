package logic

import (
	"context"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"coinwatch-api/internal/svc"
	"coinwatch-api/internal/types"
)

type UpdateAssetLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdateAssetLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateAssetLogic {
	return &UpdateAssetLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// UpdateAsset edits asset metadata. Blank fields keep their current value;
// the snapshot history is untouched.
func (l *UpdateAssetLogic) UpdateAsset(req *types.UpdateAssetReq) (*types.Asset, error) {
	symbol := strings.TrimSpace(req.Symbol)
	name := strings.TrimSpace(req.Name)
	if symbol == "" && name == "" {
		return nil, badRequestf("nothing to update")
	}
	if len(symbol) > maxNameLen {
		return nil, badRequestf("symbol must be at most %d characters", maxNameLen)
	}
	if len(name) > maxNameLen {
		return nil, badRequestf("name must be at most %d characters", maxNameLen)
	}

	asset, err := l.svcCtx.Store.UpdateAsset(l.ctx, req.Id, symbol, name)
	if err != nil {
		return nil, err
	}
	out := toAsset(asset)
	return &out, nil
}
