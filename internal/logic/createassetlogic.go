package logic

import (
	"context"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"coinwatch-api/internal/svc"
	"coinwatch-api/internal/types"
)

const maxNameLen = 50

type CreateAssetLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateAssetLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateAssetLogic {
	return &CreateAssetLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreateAssetLogic) CreateAsset(req *types.CreateAssetReq) (*types.Asset, error) {
	symbol := strings.TrimSpace(req.Symbol)
	name := strings.TrimSpace(req.Name)
	if symbol == "" {
		return nil, badRequestf("symbol is required")
	}
	if len(symbol) > maxNameLen {
		return nil, badRequestf("symbol must be at most %d characters", maxNameLen)
	}
	if len(name) > maxNameLen {
		return nil, badRequestf("name must be at most %d characters", maxNameLen)
	}
	if name == "" {
		name = symbol
	}

	id, err := l.svcCtx.Store.CreateAsset(l.ctx, symbol, name)
	if err != nil {
		return nil, err
	}

	asset, err := l.svcCtx.Store.GetAsset(l.ctx, id)
	if err != nil {
		return nil, err
	}
	out := toAsset(asset)
	return &out, nil
}
