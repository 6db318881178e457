package logic

import (
	"context"
	"encoding/json"

	"github.com/zeromicro/go-zero/core/logx"

	"coinwatch-api/internal/cache"
	"coinwatch-api/internal/svc"
	"coinwatch-api/internal/types"
)

type GetLatestSnapshotLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetLatestSnapshotLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetLatestSnapshotLogic {
	return &GetLatestSnapshotLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GetLatestSnapshot returns the most recent snapshot for the symbol, serving
// from Redis when a fresh copy is mirrored there.
func (l *GetLatestSnapshotLogic) GetLatestSnapshot(req *types.AssetSymbolReq) (*types.LatestPriceResp, error) {
	key := cache.PriceLatestKey(req.Symbol)

	if l.svcCtx.Redis != nil {
		if raw, err := l.svcCtx.Redis.GetCtx(l.ctx, key); err == nil && raw != "" {
			var cached types.LatestPriceResp
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	asset, snap, err := l.svcCtx.Store.GetLatestSnapshotBySymbol(l.ctx, req.Symbol)
	if err != nil {
		return nil, err
	}

	resp := &types.LatestPriceResp{
		Asset:    toAsset(asset),
		Snapshot: toSnapshot(snap),
	}

	if l.svcCtx.Redis != nil {
		if payload, err := json.Marshal(resp); err == nil {
			ttl := int(cache.PriceTTL(l.svcCtx.TTL).Seconds())
			if err := l.svcCtx.Redis.SetexCtx(l.ctx, key, string(payload), ttl); err != nil {
				l.Errorf("cache latest snapshot %s: %v", req.Symbol, err)
			}
		}
	}

	return resp, nil
}
