package logic

import (
	"context"
	"encoding/json"

	"github.com/zeromicro/go-zero/core/logx"

	"coinwatch-api/internal/cache"
	"coinwatch-api/internal/svc"
	"coinwatch-api/internal/types"
)

type ThresholdLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewThresholdLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ThresholdLogic {
	return &ThresholdLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Threshold lists assets whose latest snapshot is priced at or above
// minPrice. The unfiltered listing (minPrice 0) is the full latest-prices
// bundle and is mirrored in Redis; the ingest job invalidates it after
// every cycle that persists.
func (l *ThresholdLogic) Threshold(req *types.ThresholdReq) ([]types.ThresholdEntry, error) {
	if req.MinPrice < 0 {
		return nil, badRequestf("minPrice cannot be negative")
	}

	cacheable := l.svcCtx.Redis != nil && req.MinPrice == 0
	key := cache.PricesBundleKey()

	if cacheable {
		if raw, err := l.svcCtx.Redis.GetCtx(l.ctx, key); err == nil && raw != "" {
			var cached []types.ThresholdEntry
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	rows, err := l.svcCtx.Engine.LatestAbove(l.ctx, req.MinPrice)
	if err != nil {
		return nil, err
	}

	out := make([]types.ThresholdEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, toThresholdEntry(row))
	}

	if cacheable {
		if payload, err := json.Marshal(out); err == nil {
			ttl := int(cache.PricesBundleTTL(l.svcCtx.TTL).Seconds())
			if err := l.svcCtx.Redis.SetexCtx(l.ctx, key, string(payload), ttl); err != nil {
				l.Errorf("cache prices bundle: %v", err)
			}
		}
	}

	return out, nil
}
