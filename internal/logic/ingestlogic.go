package logic

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"coinwatch-api/internal/cache"
	"coinwatch-api/internal/svc"
	"coinwatch-api/internal/types"
)

type IngestLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewIngestLogic(ctx context.Context, svcCtx *svc.ServiceContext) *IngestLogic {
	return &IngestLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Ingest triggers one fetch/validate/persist cycle on demand. A short-lived
// Redis lock keeps overlapping requests from double-fetching the feed.
func (l *IngestLogic) Ingest() (*types.IngestResp, error) {
	if l.svcCtx.Ingest == nil {
		return nil, fmt.Errorf("%w: ingest requires feed and postgres config", ErrUnavailable)
	}

	if l.svcCtx.Redis != nil {
		lockKey := cache.IngestLockKey()
		ttl := int(cache.IngestLockTTL(l.svcCtx.TTL).Seconds())
		if ttl < 1 {
			ttl = 1
		}
		acquired, err := l.svcCtx.Redis.SetnxExCtx(l.ctx, lockKey, "1", ttl)
		if err != nil {
			l.Errorf("acquire ingest lock: %v", err)
		} else if !acquired {
			return nil, fmt.Errorf("%w: an ingest cycle is already running", ErrUnavailable)
		} else {
			defer func() {
				if _, err := l.svcCtx.Redis.DelCtx(l.ctx, lockKey); err != nil {
					l.Errorf("release ingest lock: %v", err)
				}
			}()
		}
	}

	result, err := l.svcCtx.Ingest.RunCycle(l.ctx)
	if err != nil {
		return nil, err
	}

	resp := &types.IngestResp{
		Requested:  result.Requested,
		Persisted:  result.Persisted,
		Missing:    result.Missing,
		DurationMs: result.Duration.Milliseconds(),
	}
	if len(result.Skipped) > 0 {
		resp.Skipped = make(map[string][]string, len(result.Skipped))
		for symbol, violations := range result.Skipped {
			codes := make([]string, 0, len(violations))
			for _, v := range violations {
				codes = append(codes, string(v))
			}
			resp.Skipped[symbol] = codes
		}
	}
	return resp, nil
}
