package logic

import (
	"context"
	"encoding/json"

	"github.com/zeromicro/go-zero/core/logx"

	"coinwatch-api/internal/cache"
	"coinwatch-api/internal/svc"
	"coinwatch-api/internal/types"
)

type PagedSummaryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPagedSummaryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PagedSummaryLogic {
	return &PagedSummaryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// PagedSummary serves one summary page, caching the default (unfiltered,
// unsorted) rendering per page for the medium TTL window.
func (l *PagedSummaryLogic) PagedSummary(req *types.PagedSummaryReq) ([]types.SummaryRow, error) {
	cacheable := l.svcCtx.Redis != nil && req.Filter == "" && req.SortBy == ""
	key := cache.AssetSummaryPageKey(req.Page, req.PageSize)

	if cacheable {
		if raw, err := l.svcCtx.Redis.GetCtx(l.ctx, key); err == nil && raw != "" {
			var cached []types.SummaryRow
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	rows, err := l.svcCtx.Engine.PagedSummary(l.ctx, req.Page, req.PageSize, req.Filter, req.SortBy)
	if err != nil {
		return nil, err
	}

	out := make([]types.SummaryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSummaryRow(row))
	}

	if cacheable {
		if payload, err := json.Marshal(out); err == nil {
			ttl := int(cache.SummaryPageTTL(l.svcCtx.TTL).Seconds())
			if err := l.svcCtx.Redis.SetexCtx(l.ctx, key, string(payload), ttl); err != nil {
				l.Errorf("cache summary page %d: %v", req.Page, err)
			}
		}
	}

	return out, nil
}
