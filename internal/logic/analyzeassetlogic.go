package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"coinwatch-api/internal/cache"
	"coinwatch-api/internal/svc"
	"coinwatch-api/internal/types"
)

type AnalyzeAssetLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAnalyzeAssetLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AnalyzeAssetLogic {
	return &AnalyzeAssetLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// AnalyzeAsset returns LLM commentary for one symbol. Generated text is
// cached long-lived: the history only gains one snapshot per ingest cycle
// and every regeneration is a paid completion.
func (l *AnalyzeAssetLogic) AnalyzeAsset(req *types.AssetSymbolReq) (*types.AnalysisResp, error) {
	if l.svcCtx.Analysis == nil {
		return nil, fmt.Errorf("%w: analysis requires llm and postgres config", ErrUnavailable)
	}

	symbol := strings.ToLower(strings.TrimSpace(req.Symbol))
	key := cache.AnalysisKey(symbol)

	if l.svcCtx.Redis != nil {
		if raw, err := l.svcCtx.Redis.GetCtx(l.ctx, key); err == nil && raw != "" {
			var cached types.AnalysisResp
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	text, err := l.svcCtx.Analysis.AnalyzeAsset(l.ctx, req.Symbol)
	if err != nil {
		return nil, err
	}

	resp := &types.AnalysisResp{
		Symbol:   symbol,
		Analysis: text,
	}

	if l.svcCtx.Redis != nil {
		if payload, err := json.Marshal(resp); err == nil {
			ttl := int(cache.AnalysisTTL(l.svcCtx.TTL).Seconds())
			if err := l.svcCtx.Redis.SetexCtx(l.ctx, key, string(payload), ttl); err != nil {
				l.Errorf("cache analysis %s: %v", symbol, err)
			}
		}
	}

	return resp, nil
}
