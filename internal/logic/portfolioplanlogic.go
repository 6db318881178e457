package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/zeromicro/go-zero/core/logx"

	"coinwatch-api/internal/analysis"
	"coinwatch-api/internal/cache"
	"coinwatch-api/internal/svc"
	"coinwatch-api/internal/types"
)

type PortfolioPlanLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPortfolioPlanLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PortfolioPlanLogic {
	return &PortfolioPlanLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// PortfolioPlan returns an LLM allocation plan for the budget, cached per
// budget value so repeated calls do not re-bill the completion.
func (l *PortfolioPlanLogic) PortfolioPlan(req *types.PortfolioReq) (*types.PortfolioResp, error) {
	if l.svcCtx.Analysis == nil {
		return nil, fmt.Errorf("%w: analysis requires llm and postgres config", ErrUnavailable)
	}

	budget := req.Budget
	if budget == 0 {
		budget = analysis.DefaultBudgetUSD
	}
	key := cache.PortfolioPlanKey(strconv.FormatFloat(budget, 'f', 2, 64))

	if l.svcCtx.Redis != nil {
		if raw, err := l.svcCtx.Redis.GetCtx(l.ctx, key); err == nil && raw != "" {
			var cached types.PortfolioResp
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	plan, err := l.svcCtx.Analysis.PortfolioPlan(l.ctx, budget)
	if err != nil {
		return nil, err
	}

	resp := &types.PortfolioResp{
		BudgetUsd: budget,
		Plan:      plan,
	}

	if l.svcCtx.Redis != nil {
		if payload, err := json.Marshal(resp); err == nil {
			ttl := int(cache.AnalysisTTL(l.svcCtx.TTL).Seconds())
			if err := l.svcCtx.Redis.SetexCtx(l.ctx, key, string(payload), ttl); err != nil {
				l.Errorf("cache portfolio plan: %v", err)
			}
		}
	}

	return resp, nil
}
