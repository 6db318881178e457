package analysis

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"coinwatch-api/internal/aggregate"
	"coinwatch-api/internal/store"
	"coinwatch-api/pkg/llm"
	"coinwatch-api/pkg/prompt"
)

// DefaultBudgetUSD is assumed when a portfolio request carries no budget.
const DefaultBudgetUSD = 500

// ErrInvalidBudget is returned for non-positive portfolio budgets.
var ErrInvalidBudget = errors.New("analysis: budget must be positive")

// ErrNoAssets is returned when no priced assets exist to build a plan from.
var ErrNoAssets = errors.New("analysis: no priced assets available")

// Chatter is the LLM surface the service needs.
type Chatter interface {
	Chat(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error)
}

// Market reads the snapshot views the prompts are built from.
type Market interface {
	LatestAndHistoryBySymbol(ctx context.Context, symbol string) (store.AssetHistory, error)
	LatestAbove(ctx context.Context, minPrice float64) ([]aggregate.LatestPrice, error)
}

// Service renders market data into prompts and asks the LLM for commentary.
type Service struct {
	llm    Chatter
	market Market

	assetTmpl     *prompt.Template
	portfolioTmpl *prompt.Template
}

// NewService loads the prompt templates from promptDir and wires the service.
func NewService(client Chatter, market Market, promptDir string) (*Service, error) {
	assetTmpl, err := prompt.NewTemplate(filepath.Join(promptDir, "asset_analysis.tmpl"), nil)
	if err != nil {
		return nil, err
	}
	portfolioTmpl, err := prompt.NewTemplate(filepath.Join(promptDir, "portfolio_plan.tmpl"), nil)
	if err != nil {
		return nil, err
	}

	return &Service{
		llm:           client,
		market:        market,
		assetTmpl:     assetTmpl,
		portfolioTmpl: portfolioTmpl,
	}, nil
}

const systemPrompt = "You are a market data analyst. Base every statement on the " +
	"numbers provided; do not invent prices, and note that none of your output " +
	"is financial advice."

// historyWindow caps how many snapshots feed the per-asset prompt.
const historyWindow = 30

type assetPromptData struct {
	Symbol    string
	Name      string
	Latest    snapshotData
	History   []snapshotData
	Snapshots int
}

type snapshotData struct {
	Price       float64
	MarketCap   float64
	Volume24h   float64
	Change24h   float64
	LastUpdated string
}

// AnalyzeAsset generates commentary for one asset from its snapshot history.
// The symbol is lowercased before lookup; unknown symbols surface
// store.ErrNotFound.
func (s *Service) AnalyzeAsset(ctx context.Context, symbol string) (string, error) {
	symbol = strings.ToLower(strings.TrimSpace(symbol))

	history, err := s.market.LatestAndHistoryBySymbol(ctx, symbol)
	if err != nil {
		return "", err
	}
	if len(history.Snapshots) == 0 {
		return "", fmt.Errorf("%w: %s has no snapshots", ErrNoAssets, symbol)
	}

	data := assetPromptData{
		Symbol:    history.Asset.Symbol,
		Name:      history.Asset.Symbol,
		Latest:    toSnapshotData(history.Snapshots[0]),
		Snapshots: len(history.Snapshots),
	}
	if history.Asset.Name != nil {
		data.Name = *history.Asset.Name
	}
	window := history.Snapshots
	if len(window) > historyWindow {
		window = window[:historyWindow]
	}
	for _, snap := range window {
		data.History = append(data.History, toSnapshotData(snap))
	}

	rendered, err := s.assetTmpl.Render(data)
	if err != nil {
		return "", err
	}
	return s.chat(ctx, rendered)
}

type portfolioPromptData struct {
	BudgetUSD float64
	Assets    []portfolioAsset
}

type portfolioAsset struct {
	Symbol      string
	Price       float64
	Change24h   float64
	LastUpdated string
}

// PortfolioPlan asks the LLM to split budgetUSD across the currently priced
// assets. A zero budget falls back to DefaultBudgetUSD; negative budgets are
// rejected.
func (s *Service) PortfolioPlan(ctx context.Context, budgetUSD float64) (string, error) {
	if budgetUSD == 0 {
		budgetUSD = DefaultBudgetUSD
	}
	if budgetUSD < 0 {
		return "", ErrInvalidBudget
	}

	latest, err := s.market.LatestAbove(ctx, 0)
	if err != nil {
		return "", err
	}
	if len(latest) == 0 {
		return "", ErrNoAssets
	}

	data := portfolioPromptData{BudgetUSD: budgetUSD}
	for _, entry := range latest {
		data.Assets = append(data.Assets, portfolioAsset{
			Symbol:      entry.Symbol,
			Price:       entry.Price,
			Change24h:   entry.Change24h,
			LastUpdated: entry.LastUpdated.Format(time.RFC3339),
		})
	}

	rendered, err := s.portfolioTmpl.Render(data)
	if err != nil {
		return "", err
	}
	return s.chat(ctx, rendered)
}

func (s *Service) chat(ctx context.Context, userPrompt string) (string, error) {
	resp, err := s.llm.Chat(ctx, &llm.ChatRequest{
		Messages: []llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	})
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("analysis: empty completion")
	}
	return text, nil
}

func toSnapshotData(snap store.Snapshot) snapshotData {
	return snapshotData{
		Price:       snap.Price,
		MarketCap:   snap.MarketCap,
		Volume24h:   snap.Volume24h,
		Change24h:   snap.Change24h,
		LastUpdated: snap.LastUpdated.Format(time.RFC3339),
	}
}
