package aggregate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"coinwatch-api/internal/store"
)

// ErrInvalidPage is returned when page or pageSize is not a positive integer.
var ErrInvalidPage = errors.New("aggregate: page and pageSize must be positive")

// Engine computes derived read-only views over the snapshot log. It never
// mutates the tables it reads.
type Engine struct {
	conn  sqlx.SqlConn
	store *store.AssetStore
}

// NewEngine wires an aggregation engine over the same connection as the store.
func NewEngine(conn sqlx.SqlConn, assetStore *store.AssetStore) *Engine {
	return &Engine{conn: conn, store: assetStore}
}

// LatestPrice is one asset's most recent snapshot paired with its name.
type LatestPrice struct {
	AssetID     int64     `json:"assetId"`
	Symbol      string    `json:"symbol"`
	Name        *string   `json:"name,omitempty"`
	Price       float64   `json:"price"`
	MarketCap   float64   `json:"marketCap"`
	Volume24h   float64   `json:"volume24h"`
	Change24h   float64   `json:"change24h"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type latestPriceRow struct {
	AssetId      int64          `db:"asset_id"`
	Symbol       string         `db:"symbol"`
	Name         sql.NullString `db:"name"`
	UsdPrice     float64        `db:"usd_price"`
	UsdMarketCap float64        `db:"usd_market_cap"`
	UsdVolume24h float64        `db:"usd_volume_24h"`
	UsdChange24h float64        `db:"usd_change_24h"`
	LastUpdated  time.Time      `db:"last_updated"`
}

// LatestAbove takes each asset's single latest snapshot (timestamp, id as
// tiebreak) and returns those priced at or above minPrice. Assets without
// snapshots are excluded; ordering is not part of the contract.
func (e *Engine) LatestAbove(ctx context.Context, minPrice float64) ([]LatestPrice, error) {
	const query = `
select asset_id, symbol, name, usd_price, usd_market_cap, usd_volume_24h, usd_change_24h, last_updated
from (
    select distinct on (p.asset_id)
        p.asset_id, a.symbol, a.name, p.usd_price, p.usd_market_cap, p.usd_volume_24h, p.usd_change_24h, p.last_updated
    from public.asset_prices p
    join public.assets a on a.id = p.asset_id
    order by p.asset_id, p.last_updated desc, p.id desc
) latest
where usd_price >= $1`

	var rows []latestPriceRow
	if err := e.conn.QueryRowsCtx(ctx, &rows, query, minPrice); err != nil {
		return nil, fmt.Errorf("aggregate.LatestAbove: %w: %v", store.ErrStorageUnavailable, err)
	}

	result := make([]LatestPrice, 0, len(rows))
	for _, row := range rows {
		entry := LatestPrice{
			AssetID:     row.AssetId,
			Symbol:      row.Symbol,
			Price:       row.UsdPrice,
			MarketCap:   row.UsdMarketCap,
			Volume24h:   row.UsdVolume24h,
			Change24h:   row.UsdChange24h,
			LastUpdated: row.LastUpdated.UTC(),
		}
		if row.Name.Valid {
			name := row.Name.String
			entry.Name = &name
		}
		result = append(result, entry)
	}
	return result, nil
}

// AssetSummary annotates one asset with statistics over its full history.
// TotalVolume24h is nil for an asset with no snapshots: "no data" is not the
// same as a summed volume of zero.
type AssetSummary struct {
	ID             int64    `json:"id"`
	Symbol         string   `json:"symbol"`
	Name           *string  `json:"name,omitempty"`
	SnapshotCount  int64    `json:"snapshotCount"`
	AvgPrice       float64  `json:"avgPrice"`
	MinPrice       float64  `json:"minPrice"`
	MaxPrice       float64  `json:"maxPrice"`
	TotalVolume24h *float64 `json:"totalVolume24h"`
}

type assetSummaryRow struct {
	Id            int64           `db:"id"`
	Symbol        string          `db:"symbol"`
	Name          sql.NullString  `db:"name"`
	SnapshotCount int64           `db:"snapshot_count"`
	AvgPrice      float64         `db:"avg_price"`
	MinPrice      float64         `db:"min_price"`
	MaxPrice      float64         `db:"max_price"`
	TotalVolume   sql.NullFloat64 `db:"total_volume"`
}

// PagedSummary lists assets by descending id, skipping (page-1)*pageSize rows
// and taking pageSize, each with count/avg/min/max price and summed volume.
//
// TODO: filter and sortBy are accepted here and at the HTTP surface but are
// not applied to the query; intended semantics still need to be confirmed
// before wiring them in.
func (e *Engine) PagedSummary(ctx context.Context, page, pageSize int, filter, sortBy string) ([]AssetSummary, error) {
	_ = filter
	_ = sortBy
	if page <= 0 || pageSize <= 0 {
		return nil, ErrInvalidPage
	}

	const query = `
select a.id, a.symbol, a.name,
    count(p.id)                    as snapshot_count,
    coalesce(avg(p.usd_price), 0)  as avg_price,
    coalesce(min(p.usd_price), 0)  as min_price,
    coalesce(max(p.usd_price), 0)  as max_price,
    sum(p.usd_volume_24h)          as total_volume
from public.assets a
left join public.asset_prices p on p.asset_id = a.id
group by a.id, a.symbol, a.name
order by a.id desc
offset $1 limit $2`

	var rows []assetSummaryRow
	offset := (page - 1) * pageSize
	if err := e.conn.QueryRowsCtx(ctx, &rows, query, offset, pageSize); err != nil {
		return nil, fmt.Errorf("aggregate.PagedSummary: %w: %v", store.ErrStorageUnavailable, err)
	}

	result := make([]AssetSummary, 0, len(rows))
	for _, row := range rows {
		summary := AssetSummary{
			ID:            row.Id,
			Symbol:        row.Symbol,
			SnapshotCount: row.SnapshotCount,
			AvgPrice:      row.AvgPrice,
			MinPrice:      row.MinPrice,
			MaxPrice:      row.MaxPrice,
		}
		if row.Name.Valid {
			name := row.Name.String
			summary.Name = &name
		}
		if row.TotalVolume.Valid {
			total := row.TotalVolume.Float64
			summary.TotalVolume24h = &total
		}
		result = append(result, summary)
	}
	return result, nil
}

// LatestAndHistoryBySymbol returns the asset plus its full snapshot history
// newest-first, or store.ErrNotFound when the symbol is unknown.
func (e *Engine) LatestAndHistoryBySymbol(ctx context.Context, symbol string) (store.AssetHistory, error) {
	return e.store.GetAssetWithHistoryBySymbol(ctx, symbol, true)
}
