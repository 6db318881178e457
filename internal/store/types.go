package store

import (
	"time"

	"coinwatch-api/internal/model"
)

// Asset is a tracked instrument.
type Asset struct {
	ID     int64   `json:"id"`
	Symbol string  `json:"symbol"`
	Name   *string `json:"name,omitempty"`
}

// Snapshot is one immutable observation of an asset's market state.
type Snapshot struct {
	ID          int64     `json:"id"`
	AssetID     int64     `json:"assetId"`
	Price       float64   `json:"price"`
	MarketCap   float64   `json:"marketCap"`
	Volume24h   float64   `json:"volume24h"`
	Change24h   float64   `json:"change24h"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// AssetHistory pairs an asset with its snapshot log.
type AssetHistory struct {
	Asset     Asset      `json:"asset"`
	Snapshots []Snapshot `json:"snapshots"`
}

func assetFromRow(row *model.Assets) Asset {
	asset := Asset{
		ID:     row.Id,
		Symbol: row.Symbol,
	}
	if row.Name.Valid {
		name := row.Name.String
		asset.Name = &name
	}
	return asset
}

func snapshotFromRow(row *model.AssetPrices) Snapshot {
	return Snapshot{
		ID:          row.Id,
		AssetID:     row.AssetId,
		Price:       row.UsdPrice,
		MarketCap:   row.UsdMarketCap,
		Volume24h:   row.UsdVolume24h,
		Change24h:   row.UsdChange24h,
		LastUpdated: row.LastUpdated.UTC(),
	}
}
