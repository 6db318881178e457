package logic

import (
	"time"

	"coinwatch-api/internal/aggregate"
	"coinwatch-api/internal/store"
	"coinwatch-api/internal/types"
)

func toAsset(a store.Asset) types.Asset {
	return types.Asset{
		Id:     a.ID,
		Symbol: a.Symbol,
		Name:   a.Name,
	}
}

func toSnapshot(s store.Snapshot) types.Snapshot {
	return types.Snapshot{
		Id:           s.ID,
		AssetId:      s.AssetID,
		UsdPrice:     s.Price,
		UsdMarketCap: s.MarketCap,
		UsdVolume24h: s.Volume24h,
		UsdChange24h: s.Change24h,
		LastUpdated:  s.LastUpdated.Format(time.RFC3339),
	}
}

func toAssetWithHistory(h store.AssetHistory) *types.AssetWithHistory {
	out := &types.AssetWithHistory{
		Asset:     toAsset(h.Asset),
		Snapshots: make([]types.Snapshot, 0, len(h.Snapshots)),
	}
	for _, snap := range h.Snapshots {
		out.Snapshots = append(out.Snapshots, toSnapshot(snap))
	}
	return out
}

func toThresholdEntry(p aggregate.LatestPrice) types.ThresholdEntry {
	return types.ThresholdEntry{
		AssetId:      p.AssetID,
		Symbol:       p.Symbol,
		Name:         p.Name,
		UsdPrice:     p.Price,
		UsdMarketCap: p.MarketCap,
		UsdVolume24h: p.Volume24h,
		UsdChange24h: p.Change24h,
		LastUpdated:  p.LastUpdated.Format(time.RFC3339),
	}
}

func toSummaryRow(s aggregate.AssetSummary) types.SummaryRow {
	return types.SummaryRow{
		Id:             s.ID,
		Symbol:         s.Symbol,
		Name:           s.Name,
		SnapshotCount:  s.SnapshotCount,
		AvgPrice:       s.AvgPrice,
		MinPrice:       s.MinPrice,
		MaxPrice:       s.MaxPrice,
		TotalVolume24h: s.TotalVolume24h,
	}
}
