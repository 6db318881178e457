package feed

import "time"

// Quote is the raw per-asset payload returned by the pricing feed.
type Quote struct {
	USD           float64 `json:"usd"`
	USDMarketCap  float64 `json:"usd_market_cap"`
	USDVolume24h  float64 `json:"usd_24h_vol"`
	USDChange24h  float64 `json:"usd_24h_change"`
	LastUpdatedAt int64   `json:"last_updated_at"`
}

// LastUpdated converts the feed's epoch-seconds timestamp to UTC calendar time.
func (q Quote) LastUpdated() time.Time {
	return time.Unix(q.LastUpdatedAt, 0).UTC()
}
