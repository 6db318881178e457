//go:build integration
// +build integration

package aggregate_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx driver
	"github.com/stretchr/testify/assert"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"coinwatch-api/internal/aggregate"
	"coinwatch-api/internal/store"
)

func newTestEngine(t *testing.T) (*aggregate.Engine, *store.AssetStore) {
	t.Helper()
	dsn := os.Getenv("COINWATCH_PG_DSN")
	if dsn == "" {
		t.Skip("Postgres not configured (COINWATCH_PG_DSN empty)")
	}
	conn := sqlx.NewSqlConn("pgx", dsn)
	_, err := conn.ExecCtx(context.Background(), "truncate public.asset_prices, public.assets restart identity cascade")
	assert.NoError(t, err, "truncate should succeed")
	s := store.NewAssetStore(conn)
	return aggregate.NewEngine(conn, s), s
}

func seedAsset(t *testing.T, s *store.AssetStore, symbol string, prices ...float64) int64 {
	t.Helper()
	ctx := context.Background()
	id, err := s.UpsertAsset(ctx, symbol)
	assert.NoError(t, err)
	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	for i, p := range prices {
		_, err := s.AppendSnapshot(ctx, id, store.Snapshot{
			Price: p, MarketCap: p * 1e6, Volume24h: p * 1e4, Change24h: 1.5,
			LastUpdated: base.Add(time.Duration(i) * time.Minute),
		})
		assert.NoError(t, err)
	}
	return id
}

func TestLatestAbove_ComparesLatestOnly(t *testing.T) {
	eng, s := newTestEngine(t)

	// bitcoin's latest is 2500 even though an older snapshot was below
	// the bar; ethereum's latest dipped under it.
	seedAsset(t, s, "bitcoin", 1800, 2500)
	seedAsset(t, s, "ethereum", 2600, 1500)

	rows, err := eng.LatestAbove(context.Background(), 2000)
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, "bitcoin", rows[0].Symbol)
		assert.Equal(t, 2500.0, rows[0].Price)
	}
}

func TestLatestAbove_NoSnapshotsExcluded(t *testing.T) {
	eng, s := newTestEngine(t)

	seedAsset(t, s, "bitcoin", 2500)
	seedAsset(t, s, "cardano") // never quoted

	rows, err := eng.LatestAbove(context.Background(), 0)
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, "bitcoin", rows[0].Symbol)
	}
}

func TestPagedSummary_Pagination(t *testing.T) {
	eng, s := newTestEngine(t)

	for i := 0; i < 7; i++ {
		seedAsset(t, s, fmt.Sprintf("asset-%d", i), 100)
	}

	first, err := eng.PagedSummary(context.Background(), 1, 5, "", "")
	assert.NoError(t, err)
	assert.Len(t, first, 5)

	second, err := eng.PagedSummary(context.Background(), 2, 5, "", "")
	assert.NoError(t, err)
	assert.Len(t, second, 2)

	third, err := eng.PagedSummary(context.Background(), 3, 5, "", "")
	assert.NoError(t, err)
	assert.Empty(t, third, "pages past the end are empty, not an error")

	seen := map[int64]bool{}
	for _, row := range append(first, second...) {
		assert.False(t, seen[row.ID], "no asset appears on two pages")
		seen[row.ID] = true
	}
}

func TestPagedSummary_NullVolumeVsZeroVolume(t *testing.T) {
	eng, s := newTestEngine(t)
	ctx := context.Background()

	quiet, err := s.UpsertAsset(ctx, "quiet")
	assert.NoError(t, err)
	zeroed, err := s.UpsertAsset(ctx, "zeroed")
	assert.NoError(t, err)
	_, err = s.AppendSnapshot(ctx, zeroed, store.Snapshot{
		Price: 10, MarketCap: 1, Volume24h: 0, Change24h: 0,
		LastUpdated: time.Now().UTC().Add(-time.Second).Truncate(time.Second),
	})
	assert.NoError(t, err)

	rows, err := eng.PagedSummary(ctx, 1, 10, "", "")
	assert.NoError(t, err)

	byID := map[int64]aggregate.AssetSummary{}
	for _, row := range rows {
		byID[row.ID] = row
	}

	assert.Nil(t, byID[quiet].TotalVolume24h, "no snapshots at all reports a null total")
	assert.Equal(t, 0.0, byID[quiet].AvgPrice)
	if assert.NotNil(t, byID[zeroed].TotalVolume24h) {
		assert.Equal(t, 0.0, *byID[zeroed].TotalVolume24h, "a real zero-volume snapshot reports zero")
	}
}

func TestPagedSummary_AggregatesAcrossHistory(t *testing.T) {
	eng, s := newTestEngine(t)

	seedAsset(t, s, "bitcoin", 100, 200, 300)

	rows, err := eng.PagedSummary(context.Background(), 1, 10, "", "")
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, 200.0, rows[0].AvgPrice)
		assert.Equal(t, 100.0, rows[0].MinPrice)
		assert.Equal(t, 300.0, rows[0].MaxPrice)
		assert.Equal(t, int64(3), rows[0].SnapshotCount)
	}
}
