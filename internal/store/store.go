package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"coinwatch-api/internal/model"
	"coinwatch-api/pkg/feed"
)

// AssetStore owns the assets and asset_prices tables. All mutations go
// through it; read-side aggregation lives in internal/aggregate.
type AssetStore struct {
	conn   sqlx.SqlConn
	assets model.AssetsModel
	prices model.AssetPricesModel
}

// NewAssetStore wires an AssetStore over a live SQL connection.
func NewAssetStore(conn sqlx.SqlConn) *AssetStore {
	return &AssetStore{
		conn:   conn,
		assets: model.NewAssetsModel(conn),
		prices: model.NewAssetPricesModel(conn),
	}
}

// UpsertAsset returns the id for symbol, creating the asset with name
// defaulted to the symbol when it does not exist yet. Safe under concurrent
// calls for the same symbol: the unique index arbitrates and the loser reads
// the winner's id.
func (s *AssetStore) UpsertAsset(ctx context.Context, symbol string) (int64, error) {
	return s.CreateAsset(ctx, symbol, symbol)
}

// CreateAsset is the explicit-creation variant of UpsertAsset with a caller
// supplied display name.
func (s *AssetStore) CreateAsset(ctx context.Context, symbol, name string) (int64, error) {
	symbol = strings.TrimSpace(symbol)
	if name = strings.TrimSpace(name); name == "" {
		name = symbol
	}
	id, err := s.assets.UpsertBySymbol(ctx, symbol, name)
	if err != nil {
		return 0, wrapErr("store.CreateAsset", err)
	}
	return id, nil
}

// AppendSnapshot inserts one immutable snapshot row for the asset and returns
// it with its assigned id. Business-rule checks belong to the validator; only
// structural constraints (foreign key, non-null) are enforced here.
func (s *AssetStore) AppendSnapshot(ctx context.Context, assetID int64, snap Snapshot) (Snapshot, error) {
	const query = `
insert into public.asset_prices (asset_id, usd_price, usd_market_cap, usd_volume_24h, usd_change_24h, last_updated)
values ($1, $2, $3, $4, $5, $6)
returning id`
	var id int64
	err := s.conn.QueryRowCtx(ctx, &id, query,
		assetID, snap.Price, snap.MarketCap, snap.Volume24h, snap.Change24h, snap.LastUpdated.UTC())
	if err != nil {
		return Snapshot{}, wrapErr("store.AppendSnapshot", err)
	}
	snap.ID = id
	snap.AssetID = assetID
	snap.LastUpdated = snap.LastUpdated.UTC()
	return snap, nil
}

// SaveQuote persists one accepted feed quote: asset upsert plus snapshot
// append in a single transaction, so a crash can never leave a snapshot
// pointing at a missing asset. Returns the asset id.
func (s *AssetStore) SaveQuote(ctx context.Context, symbol string, quote feed.Quote) (int64, error) {
	symbol = strings.TrimSpace(symbol)
	var assetID int64
	err := s.conn.TransactCtx(ctx, func(ctx context.Context, session sqlx.Session) error {
		const upsert = `
insert into public.assets (symbol, name) values ($1, $1)
on conflict (symbol) do update set updated_at = now()
returning id`
		if err := session.QueryRowCtx(ctx, &assetID, upsert, symbol); err != nil {
			return err
		}
		const insert = `
insert into public.asset_prices (asset_id, usd_price, usd_market_cap, usd_volume_24h, usd_change_24h, last_updated)
values ($1, $2, $3, $4, $5, $6)`
		_, err := session.ExecCtx(ctx, insert,
			assetID, quote.USD, quote.USDMarketCap, quote.USDVolume24h, quote.USDChange24h, quote.LastUpdated())
		return err
	})
	if err != nil {
		return 0, wrapErr("store.SaveQuote", err)
	}
	return assetID, nil
}

// GetAsset looks an asset up by id.
func (s *AssetStore) GetAsset(ctx context.Context, id int64) (Asset, error) {
	row, err := s.assets.FindOne(ctx, id)
	if err != nil {
		return Asset{}, wrapErr("store.GetAsset", err)
	}
	return assetFromRow(row), nil
}

// GetAssetBySymbol looks an asset up by its exact symbol.
func (s *AssetStore) GetAssetBySymbol(ctx context.Context, symbol string) (Asset, error) {
	row, err := s.assets.FindOneBySymbol(ctx, symbol)
	if err != nil {
		return Asset{}, wrapErr("store.GetAssetBySymbol", err)
	}
	return assetFromRow(row), nil
}

// ListAssets returns every tracked asset without history.
func (s *AssetStore) ListAssets(ctx context.Context) ([]Asset, error) {
	rows, err := s.assets.FindAll(ctx)
	if err != nil {
		return nil, wrapErr("store.ListAssets", err)
	}
	assets := make([]Asset, 0, len(rows))
	for _, row := range rows {
		assets = append(assets, assetFromRow(row))
	}
	return assets, nil
}

// GetAssetWithHistory returns the asset plus its full snapshot log.
func (s *AssetStore) GetAssetWithHistory(ctx context.Context, id int64, descending bool) (AssetHistory, error) {
	row, err := s.assets.FindOne(ctx, id)
	if err != nil {
		return AssetHistory{}, wrapErr("store.GetAssetWithHistory", err)
	}
	return s.historyFor(ctx, row, descending)
}

// GetAssetWithHistoryBySymbol is GetAssetWithHistory addressed by symbol.
func (s *AssetStore) GetAssetWithHistoryBySymbol(ctx context.Context, symbol string, descending bool) (AssetHistory, error) {
	row, err := s.assets.FindOneBySymbol(ctx, symbol)
	if err != nil {
		return AssetHistory{}, wrapErr("store.GetAssetWithHistoryBySymbol", err)
	}
	return s.historyFor(ctx, row, descending)
}

func (s *AssetStore) historyFor(ctx context.Context, row *model.Assets, descending bool) (AssetHistory, error) {
	prices, err := s.prices.FindAllByAssetId(ctx, row.Id, descending)
	if err != nil {
		return AssetHistory{}, wrapErr("store.historyFor", err)
	}
	history := AssetHistory{
		Asset:     assetFromRow(row),
		Snapshots: make([]Snapshot, 0, len(prices)),
	}
	for _, price := range prices {
		history.Snapshots = append(history.Snapshots, snapshotFromRow(price))
	}
	return history, nil
}

// GetLatestSnapshot returns the asset's most recent snapshot, timestamp ties
// broken by insertion order.
func (s *AssetStore) GetLatestSnapshot(ctx context.Context, assetID int64) (Snapshot, error) {
	row, err := s.prices.FindLatestByAssetId(ctx, assetID)
	if err != nil {
		return Snapshot{}, wrapErr("store.GetLatestSnapshot", err)
	}
	return snapshotFromRow(row), nil
}

// GetLatestSnapshotBySymbol resolves the symbol first, then reads its latest
// snapshot. Either step can report ErrNotFound.
func (s *AssetStore) GetLatestSnapshotBySymbol(ctx context.Context, symbol string) (Asset, Snapshot, error) {
	assetRow, err := s.assets.FindOneBySymbol(ctx, symbol)
	if err != nil {
		return Asset{}, Snapshot{}, wrapErr("store.GetLatestSnapshotBySymbol", err)
	}
	snap, err := s.GetLatestSnapshot(ctx, assetRow.Id)
	if err != nil {
		return Asset{}, Snapshot{}, err
	}
	return assetFromRow(assetRow), snap, nil
}

// GetSnapshot looks a single snapshot up by id.
func (s *AssetStore) GetSnapshot(ctx context.Context, id int64) (Snapshot, error) {
	row, err := s.prices.FindOne(ctx, id)
	if err != nil {
		return Snapshot{}, wrapErr("store.GetSnapshot", err)
	}
	return snapshotFromRow(row), nil
}

// UpdateAsset edits asset metadata in place. Snapshot history is untouched.
func (s *AssetStore) UpdateAsset(ctx context.Context, id int64, symbol, name string) (Asset, error) {
	row, err := s.assets.FindOne(ctx, id)
	if err != nil {
		return Asset{}, wrapErr("store.UpdateAsset", err)
	}
	if symbol = strings.TrimSpace(symbol); symbol != "" {
		row.Symbol = symbol
	}
	if name = strings.TrimSpace(name); name != "" {
		row.Name = sql.NullString{String: name, Valid: true}
	}
	if err := s.assets.Update(ctx, row); err != nil {
		return Asset{}, wrapErr("store.UpdateAsset", err)
	}
	return assetFromRow(row), nil
}

// DeleteAsset removes the asset; the schema cascades the delete to every
// snapshot it owns.
func (s *AssetStore) DeleteAsset(ctx context.Context, id int64) (Asset, error) {
	row, err := s.assets.FindOne(ctx, id)
	if err != nil {
		return Asset{}, wrapErr("store.DeleteAsset", err)
	}
	if err := s.assets.Delete(ctx, id); err != nil {
		return Asset{}, wrapErr("store.DeleteAsset", err)
	}
	return assetFromRow(row), nil
}
