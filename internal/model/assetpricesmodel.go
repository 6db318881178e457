package model

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ AssetPricesModel = (*customAssetPricesModel)(nil)

type (
	// AssetPricesModel is an interface to be customized, add more methods here,
	// and implement the added methods in customAssetPricesModel.
	AssetPricesModel interface {
		assetPricesModel
		FindLatestByAssetId(ctx context.Context, assetId int64) (*AssetPrices, error)
		FindAllByAssetId(ctx context.Context, assetId int64, descending bool) ([]*AssetPrices, error)
		CountByAssetId(ctx context.Context, assetId int64) (int64, error)
	}

	customAssetPricesModel struct {
		*defaultAssetPricesModel
	}
)

// NewAssetPricesModel returns a model for the database table.
func NewAssetPricesModel(conn sqlx.SqlConn) AssetPricesModel {
	return &customAssetPricesModel{
		defaultAssetPricesModel: newAssetPricesModel(conn),
	}
}

// FindLatestByAssetId returns the snapshot with the greatest observation
// timestamp for the asset, breaking timestamp ties by insertion order.
func (m *customAssetPricesModel) FindLatestByAssetId(ctx context.Context, assetId int64) (*AssetPrices, error) {
	query := fmt.Sprintf("select %s from %s where asset_id = $1 order by last_updated desc, id desc limit 1", assetPricesRows, m.table)
	var resp AssetPrices
	err := m.conn.QueryRowCtx(ctx, &resp, query, assetId)
	switch err {
	case nil:
		return &resp, nil
	case sqlx.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

// FindAllByAssetId returns the asset's full snapshot history ordered by
// observation timestamp (id as tiebreak).
func (m *customAssetPricesModel) FindAllByAssetId(ctx context.Context, assetId int64, descending bool) ([]*AssetPrices, error) {
	direction := "asc"
	if descending {
		direction = "desc"
	}
	query := fmt.Sprintf("select %s from %s where asset_id = $1 order by last_updated %s, id %s",
		assetPricesRows, m.table, direction, direction)
	var resp []*AssetPrices
	if err := m.conn.QueryRowsCtx(ctx, &resp, query, assetId); err != nil {
		return nil, err
	}
	return resp, nil
}

// CountByAssetId reports how many snapshots exist for the asset.
func (m *customAssetPricesModel) CountByAssetId(ctx context.Context, assetId int64) (int64, error) {
	query := fmt.Sprintf("select count(*) from %s where asset_id = $1", m.table)
	var count int64
	if err := m.conn.QueryRowCtx(ctx, &count, query, assetId); err != nil {
		return 0, err
	}
	return count, nil
}
