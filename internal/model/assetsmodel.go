package model

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ AssetsModel = (*customAssetsModel)(nil)

type (
	// AssetsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customAssetsModel.
	AssetsModel interface {
		assetsModel
		FindAll(ctx context.Context) ([]*Assets, error)
		UpsertBySymbol(ctx context.Context, symbol, name string) (int64, error)
	}

	customAssetsModel struct {
		*defaultAssetsModel
	}
)

// NewAssetsModel returns a model for the database table.
func NewAssetsModel(conn sqlx.SqlConn) AssetsModel {
	return &customAssetsModel{
		defaultAssetsModel: newAssetsModel(conn),
	}
}

// FindAll returns every tracked asset ordered by id.
func (m *customAssetsModel) FindAll(ctx context.Context) ([]*Assets, error) {
	query := fmt.Sprintf("select %s from %s order by id", assetsRows, m.table)
	var resp []*Assets
	if err := m.conn.QueryRowsCtx(ctx, &resp, query); err != nil {
		return nil, err
	}
	return resp, nil
}

// UpsertBySymbol creates the asset when the symbol is unseen and returns the
// surviving row's id either way. The unique index on symbol arbitrates
// concurrent creation: the loser observes the winner's id.
func (m *customAssetsModel) UpsertBySymbol(ctx context.Context, symbol, name string) (int64, error) {
	query := fmt.Sprintf(`
insert into %s (symbol, name) values ($1, $2)
on conflict (symbol) do update set updated_at = now()
returning id`, m.table)
	var id int64
	if err := m.conn.QueryRowCtx(ctx, &id, query, symbol, name); err != nil {
		return 0, err
	}
	return id, nil
}
