package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"coinwatch-api/internal/model"
)

// Postgres unique_violation, raised when an update collides with the
// symbol unique index.
const pgUniqueViolation = "23505"

var (
	// ErrNotFound is returned when a lookup by id or symbol matches no row.
	ErrNotFound = model.ErrNotFound

	// ErrSymbolTaken is returned when a rename would collide with another
	// asset's symbol. The caller chose the symbol, so this is addressable
	// client-side.
	ErrSymbolTaken = errors.New("store: symbol already taken")

	// ErrStorageUnavailable marks a durable-store failure. It is fatal to the
	// calling operation; nothing here retries internally.
	ErrStorageUnavailable = errors.New("store: storage unavailable")
)

// wrapErr classifies a storage-layer error into the package taxonomy while
// keeping the operation name for logs.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%s: %w", op, ErrSymbolTaken)
	}
	return fmt.Errorf("%s: %w: %v", op, ErrStorageUnavailable, err)
}
