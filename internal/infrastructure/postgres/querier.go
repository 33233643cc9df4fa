package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
)

// Querier lo que el almacén necesita de *pgxpool.Pool o pgx.Tx para escribir dentro o fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}
