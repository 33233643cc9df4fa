package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/repository"
)

var (
	_ repository.KVStore          = (*KVStore)(nil)
	_ repository.LedgerAggregator = (*KVStore)(nil)
)

// La columna es JSON (no JSONB): conserva el texto tal como se escribió.
var schemaSQL = []string{
	`CREATE TABLE IF NOT EXISTS pos_collections (
	key        TEXT PRIMARY KEY,
	value      JSON NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`ALTER TABLE pos_collections ALTER COLUMN value TYPE JSON USING value::json`,
}

const upsertSQL = `
INSERT INTO pos_collections (key, value, updated_at)
VALUES ($1, $2::json, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

const ledgerTotalsSQL = `
SELECT e->>'entryType'                          AS entry_type,
       COALESCE(SUM((e->>'amount')::numeric), 0) AS amount,
       COUNT(*)                                  AS entries
FROM pos_collections c
CROSS JOIN LATERAL json_array_elements(c.value) AS e
WHERE c.key = $1 AND json_typeof(c.value) = 'array'
GROUP BY 1
ORDER BY 1`

// KVStore implementación del almacén clave-valor sobre una tabla JSON.
// SetMany escribe todas las claves en una sola transacción.
type KVStore struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewKVStore construye el almacén con el pool.
func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{pool: pool, tx: NewTxRunner(pool)}
}

// EnsureSchema crea la tabla si no existe.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaSQL {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear tabla pos_collections: %w", err)
		}
	}
	return nil
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT value::text FROM pos_collections WHERE key = $1`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return raw, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	return upsert(ctx, s.pool, key, value)
}

func (s *KVStore) SetMany(ctx context.Context, entries []repository.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	return s.tx.Run(ctx, func(q Querier) error {
		for _, e := range entries {
			if err := upsert(ctx, q, e.Key, e.Value); err != nil {
				return err
			}
		}
		return nil
	})
}

// LedgerTotals suma en SQL los montos de la colección de asientos agrupados por tipo.
// Los NUMERIC se leen como decimal.Decimal gracias al codec registrado en el pool.
func (s *KVStore) LedgerTotals(ctx context.Context, key string) ([]entity.LedgerTotal, error) {
	rows, err := s.pool.Query(ctx, ledgerTotalsSQL, key)
	if err != nil {
		return nil, fmt.Errorf("totalizar %s: %w", key, err)
	}
	defer rows.Close()

	var out []entity.LedgerTotal
	for rows.Next() {
		var (
			entryType string
			amount    decimal.Decimal
			count     int64
		)
		if err := rows.Scan(&entryType, &amount, &count); err != nil {
			return nil, fmt.Errorf("leer totales %s: %w", key, err)
		}
		out = append(out, entity.LedgerTotal{
			EntryType: entity.EntryType(entryType),
			Amount:    amount,
			Count:     int(count),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leer totales %s: %w", key, err)
	}
	return out, nil
}

func (s *KVStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func upsert(ctx context.Context, q Querier, key string, value []byte) error {
	if _, err := q.Exec(ctx, upsertSQL, key, string(value)); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
