package repository

import (
	"context"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// Claves de las colecciones persistidas por el motor POS.
const (
	KeyProducts           = "productsList"
	KeySalesHistory       = "salesHistory"
	KeyLedgerEntries      = "posLedgerEntries"
	KeyInventoryMovements = "posInventoryMovements"
	KeyInvoices           = "financeInvoices"
	KeySyncStatus         = "posSyncStatus"
)

// Entry par clave/valor para escrituras en lote.
type Entry struct {
	Key   string
	Value []byte
}

// KVStore define el puerto de persistencia clave-valor (DIP).
// Get devuelve nil, nil si la clave no existe.
// SetMany escribe el lote completo; las implementaciones que lo soportan lo hacen de forma atómica.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, entries []Entry) error
	Ping(ctx context.Context) error
}

// LedgerAggregator almacenes que totalizan una colección de asientos en el servidor
// sin devolver la lista completa.
type LedgerAggregator interface {
	LedgerTotals(ctx context.Context, key string) ([]entity.LedgerTotal, error)
}
