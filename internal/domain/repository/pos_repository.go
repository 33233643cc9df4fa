package repository

import (
	"context"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// Batch escritura multi-colección de una venta (paso 9 del registro).
// Products nil significa que el catálogo no cambió y no se reescribe.
type Batch struct {
	Products           []entity.Product
	Sales              []entity.Sale
	LedgerEntries      []entity.LedgerEntry
	InventoryMovements []entity.InventoryMovement
	Invoices           []entity.Invoice
}

// POSRepository acceso tipado a las colecciones del motor POS.
// Las colecciones ausentes se devuelven vacías (nunca nil con error).
type POSRepository interface {
	Products(ctx context.Context) ([]entity.Product, error)
	Sales(ctx context.Context) ([]entity.Sale, error)
	LedgerEntries(ctx context.Context) ([]entity.LedgerEntry, error)
	InventoryMovements(ctx context.Context) ([]entity.InventoryMovement, error)
	Invoices(ctx context.Context) ([]entity.Invoice, error)
	// LedgerTotals suma de asientos por tipo.
	LedgerTotals(ctx context.Context) ([]entity.LedgerTotal, error)
	// SyncStatus devuelve nil si nunca se ha calculado.
	SyncStatus(ctx context.Context) (*entity.SyncStatus, error)

	SaveProducts(ctx context.Context, products []entity.Product) error
	SaveInvoices(ctx context.Context, invoices []entity.Invoice) error
	SaveSyncStatus(ctx context.Context, status *entity.SyncStatus) error
	SaveBatch(ctx context.Context, batch Batch) error

	Ping(ctx context.Context) error
}
