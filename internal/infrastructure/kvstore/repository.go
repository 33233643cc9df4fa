package kvstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/pos"
	"github.com/jhoicas/pos-ledger/internal/domain/repository"
)

var _ repository.POSRepository = (*Repository)(nil)

// Repository implementación de POSRepository sobre cualquier KVStore, serializando cada colección como JSON.
type Repository struct {
	store repository.KVStore
}

// NewRepository construye el repositorio tipado sobre el almacén clave-valor.
func NewRepository(store repository.KVStore) *Repository {
	return &Repository{store: store}
}

// Store devuelve el almacén subyacente.
func (r *Repository) Store() repository.KVStore {
	return r.store
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

func (r *Repository) Products(ctx context.Context) ([]entity.Product, error) {
	return readList[entity.Product](ctx, r.store, repository.KeyProducts)
}

func (r *Repository) Sales(ctx context.Context) ([]entity.Sale, error) {
	return readList[entity.Sale](ctx, r.store, repository.KeySalesHistory)
}

func (r *Repository) LedgerEntries(ctx context.Context) ([]entity.LedgerEntry, error) {
	return readList[entity.LedgerEntry](ctx, r.store, repository.KeyLedgerEntries)
}

func (r *Repository) InventoryMovements(ctx context.Context) ([]entity.InventoryMovement, error) {
	return readList[entity.InventoryMovement](ctx, r.store, repository.KeyInventoryMovements)
}

func (r *Repository) Invoices(ctx context.Context) ([]entity.Invoice, error) {
	return readList[entity.Invoice](ctx, r.store, repository.KeyInvoices)
}

// LedgerTotals delega en el almacén si sabe totalizar (postgres); si no, suma en memoria.
func (r *Repository) LedgerTotals(ctx context.Context) ([]entity.LedgerTotal, error) {
	if agg, ok := r.store.(repository.LedgerAggregator); ok {
		return agg.LedgerTotals(ctx, repository.KeyLedgerEntries)
	}
	entries, err := r.LedgerEntries(ctx)
	if err != nil {
		return nil, err
	}
	return pos.TotalsByType(entries), nil
}

// SyncStatus devuelve nil, nil si el estado nunca se ha guardado.
func (r *Repository) SyncStatus(ctx context.Context) (*entity.SyncStatus, error) {
	raw, err := r.store.Get(ctx, repository.KeySyncStatus)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", repository.KeySyncStatus, err)
	}
	if isEmpty(raw) {
		return nil, nil
	}
	var st entity.SyncStatus
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", repository.KeySyncStatus, err)
	}
	return &st, nil
}

func (r *Repository) SaveProducts(ctx context.Context, products []entity.Product) error {
	e, err := encodeList(repository.KeyProducts, products)
	if err != nil {
		return err
	}
	return r.set(ctx, e)
}

func (r *Repository) SaveInvoices(ctx context.Context, invoices []entity.Invoice) error {
	e, err := encodeInvoices(invoices)
	if err != nil {
		return err
	}
	return r.set(ctx, e)
}

func (r *Repository) SaveSyncStatus(ctx context.Context, status *entity.SyncStatus) error {
	if status == nil {
		return nil
	}
	raw, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", repository.KeySyncStatus, err)
	}
	return r.set(ctx, repository.Entry{Key: repository.KeySyncStatus, Value: raw})
}

// SaveBatch escribe en un solo SetMany todas las colecciones de la venta.
// Products nil no se escribe (catálogo sin cambios).
func (r *Repository) SaveBatch(ctx context.Context, batch repository.Batch) error {
	entries := make([]repository.Entry, 0, 5)
	if batch.Products != nil {
		e, err := encodeList(repository.KeyProducts, batch.Products)
		if err != nil {
			return err
		}
		entries = append(entries, e)
	}
	sales, err := encodeList(repository.KeySalesHistory, batch.Sales)
	if err != nil {
		return err
	}
	ledger, err := encodeList(repository.KeyLedgerEntries, batch.LedgerEntries)
	if err != nil {
		return err
	}
	movements, err := encodeList(repository.KeyInventoryMovements, batch.InventoryMovements)
	if err != nil {
		return err
	}
	invoices, err := encodeInvoices(batch.Invoices)
	if err != nil {
		return err
	}
	entries = append(entries, sales, ledger, movements, invoices)

	if err := r.store.SetMany(ctx, entries); err != nil {
		return fmt.Errorf("escribir lote de venta: %w", err)
	}
	return nil
}

func (r *Repository) set(ctx context.Context, e repository.Entry) error {
	if err := r.store.Set(ctx, e.Key, e.Value); err != nil {
		return fmt.Errorf("escribir %s: %w", e.Key, err)
	}
	return nil
}

func readList[T any](ctx context.Context, store repository.KVStore, key string) ([]T, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", key, err)
	}
	if isEmpty(raw) {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", key, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func encodeList[T any](key string, list []T) (repository.Entry, error) {
	if list == nil {
		list = []T{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return repository.Entry{}, fmt.Errorf("codificar %s: %w", key, err)
	}
	return repository.Entry{Key: key, Value: raw}, nil
}

// encodeInvoices arma el arreglo con la salida de cada MarshalJSON sin pasar por json.Marshal,
// que compactaría y escaparía los bytes conservados de las facturas ajenas.
func encodeInvoices(invoices []entity.Invoice) (repository.Entry, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, inv := range invoices {
		if i > 0 {
			buf.WriteByte(',')
		}
		raw, err := inv.MarshalJSON()
		if err != nil {
			return repository.Entry{}, fmt.Errorf("codificar %s[%d]: %w", repository.KeyInvoices, i, err)
		}
		buf.Write(raw)
	}
	buf.WriteByte(']')
	return repository.Entry{Key: repository.KeyInvoices, Value: buf.Bytes()}, nil
}

func isEmpty(raw []byte) bool {
	return len(raw) == 0 || string(raw) == "null"
}
