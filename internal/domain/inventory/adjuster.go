package inventory

import (
	"fmt"
	"time"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// Adjustment resultado del ajuste de inventario de una venta, calculado en memoria.
type Adjustment struct {
	Catalog   []entity.Product // catálogo completo con el stock ya descontado
	Movements []entity.InventoryMovement
	Warnings  []string
	Mutated   bool
}

// MovementID ID determinístico del n-ésimo movimiento (desde 1) de una venta.
func MovementID(saleID string, n int) string {
	return fmt.Sprintf("%s-mov-%d", saleID, n)
}

// Adjust descuenta el stock de cada línea con producto resuelto sobre una copia del catálogo.
//
// Antes de descontar revierte los movimientos previos de la misma venta (re-registro por
// transactionId), de modo que reemplazar una venta no descuenta dos veces.
// Si alguna línea dejaría el stock en negativo devuelve InsufficientStockError y nada se aplica.
// Un producto sin campo de stock genera una advertencia y se omite.
func Adjust(
	catalog []entity.Product,
	sellable map[string]entity.Product,
	saleID string,
	items []entity.LineItem,
	previous []entity.InventoryMovement,
	at time.Time,
) (*Adjustment, error) {
	working := make([]entity.Product, len(catalog))
	index := make(map[string]int, len(catalog))
	for i, p := range catalog {
		working[i] = p.Clone()
		if _, dup := index[p.ID]; !dup {
			index[p.ID] = i
		}
	}

	adj := &Adjustment{}

	// 1. Revertir lo que la versión anterior de esta venta descontó
	for _, m := range previous {
		if m.SaleID != saleID {
			continue
		}
		idx, ok := index[m.ProductID]
		if !ok || working[idx].Stock == nil {
			continue
		}
		restored := *working[idx].Stock - m.Delta
		working[idx].Stock = &restored
		adj.Mutated = true
	}

	// 2. Descontar las líneas de la venta
	seq := 0
	for _, it := range items {
		if it.ProductID == "" {
			continue
		}
		if _, ok := sellable[it.ProductID]; !ok {
			continue
		}
		idx, ok := index[it.ProductID]
		if !ok {
			continue
		}
		p := &working[idx]
		if p.Stock == nil {
			adj.Warnings = append(adj.Warnings,
				fmt.Sprintf("producto %s (%s) no tiene campo de stock; no se ajustó inventario", p.ID, p.Name))
			continue
		}
		available := *p.Stock
		projected := available - it.Quantity
		if projected < 0 {
			return nil, &domain.InsufficientStockError{
				ProductID:   p.ID,
				ProductName: p.Name,
				Available:   available,
				Requested:   it.Quantity,
			}
		}
		p.Stock = &projected
		seq++
		adj.Movements = append(adj.Movements, entity.InventoryMovement{
			ID:             MovementID(saleID, seq),
			SaleID:         saleID,
			ProductID:      p.ID,
			ProductName:    p.Name,
			Quantity:       it.Quantity,
			Delta:          -it.Quantity,
			ResultingStock: projected,
			Timestamp:      at,
		})
		adj.Mutated = true
	}

	adj.Catalog = working
	return adj, nil
}
