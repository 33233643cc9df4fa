package pos

import (
	"context"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/inventory"
	domainpos "github.com/jhoicas/pos-ledger/internal/domain/pos"
	"github.com/jhoicas/pos-ledger/internal/domain/repository"
)

// RecordSale registra (o reemplaza, por transactionId) una venta.
//
// Todo se calcula en memoria y se escribe al final en un solo lote: cualquier error
// (ValidationError, InsufficientPaymentError, InsufficientStockError, EnvironmentError)
// deja las colecciones exactamente como estaban.
func (uc *POSUseCase) RecordSale(ctx context.Context, in domainpos.SaleInput) (*entity.Sale, error) {
	const op = "registrar venta"
	if err := uc.ready(op); err != nil {
		return nil, err
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()

	// 1. Normalizar
	normalized, err := domainpos.Normalize(in, now, uc.cfg.NewID)
	if err != nil {
		return nil, err
	}

	// 2. Catálogo y mapa de productos vendibles
	catalog, seeded, err := uc.loadCatalog(ctx, op)
	if err != nil {
		return nil, err
	}
	sellable := domainpos.IndexByID(domainpos.EligibleProducts(catalog))

	// 3. Resolver líneas contra el catálogo
	items, warnings, err := domainpos.ResolveLineItems(normalized, sellable)
	if err != nil {
		return nil, err
	}

	// 4. Totales y cobertura del pago
	totals := domainpos.CalculateTotals(items)
	payment, err := domainpos.SettlePayment(normalized.PaymentMethod, normalized.AmountReceived, totals.Total)
	if err != nil {
		return nil, err
	}

	history, err := uc.repo.Sales(ctx)
	if err != nil {
		return nil, envErr(op, err)
	}
	ledger, err := uc.repo.LedgerEntries(ctx)
	if err != nil {
		return nil, envErr(op, err)
	}
	movements, err := uc.repo.InventoryMovements(ctx)
	if err != nil {
		return nil, envErr(op, err)
	}
	invoices, err := uc.repo.Invoices(ctx)
	if err != nil {
		return nil, envErr(op, err)
	}

	// 5. Inventario
	adj, err := inventory.Adjust(catalog, sellable, normalized.TransactionID, items, movements, normalized.Timestamp)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, adj.Warnings...)

	sale := domainpos.BuildSale(normalized, items, totals, payment, uc.cfg.Currency)
	sale.Warnings = warnings

	// 6. Libro mayor
	entries := domainpos.PostLedger(sale, sellable)

	// 7. Upsert en el historial
	history, replaced := domainpos.UpsertSale(history, sale)

	// 8. Facturas derivadas
	synced := domainpos.SyncInvoices(history, invoices, now, uc.cfg.NewID)

	// 9. Persistir en un lote
	ledger = domainpos.ReplaceSaleEntries(ledger, sale.TransactionID, entries)
	movements = domainpos.ReplaceSaleMovements(movements, sale.TransactionID, adj.Movements)
	batch := repository.Batch{
		Sales:              history,
		LedgerEntries:      ledger,
		InventoryMovements: movements,
		Invoices:           synced.Invoices,
	}
	if adj.Mutated || seeded {
		batch.Products = adj.Catalog
	}
	if err := uc.repo.SaveBatch(ctx, batch); err != nil {
		return nil, envErr(op, err)
	}

	// 10. Estado de sincronización (diagnóstico: un fallo aquí no revierte la venta)
	status := domainpos.BuildSyncStatus(domainpos.SyncStatusInput{
		TotalSales:                  len(history),
		DerivedInvoices:             domainpos.CountDerived(history, synced.Invoices),
		Warnings:                    warnings,
		LastSale:                    &sale,
		LedgerEntriesGenerated:      len(entries),
		InventoryMovementsGenerated: len(adj.Movements),
		TotalLedgerEntries:          len(ledger),
		TotalInventoryMovements:     len(movements),
		Currency:                    uc.cfg.Currency,
		Now:                         now,
	})
	if err := uc.repo.SaveSyncStatus(ctx, &status); err != nil {
		uc.log.Error().Err(err).Str("transaction_id", sale.TransactionID).Msg("guardar estado de sincronización")
	}

	for _, w := range warnings {
		uc.log.Warn().Str("transaction_id", sale.TransactionID).Msg(w)
	}
	uc.log.Info().
		Str("transaction_id", sale.TransactionID).
		Str("total", sale.Total.StringFixed(2)).
		Int("items", sale.ItemCount()).
		Int("ledger_entries", len(entries)).
		Int("movements", len(adj.Movements)).
		Bool("replaced", replaced).
		Msg("venta registrada")

	return &sale, nil
}
