package pos

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	domainpos "github.com/jhoicas/pos-ledger/internal/domain/pos"
)

// GetSalesHistory historial de ventas, más reciente primero.
func (uc *POSUseCase) GetSalesHistory(ctx context.Context) ([]entity.Sale, error) {
	const op = "listar ventas"
	if err := uc.ready(op); err != nil {
		return nil, err
	}
	sales, err := uc.repo.Sales(ctx)
	if err != nil {
		return nil, envErr(op, err)
	}
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Timestamp.After(sales[j].Timestamp)
	})
	return sales, nil
}

// GetSale venta por transactionId.
func (uc *POSUseCase) GetSale(ctx context.Context, transactionID string) (*entity.Sale, error) {
	const op = "obtener venta"
	if err := uc.ready(op); err != nil {
		return nil, err
	}
	sales, err := uc.repo.Sales(ctx)
	if err != nil {
		return nil, envErr(op, err)
	}
	for i := range sales {
		if sales[i].TransactionID == transactionID {
			return &sales[i], nil
		}
	}
	return nil, fmt.Errorf("venta %s: %w", transactionID, domain.ErrNotFound)
}

func (uc *POSUseCase) GetLedgerEntries(ctx context.Context) ([]entity.LedgerEntry, error) {
	const op = "listar libro mayor"
	if err := uc.ready(op); err != nil {
		return nil, err
	}
	entries, err := uc.repo.LedgerEntries(ctx)
	if err != nil {
		return nil, envErr(op, err)
	}
	return entries, nil
}

func (uc *POSUseCase) GetInventoryMovements(ctx context.Context) ([]entity.InventoryMovement, error) {
	const op = "listar movimientos"
	if err := uc.ready(op); err != nil {
		return nil, err
	}
	movements, err := uc.repo.InventoryMovements(ctx)
	if err != nil {
		return nil, envErr(op, err)
	}
	return movements, nil
}

// GetSyncStatus estado persistido. Si nunca se calculó, se deriva en el momento sin guardarlo.
func (uc *POSUseCase) GetSyncStatus(ctx context.Context) (*entity.SyncStatus, error) {
	const op = "obtener estado"
	if err := uc.ready(op); err != nil {
		return nil, err
	}
	status, err := uc.repo.SyncStatus(ctx)
	if err != nil {
		return nil, envErr(op, err)
	}
	if status != nil {
		return status, nil
	}

	sales, err := uc.repo.Sales(ctx)
	if err != nil {
		return nil, envErr(op, err)
	}
	invoices, err := uc.repo.Invoices(ctx)
	if err != nil {
		return nil, envErr(op, err)
	}
	derived := domainpos.BuildSyncStatus(domainpos.SyncStatusInput{
		TotalSales:      len(sales),
		DerivedInvoices: domainpos.CountDerived(sales, invoices),
		LastSale:        newestSale(sales),
		Currency:        uc.cfg.Currency,
		Now:             uc.now(),
	})
	return &derived, nil
}

// LedgerSummary totales del libro mayor por tipo de asiento.
func (uc *POSUseCase) LedgerSummary(ctx context.Context) (*domainpos.LedgerSummary, error) {
	const op = "resumen del libro mayor"
	if err := uc.ready(op); err != nil {
		return nil, err
	}
	totals, err := uc.repo.LedgerTotals(ctx)
	if err != nil {
		return nil, envErr(op, err)
	}
	summary := domainpos.SummarizeTotals(totals)
	return &summary, nil
}

func newestSale(sales []entity.Sale) *entity.Sale {
	var newest *entity.Sale
	for i := range sales {
		if newest == nil || sales[i].Timestamp.After(newest.Timestamp) {
			newest = &sales[i]
		}
	}
	return newest
}
