package pos

import (
	"time"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// SyncStatusInput datos de una corrida de registro o sincronización.
type SyncStatusInput struct {
	TotalSales                  int
	DerivedInvoices             int
	Warnings                    []string
	LastSale                    *entity.Sale
	LedgerEntriesGenerated      int
	InventoryMovementsGenerated int
	TotalLedgerEntries          int
	TotalInventoryMovements     int
	Currency                    string
	Now                         time.Time
}

// BuildSyncStatus calcula el resumen de salud. Es puramente diagnóstico.
func BuildSyncStatus(in SyncStatusInput) entity.SyncStatus {
	pending := in.TotalSales - in.DerivedInvoices
	if pending < 0 {
		pending = 0
	}
	warnings := in.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	st := entity.SyncStatus{
		TotalSales:                  in.TotalSales,
		DerivedInvoices:             in.DerivedInvoices,
		PendingInvoices:             pending,
		HasInvoiceVariance:          pending > 0,
		HasInventoryVariance:        len(warnings) > 0,
		Warnings:                    warnings,
		LedgerEntriesGenerated:      in.LedgerEntriesGenerated,
		InventoryMovementsGenerated: in.InventoryMovementsGenerated,
		TotalLedgerEntries:          in.TotalLedgerEntries,
		TotalInventoryMovements:     in.TotalInventoryMovements,
		Currency:                    in.Currency,
		StatusUpdatedAt:             in.Now,
	}
	if in.LastSale != nil {
		st.LastSaleID = in.LastSale.TransactionID
		st.LastSaleAt = in.LastSale.Timestamp
	}
	return st
}
