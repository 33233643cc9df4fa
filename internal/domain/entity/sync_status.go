package entity

import "time"

// SyncStatus resumen derivado de la salud de sincronización ventas/facturas/inventario.
// Es un modelo de lectura: nunca es fuente de verdad (colección posSyncStatus).
type SyncStatus struct {
	LastSaleID                  string    `json:"lastSaleId,omitempty"`
	LastSaleAt                  time.Time `json:"lastSaleAt,omitempty"`
	TotalSales                  int       `json:"totalSales"`
	DerivedInvoices             int       `json:"derivedInvoices"`
	PendingInvoices             int       `json:"pendingInvoices"`
	HasInvoiceVariance          bool      `json:"hasInvoiceVariance"`
	HasInventoryVariance        bool      `json:"hasInventoryVariance"`
	Warnings                    []string  `json:"warnings"`
	LedgerEntriesGenerated      int       `json:"ledgerEntriesGenerated"`
	InventoryMovementsGenerated int       `json:"inventoryMovementsGenerated"`
	TotalLedgerEntries          int       `json:"totalLedgerEntries"`
	TotalInventoryMovements     int       `json:"totalInventoryMovements"`
	Currency                    string    `json:"currency,omitempty"`
	StatusUpdatedAt             time.Time `json:"statusUpdatedAt"`
}
