package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType tipo cerrado de asiento del libro POS.
type EntryType string

const (
	EntryTypeRevenue   EntryType = "revenue"
	EntryTypeTax       EntryType = "tax"
	EntryTypeCOGS      EntryType = "cogs"
	EntryTypeInventory EntryType = "inventory"
)

// EntryTypes orden canónico de los asientos de una venta.
var EntryTypes = []EntryType{EntryTypeRevenue, EntryTypeTax, EntryTypeCOGS, EntryTypeInventory}

// Valid indica si el tipo pertenece al conjunto cerrado.
func (t EntryType) Valid() bool {
	switch t {
	case EntryTypeRevenue, EntryTypeTax, EntryTypeCOGS, EntryTypeInventory:
		return true
	}
	return false
}

// Account nombre de la cuenta contable asociada al tipo.
func (t EntryType) Account() string {
	switch t {
	case EntryTypeRevenue:
		return "Sales Revenue"
	case EntryTypeTax:
		return "Sales Tax Payable"
	case EntryTypeCOGS:
		return "Cost of Goods Sold"
	case EntryTypeInventory:
		return "Inventory"
	}
	return ""
}

// LedgerEntry asiento de auditoría generado por una venta (colección posLedgerEntries).
// ID determinístico {saleId}-{tipo}: volver a registrar la venta reemplaza, no duplica.
type LedgerEntry struct {
	ID        string          `json:"id"`
	SaleID    string          `json:"saleId"`
	EntryType EntryType       `json:"entryType"`
	Account   string          `json:"account"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
	Memo      string          `json:"memo"`
	Currency  string          `json:"currency,omitempty"`
}

// LedgerTotal suma de los asientos de un tipo.
type LedgerTotal struct {
	EntryType EntryType
	Amount    decimal.Decimal
	Count     int
}
