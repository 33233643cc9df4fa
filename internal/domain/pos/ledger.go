package pos

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// LedgerEntryID ID determinístico de un asiento: {saleId}-{tipo}.
func LedgerEntryID(saleID string, t entity.EntryType) string {
	return fmt.Sprintf("%s-%s", saleID, t)
}

// CostOfGoods Σ costo unitario × cantidad, solo para líneas con producto resoluble en el catálogo.
func CostOfGoods(items []entity.LineItem, catalog map[string]entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		if it.ProductID == "" {
			continue
		}
		p, ok := catalog[it.ProductID]
		if !ok {
			continue
		}
		total = total.Add(p.UnitCost().Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return RoundMoney(total)
}

// PostLedger genera hasta cuatro asientos para la venta (ingreso, impuesto, costo de venta, inventario).
// Los montos en cero se omiten.
func PostLedger(sale entity.Sale, catalog map[string]entity.Product) []entity.LedgerEntry {
	cogs := CostOfGoods(sale.Items, catalog)
	amounts := map[entity.EntryType]decimal.Decimal{
		entity.EntryTypeRevenue:   sale.Subtotal,
		entity.EntryTypeTax:       sale.Tax,
		entity.EntryTypeCOGS:      cogs,
		entity.EntryTypeInventory: cogs,
	}

	entries := make([]entity.LedgerEntry, 0, len(entity.EntryTypes))
	for _, t := range entity.EntryTypes {
		amount := RoundMoney(amounts[t])
		if amount.IsZero() {
			continue
		}
		entries = append(entries, entity.LedgerEntry{
			ID:        LedgerEntryID(sale.TransactionID, t),
			SaleID:    sale.TransactionID,
			EntryType: t,
			Account:   t.Account(),
			Amount:    amount,
			Timestamp: sale.Timestamp,
			Memo:      ledgerMemo(t, sale),
			Currency:  sale.Currency,
		})
	}
	return entries
}

func ledgerMemo(t entity.EntryType, sale entity.Sale) string {
	switch t {
	case entity.EntryTypeRevenue:
		return fmt.Sprintf("POS sale %s revenue (%d items)", sale.TransactionID, sale.ItemCount())
	case entity.EntryTypeTax:
		return fmt.Sprintf("POS sale %s tax at %s%%", sale.TransactionID, TaxRate.Mul(decimal.NewFromInt(100)).String())
	case entity.EntryTypeCOGS:
		return fmt.Sprintf("POS sale %s cost of goods sold", sale.TransactionID)
	case entity.EntryTypeInventory:
		return fmt.Sprintf("POS sale %s inventory relief", sale.TransactionID)
	}
	return ""
}

// ReplaceSaleEntries quita los asientos previos de la venta y agrega los nuevos al final.
func ReplaceSaleEntries(existing []entity.LedgerEntry, saleID string, fresh []entity.LedgerEntry) []entity.LedgerEntry {
	out := make([]entity.LedgerEntry, 0, len(existing)+len(fresh))
	for _, e := range existing {
		if e.SaleID != saleID {
			out = append(out, e)
		}
	}
	return append(out, fresh...)
}

// ReplaceSaleMovements igual que ReplaceSaleEntries para movimientos de inventario.
func ReplaceSaleMovements(existing []entity.InventoryMovement, saleID string, fresh []entity.InventoryMovement) []entity.InventoryMovement {
	out := make([]entity.InventoryMovement, 0, len(existing)+len(fresh))
	for _, m := range existing {
		if m.SaleID != saleID {
			out = append(out, m)
		}
	}
	return append(out, fresh...)
}

// UpsertSale reemplaza la venta con el mismo transactionId en su posición o la agrega al inicio (más reciente primero).
// replaced indica si ya existía.
func UpsertSale(history []entity.Sale, sale entity.Sale) (out []entity.Sale, replaced bool) {
	out = make([]entity.Sale, 0, len(history)+1)
	for _, s := range history {
		if s.TransactionID == sale.TransactionID {
			if !replaced {
				out = append(out, sale)
				replaced = true
			}
			continue
		}
		out = append(out, s)
	}
	if !replaced {
		out = append([]entity.Sale{sale}, out...)
	}
	return out, replaced
}

// LedgerSummary total por tipo de asiento.
type LedgerSummary struct {
	Revenue     decimal.Decimal `json:"revenue"`
	Tax         decimal.Decimal `json:"tax"`
	COGS        decimal.Decimal `json:"cogs"`
	Inventory   decimal.Decimal `json:"inventory"`
	GrossProfit decimal.Decimal `json:"grossProfit"`
	Entries     int             `json:"entries"`
}

// SummarizeLedger agrega los asientos por tipo.
func SummarizeLedger(entries []entity.LedgerEntry) LedgerSummary {
	return SummarizeTotals(TotalsByType(entries))
}

// TotalsByType suma montos y cuenta asientos por tipo, en el orden en que aparece cada tipo.
func TotalsByType(entries []entity.LedgerEntry) []entity.LedgerTotal {
	index := make(map[entity.EntryType]int, 4)
	var out []entity.LedgerTotal
	for _, e := range entries {
		i, ok := index[e.EntryType]
		if !ok {
			i = len(out)
			index[e.EntryType] = i
			out = append(out, entity.LedgerTotal{EntryType: e.EntryType})
		}
		out[i].Amount = out[i].Amount.Add(e.Amount)
		out[i].Count++
	}
	return out
}

// SummarizeTotals arma el resumen a partir de totales por tipo; los tipos desconocidos se ignoran.
func SummarizeTotals(totals []entity.LedgerTotal) LedgerSummary {
	var s LedgerSummary
	for _, t := range totals {
		switch t.EntryType {
		case entity.EntryTypeRevenue:
			s.Revenue = s.Revenue.Add(t.Amount)
		case entity.EntryTypeTax:
			s.Tax = s.Tax.Add(t.Amount)
		case entity.EntryTypeCOGS:
			s.COGS = s.COGS.Add(t.Amount)
		case entity.EntryTypeInventory:
			s.Inventory = s.Inventory.Add(t.Amount)
		default:
			continue
		}
		s.Entries += t.Count
	}
	s.Revenue = RoundMoney(s.Revenue)
	s.Tax = RoundMoney(s.Tax)
	s.COGS = RoundMoney(s.COGS)
	s.Inventory = RoundMoney(s.Inventory)
	s.GrossProfit = RoundMoney(s.Revenue.Sub(s.COGS))
	return s
}
