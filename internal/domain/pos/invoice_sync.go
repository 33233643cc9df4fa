package pos

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// Valores fijos de las facturas derivadas de ventas POS.
const (
	POSInvoicePrefix    = "INV-POS-"
	ManualInvoicePrefix = "INV-"
	WalkInCustomerName  = "Walk-in Customer"
	WalkInCustomerEmail = "walk-in@pos.local"
)

// InvoiceSyncResult lista completa que reemplaza financeInvoices.
type InvoiceSyncResult struct {
	Invoices []entity.Invoice
	Derived  int
	Foreign  int
}

// SyncInvoices deriva exactamente una factura por venta y conserva intactas las facturas ajenas
// (sin sourceSaleId o apuntando a una venta que ya no existe).
// Es idempotente: con el mismo historial e invoices de entrada devuelve la misma lista.
func SyncInvoices(sales []entity.Sale, existing []entity.Invoice, now time.Time, newID func() string) InvoiceSyncResult {
	saleIDs := make(map[string]struct{}, len(sales))
	for _, s := range sales {
		saleIDs[s.TransactionID] = struct{}{}
	}

	foreign := make([]entity.Invoice, 0, len(existing))
	derivedBySale := make(map[string]entity.Invoice, len(sales))
	for _, inv := range existing {
		if _, ok := saleIDs[inv.SourceSaleID]; inv.SourceSaleID == "" || !ok {
			foreign = append(foreign, inv)
			continue
		}
		// Duplicados para la misma venta: gana el primero.
		if _, seen := derivedBySale[inv.SourceSaleID]; !seen {
			derivedBySale[inv.SourceSaleID] = inv
		}
	}

	seq := highestSequence(existing, POSInvoicePrefix)
	derived := make([]entity.Invoice, 0, len(sales))
	emitted := make(map[string]struct{}, len(sales))
	for _, sale := range chronological(sales) {
		if _, dup := emitted[sale.TransactionID]; dup {
			continue
		}
		emitted[sale.TransactionID] = struct{}{}

		inv := invoiceFromSale(sale)
		if prev, ok := derivedBySale[sale.TransactionID]; ok && prev.InvoiceNumber != "" {
			inv.ID = prev.ID
			inv.InvoiceNumber = prev.InvoiceNumber
			inv.CreatedAt = prev.CreatedAt
			inv.Notes = prev.Notes
		} else {
			seq++
			inv.ID = newID()
			if ok && prev.ID != "" {
				inv.ID = prev.ID
			}
			inv.InvoiceNumber = FormatPOSInvoiceNumber(seq)
			inv.CreatedAt = now
			inv.Notes = fmt.Sprintf("Generated from POS sale %s", sale.TransactionID)
		}
		derived = append(derived, inv)
	}

	out := make([]entity.Invoice, 0, len(foreign)+len(derived))
	out = append(out, foreign...)
	out = append(out, derived...)
	return InvoiceSyncResult{Invoices: out, Derived: len(derived), Foreign: len(foreign)}
}

// FormatPOSInvoiceNumber INV-POS-0001, INV-POS-0002, ...
func FormatPOSInvoiceNumber(seq int) string {
	return fmt.Sprintf("%s%04d", POSInvoicePrefix, seq)
}

// NextManualInvoiceNumber siguiente INV-NNNN para facturas manuales.
func NextManualInvoiceNumber(invoices []entity.Invoice) string {
	return fmt.Sprintf("%s%04d", ManualInvoicePrefix, highestSequence(invoices, ManualInvoicePrefix)+1)
}

// highestSequence mayor consecutivo {prefix}NNNN presente en la lista.
// INV-POS-0003 no cuenta para el prefijo INV- porque el resto no es numérico.
func highestSequence(invoices []entity.Invoice, prefix string) int {
	highest := 0
	for _, inv := range invoices {
		if !strings.HasPrefix(inv.InvoiceNumber, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(inv.InvoiceNumber, prefix))
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest
}

// chronological ordena de la más antigua a la más reciente.
// El historial se guarda más reciente primero, así que se invierte antes del orden estable.
func chronological(sales []entity.Sale) []entity.Sale {
	out := make([]entity.Sale, len(sales))
	for i, s := range sales {
		out[len(sales)-1-i] = s
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

func invoiceFromSale(sale entity.Sale) entity.Invoice {
	name, email := WalkInCustomerName, WalkInCustomerEmail
	if sale.Customer != nil {
		if sale.Customer.Name != "" {
			name = sale.Customer.Name
		}
		if sale.Customer.Email != "" {
			email = sale.Customer.Email
		}
	}
	items := make([]entity.InvoiceItem, 0, len(sale.Items))
	for _, it := range sale.Items {
		items = append(items, entity.InvoiceItem{
			Description: it.Name,
			Quantity:    it.Quantity,
			UnitPrice:   it.SellingPrice,
			Total:       it.LineTotal,
		})
	}
	paidAt := sale.Timestamp
	return entity.Invoice{
		ClientName:    name,
		ClientEmail:   email,
		Amount:        sale.Total,
		Subtotal:      sale.Subtotal,
		Tax:           sale.Tax,
		IssueDate:     sale.Timestamp,
		DueDate:       sale.Timestamp,
		Status:        entity.InvoiceStatusPaid,
		PaidAt:        &paidAt,
		PaymentMethod: sale.PaymentMethod,
		Items:         items,
		SourceSaleID:  sale.TransactionID,
		Currency:      sale.Currency,
	}
}

// CountDerived facturas con sourceSaleId que apuntan a una venta existente.
func CountDerived(sales []entity.Sale, invoices []entity.Invoice) int {
	saleIDs := make(map[string]struct{}, len(sales))
	for _, s := range sales {
		saleIDs[s.TransactionID] = struct{}{}
	}
	seen := make(map[string]struct{})
	for _, inv := range invoices {
		if _, ok := saleIDs[inv.SourceSaleID]; ok {
			seen[inv.SourceSaleID] = struct{}{}
		}
	}
	return len(seen)
}

// WithOverdue marca como overdue (solo en la copia devuelta) las facturas pendientes vencidas.
func WithOverdue(invoices []entity.Invoice, now time.Time) []entity.Invoice {
	out := make([]entity.Invoice, len(invoices))
	copy(out, invoices)
	for i := range out {
		if out[i].Status == entity.InvoiceStatusPending && !out[i].DueDate.IsZero() && out[i].DueDate.Before(now) {
			out[i].Status = entity.InvoiceStatusOverdue
		}
	}
	return out
}
