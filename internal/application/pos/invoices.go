package pos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	domainpos "github.com/jhoicas/pos-ledger/internal/domain/pos"
)

// SyncInvoicesFromSales reconstruye las facturas derivadas desde el historial y reemplaza financeInvoices.
// Idempotente: con el historial sin cambios la lista persistida queda idéntica.
func (uc *POSUseCase) SyncInvoicesFromSales(ctx context.Context) ([]entity.Invoice, error) {
	const op = "sincronizar facturas"
	if err := uc.ready(op); err != nil {
		return nil, err
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	sales, err := uc.repo.Sales(ctx)
	if err != nil {
		return nil, envErr(op, err)
	}
	invoices, err := uc.repo.Invoices(ctx)
	if err != nil {
		return nil, envErr(op, err)
	}

	now := uc.now()
	synced := domainpos.SyncInvoices(sales, invoices, now, uc.cfg.NewID)
	if err := uc.repo.SaveInvoices(ctx, synced.Invoices); err != nil {
		return nil, envErr(op, err)
	}
	uc.refreshStatus(ctx, sales, synced.Invoices, now)

	uc.log.Info().
		Int("derived", synced.Derived).
		Int("foreign", synced.Foreign).
		Msg("facturas sincronizadas")
	return synced.Invoices, nil
}

// refreshStatus recalcula los contadores de facturas conservando los datos de la última venta.
func (uc *POSUseCase) refreshStatus(ctx context.Context, sales []entity.Sale, invoices []entity.Invoice, now time.Time) {
	in := domainpos.SyncStatusInput{
		TotalSales:      len(sales),
		DerivedInvoices: domainpos.CountDerived(sales, invoices),
		LastSale:        newestSale(sales),
		Currency:        uc.cfg.Currency,
		Now:             now,
	}
	prev, err := uc.repo.SyncStatus(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("leer estado de sincronización")
	}
	if prev != nil {
		in.Warnings = prev.Warnings
		in.LedgerEntriesGenerated = prev.LedgerEntriesGenerated
		in.InventoryMovementsGenerated = prev.InventoryMovementsGenerated
		in.TotalLedgerEntries = prev.TotalLedgerEntries
		in.TotalInventoryMovements = prev.TotalInventoryMovements
	}
	status := domainpos.BuildSyncStatus(in)
	if err := uc.repo.SaveSyncStatus(ctx, &status); err != nil {
		uc.log.Error().Err(err).Msg("guardar estado de sincronización")
	}
}

// GetInvoices lista de facturas; las pendientes vencidas se reportan como overdue (sin persistir).
func (uc *POSUseCase) GetInvoices(ctx context.Context) ([]entity.Invoice, error) {
	const op = "listar facturas"
	if err := uc.ready(op); err != nil {
		return nil, err
	}
	invoices, err := uc.repo.Invoices(ctx)
	if err != nil {
		return nil, envErr(op, err)
	}
	return domainpos.WithOverdue(invoices, uc.now()), nil
}

// AddManualInvoice agrega una factura manual. Nunca queda vinculada a una venta,
// por lo que la sincronización la conserva intacta.
func (uc *POSUseCase) AddManualInvoice(ctx context.Context, in dto.ManualInvoiceRequest) (*entity.Invoice, error) {
	const op = "agregar factura manual"
	if err := uc.ready(op); err != nil {
		return nil, err
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	inv, err := uc.buildManualInvoice(in, now)
	if err != nil {
		return nil, err
	}

	invoices, err := uc.repo.Invoices(ctx)
	if err != nil {
		return nil, envErr(op, err)
	}
	if inv.InvoiceNumber == "" {
		inv.InvoiceNumber = domainpos.NextManualInvoiceNumber(invoices)
	}
	for _, existing := range invoices {
		if strings.EqualFold(existing.InvoiceNumber, inv.InvoiceNumber) {
			return nil, fmt.Errorf("número de factura %s: %w", inv.InvoiceNumber, domain.ErrDuplicate)
		}
	}

	invoices = append(invoices, inv)
	if err := uc.repo.SaveInvoices(ctx, invoices); err != nil {
		return nil, envErr(op, err)
	}
	uc.log.Info().Str("invoice_id", inv.ID).Str("number", inv.InvoiceNumber).Msg("factura manual creada")
	return &inv, nil
}

func (uc *POSUseCase) buildManualInvoice(in dto.ManualInvoiceRequest, now time.Time) (entity.Invoice, error) {
	name := strings.TrimSpace(in.ClientName)
	if name == "" {
		return entity.Invoice{}, domain.NewValidationError("clientName", "requerido")
	}
	if in.DueDate.IsZero() {
		return entity.Invoice{}, domain.NewValidationError("dueDate", "requerido")
	}
	if in.Amount.IsNegative() || in.Tax.IsNegative() {
		return entity.Invoice{}, domain.NewValidationError("amount", "monto negativo")
	}

	status := entity.InvoiceStatus(strings.ToLower(strings.TrimSpace(in.Status)))
	if status == "" {
		status = entity.InvoiceStatusPending
	}
	if status != entity.InvoiceStatusPending && status != entity.InvoiceStatusPaid {
		return entity.Invoice{}, domain.NewValidationError("status", fmt.Sprintf("estado no permitido %q", in.Status))
	}

	items := make([]entity.InvoiceItem, 0, len(in.Items))
	itemsTotal := decimal.Zero
	for i, it := range in.Items {
		if it.Quantity < 1 {
			return entity.Invoice{}, domain.NewValidationError(fmt.Sprintf("items[%d].quantity", i), "debe ser ≥ 1")
		}
		if it.UnitPrice.IsNegative() {
			return entity.Invoice{}, domain.NewValidationError(fmt.Sprintf("items[%d].unitPrice", i), "precio negativo")
		}
		total := domainpos.RoundMoney(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
		itemsTotal = itemsTotal.Add(total)
		items = append(items, entity.InvoiceItem{
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   domainpos.RoundMoney(it.UnitPrice),
			Total:       total,
		})
	}

	tax := domainpos.RoundMoney(in.Tax)
	amount := domainpos.RoundMoney(in.Amount)
	if amount.IsZero() && len(items) > 0 {
		amount = domainpos.RoundMoney(itemsTotal.Add(tax))
	}
	issue := now
	if in.IssueDate != nil && !in.IssueDate.IsZero() {
		issue = in.IssueDate.UTC()
	}

	inv := entity.Invoice{
		ID:            uc.cfg.NewID(),
		InvoiceNumber: strings.TrimSpace(in.InvoiceNumber),
		ClientName:    name,
		ClientEmail:   strings.TrimSpace(in.ClientEmail),
		Amount:        amount,
		Subtotal:      domainpos.RoundMoney(amount.Sub(tax)),
		Tax:           tax,
		IssueDate:     issue,
		DueDate:       in.DueDate.UTC(),
		Status:        status,
		PaymentMethod: strings.ToLower(strings.TrimSpace(in.PaymentMethod)),
		Items:         items,
		Notes:         strings.TrimSpace(in.Notes),
		Currency:      uc.cfg.Currency,
		CreatedAt:     now,
	}
	if status == entity.InvoiceStatusPaid {
		paidAt := now
		inv.PaidAt = &paidAt
	}
	return inv, nil
}

// MarkInvoicePaid marca la factura como pagada. Si ya estaba pagada no escribe nada.
func (uc *POSUseCase) MarkInvoicePaid(ctx context.Context, id string) (*entity.Invoice, error) {
	const op = "marcar factura pagada"
	if err := uc.ready(op); err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.NewValidationError("id", "requerido")
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	invoices, err := uc.repo.Invoices(ctx)
	if err != nil {
		return nil, envErr(op, err)
	}
	for i := range invoices {
		if invoices[i].ID != id {
			continue
		}
		if invoices[i].Status == entity.InvoiceStatusPaid {
			inv := invoices[i]
			return &inv, nil
		}
		paidAt := uc.now()
		invoices[i].Status = entity.InvoiceStatusPaid
		invoices[i].PaidAt = &paidAt
		if err := uc.repo.SaveInvoices(ctx, invoices); err != nil {
			return nil, envErr(op, err)
		}
		inv := invoices[i]
		uc.log.Info().Str("invoice_id", id).Msg("factura marcada como pagada")
		return &inv, nil
	}
	return nil, fmt.Errorf("factura %s: %w", id, domain.ErrNotFound)
}
