package pos_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/pos"
)

func manualInvoice(id, number string) entity.Invoice {
	return entity.Invoice{
		ID:            id,
		InvoiceNumber: number,
		ClientName:    "Acme",
		ClientEmail:   "billing@acme.test",
		Amount:        dec("500"),
		DueDate:       fixedNow.Add(30 * 24 * time.Hour),
		Status:        entity.InvoiceStatusPending,
		Items:         []entity.InvoiceItem{},
		CreatedAt:     fixedNow,
	}
}

func TestSyncInvoices_UnaPorVentaEnOrdenCronologico(t *testing.T) {
	// historial más reciente primero
	sales := []entity.Sale{
		saleAt("s2", fixedNow.Add(time.Hour), "100"),
		saleAt("s1", fixedNow, "100"),
	}
	res := pos.SyncInvoices(sales, nil, fixedNow, seqIDs("inv-"))

	require.Len(t, res.Invoices, 2)
	assert.Equal(t, 2, res.Derived)
	assert.Equal(t, "s1", res.Invoices[0].SourceSaleID)
	assert.Equal(t, "INV-POS-0001", res.Invoices[0].InvoiceNumber)
	assert.Equal(t, "INV-POS-0002", res.Invoices[1].InvoiceNumber)
	for _, inv := range res.Invoices {
		assert.Equal(t, entity.InvoiceStatusPaid, inv.Status)
		require.NotNil(t, inv.PaidAt)
		assert.Equal(t, pos.WalkInCustomerName, inv.ClientName)
		assert.Equal(t, pos.WalkInCustomerEmail, inv.ClientEmail)
	}
	assert.Equal(t, sales[0].Timestamp, *res.Invoices[1].PaidAt)
}

func TestSyncInvoices_Idempotente(t *testing.T) {
	sales := []entity.Sale{saleAt("s2", fixedNow.Add(time.Hour), "100"), saleAt("s1", fixedNow, "100")}
	existing := []entity.Invoice{manualInvoice("m1", "INV-0001")}

	first := pos.SyncInvoices(sales, existing, fixedNow, seqIDs("inv-"))
	second := pos.SyncInvoices(sales, first.Invoices, fixedNow.Add(24*time.Hour), seqIDs("otro-"))

	a, err := json.Marshal(first.Invoices)
	require.NoError(t, err)
	b, err := json.Marshal(second.Invoices)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestSyncInvoices_ConservaFacturasAjenas(t *testing.T) {
	manual := manualInvoice("m1", "INV-0001")
	dangling := manualInvoice("d1", "INV-POS-0007")
	dangling.SourceSaleID = "venta-borrada"

	res := pos.SyncInvoices([]entity.Sale{saleAt("s1", fixedNow, "10")}, []entity.Invoice{manual, dangling}, fixedNow, seqIDs("inv-"))

	require.Len(t, res.Invoices, 3)
	assert.Equal(t, 2, res.Foreign)
	assert.Equal(t, manual, res.Invoices[0])
	assert.Equal(t, dangling, res.Invoices[1])
	assert.Equal(t, "INV-POS-0008", res.Invoices[2].InvoiceNumber, "continúa después del mayor consecutivo")
}

func TestSyncInvoices_ReutilizaNumeroYColapsaDuplicados(t *testing.T) {
	sale := saleAt("s1", fixedNow, "10")
	prev := pos.SyncInvoices([]entity.Sale{sale}, nil, fixedNow, seqIDs("inv-")).Invoices[0]
	dup := prev
	dup.ID = "dup"
	dup.InvoiceNumber = "INV-POS-0002"

	updated := sale
	updated.Total = dec("12")
	res := pos.SyncInvoices([]entity.Sale{updated}, []entity.Invoice{prev, dup}, fixedNow.Add(time.Hour), seqIDs("x-"))

	require.Len(t, res.Invoices, 1)
	inv := res.Invoices[0]
	assert.Equal(t, prev.ID, inv.ID)
	assert.Equal(t, "INV-POS-0001", inv.InvoiceNumber)
	assert.Equal(t, prev.CreatedAt, inv.CreatedAt)
	assert.Equal(t, "12.00", inv.Amount.StringFixed(2))
}

func TestSyncInvoices_ClienteDeLaVenta(t *testing.T) {
	sale := saleAt("s1", fixedNow, "10")
	sale.Customer = &entity.Customer{Name: "Ana", Email: "ana@example.test"}

	inv := pos.SyncInvoices([]entity.Sale{sale}, nil, fixedNow, seqIDs("inv-")).Invoices[0]
	assert.Equal(t, "Ana", inv.ClientName)
	assert.Equal(t, "ana@example.test", inv.ClientEmail)
}

func TestNextManualInvoiceNumber(t *testing.T) {
	invoices := []entity.Invoice{manualInvoice("m1", "INV-0004"), manualInvoice("p", "INV-POS-0010")}
	assert.Equal(t, "INV-0005", pos.NextManualInvoiceNumber(invoices))
	assert.Equal(t, "INV-0001", pos.NextManualInvoiceNumber(nil))
}

func TestWithOverdue(t *testing.T) {
	late := manualInvoice("late", "INV-0001")
	late.DueDate = fixedNow.Add(-time.Hour)
	onTime := manualInvoice("ok", "INV-0002")

	invoices := []entity.Invoice{late, onTime}
	out := pos.WithOverdue(invoices, fixedNow)

	assert.Equal(t, entity.InvoiceStatusOverdue, out[0].Status)
	assert.Equal(t, entity.InvoiceStatusPending, out[1].Status)
	assert.Equal(t, entity.InvoiceStatusPending, invoices[0].Status, "la entrada no se modifica")
}

func TestBuildSyncStatus(t *testing.T) {
	last := saleAt("s3", fixedNow, "10")
	st := pos.BuildSyncStatus(pos.SyncStatusInput{
		TotalSales:             3,
		DerivedInvoices:        1,
		LastSale:               &last,
		LedgerEntriesGenerated: 4,
		Currency:               "USD",
		Now:                    fixedNow,
	})
	assert.Equal(t, 2, st.PendingInvoices)
	assert.True(t, st.HasInvoiceVariance)
	assert.False(t, st.HasInventoryVariance)
	assert.NotNil(t, st.Warnings)
	assert.Equal(t, "s3", st.LastSaleID)
	assert.Equal(t, fixedNow, st.StatusUpdatedAt)

	st = pos.BuildSyncStatus(pos.SyncStatusInput{TotalSales: 1, DerivedInvoices: 3, Warnings: []string{"x"}})
	assert.Equal(t, 0, st.PendingInvoices)
	assert.True(t, st.HasInventoryVariance)
}
