package pos_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	apppos "github.com/jhoicas/pos-ledger/internal/application/pos"
	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	domainpos "github.com/jhoicas/pos-ledger/internal/domain/pos"
	"github.com/jhoicas/pos-ledger/internal/domain/repository"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/kvstore"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/pos-ledger/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var baseTime = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

type fixture struct {
	store *memory.Store
	repo  *kvstore.Repository
	uc    *apppos.POSUseCase
	now   time.Time
}

func (f *fixture) advance(d time.Duration) { f.now = f.now.Add(d) }

func newFixture(t *testing.T, catalog ...entity.Product) *fixture {
	t.Helper()
	f := &fixture{store: memory.New(), now: baseTime}
	f.repo = kvstore.NewRepository(f.store)
	if len(catalog) > 0 {
		require.NoError(t, f.repo.SaveProducts(context.Background(), catalog))
	}
	n := 0
	f.uc = apppos.NewPOSUseCase(f.repo, logger.Nop(), apppos.Config{
		Currency: "USD",
		Clock:    func() time.Time { return f.now },
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%03d", n)
		},
	})
	return f
}

func f64(v float64) *float64 { return &v }

// productP stock 10, precio 100, costo 60.
func productP() entity.Product {
	price := decimal.NewFromInt(100)
	stock := 10
	return entity.Product{
		ID:             "P",
		Name:           "Producto P",
		Kind:           entity.ProductKindProduct,
		ProductionCost: decimal.NewFromInt(30),
		PackagingCost:  decimal.NewFromInt(20),
		DeliveryCost:   decimal.NewFromInt(10),
		SellingPrice:   &price,
		Status:         entity.ProductStatusActive,
		Stock:          &stock,
	}
}

func saleOfP(id string, qty float64, received float64) domainpos.SaleInput {
	return domainpos.SaleInput{
		TransactionID:  id,
		Items:          []domainpos.SaleItemInput{{ProductID: "P", Quantity: qty}},
		PaymentMethod:  "cash",
		AmountReceived: f64(received),
	}
}

func stockOf(t *testing.T, f *fixture, id string) int {
	t.Helper()
	products, err := f.repo.Products(context.Background())
	require.NoError(t, err)
	for _, p := range products {
		if p.ID == id {
			require.NotNil(t, p.Stock)
			return *p.Stock
		}
	}
	t.Fatalf("producto %s no encontrado", id)
	return 0
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_EscenarioA(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, productP())

	sale, err := f.uc.RecordSale(ctx, saleOfP("sale-A", 2, 230))
	require.NoError(t, err)

	assert.Equal(t, "200.00", sale.Subtotal.StringFixed(2))
	assert.Equal(t, "30.00", sale.Tax.StringFixed(2))
	assert.Equal(t, "230.00", sale.Total.StringFixed(2))
	assert.True(t, sale.Change.IsZero())
	assert.Equal(t, "USD", sale.Currency)
	assert.Equal(t, baseTime, sale.Timestamp)

	assert.Equal(t, 8, stockOf(t, f, "P"))

	movements, err := f.uc.GetInventoryMovements(ctx)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, 8, movements[0].ResultingStock)

	entries, err := f.uc.GetLedgerEntries(ctx)
	require.NoError(t, err)
	amounts := map[entity.EntryType]string{}
	for _, e := range entries {
		amounts[e.EntryType] = e.Amount.StringFixed(2)
	}
	assert.Equal(t, map[entity.EntryType]string{
		entity.EntryTypeRevenue:   "200.00",
		entity.EntryTypeTax:       "30.00",
		entity.EntryTypeCOGS:      "120.00",
		entity.EntryTypeInventory: "120.00",
	}, amounts)

	invoices, err := f.uc.GetInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "sale-A", invoices[0].SourceSaleID)
	assert.Equal(t, entity.InvoiceStatusPaid, invoices[0].Status)

	status, err := f.uc.GetSyncStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sale-A", status.LastSaleID)
	assert.Equal(t, 1, status.TotalSales)
	assert.Equal(t, 1, status.DerivedInvoices)
	assert.Equal(t, 0, status.PendingInvoices)
	assert.False(t, status.HasInvoiceVariance)
	assert.False(t, status.HasInventoryVariance)
	assert.Equal(t, 4, status.LedgerEntriesGenerated)
	assert.Equal(t, 1, status.InventoryMovementsGenerated)
}

func TestRecordSale_EscenarioB_StockInsuficienteSinEfectos(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, productP())
	before := f.store.Snapshot()

	_, err := f.uc.RecordSale(ctx, saleOfP("sale-B", 15, 5000))

	var serr *domain.InsufficientStockError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 10, serr.Available)
	assert.Equal(t, 15, serr.Requested)
	assert.Equal(t, before, f.store.Snapshot(), "ningún almacén cambia")
}

func TestRecordSale_EscenarioC_FacturasEstables(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, productP())

	_, err := f.uc.RecordSale(ctx, saleOfP("c-1", 1, 115))
	require.NoError(t, err)
	f.advance(time.Minute)
	_, err = f.uc.RecordSale(ctx, saleOfP("c-2", 1, 115))
	require.NoError(t, err)

	first, err := f.uc.SyncInvoicesFromSales(ctx)
	require.NoError(t, err)
	raw1 := f.store.Snapshot()[repository.KeyInvoices]

	f.advance(time.Hour)
	second, err := f.uc.SyncInvoicesFromSales(ctx)
	require.NoError(t, err)
	raw2 := f.store.Snapshot()[repository.KeyInvoices]

	require.Len(t, first, 2)
	assert.Equal(t, "INV-POS-0001", first[0].InvoiceNumber)
	assert.Equal(t, "c-1", first[0].SourceSaleID)
	assert.Equal(t, "INV-POS-0002", first[1].InvoiceNumber)
	for _, inv := range second {
		assert.Equal(t, entity.InvoiceStatusPaid, inv.Status)
	}
	assert.Equal(t, string(raw1), string(raw2), "sincronizar dos veces deja la lista byte a byte igual")
	assert.Equal(t, 8, stockOf(t, f, "P"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Upsert por transactionId
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_MismoTransactionIDReemplaza(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, productP())

	_, err := f.uc.RecordSale(ctx, saleOfP("dup", 2, 230))
	require.NoError(t, err)
	f.advance(time.Minute)
	sale, err := f.uc.RecordSale(ctx, saleOfP("dup", 3, 345))
	require.NoError(t, err)
	assert.Equal(t, "345.00", sale.Total.StringFixed(2))

	sales, err := f.uc.GetSalesHistory(ctx)
	require.NoError(t, err)
	assert.Len(t, sales, 1)

	entries, err := f.uc.GetLedgerEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 4)

	movements, err := f.uc.GetInventoryMovements(ctx)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, -3, movements[0].Delta)

	invoices, err := f.uc.GetInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "INV-POS-0001", invoices[0].InvoiceNumber)
	assert.Equal(t, "345.00", invoices[0].Amount.StringFixed(2))

	assert.Equal(t, 7, stockOf(t, f, "P"), "10 − 3: la versión anterior se revierte")
}

func TestRecordSale_StockFinal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, productP())

	for i, qty := range []float64{1, 4, 2, 3} {
		_, err := f.uc.RecordSale(ctx, domainpos.SaleInput{
			TransactionID: fmt.Sprintf("s-%d", i),
			Items:         []domainpos.SaleItemInput{{ProductID: "P", Quantity: qty}},
			PaymentMethod: "card",
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 0, stockOf(t, f, "P"))

	_, err := f.uc.RecordSale(ctx, saleOfP("s-extra", 1, 1000))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores sin efectos
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_ErroresNoEscriben(t *testing.T) {
	cases := []struct {
		name   string
		input  domainpos.SaleInput
		target error
	}{
		{"sin ítems", domainpos.SaleInput{PaymentMethod: "cash"}, domain.ErrInvalidInput},
		{"precio negativo", domainpos.SaleInput{Items: []domainpos.SaleItemInput{{ProductID: "P", Quantity: 1, Price: f64(-1)}}}, domain.ErrInvalidInput},
		{"efectivo insuficiente", saleOfP("x", 2, 229.99), domain.ErrInsufficientPayment},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, productP())
			before := f.store.Snapshot()

			_, err := f.uc.RecordSale(context.Background(), tc.input)
			assert.ErrorIs(t, err, tc.target)
			assert.Equal(t, before, f.store.Snapshot())
		})
	}
}

type brokenRepo struct {
	repository.POSRepository
	failBatch bool
}

var errStore = errors.New("almacén no disponible")

func (b brokenRepo) Sales(ctx context.Context) ([]entity.Sale, error) {
	if !b.failBatch {
		return nil, errStore
	}
	return b.POSRepository.Sales(ctx)
}

func (b brokenRepo) SaveBatch(context.Context, repository.Batch) error { return errStore }

func TestRecordSale_ErrorDeEntorno(t *testing.T) {
	ctx := context.Background()

	t.Run("sin repositorio", func(t *testing.T) {
		uc := apppos.NewPOSUseCase(nil, nil, apppos.Config{})
		_, err := uc.RecordSale(ctx, saleOfP("x", 1, 115))
		assert.ErrorIs(t, err, domain.ErrEnvironment)
	})

	for _, failBatch := range []bool{false, true} {
		t.Run(fmt.Sprintf("falla lectura/escritura batch=%v", failBatch), func(t *testing.T) {
			f := newFixture(t, productP())
			before := f.store.Snapshot()
			uc := apppos.NewPOSUseCase(brokenRepo{POSRepository: f.repo, failBatch: failBatch}, nil, apppos.Config{})

			_, err := uc.RecordSale(ctx, saleOfP("x", 1, 115))
			var eerr *domain.EnvironmentError
			require.ErrorAs(t, err, &eerr)
			assert.ErrorIs(t, err, errStore)
			assert.Equal(t, before, f.store.Snapshot())
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Advertencias
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_AdvertenciasEnEstado(t *testing.T) {
	ctx := context.Background()
	noStock := productP()
	noStock.ID = "NS"
	noStock.Stock = nil
	f := newFixture(t, productP(), noStock)

	sale, err := f.uc.RecordSale(ctx, domainpos.SaleInput{
		Items: []domainpos.SaleItemInput{
			{ProductID: "NS", Quantity: 1},
			{ProductID: "ghost", Name: "Desconocido", Quantity: 1, Price: f64(10)},
		},
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	assert.Equal(t, "id-001", sale.TransactionID)
	assert.Len(t, sale.Warnings, 2)

	status, err := f.uc.GetSyncStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.HasInventoryVariance)
	assert.Len(t, status.Warnings, 2)

	entries, err := f.uc.GetLedgerEntries(ctx)
	require.NoError(t, err)
	var cogs decimal.Decimal
	for _, e := range entries {
		if e.EntryType == entity.EntryTypeCOGS {
			cogs = e.Amount
		}
	}
	assert.Equal(t, "60.00", cogs.StringFixed(2), "el producto desconocido no aporta costo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestGetCatalogSnapshot_SiembraDemo(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	products, err := f.uc.GetCatalogSnapshot(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, products)

	stored, err := f.repo.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, len(domainpos.DemoCatalog()))
}

func TestGetCatalogSnapshot_FiltraNoVendibles(t *testing.T) {
	inactive := productP()
	inactive.ID = "I"
	inactive.Status = entity.ProductStatusInactive
	hidden := productP()
	hidden.ID = "H"
	no := false
	hidden.POSEligible = &no

	f := newFixture(t, productP(), inactive, hidden)
	products, err := f.uc.GetCatalogSnapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "P", products[0].ID)
}

func TestRecordSale_CatalogoVacioSeSiembraEnElLote(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.uc.RecordSale(ctx, domainpos.SaleInput{
		Items:         []domainpos.SaleItemInput{{ProductID: "demo-prod-001", Quantity: 100}},
		PaymentMethod: "card",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, f.store.Snapshot(), "una venta fallida no siembra el catálogo")

	_, err = f.uc.RecordSale(ctx, domainpos.SaleInput{
		Items:         []domainpos.SaleItemInput{{ProductID: "demo-prod-001", Quantity: 1}},
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	assert.Equal(t, 39, stockOf(t, f, "demo-prod-001"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas manuales
// ──────────────────────────────────────────────────────────────────────────────

func TestAddManualInvoice_SobreviveSincronizacion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, productP())

	manual, err := f.uc.AddManualInvoice(ctx, dto.ManualInvoiceRequest{
		ClientName: "Acme",
		DueDate:    baseTime.Add(48 * time.Hour),
		Items: []dto.ManualInvoiceItemRequest{
			{Description: "Consultoría", Quantity: 2, UnitPrice: decimal.NewFromInt(150)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-0001", manual.InvoiceNumber)
	assert.Equal(t, "300.00", manual.Amount.StringFixed(2))
	assert.Equal(t, entity.InvoiceStatusPending, manual.Status)
	assert.Empty(t, manual.SourceSaleID)

	_, err = f.uc.RecordSale(ctx, saleOfP("s-1", 1, 115))
	require.NoError(t, err)
	_, err = f.uc.SyncInvoicesFromSales(ctx)
	require.NoError(t, err)

	invoices, err := f.uc.GetInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, manual.ID, invoices[0].ID)
	assert.Equal(t, "INV-0001", invoices[0].InvoiceNumber)
	assert.True(t, invoices[0].Amount.Equal(manual.Amount))
	assert.Equal(t, entity.InvoiceStatusPending, invoices[0].Status)

	f.advance(72 * time.Hour)
	invoices, err = f.uc.GetInvoices(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusOverdue, invoices[0].Status, "vencida se reporta como overdue")
}

func TestAddManualInvoice_Validacion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.AddManualInvoice(ctx, dto.ManualInvoiceRequest{DueDate: baseTime})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.AddManualInvoice(ctx, dto.ManualInvoiceRequest{ClientName: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.AddManualInvoice(ctx, dto.ManualInvoiceRequest{ClientName: "x", DueDate: baseTime, Status: "overdue"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.AddManualInvoice(ctx, dto.ManualInvoiceRequest{ClientName: "x", DueDate: baseTime, InvoiceNumber: "A-1"})
	require.NoError(t, err)
	_, err = f.uc.AddManualInvoice(ctx, dto.ManualInvoiceRequest{ClientName: "y", DueDate: baseTime, InvoiceNumber: "a-1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestMarkInvoicePaid(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	inv, err := f.uc.AddManualInvoice(ctx, dto.ManualInvoiceRequest{ClientName: "Acme", Amount: decimal.NewFromInt(50), DueDate: baseTime})
	require.NoError(t, err)

	f.advance(time.Hour)
	paid, err := f.uc.MarkInvoicePaid(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
	assert.Equal(t, f.now, *paid.PaidAt)

	_, err = f.uc.MarkInvoicePaid(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSalesHistory_MasRecientePrimero(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, productP())

	for _, id := range []string{"h-1", "h-2", "h-3"} {
		_, err := f.uc.RecordSale(ctx, saleOfP(id, 1, 115))
		require.NoError(t, err)
		f.advance(time.Minute)
	}
	sales, err := f.uc.GetSalesHistory(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 3)
	assert.Equal(t, "h-3", sales[0].TransactionID)
	assert.Equal(t, "h-1", sales[2].TransactionID)

	got, err := f.uc.GetSale(ctx, "h-2")
	require.NoError(t, err)
	assert.Equal(t, "h-2", got.TransactionID)

	_, err = f.uc.GetSale(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedgerSummary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, productP())

	_, err := f.uc.RecordSale(ctx, saleOfP("a", 2, 230))
	require.NoError(t, err)

	s, err := f.uc.LedgerSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "200.00", s.Revenue.StringFixed(2))
	assert.Equal(t, "80.00", s.GrossProfit.StringFixed(2))
	assert.Equal(t, 4, s.Entries)
}

func TestGetSyncStatus_SinCalcular(t *testing.T) {
	f := newFixture(t)
	st, err := f.uc.GetSyncStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, st.TotalSales)
	assert.Equal(t, "USD", st.Currency)
	assert.NotNil(t, st.Warnings)
}

func TestSaleInputFromRequest(t *testing.T) {
	in := apppos.SaleInputFromRequest(dto.RecordSaleRequest{
		TransactionID: "r-1",
		Items:         []dto.SaleItemRequest{{ProductID: "P", Quantity: 2, Price: f64(9.5)}},
		Customer:      &dto.SaleCustomerRequest{Name: "Ana"},
	})
	assert.Equal(t, "r-1", in.TransactionID)
	require.Len(t, in.Items, 1)
	assert.Equal(t, 9.5, *in.Items[0].Price)
	require.NotNil(t, in.Customer)
	assert.Equal(t, "Ana", in.Customer.Name)
}

func TestPing(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, newFixture(t).uc.Ping(ctx))
	assert.ErrorIs(t, apppos.NewPOSUseCase(nil, nil, apppos.Config{}).Ping(ctx), domain.ErrEnvironment)
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas ajenas
// ──────────────────────────────────────────────────────────────────────────────

// Factura escrita por otro módulo: monto numérico, campos ausentes y una clave que el motor no conoce.
const foreignInvoiceJSON = `{"id":"m1","invoiceNumber":"INV-0001","clientName":"Acme & Co","amount":100,"status":"pending","dueDate":"2026-04-30T00:00:00Z","items":[],"projectId":"proj-9"}`

func TestRecordSale_FacturasAjenasIntactasByteAByte(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, productP())
	require.NoError(t, f.store.Set(ctx, repository.KeyInvoices, []byte("["+foreignInvoiceJSON+"]")))

	_, err := f.uc.RecordSale(ctx, saleOfP("s1", 1, 115))
	require.NoError(t, err)
	raw, err := f.store.Get(ctx, repository.KeyInvoices)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "["+foreignInvoiceJSON+","), string(raw))

	_, err = f.uc.SyncInvoicesFromSales(ctx)
	require.NoError(t, err)
	again, err := f.store.Get(ctx, repository.KeyInvoices)
	require.NoError(t, err)
	assert.Equal(t, string(raw), string(again))
}

func TestMarkInvoicePaid_FacturaAjenaConservaCamposDesconocidos(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, productP())
	require.NoError(t, f.store.Set(ctx, repository.KeyInvoices, []byte("["+foreignInvoiceJSON+"]")))

	_, err := f.uc.MarkInvoicePaid(ctx, "m1")
	require.NoError(t, err)

	raw, err := f.store.Get(ctx, repository.KeyInvoices)
	require.NoError(t, err)
	var stored []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &stored))
	require.Len(t, stored, 1)
	inv := stored[0]
	assert.Equal(t, `"proj-9"`, string(inv["projectId"]))
	assert.Equal(t, `100`, string(inv["amount"]), "el monto sigue siendo numérico")
	assert.Equal(t, `"Acme & Co"`, string(inv["clientName"]))
	assert.Equal(t, `"paid"`, string(inv["status"]))
	assert.Contains(t, inv, "paidAt")
	assert.NotContains(t, inv, "subtotal", "no se agregan campos que no cambiaron")
	assert.NotContains(t, inv, "issueDate")
}
