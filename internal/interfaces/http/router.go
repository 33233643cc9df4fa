package http

import (
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	apppos "github.com/jhoicas/pos-ledger/internal/application/pos"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	POS *apppos.POSUseCase
	// DocsFile ruta a swagger.json; vacío no monta /docs.
	DocsFile string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Swagger UI: http://localhost:<port>/docs
	if deps.DocsFile != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: deps.DocsFile,
			Path:     "docs",
			Title:    "POS Ledger API",
		}))
	}

	api := app.Group("/api")

	// Punto de venta
	pos := api.Group("/pos")
	posHandler := NewPOSHandler(deps.POS)
	pos.Get("/catalog", posHandler.Catalog)
	pos.Get("/sales", posHandler.ListSales)
	pos.Post("/sales", posHandler.RecordSale)
	pos.Get("/sales/:id", posHandler.GetSale)
	pos.Get("/ledger", posHandler.Ledger)
	pos.Get("/ledger/summary", posHandler.LedgerSummary)
	pos.Get("/inventory-movements", posHandler.Movements)
	pos.Get("/sync-status", posHandler.SyncStatus)

	// Facturas
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.POS)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Post("/sync", invoiceHandler.Sync)
	invoices.Post("/:id/pay", invoiceHandler.MarkPaid)
}
