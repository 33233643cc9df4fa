package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	apppos "github.com/jhoicas/pos-ledger/internal/application/pos"
)

// POSHandler maneja ventas, catálogo, libro mayor y movimientos del punto de venta.
type POSHandler struct {
	uc *apppos.POSUseCase
}

// NewPOSHandler construye el handler.
func NewPOSHandler(uc *apppos.POSUseCase) *POSHandler {
	return &POSHandler{uc: uc}
}

// Catalog godoc
// @Summary      Catálogo vendible en el punto de venta
// @Tags         pos
// @Produce      json
// @Success      200  {object}  dto.ListResponse[entity.Product]
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/pos/catalog [get]
func (h *POSHandler) Catalog(c *fiber.Ctx) error {
	products, err := h.uc.GetCatalogSnapshot(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewListResponse(products))
}

// RecordSale godoc
// @Summary      Registrar (o reemplazar por transactionId) una venta
// @Tags         pos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "items, paymentMethod, amountReceived, customer"
// @Success      201   {object}  entity.Sale
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/pos/sales [post]
func (h *POSHandler) RecordSale(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.RecordSale(c.Context(), apppos.SaleInputFromRequest(in))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// ListSales godoc
// @Summary      Historial de ventas, más reciente primero
// @Tags         pos
// @Produce      json
// @Success      200  {object}  dto.ListResponse[entity.Sale]
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/pos/sales [get]
func (h *POSHandler) ListSales(c *fiber.Ctx) error {
	sales, err := h.uc.GetSalesHistory(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewListResponse(sales))
}

// GetSale godoc
// @Summary      Venta por transactionId
// @Tags         pos
// @Produce      json
// @Param        id   path      string  true  "transactionId"
// @Success      200  {object}  entity.Sale
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/pos/sales/{id} [get]
func (h *POSHandler) GetSale(c *fiber.Ctx) error {
	sale, err := h.uc.GetSale(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sale)
}

// Ledger godoc
// @Summary      Asientos del libro mayor
// @Tags         pos
// @Produce      json
// @Success      200  {object}  dto.ListResponse[entity.LedgerEntry]
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/pos/ledger [get]
func (h *POSHandler) Ledger(c *fiber.Ctx) error {
	entries, err := h.uc.GetLedgerEntries(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewListResponse(entries))
}

// LedgerSummary godoc
// @Summary      Totales del libro mayor por tipo de asiento
// @Tags         pos
// @Produce      json
// @Success      200  {object}  pos.LedgerSummary
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/pos/ledger/summary [get]
func (h *POSHandler) LedgerSummary(c *fiber.Ctx) error {
	summary, err := h.uc.LedgerSummary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// Movements godoc
// @Summary      Movimientos de inventario generados por ventas
// @Tags         pos
// @Produce      json
// @Success      200  {object}  dto.ListResponse[entity.InventoryMovement]
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/pos/inventory-movements [get]
func (h *POSHandler) Movements(c *fiber.Ctx) error {
	movements, err := h.uc.GetInventoryMovements(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewListResponse(movements))
}

// SyncStatus godoc
// @Summary      Estado de sincronización de ventas, facturas e inventario
// @Tags         pos
// @Produce      json
// @Success      200  {object}  entity.SyncStatus
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/pos/sync-status [get]
func (h *POSHandler) SyncStatus(c *fiber.Ctx) error {
	status, err := h.uc.GetSyncStatus(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(status)
}
