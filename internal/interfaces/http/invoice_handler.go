package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	apppos "github.com/jhoicas/pos-ledger/internal/application/pos"
)

// InvoiceHandler maneja la lista de facturas (derivadas de ventas y manuales).
type InvoiceHandler struct {
	uc *apppos.POSUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *apppos.POSUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// List godoc
// @Summary      Facturas derivadas y manuales (pendientes vencidas como overdue)
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  dto.ListResponse[entity.Invoice]
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	invoices, err := h.uc.GetInvoices(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewListResponse(invoices))
}

// Create godoc
// @Summary      Crear factura manual
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ManualInvoiceRequest  true  "clientName, amount, dueDate, items"
// @Success      201   {object}  entity.Invoice
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.ManualInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	invoice, err := h.uc.AddManualInvoice(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// Sync godoc
// @Summary      Reconstruir las facturas derivadas desde el historial de ventas
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  dto.ListResponse[entity.Invoice]
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/invoices/sync [post]
func (h *InvoiceHandler) Sync(c *fiber.Ctx) error {
	invoices, err := h.uc.SyncInvoicesFromSales(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewListResponse(invoices))
}

// MarkPaid godoc
// @Summary      Marcar factura como pagada
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "id de la factura"
// @Success      200  {object}  entity.Invoice
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pay [post]
func (h *InvoiceHandler) MarkPaid(c *fiber.Ctx) error {
	invoice, err := h.uc.MarkInvoicePaid(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(invoice)
}
