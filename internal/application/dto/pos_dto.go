package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest body para POST /api/pos/sales.
// Los montos llegan como números JSON; quantity puede traer decimales (se trunca).
type RecordSaleRequest struct {
	TransactionID  string               `json:"transactionId,omitempty"`
	Timestamp      *time.Time           `json:"timestamp,omitempty"`
	Items          []SaleItemRequest    `json:"items"`
	PaymentMethod  string               `json:"paymentMethod,omitempty"`
	AmountReceived *float64             `json:"amountReceived,omitempty"`
	Customer       *SaleCustomerRequest `json:"customer,omitempty"`
	Salesperson    string               `json:"salesperson,omitempty"`
}

// SaleItemRequest línea de la venta.
type SaleItemRequest struct {
	ProductID    string   `json:"productId,omitempty"`
	Name         string   `json:"name,omitempty"`
	Quantity     float64  `json:"quantity"`
	Price        *float64 `json:"price,omitempty"`
	SellingPrice *float64 `json:"sellingPrice,omitempty"`
}

// SaleCustomerRequest cliente opcional.
type SaleCustomerRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// ManualInvoiceRequest body para POST /api/invoices (factura manual, no derivada de una venta).
// Si InvoiceNumber va vacío se asigna el siguiente consecutivo INV-NNNN.
type ManualInvoiceRequest struct {
	InvoiceNumber string                     `json:"invoiceNumber,omitempty"`
	ClientName    string                     `json:"clientName"`
	ClientEmail   string                     `json:"clientEmail,omitempty"`
	Amount        decimal.Decimal            `json:"amount"`
	Tax           decimal.Decimal            `json:"tax"`
	IssueDate     *time.Time                 `json:"issueDate,omitempty"`
	DueDate       time.Time                  `json:"dueDate"`
	Status        string                     `json:"status,omitempty"` // pending (defecto) o paid
	PaymentMethod string                     `json:"paymentMethod,omitempty"`
	Items         []ManualInvoiceItemRequest `json:"items,omitempty"`
	Notes         string                     `json:"notes,omitempty"`
}

// ManualInvoiceItemRequest línea de factura manual.
type ManualInvoiceItemRequest struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}
