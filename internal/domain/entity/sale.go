package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago conocidos. Cualquier otro valor se trata como no efectivo.
const (
	PaymentMethodCash     = "cash"
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
)

// Customer cliente opcional de una venta POS.
type Customer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// LineItem línea de una venta. ProductID puede venir vacío (ítem libre).
type LineItem struct {
	ProductID    string          `json:"productId,omitempty"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	LineTotal    decimal.Decimal `json:"lineTotal"`
}

// Sale una venta del punto de venta (colección salesHistory).
// TransactionID es la llave de idempotencia: registrar de nuevo el mismo ID reemplaza la venta.
type Sale struct {
	TransactionID  string          `json:"transactionId"`
	Timestamp      time.Time       `json:"timestamp"`
	Items          []LineItem      `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
	PaymentMethod  string          `json:"paymentMethod"`
	AmountReceived decimal.Decimal `json:"amountReceived"`
	Change         decimal.Decimal `json:"change"`
	Customer       *Customer       `json:"customer,omitempty"`
	Salesperson    string          `json:"salesperson,omitempty"`
	Currency       string          `json:"currency,omitempty"`
	Warnings       []string        `json:"warnings,omitempty"`
}

// ItemCount suma de cantidades de todas las líneas.
func (s Sale) ItemCount() int {
	n := 0
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}
