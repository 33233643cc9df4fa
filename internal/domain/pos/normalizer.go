package pos

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// maxQuantity límite superior de unidades por línea.
const maxQuantity = 1_000_000

// CustomerInput cliente opcional de la venta.
type CustomerInput struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// SaleItemInput línea cruda tal como llega del punto de venta.
// Price y SellingPrice son opcionales; Quantity se trunca a entero con mínimo 1.
type SaleItemInput struct {
	ProductID    string   `json:"productId,omitempty"`
	Name         string   `json:"name,omitempty"`
	Quantity     float64  `json:"quantity"`
	Price        *float64 `json:"price,omitempty"`
	SellingPrice *float64 `json:"sellingPrice,omitempty"`
}

// SaleInput descripción cruda de una venta.
type SaleInput struct {
	TransactionID  string          `json:"transactionId,omitempty"`
	Timestamp      *time.Time      `json:"timestamp,omitempty"`
	Items          []SaleItemInput `json:"items"`
	PaymentMethod  string          `json:"paymentMethod,omitempty"`
	AmountReceived *float64        `json:"amountReceived,omitempty"`
	Customer       *CustomerInput  `json:"customer,omitempty"`
	Salesperson    string          `json:"salesperson,omitempty"`
}

// NormalizedSale venta con estructura canónica, aún sin resolver contra el catálogo.
type NormalizedSale struct {
	TransactionID  string
	Timestamp      time.Time
	Items          []SaleItemInput
	Quantities     []int
	PaymentMethod  string
	AmountReceived decimal.Decimal
	Customer       *entity.Customer
	Salesperson    string
}

// Normalize valida la estructura de la venta y aplica valores por defecto.
// newID genera el transactionId cuando la venta no trae uno.
func Normalize(in SaleInput, now time.Time, newID func() string) (*NormalizedSale, error) {
	if len(in.Items) == 0 {
		return nil, domain.NewValidationError("items", "la venta no tiene ítems")
	}

	txID := strings.TrimSpace(in.TransactionID)
	if txID == "" {
		txID = newID()
	}
	ts := now
	if in.Timestamp != nil && !in.Timestamp.IsZero() {
		ts = in.Timestamp.UTC()
	}

	method := strings.ToLower(strings.TrimSpace(in.PaymentMethod))
	if method == "" {
		method = entity.PaymentMethodCash
	}

	received := decimal.Zero
	if in.AmountReceived != nil {
		v, ok := moneyFromFloat(*in.AmountReceived)
		if !ok {
			return nil, domain.NewValidationError("amountReceived", "monto no finito")
		}
		if *in.AmountReceived < 0 {
			return nil, domain.NewValidationError("amountReceived", "monto negativo")
		}
		received = v
	}

	quantities := make([]int, len(in.Items))
	for i, it := range in.Items {
		q, err := coerceQuantity(it.Quantity)
		if err != nil {
			return nil, domain.NewValidationError(fmt.Sprintf("items[%d].quantity", i), err.Error())
		}
		quantities[i] = q
	}

	var customer *entity.Customer
	if in.Customer != nil {
		name := strings.TrimSpace(in.Customer.Name)
		email := strings.TrimSpace(in.Customer.Email)
		if name != "" || email != "" {
			customer = &entity.Customer{Name: name, Email: email}
		}
	}

	items := make([]SaleItemInput, len(in.Items))
	copy(items, in.Items)

	return &NormalizedSale{
		TransactionID:  txID,
		Timestamp:      ts,
		Items:          items,
		Quantities:     quantities,
		PaymentMethod:  method,
		AmountReceived: received,
		Customer:       customer,
		Salesperson:    strings.TrimSpace(in.Salesperson),
	}, nil
}

// coerceQuantity trunca a entero y aplica mínimo 1; valores no finitos cuentan como 1.
func coerceQuantity(q float64) (int, error) {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 1, nil
	}
	f := math.Floor(q)
	if f > maxQuantity {
		return 0, fmt.Errorf("cantidad fuera de rango (%.0f)", f)
	}
	if f < 1 {
		return 1, nil
	}
	return int(f), nil
}

// ResolveLineItems resuelve cada línea contra el catálogo y fija su precio de venta.
// Precedencia: sellingPrice explícito → price explícito → sellingPrice del catálogo → suggestedPrice → 0.
// Un productId que no está en el catálogo no es fatal: se devuelve como advertencia.
func ResolveLineItems(n *NormalizedSale, catalog map[string]entity.Product) ([]entity.LineItem, []string, error) {
	items := make([]entity.LineItem, 0, len(n.Items))
	var warnings []string
	for i, raw := range n.Items {
		productID := strings.TrimSpace(raw.ProductID)
		product, found := catalog[productID]
		if productID != "" && !found {
			warnings = append(warnings, fmt.Sprintf("producto %s no está en el catálogo; la línea se registra sin costo", productID))
		}

		price, err := resolvePrice(raw, product, found)
		if err != nil {
			return nil, nil, domain.NewValidationError(fmt.Sprintf("items[%d].price", i), err.Error())
		}

		name := strings.TrimSpace(raw.Name)
		if name == "" && found {
			name = product.Name
		}
		if name == "" {
			name = fmt.Sprintf("Ítem %d", i+1)
		}

		qty := n.Quantities[i]
		items = append(items, entity.LineItem{
			ProductID:    productID,
			Name:         name,
			Quantity:     qty,
			Price:        price,
			SellingPrice: price,
			LineTotal:    RoundMoney(price.Mul(decimal.NewFromInt(int64(qty)))),
		})
	}
	return items, warnings, nil
}

func resolvePrice(raw SaleItemInput, product entity.Product, found bool) (decimal.Decimal, error) {
	var price decimal.Decimal
	switch {
	case raw.SellingPrice != nil:
		return explicitPrice(*raw.SellingPrice)
	case raw.Price != nil:
		return explicitPrice(*raw.Price)
	case found && product.SellingPrice != nil:
		price = RoundMoney(*product.SellingPrice)
	case found && product.SuggestedPrice != nil:
		price = RoundMoney(*product.SuggestedPrice)
	default:
		price = decimal.Zero
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("precio negativo (%s)", price.StringFixed(2))
	}
	return price, nil
}

// explicitPrice el signo se revisa sobre el valor recibido: -0.004 es negativo aunque redondee a 0.
func explicitPrice(f float64) (decimal.Decimal, error) {
	v, ok := moneyFromFloat(f)
	if !ok {
		return decimal.Zero, fmt.Errorf("precio no finito")
	}
	if f < 0 {
		return decimal.Zero, fmt.Errorf("precio negativo (%g)", f)
	}
	return v, nil
}

// Payment resultado de la verificación de cobertura del pago.
type Payment struct {
	AmountReceived decimal.Decimal
	Change         decimal.Decimal
}

// SettlePayment en efectivo exige recibido ≥ total y calcula el cambio;
// cualquier otro método se considera cobrado por el total exacto.
func SettlePayment(method string, received, total decimal.Decimal) (Payment, error) {
	if method != entity.PaymentMethodCash {
		return Payment{AmountReceived: total, Change: decimal.Zero}, nil
	}
	if received.LessThan(total) {
		return Payment{}, &domain.InsufficientPaymentError{
			Total:     total,
			Received:  received,
			Shortfall: RoundMoney(total.Sub(received)),
		}
	}
	return Payment{AmountReceived: received, Change: RoundMoney(received.Sub(total))}, nil
}

// BuildSale arma la venta final a partir de los pasos previos.
func BuildSale(n *NormalizedSale, items []entity.LineItem, totals Totals, payment Payment, currency string) entity.Sale {
	return entity.Sale{
		TransactionID:  n.TransactionID,
		Timestamp:      n.Timestamp,
		Items:          items,
		Subtotal:       totals.Subtotal,
		Tax:            totals.Tax,
		Total:          totals.Total,
		PaymentMethod:  n.PaymentMethod,
		AmountReceived: payment.AmountReceived,
		Change:         payment.Change,
		Customer:       n.Customer,
		Salesperson:    n.Salesperson,
		Currency:       currency,
	}
}
