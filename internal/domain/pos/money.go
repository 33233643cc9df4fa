package pos

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// MoneyPlaces decimales de todos los montos del motor.
const MoneyPlaces = 2

// TaxRate impuesto fijo sobre el subtotal (15%).
var TaxRate = decimal.RequireFromString("0.15")

// RoundMoney redondea a 2 decimales (mitad hacia arriba para montos positivos).
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// moneyFromFloat convierte un float de entrada a decimal redondeado.
// ok=false si el valor no es finito (NaN o ±Inf).
func moneyFromFloat(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return RoundMoney(decimal.NewFromFloat(f)), true
}

// Totals totales de una venta.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// CalculateTotals subtotal = round(Σ cantidad×precio), impuesto = round(subtotal×0.15), total = round(subtotal+impuesto).
func CalculateTotals(items []entity.LineItem) Totals {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.SellingPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	subtotal := RoundMoney(sum)
	tax := RoundMoney(subtotal.Mul(TaxRate))
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    RoundMoney(subtotal.Add(tax)),
	}
}
