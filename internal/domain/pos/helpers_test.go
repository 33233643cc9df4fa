package pos_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

var fixedNow = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func f64(v float64) *float64 { return &v }

func seqIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + string(rune('0'+n))
	}
}

// productP producto del escenario A: stock 10, precio 100, costo 60.
func productP() entity.Product {
	price := dec("100")
	stock := 10
	return entity.Product{
		ID:             "P",
		Name:           "Producto P",
		Kind:           entity.ProductKindProduct,
		ProductionCost: dec("30"),
		PackagingCost:  dec("20"),
		DeliveryCost:   dec("10"),
		SellingPrice:   &price,
		Status:         entity.ProductStatusActive,
		Stock:          &stock,
	}
}

func saleAt(id string, ts time.Time, total string) entity.Sale {
	t := dec(total)
	return entity.Sale{
		TransactionID: id,
		Timestamp:     ts,
		Items: []entity.LineItem{
			{ProductID: "P", Name: "Producto P", Quantity: 1, Price: t, SellingPrice: t, LineTotal: t},
		},
		Subtotal:       t,
		Tax:            decimal.Zero,
		Total:          t,
		PaymentMethod:  entity.PaymentMethodCard,
		AmountReceived: t,
		Change:         decimal.Zero,
		Currency:       "USD",
	}
}
