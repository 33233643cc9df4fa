package entity

import "github.com/shopspring/decimal"

// ProductKind distingue bienes físicos (con stock) de servicios.
type ProductKind string

const (
	ProductKindProduct ProductKind = "PRODUCT"
	ProductKindService ProductKind = "SERVICE"
)

// ProductStatus estado del producto en el catálogo.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "ACTIVE"
	ProductStatusInactive ProductStatus = "INACTIVE"
)

// Product representa un ítem del catálogo compartido (colección productsList).
// Stock es opcional: nil significa que el producto no lleva control de inventario.
type Product struct {
	ID             string           `json:"id"`
	SKU            string           `json:"sku,omitempty"`
	Name           string           `json:"name"`
	Category       string           `json:"category,omitempty"`
	Kind           ProductKind      `json:"type"`
	ProductionCost decimal.Decimal  `json:"productionCost"`
	PackagingCost  decimal.Decimal  `json:"packagingCost"`
	DeliveryCost   decimal.Decimal  `json:"deliveryCost"`
	SellingPrice   *decimal.Decimal `json:"sellingPrice,omitempty"`
	SuggestedPrice *decimal.Decimal `json:"suggestedPrice,omitempty"`
	ProfitMargin   decimal.Decimal  `json:"profitMargin"` // porcentaje derivado de precio y costo
	Status         ProductStatus    `json:"status"`
	Stock          *int             `json:"stock,omitempty"`
	POSEligible    *bool            `json:"posEligible,omitempty"`
}

// UnitCost costo unitario = producción + empaque + envío.
func (p Product) UnitCost() decimal.Decimal {
	return p.ProductionCost.Add(p.PackagingCost).Add(p.DeliveryCost).Round(2)
}

// HasStock indica si el producto tiene un campo de stock numérico.
func (p Product) HasStock() bool {
	return p.Stock != nil
}

// IsSellable activo y no excluido explícitamente del punto de venta.
func (p Product) IsSellable() bool {
	if p.Status != ProductStatusActive {
		return false
	}
	return p.POSEligible == nil || *p.POSEligible
}

// ListPrice precio de lista: sellingPrice, si no suggestedPrice, si no cero.
func (p Product) ListPrice() decimal.Decimal {
	if p.SellingPrice != nil {
		return *p.SellingPrice
	}
	if p.SuggestedPrice != nil {
		return *p.SuggestedPrice
	}
	return decimal.Zero
}

// WithDerivedMargin recalcula ProfitMargin = (precio - costo) / precio * 100.
func (p Product) WithDerivedMargin() Product {
	price := p.ListPrice()
	if price.IsPositive() {
		p.ProfitMargin = price.Sub(p.UnitCost()).Div(price).Mul(decimal.NewFromInt(100)).Round(2)
	} else {
		p.ProfitMargin = decimal.Zero
	}
	return p
}

// Clone copia profunda (los punteros de stock/precio no se comparten).
func (p Product) Clone() Product {
	c := p
	if p.Stock != nil {
		s := *p.Stock
		c.Stock = &s
	}
	if p.SellingPrice != nil {
		v := *p.SellingPrice
		c.SellingPrice = &v
	}
	if p.SuggestedPrice != nil {
		v := *p.SuggestedPrice
		c.SuggestedPrice = &v
	}
	if p.POSEligible != nil {
		v := *p.POSEligible
		c.POSEligible = &v
	}
	return c
}
