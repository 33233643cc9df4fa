package pos

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// EligibleProducts filtra el catálogo a productos ACTIVE con posEligible distinto de false.
func EligibleProducts(catalog []entity.Product) []entity.Product {
	out := make([]entity.Product, 0, len(catalog))
	for _, p := range catalog {
		if p.IsSellable() {
			out = append(out, p)
		}
	}
	return out
}

// IndexByID construye el mapa productID → producto.
func IndexByID(products []entity.Product) map[string]entity.Product {
	m := make(map[string]entity.Product, len(products))
	for _, p := range products {
		if p.ID == "" {
			continue
		}
		m[p.ID] = p
	}
	return m
}

// DemoCatalog catálogo de demostración que se siembra cuando productsList está vacío.
func DemoCatalog() []entity.Product {
	products := []entity.Product{
		demoProduct("demo-prod-001", "DEMO-TEE-01", "Camiseta estampada", "apparel", 8, 1.5, 0.5, 25, 24, 40),
		demoProduct("demo-prod-002", "DEMO-MUG-01", "Taza de cerámica", "home", 4, 1, 0.5, 12, 12, 60),
		demoProduct("demo-prod-003", "DEMO-CAP-01", "Gorra bordada", "apparel", 6, 1, 0.5, 18, 18, 30),
		demoProduct("demo-prod-004", "DEMO-BAG-01", "Bolso de lona", "accessories", 7.5, 1.25, 0.75, 22, 21, 25),
		demoProduct("demo-prod-005", "DEMO-STK-01", "Paquete de stickers", "accessories", 0.8, 0.2, 0, 4, 4, 200),
	}
	service := demoProduct("demo-svc-001", "DEMO-SVC-01", "Personalización de prenda", "services", 5, 0, 0, 15, 15, 0)
	service.Kind = entity.ProductKindService
	service.Stock = nil
	return append(products, service.WithDerivedMargin())
}

func demoProduct(id, sku, name, category string, production, packaging, delivery, selling, suggested float64, stock int) entity.Product {
	sp := decimal.NewFromFloat(selling)
	sg := decimal.NewFromFloat(suggested)
	s := stock
	p := entity.Product{
		ID:             id,
		SKU:            sku,
		Name:           name,
		Category:       category,
		Kind:           entity.ProductKindProduct,
		ProductionCost: decimal.NewFromFloat(production),
		PackagingCost:  decimal.NewFromFloat(packaging),
		DeliveryCost:   decimal.NewFromFloat(delivery),
		SellingPrice:   &sp,
		SuggestedPrice: &sg,
		Status:         entity.ProductStatusActive,
		Stock:          &s,
	}
	return p.WithDerivedMargin()
}
