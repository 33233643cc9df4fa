package seed

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// catalogFile formato YAML del catálogo de demostración.
//
//	products:
//	  - id: demo-prod-001
//	    name: Camiseta estampada
//	    type: PRODUCT
//	    productionCost: "8"
//	    sellingPrice: "25"
//	    stock: 40
type catalogFile struct {
	Products []catalogProduct `yaml:"products"`
}

type catalogProduct struct {
	ID             string  `yaml:"id"`
	SKU            string  `yaml:"sku"`
	Name           string  `yaml:"name"`
	Category       string  `yaml:"category"`
	Type           string  `yaml:"type"`
	ProductionCost string  `yaml:"productionCost"`
	PackagingCost  string  `yaml:"packagingCost"`
	DeliveryCost   string  `yaml:"deliveryCost"`
	SellingPrice   *string `yaml:"sellingPrice"`
	SuggestedPrice *string `yaml:"suggestedPrice"`
	Status         string  `yaml:"status"`
	Stock          *int    `yaml:"stock"`
	POSEligible    *bool   `yaml:"posEligible"`
}

// LoadCatalogFile lee el catálogo de demostración desde un archivo YAML.
func LoadCatalogFile(path string) ([]entity.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir catálogo %s: %w", path, err)
	}
	defer f.Close()
	return DecodeCatalog(f)
}

// DecodeCatalog decodifica y valida el catálogo. Los márgenes se derivan de precio y costo.
func DecodeCatalog(r io.Reader) ([]entity.Product, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decodificar catálogo: %w", err)
	}

	out := make([]entity.Product, 0, len(file.Products))
	seen := make(map[string]struct{}, len(file.Products))
	for i, cp := range file.Products {
		if strings.TrimSpace(cp.ID) == "" {
			return nil, fmt.Errorf("producto #%d: id requerido", i+1)
		}
		if _, dup := seen[cp.ID]; dup {
			return nil, fmt.Errorf("producto %s: id duplicado", cp.ID)
		}
		seen[cp.ID] = struct{}{}

		p, err := cp.toEntity()
		if err != nil {
			return nil, fmt.Errorf("producto %s: %w", cp.ID, err)
		}
		out = append(out, p.WithDerivedMargin())
	}
	return out, nil
}

func (cp catalogProduct) toEntity() (entity.Product, error) {
	kind := entity.ProductKind(strings.ToUpper(cp.Type))
	if kind == "" {
		kind = entity.ProductKindProduct
	}
	if kind != entity.ProductKindProduct && kind != entity.ProductKindService {
		return entity.Product{}, fmt.Errorf("tipo inválido %q", cp.Type)
	}
	status := entity.ProductStatus(strings.ToUpper(cp.Status))
	if status == "" {
		status = entity.ProductStatusActive
	}

	production, err := parseAmount(cp.ProductionCost)
	if err != nil {
		return entity.Product{}, fmt.Errorf("productionCost: %w", err)
	}
	packaging, err := parseAmount(cp.PackagingCost)
	if err != nil {
		return entity.Product{}, fmt.Errorf("packagingCost: %w", err)
	}
	delivery, err := parseAmount(cp.DeliveryCost)
	if err != nil {
		return entity.Product{}, fmt.Errorf("deliveryCost: %w", err)
	}
	selling, err := parseOptional(cp.SellingPrice)
	if err != nil {
		return entity.Product{}, fmt.Errorf("sellingPrice: %w", err)
	}
	suggested, err := parseOptional(cp.SuggestedPrice)
	if err != nil {
		return entity.Product{}, fmt.Errorf("suggestedPrice: %w", err)
	}
	if cp.Stock != nil && *cp.Stock < 0 {
		return entity.Product{}, fmt.Errorf("stock negativo")
	}

	return entity.Product{
		ID:             cp.ID,
		SKU:            cp.SKU,
		Name:           cp.Name,
		Category:       cp.Category,
		Kind:           kind,
		ProductionCost: production,
		PackagingCost:  packaging,
		DeliveryCost:   delivery,
		SellingPrice:   selling,
		SuggestedPrice: suggested,
		Status:         status,
		Stock:          cp.Stock,
		POSEligible:    cp.POSEligible,
	}, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("monto negativo %s", s)
	}
	return d, nil
}

func parseOptional(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := parseAmount(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
