package pos

import (
	"context"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	domainpos "github.com/jhoicas/pos-ledger/internal/domain/pos"
)

// GetCatalogSnapshot productos vendibles (ACTIVE y posEligible distinto de false).
// Si el catálogo está vacío siembra y persiste el catálogo de demostración.
func (uc *POSUseCase) GetCatalogSnapshot(ctx context.Context) ([]entity.Product, error) {
	const op = "obtener catálogo"
	if err := uc.ready(op); err != nil {
		return nil, err
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	catalog, seeded, err := uc.loadCatalog(ctx, op)
	if err != nil {
		return nil, err
	}
	if seeded {
		if err := uc.repo.SaveProducts(ctx, catalog); err != nil {
			return nil, envErr(op, err)
		}
		uc.log.Info().Int("products", len(catalog)).Msg("catálogo de demostración sembrado")
	}
	return domainpos.EligibleProducts(catalog), nil
}

// loadCatalog lee productsList; si está vacío devuelve una copia del catálogo de demostración
// con seeded=true sin escribirlo (el llamador decide cuándo persistir).
func (uc *POSUseCase) loadCatalog(ctx context.Context, op string) ([]entity.Product, bool, error) {
	products, err := uc.repo.Products(ctx)
	if err != nil {
		return nil, false, envErr(op, err)
	}
	if len(products) > 0 {
		return products, false, nil
	}
	seed := make([]entity.Product, len(uc.cfg.DemoCatalog))
	for i, p := range uc.cfg.DemoCatalog {
		seed[i] = p.Clone()
	}
	return seed, true, nil
}
