// Package bootstrap arma el motor POS a partir de la configuración (compartido por la API y la CLI).
package bootstrap

import (
	"context"
	"fmt"

	apppos "github.com/jhoicas/pos-ledger/internal/application/pos"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/kvstore"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/seed"
	"github.com/jhoicas/pos-ledger/pkg/config"
	"github.com/jhoicas/pos-ledger/pkg/logger"
)

// POS abre el almacén indicado por STORE_DRIVER y construye el caso de uso.
// El closer devuelto libera las conexiones del almacén.
func POS(ctx context.Context, cfg *config.Config, log *logger.Logger) (*apppos.POSUseCase, func() error, error) {
	var demo []entity.Product
	if cfg.POS.DemoCatalogPath != "" {
		products, err := seed.LoadCatalogFile(cfg.POS.DemoCatalogPath)
		if err != nil {
			return nil, nil, fmt.Errorf("catálogo de demostración: %w", err)
		}
		demo = products
	}

	store, closer, err := kvstore.Open(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("abrir almacén %s: %w", cfg.Store.Driver, err)
	}
	log.Info().Str("driver", cfg.Store.Driver).Str("currency", cfg.POS.Currency).Msg("almacén POS listo")

	uc := apppos.NewPOSUseCase(kvstore.NewRepository(store), log, apppos.Config{
		Currency:    cfg.POS.Currency,
		DemoCatalog: demo,
	})
	return uc, closer, nil
}
