package pos

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	domainpos "github.com/jhoicas/pos-ledger/internal/domain/pos"
	"github.com/jhoicas/pos-ledger/internal/domain/repository"
	"github.com/jhoicas/pos-ledger/pkg/logger"
)

var errNoRepository = errors.New("repositorio no configurado")

// Config parámetros del motor POS.
type Config struct {
	Currency    string           // ISO 4217; por defecto USD
	DemoCatalog []entity.Product // catálogo que se siembra si productsList está vacío
	Clock       func() time.Time // por defecto time.Now().UTC()
	NewID       func() string    // por defecto uuid.NewString
}

// POSUseCase motor de registro de ventas, inventario, libro mayor y facturas derivadas.
// Un único escritor por almacén: las operaciones que escriben se serializan con mu.
type POSUseCase struct {
	repo repository.POSRepository
	log  *logger.Logger
	cfg  Config
	mu   sync.Mutex
}

// NewPOSUseCase construye el caso de uso. log nil equivale a logger.Nop().
func NewPOSUseCase(repo repository.POSRepository, log *logger.Logger, cfg Config) *POSUseCase {
	if log == nil {
		log = logger.Nop()
	}
	cfg.Currency = strings.ToUpper(strings.TrimSpace(cfg.Currency))
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	if len(cfg.DemoCatalog) == 0 {
		cfg.DemoCatalog = domainpos.DemoCatalog()
	}
	if cfg.Clock == nil {
		cfg.Clock = func() time.Time { return time.Now().UTC() }
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	return &POSUseCase{repo: repo, log: log, cfg: cfg}
}

// Currency moneda operativa configurada.
func (uc *POSUseCase) Currency() string {
	return uc.cfg.Currency
}

// Ping verifica que el almacén responda (health check).
func (uc *POSUseCase) Ping(ctx context.Context) error {
	if err := uc.ready("ping"); err != nil {
		return err
	}
	if err := uc.repo.Ping(ctx); err != nil {
		return envErr("ping", err)
	}
	return nil
}

func (uc *POSUseCase) now() time.Time {
	return uc.cfg.Clock()
}

func (uc *POSUseCase) ready(op string) error {
	if uc.repo == nil {
		return domain.NewEnvironmentError(op, errNoRepository)
	}
	return nil
}

func envErr(op string, err error) error {
	return domain.NewEnvironmentError(op, err)
}
