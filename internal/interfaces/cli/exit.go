package cli

import (
	"errors"

	"github.com/jhoicas/pos-ledger/internal/domain"
)

// Códigos de salida del proceso.
const (
	ExitSuccess     = 0
	ExitFailure     = 1
	ExitInvalidSale = 2 // validación, pago o stock insuficiente
	ExitStorage     = 3 // almacén no disponible
)

// ExitCode traduce el error de un comando a código de salida.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, domain.ErrEnvironment):
		return ExitStorage
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInsufficientPayment),
		errors.Is(err, domain.ErrInsufficientStock):
		return ExitInvalidSale
	default:
		return ExitFailure
	}
}
