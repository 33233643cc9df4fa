package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrInsufficientPayment = errors.New("pago insuficiente")
	ErrEnvironment         = errors.New("persistencia no disponible")
)

// ValidationError venta mal formada (sin ítems, precio negativo o no finito, etc.).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("venta inválida: %s", e.Reason)
	}
	return fmt.Sprintf("venta inválida: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidationError atajo para construir un ValidationError.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// InsufficientPaymentError pago en efectivo menor al total de la venta.
type InsufficientPaymentError struct {
	Total     decimal.Decimal
	Received  decimal.Decimal
	Shortfall decimal.Decimal
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("pago insuficiente: total %s, recibido %s, faltan %s",
		e.Total.StringFixed(2), e.Received.StringFixed(2), e.Shortfall.StringFixed(2))
}

func (e *InsufficientPaymentError) Is(target error) bool { return target == ErrInsufficientPayment }

// InsufficientStockError la venta dejaría el stock de un producto en negativo.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %q: disponible %d, solicitado %d",
		e.ProductName, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }

// EnvironmentError la capa de persistencia no está disponible o falló al leer/escribir.
type EnvironmentError struct {
	Op  string
	Err error
}

func (e *EnvironmentError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, ErrEnvironment.Error())
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrEnvironment.Error(), e.Err)
}

func (e *EnvironmentError) Is(target error) bool { return target == ErrEnvironment }

func (e *EnvironmentError) Unwrap() error { return e.Err }

// NewEnvironmentError envuelve un error de almacenamiento.
func NewEnvironmentError(op string, err error) *EnvironmentError {
	return &EnvironmentError{Op: op, Err: err}
}
