package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apppos "github.com/jhoicas/pos-ledger/internal/application/pos"
	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/kvstore"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/pos-ledger/internal/interfaces/cli"
	"github.com/jhoicas/pos-ledger/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const saleJSON = `{"transactionId":"t-cli-1","items":[{"productId":"demo-prod-001","name":"Camiseta estampada","quantity":2,"price":25}],"paymentMethod":"cash","amountReceived":60}`

// memoryOpener comparte un único almacén en memoria entre ejecuciones.
func memoryOpener() cli.Opener {
	store := memory.New()
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	return func(ctx context.Context, opts *cli.RootOptions) (*apppos.POSUseCase, func() error, error) {
		uc := apppos.NewPOSUseCase(kvstore.NewRepository(store), logger.Nop(), apppos.Config{
			Currency: "USD",
			Clock:    func() time.Time { return now },
		})
		return uc, func() error { return nil }, nil
	}
}

func run(t *testing.T, open cli.Opener, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCommand(open)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// ──────────────────────────────────────────────────────────────────────────────
// Estructura de comandos
// ──────────────────────────────────────────────────────────────────────────────

func TestNewRootCommand_Subcomandos(t *testing.T) {
	cmd := cli.NewRootCommand(memoryOpener())

	for _, name := range []string{"catalog", "record", "sales", "ledger", "invoices", "sync-invoices", "pay", "status"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}

	assert.NotNil(t, cmd.PersistentFlags().Lookup("format"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("env-file"))

	ledger, _, err := cmd.Find([]string{"ledger"})
	require.NoError(t, err)
	assert.NotNil(t, ledger.Flags().Lookup("summary"))
}

func TestRoot_FormatoInvalido(t *testing.T) {
	_, err := run(t, memoryOpener(), "", "status", "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "formato inválido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de venta
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_DesdeStdinYConsultas(t *testing.T) {
	open := memoryOpener()

	out, err := run(t, open, saleJSON, "record", "--format", "json")
	require.NoError(t, err)
	var sale entity.Sale
	require.NoError(t, json.Unmarshal([]byte(out), &sale))
	assert.Equal(t, "t-cli-1", sale.TransactionID)
	assert.Equal(t, "50.00", sale.Subtotal.StringFixed(2))
	assert.Equal(t, "7.50", sale.Tax.StringFixed(2))
	assert.Equal(t, "57.50", sale.Total.StringFixed(2))
	assert.Equal(t, "2.50", sale.Change.StringFixed(2))

	out, err = run(t, open, "", "sales")
	require.NoError(t, err)
	assert.Contains(t, out, "t-cli-1")
	assert.Contains(t, out, "57.50")

	out, err = run(t, open, "", "ledger", "--summary", "--format", "json")
	require.NoError(t, err)
	var summary struct {
		Revenue string `json:"revenue"`
		Tax     string `json:"tax"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "50", summary.Revenue)
	assert.Equal(t, "7.5", summary.Tax)

	out, err = run(t, open, "", "invoices")
	require.NoError(t, err)
	assert.Contains(t, out, "t-cli-1")

	out, err = run(t, open, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "ventas: 1")
	assert.Contains(t, out, "última venta: t-cli-1")
}

func TestRecord_TextoMuestraTotales(t *testing.T) {
	out, err := run(t, memoryOpener(), saleJSON, "record", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "venta t-cli-1 registrada")
	assert.Contains(t, out, "total 57.50 USD")
	assert.Contains(t, out, "cambio 2.50")
}

func TestRecord_PagoInsuficiente(t *testing.T) {
	body := strings.Replace(saleJSON, `"amountReceived":60`, `"amountReceived":10`, 1)
	_, err := run(t, memoryOpener(), body, "record")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientPayment))
	assert.Equal(t, cli.ExitInvalidSale, cli.ExitCode(err))
}

func TestRecord_JSONInvalido(t *testing.T) {
	_, err := run(t, memoryOpener(), "{no-json", "record")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decodificar venta")
}

func TestCatalog_SiembraDemo(t *testing.T) {
	out, err := run(t, memoryOpener(), "", "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "demo-prod-001")
	assert.Contains(t, out, "Camiseta estampada")
}

func TestPay_FacturaInexistente(t *testing.T) {
	_, err := run(t, memoryOpener(), "", "pay", "no-existe")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// Códigos de salida
// ──────────────────────────────────────────────────────────────────────────────

func TestExitCode(t *testing.T) {
	assert.Equal(t, cli.ExitSuccess, cli.ExitCode(nil))
	assert.Equal(t, cli.ExitStorage, cli.ExitCode(domain.NewEnvironmentError("op", errors.New("down"))))
	assert.Equal(t, cli.ExitInvalidSale, cli.ExitCode(domain.NewValidationError("items", "vacío")))
	assert.Equal(t, cli.ExitInvalidSale, cli.ExitCode(&domain.InsufficientStockError{ProductName: "x"}))
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(errors.New("otro")))
}

func TestDefaultOpener_EnvFileInexistente(t *testing.T) {
	_, _, err := cli.DefaultOpener(context.Background(), &cli.RootOptions{EnvFile: "/no/existe/.env"})
	require.Error(t, err)
}
