package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	apppos "github.com/jhoicas/pos-ledger/internal/application/pos"
	"github.com/jhoicas/pos-ledger/internal/bootstrap"
	"github.com/jhoicas/pos-ledger/pkg/config"
	"github.com/jhoicas/pos-ledger/pkg/logger"
)

// ValidFormats formatos de salida permitidos.
var ValidFormats = []string{"text", "json"}

// Opener construye el caso de uso para un comando; el closer se invoca al terminar.
type Opener func(ctx context.Context, opts *RootOptions) (*apppos.POSUseCase, func() error, error)

// RootOptions flags globales.
type RootOptions struct {
	EnvFile string
	Format  string
	open    Opener
}

// NewRootCommand crea el comando raíz. open nil usa la configuración del entorno (DefaultOpener).
func NewRootCommand(open Opener) *cobra.Command {
	if open == nil {
		open = DefaultOpener
	}
	opts := &RootOptions{open: open}

	cmd := &cobra.Command{
		Use:   "posctl",
		Short: "Operación del libro de ventas POS",
		Long:  "Registra ventas y consulta catálogo, libro mayor, movimientos de inventario y facturas del punto de venta.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("formato inválido %q: use uno de %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "archivo .env a cargar antes de leer la configuración")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "formato de salida (text|json)")

	cmd.AddCommand(newCatalogCommand(opts))
	cmd.AddCommand(newRecordCommand(opts))
	cmd.AddCommand(newSalesCommand(opts))
	cmd.AddCommand(newLedgerCommand(opts))
	cmd.AddCommand(newInvoicesCommand(opts))
	cmd.AddCommand(newSyncInvoicesCommand(opts))
	cmd.AddCommand(newPayCommand(opts))
	cmd.AddCommand(newStatusCommand(opts))

	return cmd
}

// DefaultOpener carga --env-file (si se indicó), la configuración y el almacén configurado.
// Los logs van a stderr para no mezclarse con la salida del comando.
func DefaultOpener(ctx context.Context, opts *RootOptions) (*apppos.POSUseCase, func() error, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return nil, nil, fmt.Errorf("cargar %s: %w", opts.EnvFile, err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	level := cfg.Log.Level
	if level == "" {
		level = "warn"
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: level, Output: os.Stderr})
	return bootstrap.POS(ctx, cfg, log)
}

// withUseCase abre el caso de uso, ejecuta fn y cierra el almacén.
func withUseCase(cmd *cobra.Command, opts *RootOptions, fn func(ctx context.Context, uc *apppos.POSUseCase) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	uc, closer, err := opts.open(ctx, opts)
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() { _ = closer() }()
	}
	return fn(ctx, uc)
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
