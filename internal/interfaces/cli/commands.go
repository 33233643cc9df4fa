package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/pos-ledger/internal/application/dto"
	apppos "github.com/jhoicas/pos-ledger/internal/application/pos"
)

const timeLayout = "2006-01-02 15:04"

func newCatalogCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Lista los productos vendibles (siembra el catálogo de demostración si está vacío)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUseCase(cmd, opts, func(ctx context.Context, uc *apppos.POSUseCase) error {
				products, err := uc.GetCatalogSnapshot(ctx)
				if err != nil {
					return err
				}
				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), products)
				}
				rows := make([][]string, 0, len(products))
				for _, p := range products {
					stock := "-"
					if p.Stock != nil {
						stock = strconv.Itoa(*p.Stock)
					}
					rows = append(rows, []string{p.ID, p.Name, string(p.Kind), p.ListPrice().StringFixed(2), stock})
				}
				return writeTable(cmd.OutOrStdout(), []string{"ID", "NOMBRE", "TIPO", "PRECIO", "STOCK"}, rows)
			})
		},
	}
}

func newRecordCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "record [archivo.json|-]",
		Short: "Registra una venta desde un archivo JSON o stdin",
		Long: `Registra una venta. El cuerpo tiene el mismo formato que POST /api/pos/sales:

  {"transactionId": "t-1", "items": [{"productId": "demo-prod-001", "quantity": 2}],
   "paymentMethod": "cash", "amountReceived": 60}

Sin argumento (o con "-") se lee stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readSaleRequest(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return withUseCase(cmd, opts, func(ctx context.Context, uc *apppos.POSUseCase) error {
				sale, err := uc.RecordSale(ctx, apppos.SaleInputFromRequest(req))
				if err != nil {
					return err
				}
				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), sale)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "venta %s registrada\n", sale.TransactionID)
				fmt.Fprintf(out, "subtotal %s  impuesto %s  total %s %s\n",
					sale.Subtotal.StringFixed(2), sale.Tax.StringFixed(2), sale.Total.StringFixed(2), sale.Currency)
				fmt.Fprintf(out, "recibido %s  cambio %s\n", sale.AmountReceived.StringFixed(2), sale.Change.StringFixed(2))
				for _, w := range sale.Warnings {
					fmt.Fprintf(out, "advertencia: %s\n", w)
				}
				return nil
			})
		},
	}
}

func readSaleRequest(stdin io.Reader, args []string) (dto.RecordSaleRequest, error) {
	var req dto.RecordSaleRequest
	r := stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return req, fmt.Errorf("abrir %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return req, fmt.Errorf("decodificar venta: %w", err)
	}
	return req, nil
}

func newSalesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sales",
		Short: "Historial de ventas, más reciente primero",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUseCase(cmd, opts, func(ctx context.Context, uc *apppos.POSUseCase) error {
				sales, err := uc.GetSalesHistory(ctx)
				if err != nil {
					return err
				}
				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), sales)
				}
				rows := make([][]string, 0, len(sales))
				for _, s := range sales {
					rows = append(rows, []string{
						s.TransactionID, s.Timestamp.Format(timeLayout), strconv.Itoa(s.ItemCount()),
						s.PaymentMethod, s.Total.StringFixed(2),
					})
				}
				return writeTable(cmd.OutOrStdout(), []string{"TRANSACCIÓN", "FECHA", "UNIDADES", "PAGO", "TOTAL"}, rows)
			})
		},
	}
}

func newLedgerCommand(opts *RootOptions) *cobra.Command {
	var summary bool
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Asientos del libro mayor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUseCase(cmd, opts, func(ctx context.Context, uc *apppos.POSUseCase) error {
				if summary {
					s, err := uc.LedgerSummary(ctx)
					if err != nil {
						return err
					}
					if opts.Format == "json" {
						return writeJSON(cmd.OutOrStdout(), s)
					}
					return writeTable(cmd.OutOrStdout(), []string{"INGRESOS", "IMPUESTO", "COSTO", "INVENTARIO", "UTILIDAD BRUTA"}, [][]string{{
						s.Revenue.StringFixed(2), s.Tax.StringFixed(2), s.COGS.StringFixed(2),
						s.Inventory.StringFixed(2), s.GrossProfit.StringFixed(2),
					}})
				}

				entries, err := uc.GetLedgerEntries(ctx)
				if err != nil {
					return err
				}
				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), entries)
				}
				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					rows = append(rows, []string{e.ID, string(e.EntryType), e.Account, e.Amount.StringFixed(2)})
				}
				return writeTable(cmd.OutOrStdout(), []string{"ID", "TIPO", "CUENTA", "MONTO"}, rows)
			})
		},
	}
	cmd.Flags().BoolVar(&summary, "summary", false, "muestra solo los totales por tipo de asiento")
	return cmd
}

func newInvoicesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "invoices",
		Short: "Lista de facturas (derivadas y manuales)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUseCase(cmd, opts, func(ctx context.Context, uc *apppos.POSUseCase) error {
				invoices, err := uc.GetInvoices(ctx)
				if err != nil {
					return err
				}
				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), invoices)
				}
				rows := make([][]string, 0, len(invoices))
				for _, inv := range invoices {
					source := inv.SourceSaleID
					if source == "" {
						source = "manual"
					}
					rows = append(rows, []string{inv.InvoiceNumber, inv.ClientName, inv.Amount.StringFixed(2), string(inv.Status), source})
				}
				return writeTable(cmd.OutOrStdout(), []string{"NÚMERO", "CLIENTE", "MONTO", "ESTADO", "ORIGEN"}, rows)
			})
		},
	}
}

func newSyncInvoicesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync-invoices",
		Short: "Reconstruye las facturas derivadas desde el historial de ventas",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUseCase(cmd, opts, func(ctx context.Context, uc *apppos.POSUseCase) error {
				invoices, err := uc.SyncInvoicesFromSales(ctx)
				if err != nil {
					return err
				}
				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), invoices)
				}
				derived := 0
				for _, inv := range invoices {
					if inv.IsDerived() {
						derived++
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d facturas (%d derivadas de ventas)\n", len(invoices), derived)
				return nil
			})
		},
	}
}

func newPayCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pay <invoice-id>",
		Short: "Marca una factura como pagada",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUseCase(cmd, opts, func(ctx context.Context, uc *apppos.POSUseCase) error {
				inv, err := uc.MarkInvoicePaid(ctx, args[0])
				if err != nil {
					return err
				}
				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), inv)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "factura %s pagada\n", inv.InvoiceNumber)
				return nil
			})
		},
	}
}

func newStatusCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Estado de sincronización de ventas, facturas e inventario",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUseCase(cmd, opts, func(ctx context.Context, uc *apppos.POSUseCase) error {
				st, err := uc.GetSyncStatus(ctx)
				if err != nil {
					return err
				}
				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), st)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "ventas: %d  facturas derivadas: %d  pendientes: %d\n", st.TotalSales, st.DerivedInvoices, st.PendingInvoices)
				if st.LastSaleID != "" {
					fmt.Fprintf(out, "última venta: %s (%s)\n", st.LastSaleID, st.LastSaleAt.Format(timeLayout))
				}
				fmt.Fprintf(out, "asientos: %d  movimientos: %d\n", st.TotalLedgerEntries, st.TotalInventoryMovements)
				for _, w := range st.Warnings {
					fmt.Fprintf(out, "advertencia: %s\n", w)
				}
				return nil
			})
		},
	}
}
