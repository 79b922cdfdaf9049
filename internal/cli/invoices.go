package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/andy/billfold/internal/domain"
	"github.com/andy/billfold/internal/service"
	"github.com/spf13/cobra"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Manage invoices",
	Long:  `List, inspect, export, and update invoices.`,
}

var invoicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		summaries, err := appInstance.Dashboard.ListSummaries(ctx)
		if err != nil {
			return fmt.Errorf("failed to list invoices: %w", err)
		}

		// Optional status filter
		if cmd.Flags().Changed("status") {
			statusStr, _ := cmd.Flags().GetString("status")
			want := domain.InvoiceStatus(statusStr)
			filtered := summaries[:0]
			for _, s := range summaries {
				if s.Status == want {
					filtered = append(filtered, s)
				}
			}
			summaries = filtered
		}

		if len(summaries) == 0 {
			fmt.Println("No invoices found")
			return nil
		}

		// Print table header
		fmt.Printf("%-14s %-20s %-12s %-12s %-12s %-10s\n", "Number", "Client", "Created", "Due", "Total", "Status")
		fmt.Println("------------------------------------------------------------------------------------")

		for _, s := range summaries {
			fmt.Printf("%-14s %-20s %-12s %-12s %-12s %-10s\n",
				s.InvoiceNumber,
				truncate(s.ClientName, 20),
				s.CreatedDate,
				s.DueDate,
				domain.FormatAmount(s.GrandTotal, "$"),
				s.Status,
			)
		}

		fmt.Printf("\nTotal: %d invoice(s)\n", len(summaries))
		return nil
	},
}

var invoicesShowCmd = &cobra.Command{
	Use:   "show [id_or_number]",
	Short: "Show invoice details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		invoice, err := resolveInvoice(ctx, args[0])
		if err != nil {
			return err
		}

		cur := invoice.Currency

		fmt.Println(strings.Repeat("=", 80))
		fmt.Printf("Invoice: %s\n", invoice.InvoiceNumber)
		fmt.Println(strings.Repeat("=", 80))
		fmt.Printf("From:   %s\n", invoice.Business.Name)
		fmt.Printf("Client: %s\n", invoice.Client.Name)
		fmt.Printf("Issued: %s   Due: %s (%s)\n", invoice.CreatedDate, invoice.DueDate, invoice.PaymentTerms)
		fmt.Printf("Status: %s\n", invoice.Status)
		fmt.Println()

		if len(invoice.LineItems) > 0 {
			fmt.Println("Line Items:")
			fmt.Println(strings.Repeat("-", 80))
			fmt.Printf("%-40s %8s %12s %6s %12s\n", "Description", "Qty", "Unit Price", "Tax%", "Total")
			fmt.Println(strings.Repeat("-", 80))

			for _, item := range invoice.LineItems {
				fmt.Printf("%-40s %8g %12s %6g %12s\n",
					truncate(item.Description, 40),
					item.Quantity,
					domain.FormatAmount(item.UnitPrice, cur),
					item.Tax,
					domain.FormatAmount(item.Total, cur),
				)
			}
			fmt.Println(strings.Repeat("-", 80))
		}

		fmt.Printf("\n")
		fmt.Printf("Subtotal: %s\n", domain.FormatAmount(invoice.SubTotal, cur))
		fmt.Printf("Tax: %s\n", domain.FormatAmount(invoice.TaxTotal, cur))
		if invoice.Discount != 0 {
			amount := domain.DiscountAmount(invoice.SubTotal, invoice.Discount, invoice.DiscountType)
			fmt.Printf("Discount: -%s\n", domain.FormatAmount(amount, cur))
		}
		fmt.Printf("Total: %s\n", domain.FormatAmount(invoice.GrandTotal, cur))
		if invoice.Notes != "" {
			fmt.Printf("\nNotes: %s\n", invoice.Notes)
		}
		fmt.Println(strings.Repeat("=", 80))

		return nil
	},
}

var invoicesMarkPaidCmd = &cobra.Command{
	Use:   "mark-paid [id_or_number]",
	Short: "Mark an invoice as paid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		invoice, err := resolveInvoice(ctx, args[0])
		if err != nil {
			return err
		}

		editor := appInstance.NewEditor()
		if _, err := editor.Load(ctx, invoice.ID); err != nil {
			return fmt.Errorf("failed to load invoice: %w", err)
		}
		if err := editor.MarkPaid(ctx); err != nil {
			return fmt.Errorf("failed to mark invoice as paid: %w", err)
		}

		fmt.Printf("✓ Invoice %s marked as paid\n", invoice.InvoiceNumber)
		return nil
	},
}

var invoicesExportCmd = &cobra.Command{
	Use:   "export [id_or_number]",
	Short: "Export an invoice to PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		invoice, err := resolveInvoice(ctx, args[0])
		if err != nil {
			return err
		}

		outDir, _ := cmd.Flags().GetString("out")
		if outDir == "" {
			outDir = appInstance.Config.Invoice.OutputDir
		}

		path, err := appInstance.PDF.WriteFile(invoice, outDir)
		if err != nil {
			return fmt.Errorf("failed to export invoice: %w", err)
		}

		appInstance.Log.Info().Str("invoice", invoice.InvoiceNumber).Str("path", path).Msg("invoice exported")
		fmt.Printf("✓ Exported %s to %s\n", invoice.InvoiceNumber, path)
		return nil
	},
}

// resolveInvoice finds an invoice by ID first, then by invoice number.
// Invoice numbers are not unique; the first match wins.
func resolveInvoice(ctx context.Context, ref string) (*domain.Invoice, error) {
	invoice, err := appInstance.InvoiceRepo.FindByID(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to look up invoice: %w", err)
	}
	if invoice != nil {
		return invoice, nil
	}

	invoices, err := appInstance.InvoiceRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to look up invoice: %w", err)
	}
	for i := range invoices {
		if invoices[i].InvoiceNumber == ref {
			return &invoices[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s", service.ErrInvoiceNotFound, ref)
}

func init() {
	invoicesCmd.AddCommand(invoicesListCmd)
	invoicesCmd.AddCommand(invoicesShowCmd)
	invoicesCmd.AddCommand(invoicesMarkPaidCmd)
	invoicesCmd.AddCommand(invoicesExportCmd)

	// List flags
	invoicesListCmd.Flags().String("status", "", "Filter by status (draft, sent, paid, overdue)")

	// Export flags
	invoicesExportCmd.Flags().String("out", "", "Output directory (defaults to configured output dir)")
}
