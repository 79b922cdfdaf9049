// Package pdf renders a finalized invoice to an A4 PDF. It consumes only
// computed fields; no totals are derived here.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/andy/billfold/internal/domain"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 120}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Generator renders invoices with Maroto v2.
type Generator struct{}

// NewGenerator constructs the generator.
func NewGenerator() *Generator { return &Generator{} }

// Generate renders the invoice and returns the PDF bytes.
func (g *Generator) Generate(invoice *domain.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.InvoiceNumber, true).
		WithAuthor(invoice.Business.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range itemRows(invoice) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range totalsRows(invoice) {
		m.AddRows(r)
	}

	if invoice.Notes != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(notesRow(invoice))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// WriteFile renders the invoice into dir and returns the written path.
func (g *Generator) WriteFile(invoice *domain.Invoice, dir string) (string, error) {
	data, err := g.Generate(invoice)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("pdf: create output directory: %w", err)
	}

	path := filepath.Join(dir, invoice.InvoiceNumber+".pdf")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", path, err)
	}
	return path, nil
}

// headerRow: business identity left, invoice number and dates right.
func headerRow(invoice *domain.Invoice) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(invoice.Business.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(businessContactLine(invoice.Business), props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary,
			}),
			text.New(invoice.InvoiceNumber, props.Text{
				Size: 10, Top: 7, Align: align.Right,
			}),
			text.New(
				fmt.Sprintf("Issued: %s   Due: %s", invoice.CreatedDate, invoice.DueDate),
				props.Text{Size: 8, Top: 13, Align: align.Right, Color: colorGray},
			),
		),
	)
}

// partiesRow: issuer address block plus the bill-to block.
func partiesRow(invoice *domain.Invoice) core.Row {
	return row.New(18).Add(
		col.New(6).Add(
			text.New("FROM", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}),
			text.New(addressLine(invoice.Business.Address, invoice.Business.City, invoice.Business.State, invoice.Business.Zip), props.Text{
				Size: 8, Top: 5, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("BILL TO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}),
			text.New(invoice.Client.Name, props.Text{Size: 9, Top: 5}),
			text.New(addressLine(invoice.Client.Address, invoice.Client.City, invoice.Client.State, invoice.Client.Zip), props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
			text.New(invoice.Client.Email, props.Text{Size: 8, Top: 14, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	right := header
	right.Align = align.Right

	return row.New(7).Add(
		col.New(6).Add(text.New("Description", header)),
		col.New(1).Add(text.New("Qty", right)),
		col.New(2).Add(text.New("Unit Price", right)),
		col.New(1).Add(text.New("Tax %", right)),
		col.New(2).Add(text.New("Total", right)),
	)
}

func itemRows(invoice *domain.Invoice) []core.Row {
	cell := props.Text{Size: 8}
	right := props.Text{Size: 8, Align: align.Right}

	rows := make([]core.Row, 0, len(invoice.LineItems))
	for _, item := range invoice.LineItems {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(item.Description, cell)),
			col.New(1).Add(text.New(fmt.Sprintf("%g", item.Quantity), right)),
			col.New(2).Add(text.New(domain.FormatAmount(item.UnitPrice, invoice.Currency), right)),
			col.New(1).Add(text.New(fmt.Sprintf("%g", item.Tax), right)),
			col.New(2).Add(text.New(domain.FormatAmount(item.Total, invoice.Currency), right)),
		))
	}
	return rows
}

func totalsRows(invoice *domain.Invoice) []core.Row {
	label := props.Text{Size: 9, Align: align.Right, Color: colorGray}
	value := props.Text{Size: 9, Align: align.Right}

	rows := []core.Row{
		totalsLine("Subtotal", domain.FormatAmount(invoice.SubTotal, invoice.Currency), label, value),
		totalsLine("Tax", domain.FormatAmount(invoice.TaxTotal, invoice.Currency), label, value),
	}

	if invoice.Discount != 0 {
		amount := domain.DiscountAmount(invoice.SubTotal, invoice.Discount, invoice.DiscountType)
		name := "Discount"
		if invoice.DiscountType == domain.DiscountPercentage {
			name = fmt.Sprintf("Discount (%g%%)", invoice.Discount)
		}
		rows = append(rows, totalsLine(name, "-"+domain.FormatAmount(amount, invoice.Currency), label, value))
	}

	grandLabel := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary}
	grandValue := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary}
	rows = append(rows, totalsLine("Total Due", domain.FormatAmount(invoice.GrandTotal, invoice.Currency), grandLabel, grandValue))

	return rows
}

func totalsLine(name, amount string, label, value props.Text) core.Row {
	return row.New(6).Add(
		col.New(8),
		col.New(2).Add(text.New(name, label)),
		col.New(2).Add(text.New(amount, value)),
	)
}

func notesRow(invoice *domain.Invoice) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("NOTES", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}),
			text.New(invoice.Notes, props.Text{Size: 8, Top: 5, Color: colorGray}),
		),
	)
}

func businessContactLine(b domain.Business) string {
	switch {
	case b.Email != "" && b.Phone != "":
		return b.Email + "   |   " + b.Phone
	case b.Email != "":
		return b.Email
	default:
		return b.Phone
	}
}

func addressLine(address, city, state, zip string) string {
	s := address
	if city != "" || state != "" || zip != "" {
		if s != "" {
			s += ", "
		}
		s += fmt.Sprintf("%s %s %s", city, state, zip)
	}
	return s
}
