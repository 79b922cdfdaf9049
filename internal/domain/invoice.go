package domain

import (
	"fmt"
	"time"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Invoice is the root record. Business and Client are embedded snapshots
// taken at edit time, not references; later edits to the saved client or
// business do not rewrite existing invoices.
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoiceNumber"`
	CreatedDate   Date          `json:"createdDate"`
	DueDate       Date          `json:"dueDate"`
	PaymentTerms  PaymentTerms  `json:"paymentTerms"`
	Notes         string        `json:"notes"`
	Business      Business      `json:"business"`
	Client        Client        `json:"client"`
	LineItems     []LineItem    `json:"lineItems"`
	SubTotal      float64       `json:"subTotal"`
	TaxTotal      float64       `json:"taxTotal"`
	Discount      float64       `json:"discount"`
	DiscountType  DiscountType  `json:"discountType"`
	GrandTotal    float64       `json:"grandTotal"`
	Currency      string        `json:"currency"`
	Status        InvoiceStatus `json:"status"`
}

// InvoiceSummary is a read-only projection used for listings and the
// dashboard. It is derived on demand, never stored.
type InvoiceSummary struct {
	ID            string
	InvoiceNumber string
	ClientName    string
	CreatedDate   Date
	DueDate       Date
	GrandTotal    float64
	Status        InvoiceStatus
}

// NewInvoice creates a draft invoice with generated identity, net-30 terms,
// and empty totals. The business snapshot seeds from the caller's default.
func NewInvoice(id string, business Business, now time.Time) *Invoice {
	created := DateOf(now)
	return &Invoice{
		ID:            id,
		InvoiceNumber: NewInvoiceNumber(now),
		CreatedDate:   created,
		DueDate:       DueDateFromTerms(TermsNet30, created),
		PaymentTerms:  TermsNet30,
		Business:      business,
		LineItems:     make([]LineItem, 0),
		DiscountType:  DiscountPercentage,
		Currency:      "$",
		Status:        InvoiceStatusDraft,
	}
}

// Recalculate rederives every line-item total plus the subtotal, tax total,
// and grand total in one step. The four derived fields only ever change
// together.
func (i *Invoice) Recalculate() {
	for idx := range i.LineItems {
		i.LineItems[idx].Recalculate()
	}
	i.SubTotal = Subtotal(i.LineItems)
	i.TaxTotal = TaxTotal(i.LineItems)
	i.GrandTotal = GrandTotal(i.SubTotal, i.TaxTotal, i.Discount, i.DiscountType)
}

// DeriveStatus rederives the status from the due date. Paid is sticky; a
// draft flips to sent or overdue here and never comes back.
func (i *Invoice) DeriveStatus(now time.Time) {
	i.Status = StatusFromDates(i.DueDate, i.Status == InvoiceStatusPaid, now)
}

// Summary projects the invoice for listings.
func (i *Invoice) Summary() InvoiceSummary {
	return InvoiceSummary{
		ID:            i.ID,
		InvoiceNumber: i.InvoiceNumber,
		ClientName:    i.Client.Name,
		CreatedDate:   i.CreatedDate,
		DueDate:       i.DueDate,
		GrandTotal:    i.GrandTotal,
		Status:        i.Status,
	}
}

// Validate returns an error if the invoice cannot be saved.
func (i *Invoice) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("invoice ID is required")
	}
	if err := i.Client.Validate(); err != nil {
		return err
	}
	return nil
}
