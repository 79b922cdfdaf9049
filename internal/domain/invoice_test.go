package domain

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoiceDefaults(t *testing.T) {
	now := time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)
	business := Business{Name: "Acme LLC"}

	inv := NewInvoice("inv-1", business, now)

	assert.Equal(t, "inv-1", inv.ID)
	assert.Equal(t, business, inv.Business)
	assert.Equal(t, TermsNet30, inv.PaymentTerms)
	assert.Equal(t, NewDate(2026, time.August, 15), inv.CreatedDate)
	assert.Equal(t, NewDate(2026, time.September, 14), inv.DueDate)
	assert.Equal(t, DiscountPercentage, inv.DiscountType)
	assert.Equal(t, "$", inv.Currency)
	assert.Equal(t, InvoiceStatusDraft, inv.Status)
	assert.Empty(t, inv.LineItems)
	assert.Zero(t, inv.GrandTotal)
}

func TestInvoiceNumberFormat(t *testing.T) {
	now := time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^INV-2608-\d{3}$`)

	for i := 0; i < 20; i++ {
		assert.Regexp(t, pattern, NewInvoiceNumber(now))
	}
}

func TestInvoiceRecalculate(t *testing.T) {
	inv := NewInvoice("inv-1", Business{Name: "Acme"}, time.Now())
	inv.LineItems = []LineItem{
		{ID: "a", Quantity: 2, UnitPrice: 30, Tax: 5},
		{ID: "b", Quantity: 1, UnitPrice: 20},
	}
	inv.Discount = 8
	inv.DiscountType = DiscountFixed

	inv.Recalculate()

	assert.InDelta(t, 80.0, inv.SubTotal, 1e-9)
	assert.InDelta(t, 3.0, inv.TaxTotal, 1e-9)
	assert.InDelta(t, 75.0, inv.GrandTotal, 1e-9)

	// Line item totals were rederived too
	assert.InDelta(t, 63.0, inv.LineItems[0].Total, 1e-9)
	assert.InDelta(t, 20.0, inv.LineItems[1].Total, 1e-9)
}

func TestInvoiceRecalculateIdempotent(t *testing.T) {
	inv := NewInvoice("inv-1", Business{Name: "Acme"}, time.Now())
	inv.LineItems = []LineItem{{ID: "a", Quantity: 3, UnitPrice: 99.99, Tax: 7.25}}

	inv.Recalculate()
	first := *inv
	inv.Recalculate()

	assert.Equal(t, first.SubTotal, inv.SubTotal)
	assert.Equal(t, first.TaxTotal, inv.TaxTotal)
	assert.Equal(t, first.GrandTotal, inv.GrandTotal)
}

func TestInvoiceSummary(t *testing.T) {
	inv := NewInvoice("inv-1", Business{Name: "Acme"}, time.Now())
	inv.Client = Client{ID: "c-1", Name: "Globex"}
	inv.LineItems = []LineItem{{ID: "a", Quantity: 1, UnitPrice: 500}}
	inv.Recalculate()

	s := inv.Summary()
	assert.Equal(t, inv.ID, s.ID)
	assert.Equal(t, inv.InvoiceNumber, s.InvoiceNumber)
	assert.Equal(t, "Globex", s.ClientName)
	assert.Equal(t, inv.CreatedDate, s.CreatedDate)
	assert.Equal(t, inv.DueDate, s.DueDate)
	assert.Equal(t, inv.GrandTotal, s.GrandTotal)
	assert.Equal(t, inv.Status, s.Status)
}

func TestInvoiceValidate(t *testing.T) {
	inv := NewInvoice("inv-1", Business{Name: "Acme"}, time.Now())
	assert.Error(t, inv.Validate(), "missing client name")

	inv.Client = Client{Name: "Globex"}
	assert.NoError(t, inv.Validate())

	inv.ID = ""
	assert.Error(t, inv.Validate(), "missing ID")
}

func TestInvoiceJSONShape(t *testing.T) {
	inv := NewInvoice("inv-1", Business{Name: "Acme"}, time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC))
	inv.Client = Client{ID: "c-1", Name: "Globex", Email: "ap@globex.test"}
	inv.LineItems = []LineItem{{ID: "a", Description: "Work", Quantity: 2, UnitPrice: 100, Tax: 10}}
	inv.Recalculate()

	data, err := json.Marshal(inv)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Stored field names are camelCase
	for _, field := range []string{
		"id", "invoiceNumber", "createdDate", "dueDate", "paymentTerms",
		"notes", "business", "client", "lineItems", "subTotal", "taxTotal",
		"discount", "discountType", "grandTotal", "currency", "status",
	} {
		assert.Contains(t, decoded, field)
	}
	assert.Equal(t, "2026-08-15", decoded["createdDate"])

	var back Invoice
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *inv, back)
}
