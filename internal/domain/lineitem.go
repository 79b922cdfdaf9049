package domain

// LineItem is one billable row on an invoice. Total is derived and is never
// trusted from outside; Recalculate reestablishes the invariant after any
// edit to quantity, unit price, or tax.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Tax         float64 `json:"tax"` // percent, 0-100
	Total       float64 `json:"total"`
}

// NewLineItem creates an empty line item with the given ID and a quantity
// of one.
func NewLineItem(id string) LineItem {
	return LineItem{ID: id, Quantity: 1}
}

// Recalculate rederives the total from quantity, unit price, and tax.
func (li *LineItem) Recalculate() {
	li.Total = LineItemTotal(*li)
}
