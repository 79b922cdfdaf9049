package domain

import (
	"fmt"
	"math"
)

// sanitize coerces NaN and infinite values to 0. Numeric fields arrive as
// user-typed free text, so garbage is coerced rather than rejected.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// LineItemTotal computes quantity * unitPrice with the item's tax applied.
func LineItemTotal(item LineItem) float64 {
	sub := sanitize(item.Quantity) * sanitize(item.UnitPrice)
	return sub + sub*(sanitize(item.Tax)/100)
}

// Subtotal sums quantity * unitPrice across items, before tax.
func Subtotal(items []LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += sanitize(item.Quantity) * sanitize(item.UnitPrice)
	}
	return sum
}

// TaxTotal sums the tax portion of each line item.
func TaxTotal(items []LineItem) float64 {
	var sum float64
	for _, item := range items {
		sub := sanitize(item.Quantity) * sanitize(item.UnitPrice)
		sum += sub * (sanitize(item.Tax) / 100)
	}
	return sum
}

// DiscountAmount resolves a discount value against the subtotal. A percentage
// discount is taken from the subtotal only; a fixed discount is used as-is.
func DiscountAmount(subTotal, discount float64, discountType DiscountType) float64 {
	if discountType == DiscountPercentage {
		return sanitize(subTotal) * (sanitize(discount) / 100)
	}
	return sanitize(discount)
}

// GrandTotal computes subtotal + tax - discount. The discount is not clamped;
// a discount larger than subtotal + tax yields a negative grand total.
func GrandTotal(subTotal, taxTotal, discount float64, discountType DiscountType) float64 {
	return sanitize(subTotal) + sanitize(taxTotal) - DiscountAmount(subTotal, discount, discountType)
}

// FormatAmount renders an amount rounded to two decimals with thousands
// separators and a currency symbol prefix. Rounding happens only here;
// stored totals keep full precision.
func FormatAmount(amount float64, symbol string) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)

	dotPos := len(s) - 3
	intPart := s[:dotPos]
	decPart := s[dotPos:]

	grouped := make([]byte, 0, len(intPart)+len(intPart)/3)
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, byte(c))
	}

	prefix := symbol
	if negative {
		prefix = "-" + symbol
	}
	return prefix + string(grouped) + decPart
}
