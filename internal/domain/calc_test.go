package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalsWorkedExample(t *testing.T) {
	items := []LineItem{
		{ID: "a", Description: "Design", Quantity: 2, UnitPrice: 30, Tax: 5},
		{ID: "b", Description: "Hosting", Quantity: 1, UnitPrice: 20, Tax: 0},
	}

	sub := Subtotal(items)
	tax := TaxTotal(items)

	assert.InDelta(t, 80.0, sub, 1e-9)
	assert.InDelta(t, 3.0, tax, 1e-9)
	assert.InDelta(t, 75.0, GrandTotal(sub, tax, 8, DiscountFixed), 1e-9)
	assert.InDelta(t, 75.0, GrandTotal(sub, tax, 10, DiscountPercentage), 1e-9)
}

func TestLineItemTotal(t *testing.T) {
	tests := []struct {
		name string
		item LineItem
		want float64
	}{
		{"no tax", LineItem{Quantity: 3, UnitPrice: 10}, 30},
		{"with tax", LineItem{Quantity: 2, UnitPrice: 50, Tax: 10}, 110},
		{"fractional quantity", LineItem{Quantity: 1.5, UnitPrice: 100}, 150},
		{"zero quantity", LineItem{Quantity: 0, UnitPrice: 100, Tax: 20}, 0},
		{"nan quantity coerced", LineItem{Quantity: math.NaN(), UnitPrice: 100}, 0},
		{"inf price coerced", LineItem{Quantity: 1, UnitPrice: math.Inf(1)}, 0},
		{"nan tax coerced", LineItem{Quantity: 1, UnitPrice: 100, Tax: math.NaN()}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, LineItemTotal(tt.item), 1e-9)
		})
	}
}

func TestSubtotalOrderIndependent(t *testing.T) {
	a := []LineItem{
		{Quantity: 1, UnitPrice: 10.10},
		{Quantity: 3, UnitPrice: 0.33},
		{Quantity: 7, UnitPrice: 99.99},
	}
	b := []LineItem{a[2], a[0], a[1]}

	assert.Equal(t, Subtotal(a), Subtotal(b))
	assert.Equal(t, TaxTotal(a), TaxTotal(b))
}

func TestDiscountAmount(t *testing.T) {
	tests := []struct {
		name         string
		subTotal     float64
		discount     float64
		discountType DiscountType
		want         float64
	}{
		{"percentage", 200, 10, DiscountPercentage, 20},
		{"fixed", 200, 10, DiscountFixed, 10},
		{"percentage over 100", 200, 150, DiscountPercentage, 300},
		{"fixed over subtotal", 200, 500, DiscountFixed, 500},
		{"nan discount coerced", 200, math.NaN(), DiscountPercentage, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountAmount(tt.subTotal, tt.discount, tt.discountType)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestGrandTotalNotClamped(t *testing.T) {
	// A discount larger than subtotal + tax goes negative
	assert.InDelta(t, -100.0, GrandTotal(100, 0, 200, DiscountFixed), 1e-9)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		symbol string
		want   string
	}{
		{"zero", 0, "$", "$0.00"},
		{"small", 50, "$", "$50.00"},
		{"rounded", 19.999, "$", "$20.00"},
		{"thousands", 1234.5, "$", "$1,234.50"},
		{"millions", 1234567.891, "$", "$1,234,567.89"},
		{"negative", -50, "$", "-$50.00"},
		{"other symbol", 99.9, "€", "€99.90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.amount, tt.symbol))
		})
	}
}
