package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTermsDays(t *testing.T) {
	tests := []struct {
		terms PaymentTerms
		want  int
	}{
		{TermsDueOnReceipt, 0},
		{TermsNet7, 7},
		{TermsNet15, 15},
		{TermsNet30, 30},
		{TermsNet60, 60},
		{PaymentTerms("net-90"), 0}, // unknown behaves as due-on-receipt
		{PaymentTerms(""), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.terms), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.terms.Days())
		})
	}
}

func TestDueDateFromTerms(t *testing.T) {
	tests := []struct {
		name  string
		terms PaymentTerms
		start Date
		want  Date
	}{
		{"due on receipt", TermsDueOnReceipt, NewDate(2026, time.March, 10), NewDate(2026, time.March, 10)},
		{"net 7", TermsNet7, NewDate(2026, time.March, 10), NewDate(2026, time.March, 17)},
		{"net 30 mid month", TermsNet30, NewDate(2026, time.March, 1), NewDate(2026, time.March, 31)},
		{"net 30 rolls over month end", TermsNet30, NewDate(2026, time.January, 31), NewDate(2026, time.March, 2)},
		{"net 30 across leap february", TermsNet30, NewDate(2028, time.January, 31), NewDate(2028, time.March, 1)},
		{"net 60 across year end", TermsNet60, NewDate(2026, time.December, 1), NewDate(2027, time.January, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DueDateFromTerms(tt.terms, tt.start))
		})
	}
}
