package domain

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NewInvoiceNumber generates a human-facing invoice number of the form
// INV-YYMM-###. The three-digit suffix is pseudorandom and collisions are
// possible; the invoice ID is the real identity, this is display only.
func NewInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%02d%02d-%03d", now.Year()%100, int(now.Month()), rand.IntN(1000))
}
