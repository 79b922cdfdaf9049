package domain

// PaymentTerms names the policy that maps an issue date to a due date.
type PaymentTerms string

const (
	TermsDueOnReceipt PaymentTerms = "due-on-receipt"
	TermsNet7         PaymentTerms = "net-7"
	TermsNet15        PaymentTerms = "net-15"
	TermsNet30        PaymentTerms = "net-30"
	TermsNet60        PaymentTerms = "net-60"
)

// AllTerms lists the supported terms in display order.
var AllTerms = []PaymentTerms{TermsDueOnReceipt, TermsNet7, TermsNet15, TermsNet30, TermsNet60}

// Days returns the due-date offset for the terms. Unknown terms behave as
// due-on-receipt.
func (t PaymentTerms) Days() int {
	switch t {
	case TermsNet7:
		return 7
	case TermsNet15:
		return 15
	case TermsNet30:
		return 30
	case TermsNet60:
		return 60
	default:
		return 0
	}
}

// DueDateFromTerms derives the due date by adding the terms offset to the
// start date using calendar arithmetic.
func DueDateFromTerms(terms PaymentTerms, start Date) Date {
	return start.AddDays(terms.Days())
}
