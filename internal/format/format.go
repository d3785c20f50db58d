// Package format holds pure formatting and parsing helpers for amounts
// and dates. Nothing here touches state; the presentation layer and the
// export path are the only consumers.
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"outflow/internal/model"
)

// dayLayout is the human-readable date label, e.g. "Jan 15, 2024".
const dayLayout = "Jan 02, 2006"

// Currency renders an amount as a US dollar string with thousands
// separators and two decimal places, e.g. "$1,234.56".
func Currency(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)

	whole, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, ch := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	b.WriteByte('.')
	b.WriteString(frac)

	return b.String()
}

// Day renders a calendar date as a human-readable label.
func Day(d model.Date) string {
	return d.Time().Format(dayLayout)
}

// ParseAmount parses user input into a positive decimal amount,
// tolerating a leading currency symbol and thousands separators.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}

	return amount, nil
}
