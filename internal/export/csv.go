// Package export serializes record lists into a delimited text format
// for download.
package export

import (
	"strings"
	"time"

	"outflow/internal/model"
)

// header is the fixed CSV column order.
const header = "Date,Category,Description,Amount"

// ToCSV renders the records as comma-separated text: a header row, then
// one row per record in the order given (callers pass the display
// order). Dates are raw ISO YYYY-MM-DD and amounts plain decimal
// strings, not currency-formatted.
//
// Known limitation: the description field is wrapped in double quotes
// but embedded double quotes are not escaped, so a description
// containing `"` produces a malformed row. Kept for compatibility with
// the files this tool has always produced.
func ToCSV(records []model.Expense) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')

	for _, e := range records {
		b.WriteString(e.Date.String())
		b.WriteByte(',')
		b.WriteString(string(e.Category))
		b.WriteByte(',')
		b.WriteByte('"')
		b.WriteString(e.Description)
		b.WriteByte('"')
		b.WriteByte(',')
		b.WriteString(e.Amount.String())
		b.WriteByte('\n')
	}

	return b.String()
}

// Filename returns the download file name for an export taken today:
// expenses-YYYY-MM-DD.csv.
func Filename(now time.Time) string {
	return "expenses-" + model.DateOf(now).String() + ".csv"
}
