// Package ofximport turns OFX/QFX bank statements into expense drafts.
//
// Only debits are imported: credits, interest, and other inflows are
// not expenses and are skipped. Imported drafts default to the Other
// category; the user recategorizes afterwards with `outflow edit`.
package ofximport

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"outflow/internal/model"
)

// Record is one statement transaction converted into an expense draft.
// FITID is the bank's transaction identifier, used to deduplicate
// within an import run.
type Record struct {
	FITID string
	Draft model.Draft
}

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocess fixes common formatting issues in OFX files.
func (p *Parser) preprocess(content string) string {
	// Trim any leading whitespace or blank lines before the header
	content = strings.TrimLeft(content, " \t\r\n")

	// Fix mixed-case SEVERITY values (should be INFO, WARN, or ERROR)
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// Fix missing closing angle brackets in SGML-style OFX files:
	// opening tags at end of line with no > and no content after them.
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX file and returns the debit transactions
// as expense drafts.
func (p *Parser) ParseFile(_ context.Context, reader io.Reader) ([]Record, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var records []Record

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			for _, tx := range stmt.BankTranList.Transactions {
				if rec, ok := p.convert(tx); ok {
					records = append(records, rec)
				}
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			for _, tx := range stmt.BankTranList.Transactions {
				if rec, ok := p.convert(tx); ok {
					records = append(records, rec)
				}
			}
		}
	}

	return records, nil
}

// convert maps one statement transaction to an expense draft. Credits
// and zero-amount entries report ok=false.
func (p *Parser) convert(tx ofxgo.Transaction) (Record, bool) {
	// OFX uses negative amounts for debits.
	if tx.TrnAmt.Sign() >= 0 {
		return Record{}, false
	}

	amount, err := decimal.NewFromString(tx.TrnAmt.FloatString(2))
	if err != nil {
		return Record{}, false
	}

	return Record{
		FITID: string(tx.FiTID),
		Draft: model.Draft{
			Amount:      amount.Neg(),
			Category:    model.CategoryOther,
			Description: p.describe(tx),
			Date:        model.DateOf(tx.DtPosted.Time),
		},
	}, true
}

// describe extracts a clean description from OFX payee/name/memo data.
func (p *Parser) describe(tx ofxgo.Transaction) string {
	// Prefer PAYEE if available (cleaner merchant name)
	if tx.Payee != nil && tx.Payee.Name != "" {
		return string(tx.Payee.Name)
	}

	name := string(tx.Name)

	// Sometimes MEMO has better merchant info than a generic NAME
	if tx.Memo != "" && isGenericDescription(name) {
		name = string(tx.Memo)
	}

	name = strings.TrimSpace(name)

	// Remove common processor prefixes
	prefixes := []string{
		"POS PURCHASE ",
		"PURCHASE AUTHORIZED ON ",
		"DEBIT CARD PURCHASE ",
		"ACH DEBIT ",
		"CHECK CARD ",
		"VISA PURCHASE ",
		"MC PURCHASE ",
		"DEBIT PURCHASE ",
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// Clean up date patterns like "MM/DD " at the beginning
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	if name == "" {
		name = "Imported transaction"
	}

	return name
}

// isGenericDescription checks if a transaction name is too generic.
func isGenericDescription(name string) bool {
	generic := []string{
		"DEBIT",
		"CREDIT",
		"PURCHASE",
		"PAYMENT",
		"POS TRANSACTION",
		"CARD PURCHASE",
	}

	upperName := strings.ToUpper(name)
	for _, g := range generic {
		if upperName == g {
			return true
		}
	}
	return false
}
