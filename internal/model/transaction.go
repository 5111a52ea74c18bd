// Package model defines the ledger's record types and their textual encoding.
package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tallyledger/tally/internal/common"
	"github.com/tallyledger/tally/internal/date"
)

// Kind classifies a transaction as money in or money out.
type Kind string

// Valid transaction kinds.
const (
	KindIncome  Kind = "INCOME"
	KindExpense Kind = "EXPENSE"
)

// ParseKind parses a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToUpper(s)) {
	case KindIncome:
		return KindIncome, nil
	case KindExpense:
		return KindExpense, nil
	default:
		return "", fmt.Errorf("%w: unknown kind %q", common.ErrInvalidInput, s)
	}
}

// Transaction represents a single dated income or expense entry.
// Transactions are immutable values: construct a new one instead of mutating.
// The sign of Amount is not constrained by Kind; negative input is accepted.
type Transaction struct {
	Date     date.Date
	Kind     Kind
	Category string
	Note     string
	Amount   decimal.Decimal
}

// fieldCount is the number of comma-separated fields in the persisted form.
const fieldCount = 5

// EncodeCSV produces the persisted line for the transaction:
//
//	2024-07-15,INCOME,Salary,5000.5,July salary
//
// The amount is written in canonical decimal form, with no grouping and
// trailing fractional zeros trimmed. Commas in the note are replaced by
// spaces to keep the field count fixed. Other delimiter-breaking characters
// (embedded newlines) are not handled.
func (t Transaction) EncodeCSV() string {
	return strings.Join([]string{
		t.Date.String(),
		string(t.Kind),
		t.Category,
		t.Amount.String(),
		strings.ReplaceAll(t.Note, ",", " "),
	}, ",")
}

// DecodeCSV parses one persisted line into a Transaction. The line is split
// into at most five fields, so a note may still carry commas on the way in
// even though EncodeCSV strips them on the way out. A missing note field
// decodes as the empty string.
//
// The error wraps common.ErrMalformedRecord when the line has fewer than four
// fields, the date is not a valid ISO date, the kind is not INCOME or EXPENSE,
// or the amount does not parse as a decimal number.
func DecodeCSV(line string) (Transaction, error) {
	parts := strings.SplitN(line, ",", fieldCount)
	if len(parts) < fieldCount-1 {
		return Transaction{}, fmt.Errorf("%w: want at least 4 fields, got %d", common.ErrMalformedRecord, len(parts))
	}

	day, err := date.Parse(parts[0])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", common.ErrMalformedRecord, err)
	}

	kind, err := ParseKind(parts[1])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: unknown kind %q", common.ErrMalformedRecord, parts[1])
	}

	amount, err := decimal.NewFromString(parts[3])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: invalid amount %q", common.ErrMalformedRecord, parts[3])
	}

	note := ""
	if len(parts) == fieldCount {
		note = parts[4]
	}

	return Transaction{
		Date:     day,
		Kind:     kind,
		Category: parts[2],
		Amount:   amount,
		Note:     note,
	}, nil
}

// Equal reports whether two transactions agree in all fields. Amounts are
// compared by value, so 42.5 and 42.50 are equal.
func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date &&
		t.Kind == o.Kind &&
		t.Category == o.Category &&
		t.Note == o.Note &&
		t.Amount.Equal(o.Amount)
}
