// Package ledger holds the in-memory, append-only collection of transactions
// and its monthly aggregation.
package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tallyledger/tally/internal/model"
)

// Ledger is an ordered, append-only sequence of transactions. Insertion order
// is preserved and reflects entry order, not date order. Duplicate entries are
// permitted; each is a distinct element. There is no deletion primitive.
type Ledger struct {
	txns []model.Transaction
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Add appends a transaction. It always succeeds; any validation happens when
// the transaction is constructed.
func (l *Ledger) Add(t model.Transaction) {
	l.txns = append(l.txns, t)
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int {
	return len(l.txns)
}

// Transactions returns the transactions in ledger order. The returned slice
// is a copy; mutating it does not affect the ledger.
func (l *Ledger) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(l.txns))
	copy(out, l.txns)
	return out
}

// LoadAll decodes each line into the ledger. A line that fails to decode is
// recorded verbatim in the rejected list and processing continues with the
// next line; a bulk load never aborts. It returns the count of transactions
// loaded and the rejected lines in their original order.
func (l *Ledger) LoadAll(lines []string) (int, []string) {
	loaded := 0
	var rejected []string

	for _, line := range lines {
		t, err := model.DecodeCSV(line)
		if err != nil {
			rejected = append(rejected, line)
			continue
		}
		l.Add(t)
		loaded++
	}

	return loaded, rejected
}

// EncodeAll maps every transaction, in ledger order, to its persisted line.
// It does not reorder or deduplicate.
func (l *Ledger) EncodeAll() []string {
	lines := make([]string, 0, len(l.txns))
	for _, t := range l.txns {
		lines = append(lines, t.EncodeCSV())
	}
	return lines
}

// MonthlySummary aggregates one calendar month of the ledger.
type MonthlySummary struct {
	Breakdown    map[string]decimal.Decimal
	Month        time.Month
	Year         int
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal
}

// Keys returns the breakdown's composite keys in lexicographic order.
func (s MonthlySummary) Keys() []string {
	keys := make([]string, 0, len(s.Breakdown))
	for k := range s.Breakdown {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CompositeKey builds the "<KIND> / <category>" grouping key used in the
// monthly breakdown.
func CompositeKey(t model.Transaction) string {
	return fmt.Sprintf("%s / %s", t.Kind, t.Category)
}

// Summarize aggregates the transactions whose date falls in the given year
// and month (calendar month match, day ignored). A month with no matching
// transactions yields zero totals and an empty breakdown; that is not an
// error.
func (l *Ledger) Summarize(year int, month time.Month) MonthlySummary {
	summary := MonthlySummary{
		Year:      year,
		Month:     month,
		Breakdown: make(map[string]decimal.Decimal),
	}

	for _, t := range l.txns {
		if !t.Date.In(year, month) {
			continue
		}

		switch t.Kind {
		case model.KindIncome:
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
		case model.KindExpense:
			summary.TotalExpense = summary.TotalExpense.Add(t.Amount)
		}

		key := CompositeKey(t)
		summary.Breakdown[key] = summary.Breakdown[key].Add(t.Amount)
	}

	summary.Net = summary.TotalIncome.Sub(summary.TotalExpense)

	return summary
}
