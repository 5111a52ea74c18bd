package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tallyledger/tally/internal/ledger"
)

// RenderSummary writes a monthly summary: totals first, then the breakdown
// sorted by composite key.
func RenderSummary(w io.Writer, s ledger.MonthlySummary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, FormatTitle(fmt.Sprintf("Summary for %04d-%02d", s.Year, int(s.Month))))
	fmt.Fprintf(w, "  Total income : %s\n", SuccessStyle.Render(s.TotalIncome.StringFixed(2)))
	fmt.Fprintf(w, "  Total expense: %s\n", ErrorStyle.Render(s.TotalExpense.StringFixed(2)))
	fmt.Fprintf(w, "  Net balance  : %s\n", s.Net.StringFixed(2))

	keys := s.Keys()
	if len(keys) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("  No transactions recorded for this month."))
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Breakdown by category:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(tw, "    %s\t%s\n", key, s.Breakdown[key].StringFixed(2))
	}
	_ = tw.Flush()
}
