package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tallyledger/tally/internal/cli"
	"github.com/tallyledger/tally/internal/common"
	"github.com/tallyledger/tally/internal/date"
	"github.com/tallyledger/tally/internal/ledger"
)

func summaryCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "summary <YYYY-MM>",
		Short: "Print a monthly summary without entering the shell",
		Long: `Load the ledger file and print the totals and per-category breakdown
for one calendar month.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := date.ParseMonth(args[0])
			if err != nil {
				return err
			}

			path := file
			if path == "" {
				path = ledgerPath(nil)
			}
			if path == "" {
				return fmt.Errorf("%w: no ledger file given, use --file or set ledger.file", common.ErrMissingConfig)
			}

			led := ledger.New()
			if err := loadLedger(led, path); err != nil {
				return err
			}

			cli.RenderSummary(os.Stdout, led.Summarize(year, month))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "ledger file (default: configured ledger.file)")

	return cmd
}
