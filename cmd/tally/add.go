package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/tallyledger/tally/internal/cli"
	"github.com/tallyledger/tally/internal/common"
	"github.com/tallyledger/tally/internal/date"
	"github.com/tallyledger/tally/internal/ledger"
	"github.com/tallyledger/tally/internal/model"
	"github.com/tallyledger/tally/internal/store"
)

func addCmd() *cobra.Command {
	var (
		file      string
		dateStr   string
		kindStr   string
		category  string
		amountStr string
		note      string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append one transaction without entering the shell",
		Long: `Load the ledger file, append a single transaction, and save it back.
A missing file starts a new ledger at that path.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := file
			if path == "" {
				path = ledgerPath(nil)
			}
			if path == "" {
				return fmt.Errorf("%w: no ledger file given, use --file or set ledger.file", common.ErrMissingConfig)
			}

			day, err := date.Parse(dateStr)
			if err != nil {
				return err
			}
			kind, err := model.ParseKind(kindStr)
			if err != nil {
				return err
			}
			if category == "" {
				return fmt.Errorf("%w: category must not be empty", common.ErrInvalidInput)
			}
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("%w: invalid amount %q", common.ErrInvalidInput, amountStr)
			}

			led := ledger.New()
			if err := loadLedger(led, path); err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
				slog.Debug("Ledger file does not exist yet, starting a new one", "path", path)
			}

			led.Add(model.Transaction{
				Date:     day,
				Kind:     kind,
				Category: category,
				Amount:   amount,
				Note:     note,
			})

			if err := store.Save(path, led.EncodeAll()); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added, ledger now holds %d transactions", led.Len())))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "ledger file (default: configured ledger.file)")
	cmd.Flags().StringVar(&dateStr, "date", "", "transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&kindStr, "kind", "", "income or expense")
	cmd.Flags().StringVar(&category, "category", "", "free-form category label")
	cmd.Flags().StringVar(&amountStr, "amount", "", "decimal amount")
	cmd.Flags().StringVar(&note, "note", "", "optional note")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
