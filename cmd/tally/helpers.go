package main

import (
	"log/slog"

	"github.com/spf13/viper"
	"github.com/tallyledger/tally/internal/config"
	"github.com/tallyledger/tally/internal/ledger"
	"github.com/tallyledger/tally/internal/store"
)

// ledgerPath resolves the ledger file for this invocation: the positional
// argument wins, then the configured ledger.file. Empty means no file.
func ledgerPath(args []string) string {
	if len(args) > 0 {
		return config.ExpandPath(args[0])
	}
	if path := viper.GetString("ledger.file"); path != "" {
		return config.ExpandPath(path)
	}
	return ""
}

// loadLedger reads the file at path into led, skipping malformed lines.
// Every rejected line is reported to the error stream with its raw text.
func loadLedger(led *ledger.Ledger, path string) error {
	lines, err := store.Load(path)
	if err != nil {
		return err
	}

	loaded, rejected := led.LoadAll(lines)
	for _, line := range rejected {
		slog.Warn("Skipping malformed line", "line", line)
	}
	slog.Info("Loaded ledger", "path", path, "transactions", loaded, "rejected", len(rejected))

	return nil
}
