package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/tallyledger/tally/internal/common"
	"github.com/tallyledger/tally/internal/date"
	"github.com/tallyledger/tally/internal/ledger"
	"github.com/tallyledger/tally/internal/model"
	"github.com/tallyledger/tally/internal/store"
)

// Shell is the interactive menu loop over one ledger. It owns the ledger for
// the duration of the session; persistence borrows it for a single save.
type Shell struct {
	ledger      *ledger.Ledger
	reader      *LineReader
	writer      io.Writer
	actions     map[string]menuAction
	defaultPath string
}

// menuAction handles one menu entry. Dispatch is a total mapping with an
// explicit default for unrecognized input.
type menuAction func(ctx context.Context) (exit bool, err error)

// NewShell creates a shell reading from in and writing to out. defaultPath,
// if non-empty, is offered as the save destination when the user enters none.
func NewShell(led *ledger.Ledger, in io.Reader, out io.Writer, defaultPath string) *Shell {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	s := &Shell{
		ledger:      led,
		reader:      NewLineReader(in),
		writer:      out,
		defaultPath: defaultPath,
	}

	s.actions = map[string]menuAction{
		"1": s.addTransaction,
		"2": s.monthlySummary,
		"3": s.saveAndExit,
	}

	return s
}

// Run drives the menu until the user chooses save & exit, input ends, or the
// context is canceled.
func (s *Shell) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(s.writer)
		fmt.Fprintln(s.writer, TitleStyle.Render("1) Add transaction   2) Monthly summary   3) Save & exit"))
		fmt.Fprint(s.writer, FormatPrompt("Choose an option"))

		choice, err := s.reader.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, ErrInputCancelled) || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read menu choice: %w", err)
		}

		action, ok := s.actions[choice]
		if !ok {
			fmt.Fprintln(s.writer, FormatWarning("Invalid option, try again."))
			continue
		}

		exit, err := action(ctx)
		if err != nil {
			if errors.Is(err, ErrInputCancelled) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if exit {
			return nil
		}
	}
}

// promptField prompts for one value and returns the raw line.
func (s *Shell) promptField(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(s.writer, FormatPrompt(prompt))
	return s.reader.ReadLine(ctx)
}

// addTransaction collects the fields of one transaction in order. Invalid
// input is reported and the entry abandoned; the ledger is never touched with
// a half-built transaction, so the user can simply try again from the menu.
func (s *Shell) addTransaction(ctx context.Context) (bool, error) {
	raw, err := s.promptField(ctx, "Date (YYYY-MM-DD)")
	if err != nil {
		return false, err
	}
	day, err := date.Parse(raw)
	if err != nil {
		fmt.Fprintln(s.writer, FormatError(err.Error()))
		return false, nil
	}

	raw, err = s.promptField(ctx, "Kind (income/expense)")
	if err != nil {
		return false, err
	}
	kind, err := model.ParseKind(raw)
	if err != nil {
		fmt.Fprintln(s.writer, FormatError(err.Error()))
		return false, nil
	}

	category, err := s.promptField(ctx, "Category (e.g. Salary, Food, Rent)")
	if err != nil {
		return false, err
	}
	if category == "" {
		fmt.Fprintln(s.writer, FormatError("category must not be empty"))
		return false, nil
	}

	raw, err = s.promptField(ctx, "Amount")
	if err != nil {
		return false, err
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Fprintln(s.writer, FormatError(fmt.Sprintf("invalid amount %q", raw)))
		return false, nil
	}

	note, err := s.promptField(ctx, "Note (optional)")
	if err != nil {
		return false, err
	}

	s.ledger.Add(model.Transaction{
		Date:     day,
		Kind:     kind,
		Category: category,
		Amount:   amount,
		Note:     note,
	})
	fmt.Fprintln(s.writer, FormatSuccess("Added!"))

	return false, nil
}

// monthlySummary prompts for a period and renders its aggregate.
func (s *Shell) monthlySummary(ctx context.Context) (bool, error) {
	raw, err := s.promptField(ctx, "Month to view (YYYY-MM)")
	if err != nil {
		return false, err
	}
	year, month, err := date.ParseMonth(raw)
	if err != nil {
		fmt.Fprintln(s.writer, FormatError(err.Error()))
		return false, nil
	}

	RenderSummary(s.writer, s.ledger.Summarize(year, month))

	return false, nil
}

// saveAndExit writes the ledger and terminates the shell. Exit proceeds
// regardless of the save outcome; the failure message is advisory.
func (s *Shell) saveAndExit(ctx context.Context) (bool, error) {
	prompt := "File to save to"
	if s.defaultPath != "" {
		prompt = fmt.Sprintf("File to save to [%s]", s.defaultPath)
	}

	path, err := s.promptField(ctx, prompt)
	if err != nil {
		return false, err
	}
	if path == "" {
		path = s.defaultPath
	}
	if path == "" {
		fmt.Fprintln(s.writer, FormatError("no destination given, nothing saved"))
		return true, nil
	}

	if err := store.Save(path, s.ledger.EncodeAll()); err != nil {
		var perr *common.PersistenceError
		if errors.As(err, &perr) {
			fmt.Fprintln(s.writer, FormatError(perr.Error()))
		} else {
			fmt.Fprintln(s.writer, FormatError(err.Error()))
		}
		return true, nil
	}

	fmt.Fprintln(s.writer, FormatSuccess(fmt.Sprintf("Saved %d transactions to %s", s.ledger.Len(), path)))

	return true, nil
}
