package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/subcommands"
	"github.com/scprime/fundsplit"
	"github.com/scprime/fundsplit/renderer"
)

var trendFile = flag.String("trend-file", "trend.json", "Path to the closed-window history file")

// trendCmd holds the flags for the 'trend' subcommand.
type trendCmd struct {
	close bool
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "show closed-window history, or close the current window" }
func (*trendCmd) Usage() string {
	return `ffund trend [-close]

  Shows the period-over-period history of closed windows. With -close,
  the current window is settled first: the management fee, moonbag and
  draw transfers become audit legs on the ledger, a history row is
  recorded, and the active window advances.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.close, "close", false, "Settle the current window before showing the history")
}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rows, err := decodeTrendFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading trend file %q: %v\n", *trendFile, err)
		return subcommands.ExitFailure
	}

	if c.close {
		engine, status := loadEngine()
		if status != subcommands.ExitSuccess {
			return status
		}
		row, issues := engine.CloseWindow()
		printIssues(issues)
		if fundsplit.HasErrors(issues) {
			fmt.Fprintln(os.Stderr, "Window not closed: fix the errors above first.")
			return subcommands.ExitFailure
		}
		rows = append(rows, row)

		ledger, wallet, _, _ := engine.GetState()
		if err := EncodeLedgerFile(ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := EncodeWalletFile(wallet); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing wallet state: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := encodeTrendFile(rows); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing trend file: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.TrendMarkdown(rows))
	return subcommands.ExitSuccess
}

func decodeTrendFile() ([]fundsplit.TrendRow, error) {
	data, err := os.ReadFile(*trendFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rows []fundsplit.TrendRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func encodeTrendFile(rows []fundsplit.TrendRow) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(*trendFile, append(data, '\n'), 0o644)
}
