package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/scprime/fundsplit"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct {
	reconcile bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `ffund fmt [-reconcile]

  Validates and formats the ledger file. Legs are decoded, validated,
  sorted by date, and written back in canonical JSONL form. With
  -reconcile, missing entry-fee legs are appended as well.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.reconcile, "reconcile", false, "Append missing entry-fee legs")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	constants, err := LoadConstantsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading constants: %v\n", err)
		return subcommands.ExitFailure
	}

	issues := ledger.Validate()
	if c.reconcile {
		var rIssues []fundsplit.Issue
		ledger, rIssues = fundsplit.ReconcileEntryFees(ledger, constants.EntryFeeRate)
		issues = append(issues, rIssues...)
	} else {
		issues = append(issues, fundsplit.CheckEntryFees(ledger, constants.EntryFeeRate)...)
	}
	printIssues(issues)
	if fundsplit.HasErrors(issues) {
		fmt.Fprintln(os.Stderr, "Ledger not formatted: fix the errors above first.")
		return subcommands.ExitFailure
	}

	if err := EncodeLedgerFile(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted %q (%d legs).\n", *ledgerFile, ledger.Len())
	return subcommands.ExitSuccess
}
