package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/scprime/fundsplit"
)

// initCmd holds the flags for the 'init' subcommand.
type initCmd struct {
	force bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create the ledger file with the preset seed data" }
func (*initCmd) Usage() string {
	return `ffund init [-force]

  Creates the ledger file from the fund's preset seed data: the founders
  seed capital and the initial investor contribution schedule, with entry
  fee legs reconciled. Refuses to touch an existing ledger unless -force
  is given.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Overwrite an existing ledger file")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := os.Stat(*ledgerFile); err == nil && !c.force {
		fmt.Fprintf(os.Stderr, "Ledger file %q already exists; use -force to overwrite.\n", *ledgerFile)
		return subcommands.ExitFailure
	}

	constants, err := LoadConstantsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading constants: %v\n", err)
		return subcommands.ExitFailure
	}

	engine := fundsplit.NewEngine(
		fundsplit.WithConstants(constants),
		fundsplit.WithLogger(Logger()),
	)
	issues := engine.EnsureDefaultLoaded()
	printIssues(issues)

	ledger, wallet, window, _ := engine.GetState()
	if err := EncodeLedgerFile(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeWalletFile(wallet); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing wallet state: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Initialized %s with %d legs, window %s\n", *ledgerFile, ledger.Len(), window)
	return subcommands.ExitSuccess
}
