package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/scprime/fundsplit"
)

// contributeCmd holds the flags for the 'contribute' subcommand.
type contributeCmd struct {
	name     string
	amount   float64
	date     string
	founders bool
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "record a capital contribution" }
func (*contributeCmd) Usage() string {
	return `ffund contribute -name <investor> -amount <net> [-d <date>] [-founders]

  Appends a contribution leg to the ledger. Investor amounts are net of
  the entry fee; the matching founders entry-fee leg is reconciled
  automatically. With -founders the amount is recorded as founders seed
  capital instead.
`
}

func (c *contributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Investor name")
	f.Float64Var(&c.amount, "amount", 0, "Net amount credited to the participant")
	f.StringVar(&c.date, "d", fundsplit.Today().String(), "Date of the contribution. See the topic command for supported date formats.")
	f.BoolVar(&c.founders, "founders", false, "Record as founders seed capital")
}

func (c *contributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := fundsplit.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	engine, status := loadEngine()
	if status != subcommands.ExitSuccess {
		return status
	}

	owner := fundsplit.OwnerInvestor
	name := c.name
	if c.founders {
		owner = fundsplit.OwnerFounders
		name = fundsplit.FoundersName
	}

	leg, issues := engine.AddContribution(owner, name, fundsplit.USD(c.amount), on)
	printIssues(issues)
	if fundsplit.HasErrors(issues) {
		return subcommands.ExitFailure
	}

	ledger, wallet, _, _ := engine.GetState()
	if err := EncodeLedgerFile(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeWalletFile(wallet); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing wallet state: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended leg %s to %s\n", leg.ID, *ledgerFile)
	return subcommands.ExitSuccess
}

// loadEngine builds an engine from the app ledger, wallet and constants
// files. Shared by every mutating subcommand.
func loadEngine() (*fundsplit.Engine, subcommands.ExitStatus) {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", *ledgerFile, err)
		return nil, subcommands.ExitFailure
	}
	wallet, err := DecodeWalletFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding wallet state %q: %v\n", *walletFile, err)
		return nil, subcommands.ExitFailure
	}
	constants, err := LoadConstantsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading constants: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	engine := fundsplit.NewEngine(
		fundsplit.WithLedger(ledger),
		fundsplit.WithConstants(constants),
		fundsplit.WithWallet(wallet),
		fundsplit.WithLogger(Logger()),
	)
	return engine, subcommands.ExitSuccess
}
