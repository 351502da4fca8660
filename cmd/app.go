// Package cmd implements the CLI application to manage a fund's cashflow
// ledger and allocation reports.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/scprime/fundsplit"
)

// Commands lists every subcommand a main package should register.
var Commands = []subcommands.Command{
	&initCmd{},
	&contributeCmd{},
	&snapshotCmd{},
	&reportCmd{},
	&trendCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "ledger.jsonl", "Path to the cashflow ledger file (JSONL format)")
var walletFile = flag.String("wallet-file", "wallet.json", "Path to the wallet state file")
var constantsFile = flag.String("constants-file", "constants.yaml", "Path to the allocation constants overrides")
var verbose = flag.Bool("v", false, "Enable verbose logging")

// Logger returns the application logger, console-formatted, silenced
// unless -v is set.
func Logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// DecodeLedgerFile reads the app ledger file. A missing file yields an
// empty ledger so first-run commands work without ceremony.
func DecodeLedgerFile() (*fundsplit.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		return fundsplit.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return fundsplit.DecodeLedger(f)
}

// EncodeLedgerFile writes the ledger back in canonical JSONL form.
func EncodeLedgerFile(l *fundsplit.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return fmt.Errorf("create ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return fundsplit.EncodeLedger(f, l)
}

// DecodeWalletFile reads the app wallet state file, zero state when missing.
func DecodeWalletFile() (fundsplit.WalletState, error) {
	f, err := os.Open(*walletFile)
	if errors.Is(err, fs.ErrNotExist) {
		return fundsplit.WalletState{}, nil
	}
	if err != nil {
		return fundsplit.WalletState{}, fmt.Errorf("open wallet file %q: %w", *walletFile, err)
	}
	defer f.Close()
	return fundsplit.DecodeWalletState(f)
}

// EncodeWalletFile writes the wallet state.
func EncodeWalletFile(state fundsplit.WalletState) error {
	f, err := os.Create(*walletFile)
	if err != nil {
		return fmt.Errorf("create wallet file %q: %w", *walletFile, err)
	}
	defer f.Close()
	return fundsplit.EncodeWalletState(f, state)
}

// LoadConstantsFile reads the constants overrides, defaults when missing.
func LoadConstantsFile() (fundsplit.AllocationConstants, error) {
	return fundsplit.LoadConstants(*constantsFile)
}

// printIssues writes findings to stderr; the report itself stays on stdout.
func printIssues(issues []fundsplit.Issue) {
	for _, issue := range issues {
		fmt.Fprintln(os.Stderr, issue)
	}
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer is unavailable (e.g. output is piped).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
