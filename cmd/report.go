package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/scprime/fundsplit"
	"github.com/scprime/fundsplit/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	date    string
	period  string
	whatIf  float64
	whatIfd string
	name    string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the allocation report for a window" }
func (*reportCmd) Usage() string {
	return `ffund report [-d <date>] [-period <weekly|monthly|quarterly>]

  Computes and displays the allocation for the window containing the
  given date: time-weighted shares, the profit waterfall, and any
  findings. Without -period, the fund's preset window is used.

  A hypothetical contribution can be layered on with -what-if,
  -what-if-name and -what-if-date; it never touches the ledger.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", fundsplit.Today().String(), "Date inside the window to report on")
	f.StringVar(&c.period, "period", "", "Window period: weekly, monthly or quarterly. Empty uses the preset window.")
	f.Float64Var(&c.whatIf, "what-if", 0, "Hypothetical net contribution to simulate")
	f.StringVar(&c.name, "what-if-name", "", "Participant of the hypothetical contribution")
	f.StringVar(&c.whatIfd, "what-if-date", fundsplit.Today().String(), "Date of the hypothetical contribution")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine, status := loadEngine()
	if status != subcommands.ExitSuccess {
		return status
	}

	if c.period != "" {
		period, err := fundsplit.ParsePeriod(c.period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		on, err := fundsplit.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		engine.SetWindow(period.WindowOf(on))
	}

	var results []fundsplit.CalculatedResult
	var issues []fundsplit.Issue
	if c.whatIf != 0 {
		if c.name == "" {
			fmt.Fprintln(os.Stderr, "Error: -what-if needs -what-if-name")
			return subcommands.ExitUsageError
		}
		on, err := fundsplit.ParseDate(c.whatIfd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing what-if date: %v\n", err)
			return subcommands.ExitUsageError
		}
		extra := fundsplit.NewContributionLeg("", c.name, fundsplit.USD(c.whatIf), on)
		results, issues = engine.Simulate(extra)
	} else {
		results, issues = engine.Recompute()
	}

	_, wallet, window, _ := engine.GetState()
	md := renderer.ReportMarkdown(&renderer.Report{
		Window:  window,
		Wallet:  wallet,
		Results: results,
		Issues:  issues,
	})
	printMarkdown(md)

	if fundsplit.HasErrors(issues) {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
