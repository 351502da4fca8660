package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/scprime/fundsplit/cmd"
)

func main() {
	// Shell completion: handled and exited here when invoked by the shell.
	completion().Complete("ffund")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	files := predict.Files("*")
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file":    files,
			"wallet-file":    files,
			"constants-file": files,
			"trend-file":     files,
			"v":              predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"init": {Flags: map[string]complete.Predictor{
				"force": predict.Nothing,
			}},
			"contribute": {Flags: map[string]complete.Predictor{
				"name":     predict.Something,
				"amount":   predict.Something,
				"d":        predict.Something,
				"founders": predict.Nothing,
			}},
			"snapshot": {Flags: map[string]complete.Predictor{
				"file":            files,
				"id":              predict.Something,
				"size":            predict.Something,
				"unrealized":      predict.Something,
				"id-path":         predict.Something,
				"size-path":       predict.Something,
				"unrealized-path": predict.Something,
			}},
			"report": {Flags: map[string]complete.Predictor{
				"d":            predict.Something,
				"period":       predict.Set{"weekly", "monthly", "quarterly"},
				"what-if":      predict.Something,
				"what-if-name": predict.Something,
				"what-if-date": predict.Something,
			}},
			"trend": {Flags: map[string]complete.Predictor{
				"close": predict.Nothing,
			}},
			"fmt": {Flags: map[string]complete.Predictor{
				"reconcile": predict.Nothing,
			}},
			"topic": {Args: predict.Set{"readme", "ledger", "fees", "dollar-days", "waterfall", "snapshots"}},
		},
	}
}
