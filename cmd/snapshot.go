package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	"github.com/scprime/fundsplit"
)

// snapshotCmd holds the flags for the 'snapshot' subcommand.
type snapshotCmd struct {
	file           string
	imageID        string
	size           float64
	unrealized     float64
	idPath         string
	sizePath       string
	unrealizedPath string
}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "apply a wallet snapshot" }
func (*snapshotCmd) Usage() string {
	return `ffund snapshot -id <imageId> -size <amount> [-unrealized <amount>]
ffund snapshot -file <capture.json>

  Applies one wallet observation and re-derives realized profit. A
  snapshot is applied at most once per image id: re-sending the last
  applied id is a no-op.

  With -file, the values are extracted from a capture pipeline JSON
  payload using the configurable jsonpath expressions.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "JSON payload from the capture pipeline")
	f.StringVar(&c.imageID, "id", "", "Snapshot image id")
	f.Float64Var(&c.size, "size", 0, "Observed wallet size")
	f.Float64Var(&c.unrealized, "unrealized", 0, "Observed unrealized profit")
	f.StringVar(&c.idPath, "id-path", "$.imageId", "jsonpath of the image id in the payload")
	f.StringVar(&c.sizePath, "size-path", "$.walletSize", "jsonpath of the wallet size in the payload")
	f.StringVar(&c.unrealizedPath, "unrealized-path", "$.unrealizedProfit", "jsonpath of the unrealized profit in the payload")
}

func (c *snapshotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap := fundsplit.WalletSnapshot{
		ImageID:          c.imageID,
		WalletSize:       fundsplit.USD(c.size),
		UnrealizedProfit: fundsplit.USD(c.unrealized),
		CapturedAt:       time.Now().UTC(),
	}
	if c.file != "" {
		var err error
		snap, err = c.extract()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error extracting snapshot from %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
	}

	engine, status := loadEngine()
	if status != subcommands.ExitSuccess {
		return status
	}

	applied, issues := engine.ApplySnapshot(snap)
	printIssues(issues)
	if fundsplit.HasErrors(issues) {
		return subcommands.ExitFailure
	}
	if !applied {
		fmt.Printf("Snapshot %s already applied; nothing to do.\n", snap.ImageID)
		return subcommands.ExitSuccess
	}

	_, wallet, _, _ := engine.GetState()
	if err := EncodeWalletFile(wallet); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing wallet state: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Applied snapshot %s: wallet %s, realized %s\n",
		snap.ImageID, wallet.WalletSize, wallet.RealizedProfit.SignedString())
	return subcommands.ExitSuccess
}

// extract pulls the snapshot fields out of a capture payload.
func (c *snapshotCmd) extract() (fundsplit.WalletSnapshot, error) {
	data, err := os.ReadFile(c.file)
	if err != nil {
		return fundsplit.WalletSnapshot{}, err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return fundsplit.WalletSnapshot{}, fmt.Errorf("invalid JSON: %w", err)
	}

	id, err := extractString(jobj, c.idPath)
	if err != nil {
		return fundsplit.WalletSnapshot{}, err
	}
	size, err := extractFloat(jobj, c.sizePath)
	if err != nil {
		return fundsplit.WalletSnapshot{}, err
	}
	unrealized, err := extractFloat(jobj, c.unrealizedPath)
	if err != nil {
		return fundsplit.WalletSnapshot{}, err
	}

	return fundsplit.WalletSnapshot{
		ImageID:          id,
		WalletSize:       fundsplit.USD(size),
		UnrealizedProfit: fundsplit.USD(unrealized),
		CapturedAt:       time.Now().UTC(),
	}, nil
}

func extractValue(jobj any, path string) (any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("jsonpath %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}

func extractString(jobj any, path string) (string, error) {
	jval, err := extractValue(jobj, path)
	if err != nil {
		return "", err
	}
	s, ok := jval.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("jsonpath %q: not a string: %v", path, jval)
	}
	return s, nil
}

func extractFloat(jobj any, path string) (float64, error) {
	jval, err := extractValue(jobj, path)
	if err != nil {
		return 0, err
	}
	v, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("jsonpath %q: not a number: %v", path, jval)
	}
	return v, nil
}
