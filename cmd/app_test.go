package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/scprime/fundsplit"
)

func TestLedgerFileRoundTrip(t *testing.T) {
	old := *ledgerFile
	*ledgerFile = filepath.Join(t.TempDir(), "ledger.jsonl")
	defer func() { *ledgerFile = old }()

	empty, err := DecodeLedgerFile()
	if err != nil {
		t.Fatalf("missing ledger file: %v", err)
	}
	if empty.Len() != 0 {
		t.Fatalf("missing file decoded to %d legs, want 0", empty.Len())
	}

	ledger := fundsplit.NewLedger(
		fundsplit.NewSeedLeg("s", fundsplit.USD(5000), fundsplit.NewDate(2025, time.July, 10)),
		fundsplit.NewContributionLeg("c1", "Laura", fundsplit.USD(5000), fundsplit.NewDate(2025, time.July, 22)),
	)
	if err := EncodeLedgerFile(ledger); err != nil {
		t.Fatalf("EncodeLedgerFile() error = %v", err)
	}

	decoded, err := DecodeLedgerFile()
	if err != nil {
		t.Fatalf("DecodeLedgerFile() error = %v", err)
	}
	if decoded.Len() != 2 {
		t.Errorf("round-trip has %d legs, want 2", decoded.Len())
	}
}

func TestWalletFileRoundTrip(t *testing.T) {
	old := *walletFile
	*walletFile = filepath.Join(t.TempDir(), "wallet.json")
	defer func() { *walletFile = old }()

	state := fundsplit.WalletState{
		WalletSize:            fundsplit.USD(26005),
		UnrealizedProfit:      fundsplit.USD(52.30),
		LastAppliedSnapshotID: "img-001",
	}
	if err := EncodeWalletFile(state); err != nil {
		t.Fatalf("EncodeWalletFile() error = %v", err)
	}
	decoded, err := DecodeWalletFile()
	if err != nil {
		t.Fatalf("DecodeWalletFile() error = %v", err)
	}
	if !decoded.WalletSize.Equal(state.WalletSize) || decoded.LastAppliedSnapshotID != "img-001" {
		t.Errorf("round-trip changed state: %+v", decoded)
	}
}

func TestSnapshotExtract(t *testing.T) {
	payload := `{
	  "imageId": "img-042",
	  "walletSize": 26005,
	  "unrealizedProfit": 52.3,
	  "meta": {"capturedBy": "pipeline"}
	}`
	path := filepath.Join(t.TempDir(), "capture.json")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	c := &snapshotCmd{
		file:           path,
		idPath:         "$.imageId",
		sizePath:       "$.walletSize",
		unrealizedPath: "$.unrealizedProfit",
	}
	snap, err := c.extract()
	if err != nil {
		t.Fatalf("extract() error = %v", err)
	}
	if snap.ImageID != "img-042" {
		t.Errorf("image id = %q, want img-042", snap.ImageID)
	}
	if !snap.WalletSize.Equal(fundsplit.USD(26005)) {
		t.Errorf("wallet size = %s, want $26005", snap.WalletSize)
	}
	if !snap.UnrealizedProfit.Equal(fundsplit.USD(52.3)) {
		t.Errorf("unrealized = %s, want $52.30", snap.UnrealizedProfit)
	}
}

func TestSnapshotExtract_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.json")
	if err := os.WriteFile(path, []byte(`{"walletSize": 100}`), 0o644); err != nil {
		t.Fatal(err)
	}

	c := &snapshotCmd{
		file:           path,
		idPath:         "$.imageId",
		sizePath:       "$.walletSize",
		unrealizedPath: "$.unrealizedProfit",
	}
	if _, err := c.extract(); err == nil {
		t.Error("extract() with missing fields succeeded, want error")
	}
}
