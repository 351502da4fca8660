package fundsplit

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConstants_MissingFileUsesDefaults(t *testing.T) {
	got, err := LoadConstants(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConstants() error = %v", err)
	}
	if got != DefaultConstants() {
		t.Errorf("got %+v, want defaults", got)
	}
}

func TestLoadConstants_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constants.yaml")
	data := []byte("entry_fee_rate: 0.05\nmoonbag_founder_pct: 0.5\napply_draws: true\ndraw_per_founder: 250\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadConstants(path)
	if err != nil {
		t.Fatalf("LoadConstants() error = %v", err)
	}
	if got.EntryFeeRate != 0.05 || got.MoonbagFounderPct != 0.5 {
		t.Errorf("overrides not applied: %+v", got)
	}
	if !got.ApplyDraws || got.DrawPerFounder != 250 {
		t.Errorf("draw overrides not applied: %+v", got)
	}
	if got.MgmtFeeRate != DefaultConstants().MgmtFeeRate {
		t.Errorf("unset field lost its default: %+v", got)
	}
}

func TestAllocationConstants_Validate(t *testing.T) {
	if err := DefaultConstants().Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}

	tests := []struct {
		name string
		mod  func(*AllocationConstants)
	}{
		{"entry fee at 1", func(c *AllocationConstants) { c.EntryFeeRate = 1 }},
		{"negative mgmt fee", func(c *AllocationConstants) { c.MgmtFeeRate = -0.1 }},
		{"moonbag above 1", func(c *AllocationConstants) { c.MoonbagFounderPct = 1.5 }},
	}
	for _, tc := range tests {
		c := DefaultConstants()
		tc.mod(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", tc.name)
		}
	}
}
