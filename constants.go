package fundsplit

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AllocationConstants configures the fee waterfall. Zero value is not
// usable; start from DefaultConstants and override.
type AllocationConstants struct {
	// EntryFeeRate is the one-time fee fraction charged on investor
	// contributions and credited to founders (e.g. 0.10).
	EntryFeeRate float64 `yaml:"entry_fee_rate" json:"entryFeeRate"`
	// MgmtFeeRate is the fee fraction on positive aggregate investor
	// profit, moved to founders (e.g. 0.20).
	MgmtFeeRate float64 `yaml:"mgmt_fee_rate" json:"mgmtFeeRate"`
	// MoonbagFounderPct is the founders' override share of the retained
	// unrealized pool (e.g. 0.75).
	MoonbagFounderPct float64 `yaml:"moonbag_founder_pct" json:"moonbagFounderPct"`
	// FounderCount scales per-founder draws.
	FounderCount int `yaml:"founder_count" json:"founderCount"`
	// FeeReducesInvestorCredit selects whether the entry fee stays out of
	// the investor's credited capital (true) or is credited back to the
	// investor gross (false).
	FeeReducesInvestorCredit bool `yaml:"fee_reduces_investor_credit" json:"feeReducesInvestorCredit"`
	// DrawPerFounder is the fixed draw each founder takes from net profit.
	DrawPerFounder float64 `yaml:"draw_per_founder" json:"drawPerFounder"`
	// ApplyDraws enables founder draws.
	ApplyDraws bool `yaml:"apply_draws" json:"applyDraws"`
}

// DefaultConstants returns the fund's standard configuration.
func DefaultConstants() AllocationConstants {
	return AllocationConstants{
		EntryFeeRate:             0.10,
		MgmtFeeRate:              0.20,
		MoonbagFounderPct:        0.75,
		FounderCount:             2,
		FeeReducesInvestorCredit: true,
		DrawPerFounder:           0,
		ApplyDraws:               false,
	}
}

// Validate rejects programmer-error configurations. Unlike degenerate
// ledger inputs, a malformed constants object fails fast.
func (c AllocationConstants) Validate() error {
	var errs error
	if c.EntryFeeRate < 0 || c.EntryFeeRate >= 1 {
		errs = errors.Join(errs, fmt.Errorf("entry fee rate %v outside [0,1)", c.EntryFeeRate))
	}
	if c.MgmtFeeRate < 0 || c.MgmtFeeRate >= 1 {
		errs = errors.Join(errs, fmt.Errorf("management fee rate %v outside [0,1)", c.MgmtFeeRate))
	}
	if c.MoonbagFounderPct < 0 || c.MoonbagFounderPct > 1 {
		errs = errors.Join(errs, fmt.Errorf("moonbag founder share %v outside [0,1]", c.MoonbagFounderPct))
	}
	if c.FounderCount < 1 {
		errs = errors.Join(errs, fmt.Errorf("founder count %d must be at least 1", c.FounderCount))
	}
	if c.DrawPerFounder < 0 {
		errs = errors.Join(errs, fmt.Errorf("draw per founder %v must not be negative", c.DrawPerFounder))
	}
	return errs
}

// LoadConstants reads constants overrides from a YAML file on top of the
// defaults. A missing file yields the defaults.
func LoadConstants(path string) (AllocationConstants, error) {
	c := DefaultConstants()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return c, fmt.Errorf("read constants file: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("parse constants file %q: %w", path, err)
		}
	}

	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("invalid constants in %q: %w", path, err)
	}
	return c, nil
}
