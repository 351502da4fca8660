package fundsplit

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Engine owns the mutable allocation state: the ledger, the derived wallet
// position, the active window and the constants. All state lives here, not
// in package globals, so several funds can run side by side in one process.
// Mutating operations serialize on one mutex; the pure computation layer
// underneath (AllocateDollarDays, Distribute, Verify) stays lock-free and
// callable concurrently on its own inputs.
type Engine struct {
	mu           sync.Mutex
	ledger       *Ledger
	wallet       WalletState
	window       Window
	constants    AllocationConstants
	bootstrapped bool
	trend        []TrendRow
	log          zerolog.Logger
}

// EngineOption configures a new Engine.
type EngineOption func(*Engine)

// WithConstants overrides the default allocation constants.
func WithConstants(c AllocationConstants) EngineOption {
	return func(e *Engine) { e.constants = c }
}

// WithWindow overrides the default allocation window.
func WithWindow(w Window) EngineOption {
	return func(e *Engine) { e.window = w }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log zerolog.Logger) EngineOption {
	return func(e *Engine) { e.log = log }
}

// WithLedger starts the engine on an existing ledger, for example one
// decoded from disk. The bootstrap gate treats it as already loaded.
func WithLedger(l *Ledger) EngineOption {
	return func(e *Engine) {
		e.ledger = l
		e.bootstrapped = true
	}
}

// WithWallet restores a previously persisted wallet state.
func WithWallet(w WalletState) EngineOption {
	return func(e *Engine) { e.wallet = w }
}

// NewEngine creates an engine with an empty ledger, the default window and
// the default constants.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		ledger:    NewLedger(),
		window:    DefaultWindow(),
		constants: DefaultConstants(),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EnsureDefaultLoaded loads the preset seed ledger exactly once. Repeated
// calls, including concurrent ones, leave an already-loaded engine alone:
// the preset is a starting point, never a reset. Returns the reconciler's
// issues on the load that actually happened, nil otherwise.
func (e *Engine) EnsureDefaultLoaded() []Issue {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.bootstrapped {
		return nil
	}
	ledger, issues := ReconcileEntryFees(DefaultSeedLedger(), e.constants.EntryFeeRate)
	e.ledger = ledger
	e.wallet.recalc(e.ledger.TotalNetContributions())
	e.bootstrapped = true
	e.log.Info().Int("legs", e.ledger.Len()).Msg("default ledger loaded")
	return issues
}

// ApplySnapshot applies one wallet observation at most once. A snapshot
// whose ImageID matches the last applied one is dropped whatever its
// payload says; the caller learns from the return whether it took effect.
// Applying recomputes realized profit from the wallet identity, unclamped.
func (e *Engine) ApplySnapshot(snap WalletSnapshot) (bool, []Issue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if snap.ImageID == "" {
		return false, []Issue{*errorIssue("snapshot", "snapshot has no imageId")}
	}
	if snap.ImageID == e.wallet.LastAppliedSnapshotID {
		e.log.Debug().Str("imageId", snap.ImageID).Msg("duplicate snapshot ignored")
		return false, nil
	}

	e.wallet.WalletSize = snap.WalletSize
	e.wallet.UnrealizedProfit = snap.UnrealizedProfit
	e.wallet.LastAppliedSnapshotID = snap.ImageID
	e.wallet.recalc(e.ledger.TotalNetContributions())
	e.log.Info().
		Str("imageId", snap.ImageID).
		Str("walletSize", e.wallet.WalletSize.String()).
		Str("realized", e.wallet.RealizedProfit.String()).
		Msg("snapshot applied")
	return true, nil
}

// AddContribution appends a capital leg and restores the fee invariant.
// Founders capital goes in as a seed-type leg; investor capital as a net
// contribution that the reconciler pairs with its entry-fee leg. The new
// leg gets a fresh uuid when id is empty.
func (e *Engine) AddContribution(owner Owner, name string, amount Money, on Date) (CashflowLeg, []Issue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var leg CashflowLeg
	switch owner {
	case OwnerFounders:
		leg = NewSeedLeg("", amount, on)
	case OwnerInvestor:
		if name == "" {
			return CashflowLeg{}, []Issue{*errorIssue("participantName", "investor contribution needs a participant name")}
		}
		leg = NewContributionLeg("", name, amount, on)
	default:
		return CashflowLeg{}, []Issue{*errorIssue("owner", fmt.Sprintf("unknown owner %q", owner))}
	}
	if !amount.IsPositive() {
		return CashflowLeg{}, []Issue{*errorIssue("amount", fmt.Sprintf("contribution amount %s is not positive", amount))}
	}

	e.ledger.Append(leg)
	ledger, issues := ReconcileEntryFees(e.ledger, e.constants.EntryFeeRate)
	e.ledger = ledger
	e.wallet.recalc(e.ledger.TotalNetContributions())
	e.log.Info().Str("leg", leg.ID).Str("amount", amount.String()).Msg("contribution added")
	return leg, issues
}

// Recompute derives the full allocation from current state: reconciled
// fee check, dollar-day weights, waterfall, cross-check. Results are
// always returned, with issues telling the caller how much to trust them.
func (e *Engine) Recompute() ([]CalculatedResult, []Issue) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.recomputeLocked(e.ledger)
}

func (e *Engine) recomputeLocked(ledger *Ledger) ([]CalculatedResult, []Issue) {
	issues := ledger.Validate()
	issues = append(issues, CheckEntryFees(ledger, e.constants.EntryFeeRate)...)

	wallet := e.wallet
	wallet.recalc(ledger.TotalNetContributions())

	weights, wIssues := AllocateDollarDays(ledger, e.window)
	issues = append(issues, wIssues...)

	results, dIssues := Distribute(weights, wallet, e.constants, ledger)
	issues = append(issues, dIssues...)

	issues = append(issues, Verify(ledger, e.constants, weights, results, wallet)...)
	return results, issues
}

// Simulate recomputes the allocation as if the given legs were already in
// the ledger, without mutating anything. Hypothetical contributions go
// through the fee reconciler the same as real ones.
func (e *Engine) Simulate(extra ...CashflowLeg) ([]CalculatedResult, []Issue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	trial := e.ledger.Clone()
	trial.Append(extra...)
	trial, issues := ReconcileEntryFees(trial, e.constants.EntryFeeRate)
	results, rIssues := e.recomputeLocked(trial)
	return results, append(issues, rIssues...)
}

// GetState returns a consistent copy of the mutable tuple. The ledger is
// cloned; callers can hold the copy without racing the engine.
func (e *Engine) GetState() (*Ledger, WalletState, Window, AllocationConstants) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Clone(), e.wallet, e.window, e.constants
}

// SetWindow switches the active allocation window.
func (e *Engine) SetWindow(w Window) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.window = w
}

// Trend returns the recorded window-close history, oldest first.
func (e *Engine) Trend() []TrendRow {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]TrendRow, len(e.trend))
	copy(out, e.trend)
	return out
}

// TrendRow is one closed window's summary, kept for period-over-period
// reporting.
type TrendRow struct {
	Window           Window    `json:"window"`
	RealizedProfit   Money     `json:"realizedProfit"`
	MoonbagAllocated Money     `json:"moonbagAllocated"`
	FoundersNet      Money     `json:"foundersNet"`
	InvestorsNet     Money     `json:"investorsNet"`
	ClosedAt         time.Time `json:"closedAt"`
}

// CloseWindow settles the active window. The final allocation's transfers
// become audit legs on the ledger, credited at the window end and not
// earning dollar-days in the window they close: the founders management
// fee, the moonbag splits, and any founder draw. A TrendRow records the
// window's summary, and the active window advances to the next one of the
// same length. Closing is refused while the allocation has errors.
func (e *Engine) CloseWindow() (TrendRow, []Issue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	results, issues := e.recomputeLocked(e.ledger)
	if HasErrors(issues) {
		return TrendRow{}, issues
	}

	row := TrendRow{
		Window:         e.window,
		RealizedProfit: e.wallet.RealizedProfit,
		ClosedAt:       time.Now().UTC(),
	}
	end := e.window.End
	stamp := e.window.String()
	for _, r := range results {
		row.MoonbagAllocated = row.MoonbagAllocated.Add(r.MoonbagShare)
		if r.Participant.Owner == OwnerFounders {
			row.FoundersNet = row.FoundersNet.Add(r.NetProfit)
		} else {
			row.InvestorsNet = row.InvestorsNet.Add(r.NetProfit)
		}

		if r.Participant.Owner == OwnerFounders && r.FeeAdjustment.IsPositive() {
			e.ledger.Append(auditLeg("mgmtfee_"+stamp, OwnerFounders, FoundersName, LegMgmtFee, r.FeeAdjustment.Round2(), end))
		}
		if r.MoonbagShare.IsPositive() {
			if r.Participant.Owner == OwnerFounders {
				e.ledger.Append(auditLeg("moonbag_founders_"+stamp, OwnerFounders, FoundersName, LegMoonbagFounder, r.MoonbagShare.Round2(), end))
			} else {
				e.ledger.Append(auditLeg("moonbag_"+r.Participant.Name+"_"+stamp, OwnerInvestor, r.Participant.Name, LegMoonbagInvest, r.MoonbagShare.Round2(), end))
			}
		}
		if r.Participant.Owner == OwnerFounders && r.Draws.IsPositive() {
			e.ledger.Append(auditLeg("draw_"+stamp, OwnerFounders, FoundersName, LegDraw, r.Draws.Round2(), end))
		}
	}
	e.trend = append(e.trend, row)

	length := e.window.TotalDays()
	start := e.window.End.Add(1)
	e.window = Window{Start: start, End: start.Add(length - 1)}
	e.log.Info().
		Stringer("closed", row.Window).
		Stringer("next", e.window).
		Str("realized", row.RealizedProfit.String()).
		Msg("window closed")
	return row, issues
}

// auditLeg builds a derived bookkeeping leg. Audit legs never earn
// dollar-days in the window that produced them and never count as capital.
func auditLeg(id string, owner Owner, name string, t LegType, amount Money, on Date) CashflowLeg {
	return CashflowLeg{
		ID:              id,
		Owner:           owner,
		ParticipantName: name,
		Type:            t,
		Amount:          amount,
		Timestamp:       on,
		EarnsDollarDays: false,
	}
}
