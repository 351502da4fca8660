package fundsplit

import "time"

// WalletSnapshot is one observation of the trading wallet, produced by the
// external capture pipeline. ImageID identifies the observation; applying
// the same id twice is a no-op whatever the payload says.
type WalletSnapshot struct {
	ImageID          string    `json:"imageId"`
	WalletSize       Money     `json:"walletSize"`
	UnrealizedProfit Money     `json:"unrealizedProfit"`
	CapturedAt       time.Time `json:"capturedAt"`
}

// WalletState is the derived wallet position the waterfall consumes. It is
// mutated only by the snapshot gate.
type WalletState struct {
	WalletSize            Money  `json:"walletSize"`
	UnrealizedProfit      Money  `json:"unrealizedProfit"`
	RealizedProfit        Money  `json:"realizedProfit"`
	LastAppliedSnapshotID string `json:"lastAppliedSnapshotId,omitempty"`
}

// recalc derives the realized profit from the wallet identity:
// realized = wallet size − total net contributions − unrealized.
// The result may be negative; losses flow through the waterfall unclamped.
func (w *WalletState) recalc(totalNetContributions Money) {
	w.RealizedProfit = w.WalletSize.Sub(totalNetContributions).Sub(w.UnrealizedProfit)
}
