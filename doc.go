// Package fundsplit provides the types and stateless computation layers for
// allocating a pooled trading fund's profit between its founders and
// investors, weighted by how long each dollar of capital was at work.
//
// The core functionalities include:
//   - Cashflow Ledger: An append-only record of capital legs (founders seed,
//     investor contributions, founders entry fees, and derived audit legs),
//     kept sorted by day and serialized as human-readable JSONL.
//   - Fee Reconciliation: An idempotent pass pairing every investor
//     contribution with its founders entry-fee leg, computed by grossing the
//     net credited amount back up to its pre-fee value.
//   - Dollar-Days Allocation: Time-weighted capital shares over an allocation
//     window, derived from each participant's running balance integrated over
//     the days it was deployed.
//   - Profit Waterfall: Splitting realized profit pro-rata by dollar-day
//     share, charging the management fee on positive investor profit only,
//     applying the moonbag override to the retained unrealized pool, and
//     deducting founder draws.
//   - Engine: A mutex-guarded state container with a bootstrap-once gate for
//     the preset seed ledger and an at-most-once gate for wallet snapshots.
//
// This package serves as the foundational logic for the `ffund` command-line
// tool; every number the reports show is derived fresh from the ledger, the
// wallet state and the constants.
package fundsplit
