package fundsplit

import (
	"fmt"

	"github.com/google/uuid"
)

// Owner identifies the participant class a cashflow leg belongs to.
type Owner string

const (
	OwnerFounders Owner = "founders"
	OwnerInvestor Owner = "investor"
)

// ParseOwner parses an owner class from its wire name.
func ParseOwner(s string) (Owner, error) {
	switch Owner(s) {
	case OwnerFounders, OwnerInvestor:
		return Owner(s), nil
	default:
		return "", fmt.Errorf("unknown owner %q", s)
	}
}

// LegType identifies the kind of capital movement a leg records.
type LegType string

const (
	LegSeed           LegType = "seed"
	LegContribution   LegType = "investor_contribution"
	LegEntryFee       LegType = "founders_entry_fee"
	LegMgmtFee        LegType = "founders_mgmt_fee"
	LegMoonbagFounder LegType = "moonbag_founders"
	LegMoonbagInvest  LegType = "moonbag_investor"
	LegDraw           LegType = "draw"
)

// FoundersName is the display name shared by all founders-class legs.
const FoundersName = "Founders"

// entryFeeSuffix derives the stable id of a reconciled fee leg from its
// originating contribution, so repeated reconciliation matches it again.
const entryFeeSuffix = "_entry_fee"

// CashflowLeg is an atomic capital movement. The json field names are the
// wire contract and must be preserved losslessly by any serializer.
type CashflowLeg struct {
	ID              string  `json:"id"`
	Owner           Owner   `json:"owner"`
	ParticipantName string  `json:"participantName"`
	Type            LegType `json:"legType"`
	Amount          Money   `json:"amount"`
	Timestamp       Date    `json:"timestamp"`
	EarnsDollarDays bool    `json:"earnsDollarDaysThisWindow"`
}

// NewSeedLeg creates the founders seed capital leg.
func NewSeedLeg(id string, amount Money, on Date) CashflowLeg {
	if id == "" {
		id = "seed_" + uuid.NewString()
	}
	return CashflowLeg{
		ID:              id,
		Owner:           OwnerFounders,
		ParticipantName: FoundersName,
		Type:            LegSeed,
		Amount:          amount,
		Timestamp:       on,
		EarnsDollarDays: true,
	}
}

// NewContributionLeg creates an investor contribution leg. The amount is the
// net credited capital; the matching entry-fee leg is produced by the
// reconciler. A fresh unique id is generated when none is given and stays
// stable for the life of the leg.
func NewContributionLeg(id, investor string, amount Money, on Date) CashflowLeg {
	if id == "" {
		id = "contrib_" + uuid.NewString()
	}
	return CashflowLeg{
		ID:              id,
		Owner:           OwnerInvestor,
		ParticipantName: investor,
		Type:            LegContribution,
		Amount:          amount,
		Timestamp:       on,
		EarnsDollarDays: true,
	}
}

// newEntryFeeLeg creates the founders entry-fee leg matching a contribution.
func newEntryFeeLeg(contrib CashflowLeg, fee Money) CashflowLeg {
	return CashflowLeg{
		ID:              contrib.ID + entryFeeSuffix,
		Owner:           OwnerFounders,
		ParticipantName: FoundersName,
		Type:            LegEntryFee,
		Amount:          fee,
		Timestamp:       contrib.Timestamp,
		EarnsDollarDays: true,
	}
}

// IsCapital reports whether the leg is an external capital inflow, as
// opposed to a derived audit leg recycling profit between windows.
func (l CashflowLeg) IsCapital() bool {
	switch l.Type {
	case LegSeed, LegContribution, LegEntryFee:
		return true
	default:
		return false
	}
}

// feeParentID returns the contribution leg id this entry-fee leg was derived
// from, or "" when the leg is not a derived fee leg.
func (l CashflowLeg) feeParentID() string {
	if l.Type != LegEntryFee {
		return ""
	}
	if n := len(l.ID) - len(entryFeeSuffix); n > 0 && l.ID[n:] == entryFeeSuffix {
		return l.ID[:n]
	}
	return ""
}

// Equal reports whether two legs are identical in every field.
func (l CashflowLeg) Equal(o CashflowLeg) bool {
	return l.ID == o.ID &&
		l.Owner == o.Owner &&
		l.ParticipantName == o.ParticipantName &&
		l.Type == o.Type &&
		l.Amount.Equal(o.Amount) &&
		l.Timestamp == o.Timestamp &&
		l.EarnsDollarDays == o.EarnsDollarDays
}

func (l CashflowLeg) String() string {
	return fmt.Sprintf("%s %s %s %s on %s", l.Type, l.Owner, l.ParticipantName, l.Amount, l.Timestamp)
}
