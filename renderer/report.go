// Package renderer turns allocation results into markdown reports. It only
// formats; every number comes in already computed.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/scprime/fundsplit"
)

// Report bundles everything one allocation report shows.
type Report struct {
	Window  fundsplit.Window
	Wallet  fundsplit.WalletState
	Results []fundsplit.CalculatedResult
	Issues  []fundsplit.Issue
}

// ReportMarkdown renders the allocation report.
func ReportMarkdown(r *Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Allocation %s", r.Window))
	doc.PlainText(fmt.Sprintf("Window of %d days.", r.Window.TotalDays()))

	doc.H2("Wallet")
	doc.Table(md.TableSet{
		Header: []string{"Wallet Size", "Unrealized", "Realized"},
		Rows: [][]string{{
			r.Wallet.WalletSize.String(),
			r.Wallet.UnrealizedProfit.SignedString(),
			r.Wallet.RealizedProfit.SignedString(),
		}},
	})

	doc.H2("Participants")
	table := md.TableSet{
		Header: []string{"Participant", "Start", "Contributed", "Share", "Base Profit", "Fee Adj", "Moonbag", "Draws", "Net", "End"},
	}
	for _, res := range r.Results {
		table.Rows = append(table.Rows, []string{
			res.Participant.Name,
			res.StartCapital.String(),
			res.TotalContributions.String(),
			res.TimeWeightedSharePct.String(),
			res.BaseProfitShare.SignedString(),
			res.FeeAdjustment.SignedString(),
			res.MoonbagShare.SignedString(),
			res.Draws.String(),
			res.NetProfit.SignedString(),
			res.EndCapital.String(),
		})
	}
	doc.Table(table)

	renderIssues(doc, r.Issues)
	return doc.String()
}

// TrendMarkdown renders the closed-window history.
func TrendMarkdown(rows []fundsplit.TrendRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Window History")
	if len(rows) == 0 {
		doc.PlainText("No closed windows yet.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Window", "Realized", "Moonbag", "Founders Net", "Investors Net"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Window.String(),
			row.RealizedProfit.SignedString(),
			row.MoonbagAllocated.String(),
			row.FoundersNet.SignedString(),
			row.InvestorsNet.SignedString(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// LedgerMarkdown renders the ledger as a table, newest last.
func LedgerMarkdown(l *fundsplit.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cashflow Ledger")
	table := md.TableSet{
		Header: []string{"Date", "Participant", "Type", "Amount", "Earns"},
	}
	for leg := range l.Legs() {
		earns := ""
		if leg.EarnsDollarDays {
			earns = "yes"
		}
		table.Rows = append(table.Rows, []string{
			leg.Timestamp.String(),
			leg.ParticipantName,
			string(leg.Type),
			leg.Amount.String(),
			earns,
		})
	}
	doc.Table(table)
	return doc.String()
}

func renderIssues(doc *md.Markdown, issues []fundsplit.Issue) {
	if len(issues) == 0 {
		return
	}
	doc.H2("Findings")
	var items []string
	for _, issue := range issues {
		items = append(items, issue.String())
	}
	doc.BulletList(items...)
}
