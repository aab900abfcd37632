// Package report renders receipt calculations for people: currency
// formatting, the debt table and the calculation breakdown.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fkhayef/receiptsplit/internal/receipt/split"
	"github.com/fkhayef/receiptsplit/internal/settlement"
)

// DefaultCurrencySymbol is used when no symbol is configured
const DefaultCurrencySymbol = "₪"

// Formatter formats amounts with a currency symbol and two decimals
type Formatter struct {
	Symbol string
}

// NewFormatter creates a formatter, falling back to the default symbol
func NewFormatter(symbol string) Formatter {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	return Formatter{Symbol: symbol}
}

// Amount formats a value as "12.34 ₪"
func (f Formatter) Amount(v float64) string {
	return fmt.Sprintf("%.2f %s", v, f.Symbol)
}

// Row is one line of the debt table
type Row struct {
	Name   string
	Amount float64
}

// View is everything the text report shows
type View struct {
	Payer           string
	DiscountPercent float64
	Multiplier      float64
	Roster          split.Roster
	Debts           split.Debts
	Summary         split.Summary
	Reconciliation  split.Reconciliation
	Transfers       []settlement.Transfer
}

// Rows lists participants with a positive debt in roster order
func Rows(roster split.Roster, debts split.Debts) []Row {
	rows := make([]Row, 0, len(debts))
	for _, name := range roster.Names() {
		if debt := debts[name]; debt > 0 {
			rows = append(rows, Row{Name: name, Amount: debt})
		}
	}
	return rows
}

// Write renders the full report
func (f Formatter) Write(w io.Writer, v View) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Debts owed to %s\n", v.Payer)
	rows := Rows(v.Roster, v.Debts)
	if len(rows) == 0 {
		b.WriteString("  nobody owes anything\n")
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "  %-12s %s\n", r.Name, f.Amount(r.Amount))
	}

	if len(v.Transfers) > 0 {
		b.WriteString("\nLedger transfers\n")
		for i, t := range v.Transfers {
			fmt.Fprintf(&b, "  %d. %s owes %s %s\n", i+1, t.From, t.To, f.Amount(t.Amount))
		}
	}

	first, second := v.Roster.Sharers()
	b.WriteString("\nBreakdown\n")
	fmt.Fprintf(&b, "  discount multiplier: 1 - %.1f%% = %.3f\n", v.DiscountPercent, v.Multiplier)
	fmt.Fprintf(&b, "  total actual debt:   %s\n", f.Amount(v.Summary.TotalActualDebt))
	fmt.Fprintf(&b, "  specific (discounted): %s\n", f.Amount(v.Summary.SpecificDebtTotal))
	fmt.Fprintf(&b, "  shared amount:       %s\n", f.Amount(v.Summary.NetSharedDebt))
	fmt.Fprintf(&b, "  share of %s and %s: %s each\n", first, second, f.Amount(v.Summary.SharedDebtPerPerson))

	b.WriteString("\n")
	b.WriteString(f.CheckLine(v.Reconciliation))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// CheckLine describes the outcome of the self-check
func (f Formatter) CheckLine(r split.Reconciliation) string {
	if r.Balanced {
		return fmt.Sprintf("Check passed: total repaid (%s) equals the total actual debt.", f.Amount(r.ComputedSum))
	}
	return fmt.Sprintf("Check FAILED: total repaid (%s) does not equal the total actual debt (%s).",
		f.Amount(r.ComputedSum), f.Amount(r.TotalActualDebt))
}
