package settlement

import (
	"errors"
	"math"

	"github.com/fkhayef/receiptsplit/internal/receipt/split"
)

var (
	ErrUnknownMode = errors.New("settlement mode must be DIRECT or CHAINED")
)

// Plan turns a receipt allocation into the transfers to record in a shared
// ledger. Zero-amount transfers and transfers to oneself are omitted.
func Plan(mode Mode, payer string, roster split.Roster, debts split.Debts, summary split.Summary) ([]Transfer, error) {
	switch mode {
	case ModeDirect:
		return planDirect(payer, roster, debts), nil
	case ModeChained:
		if role, ok := roster.RoleOf(payer); ok && role == split.RoleSharer {
			// A sharer holding the receipt has nobody to chain through
			return planDirect(payer, roster, debts), nil
		}
		return planChained(payer, roster, debts, summary), nil
	default:
		return nil, ErrUnknownMode
	}
}

func planDirect(payer string, roster split.Roster, debts split.Debts) []Transfer {
	transfers := make([]Transfer, 0, 4)
	for _, name := range roster.Names() {
		transfers = appendTransfer(transfers, name, payer, debts[name])
	}
	return transfers
}

// planChained mirrors how the group records a voucher receipt: the first
// sharer owes the payer everything the payer does not owe themselves, then
// recovers the second sharer's total and the specific-only shares.
func planChained(payer string, roster split.Roster, debts split.Debts, summary split.Summary) []Transfer {
	first, second := roster.Sharers()

	transfers := make([]Transfer, 0, 4)
	transfers = appendTransfer(transfers, first, payer, summary.TotalActualDebt-debts[payer])
	transfers = appendTransfer(transfers, second, first, summary.DerivedTransferAmount)

	for _, p := range roster.Participants() {
		if p.Role != split.RoleSpecificOnly || p.Name == payer {
			continue
		}
		transfers = appendTransfer(transfers, p.Name, first, debts[p.Name])
	}
	return transfers
}

func appendTransfer(transfers []Transfer, from, to string, amount float64) []Transfer {
	amount = roundToTwoDecimals(amount)
	if from == to || amount <= 0 {
		return transfers
	}
	return append(transfers, Transfer{From: from, To: to, Amount: amount})
}

// NetPositions returns how much each participant ends up paying (positive)
// or receiving (negative) across the transfers.
func NetPositions(transfers []Transfer) map[string]float64 {
	net := make(map[string]float64)
	for _, t := range transfers {
		net[t.From] += t.Amount
		net[t.To] -= t.Amount
	}
	return net
}

// roundToTwoDecimals rounds a float to 2 decimal places
func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
