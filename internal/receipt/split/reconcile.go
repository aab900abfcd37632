package split

import (
	"math"
	"sort"
)

// Tolerance is the largest drift accepted between the summed debts and the
// discounted receipt total.
const Tolerance = 0.01

// Reconciliation is the self-check of a calculation
type Reconciliation struct {
	ComputedSum     float64 `json:"computed_sum"`
	TotalActualDebt float64 `json:"total_actual_debt"`
	Difference      float64 `json:"difference"`
	Balanced        bool    `json:"balanced"`
}

// Reconcile sums the debts and compares them with the summary total
func Reconcile(debts Debts, summary Summary) Reconciliation {
	sum := debts.Total()
	diff := sum - summary.TotalActualDebt
	return Reconciliation{
		ComputedSum:     sum,
		TotalActualDebt: summary.TotalActualDebt,
		Difference:      diff,
		Balanced:        math.Abs(diff) < Tolerance,
	}
}

// Total returns the sum of all debts, added in name order
func (d Debts) Total() float64 {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)

	var sum float64
	for _, name := range names {
		sum += d[name]
	}
	return sum
}
