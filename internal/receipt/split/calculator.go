package split

import (
	"errors"
	"fmt"
	"sort"
)

// =============================================================================
// VOUCHER DEBT CALCULATOR
// Applies the voucher discount to every cost, charges each participant their
// discounted specific items and splits the remainder evenly between the sharers
// =============================================================================

// driftEpsilon absorbs float residue when specific costs add up to the total.
const driftEpsilon = 1e-9

// sharerCount is the number of roster slots holding sharers
const sharerCount = 2

var (
	ErrSpecificCostsExceedTotal = errors.New("specific costs exceed the discounted receipt total")
	ErrDiscountOutOfRange       = errors.New("discount percentage must be between 0 and 100")
	ErrInvalidRoster            = errors.New("invalid roster")
)

// ReceiptInput carries everything needed to allocate one receipt
type ReceiptInput struct {
	TotalReceiptCost float64            `json:"total_receipt_cost"`
	DiscountRate     float64            `json:"discount_rate"` // fraction, 0.055 for 5.5%
	PayerName        string             `json:"payer_name"`
	SpecificCosts    map[string]float64 `json:"specific_costs"` // pre-discount
}

// Debts maps each participant name to the amount they owe the payer
type Debts map[string]float64

// Summary exposes the intermediate values of a calculation for auditing
type Summary struct {
	TotalActualDebt       float64 `json:"total_actual_debt"`
	SpecificDebtTotal     float64 `json:"specific_debt_total"`
	NetSharedDebt         float64 `json:"net_shared_debt"`
	SharedDebtPerPerson   float64 `json:"shared_debt_per_person"`
	DerivedTransferAmount float64 `json:"derived_transfer_amount"` // second sharer's total debt
}

// ValidationError is returned when the discounted specific costs are larger
// than the discounted receipt total.
type ValidationError struct {
	SpecificDebtTotal float64
	TotalActualDebt   float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: specific %.2f > total %.2f",
		ErrSpecificCostsExceedTotal, e.SpecificDebtTotal, e.TotalActualDebt)
}

func (e *ValidationError) Unwrap() error {
	return ErrSpecificCostsExceedTotal
}

// Calculator allocates receipt debts across a fixed roster. It holds no
// mutable state and is safe for concurrent use.
type Calculator struct {
	roster Roster
}

// NewCalculator creates a calculator for the given roster
func NewCalculator(roster Roster) *Calculator {
	return &Calculator{roster: roster}
}

// Roster returns the roster the calculator allocates over
func (c *Calculator) Roster() Roster {
	return c.roster
}

// Compute allocates the receipt. The discount rate is not range-checked here;
// callers convert user input with RateFromPercent first.
func (c *Calculator) Compute(in ReceiptInput) (Debts, Summary, error) {
	multiplier := in.Multiplier()
	totalActual := in.TotalReceiptCost * multiplier

	// Sorted iteration keeps the float sum identical between calls
	names := make([]string, 0, len(in.SpecificCosts))
	for name := range in.SpecificCosts {
		names = append(names, name)
	}
	sort.Strings(names)

	discounted := make(map[string]float64, len(names))
	var specificTotal float64
	for _, name := range names {
		amount := in.SpecificCosts[name] * multiplier
		discounted[name] = amount
		specificTotal += amount
	}

	netShared := totalActual - specificTotal
	if netShared < 0 {
		if netShared < -driftEpsilon {
			return nil, Summary{}, &ValidationError{
				SpecificDebtTotal: specificTotal,
				TotalActualDebt:   totalActual,
			}
		}
		netShared = 0
	}

	participants := c.roster.Participants()
	sharedPerPerson := netShared / sharerCount

	debts := make(Debts, len(participants))
	for _, p := range participants {
		debt := discounted[p.Name]
		if p.Role == RoleSharer {
			debt += sharedPerPerson
		}
		debts[p.Name] = debt
	}

	_, second := c.roster.Sharers()
	summary := Summary{
		TotalActualDebt:       totalActual,
		SpecificDebtTotal:     specificTotal,
		NetSharedDebt:         netShared,
		SharedDebtPerPerson:   sharedPerPerson,
		DerivedTransferAmount: debts[second],
	}
	return debts, summary, nil
}

// Multiplier returns the factor applied to every cost, 1 - rate
func (in ReceiptInput) Multiplier() float64 {
	return 1 - in.DiscountRate
}

// RateFromPercent converts a user-facing discount percentage into the
// fractional rate Compute expects.
func RateFromPercent(percent float64) (float64, error) {
	if percent < 0 || percent > 100 {
		return 0, ErrDiscountOutOfRange
	}
	return percent / 100, nil
}
