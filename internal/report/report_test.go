package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/receiptsplit/internal/receipt/split"
	"github.com/fkhayef/receiptsplit/internal/settlement"
)

func TestFormatterAmount(t *testing.T) {
	assert.Equal(t, "369.09 ₪", NewFormatter("").Amount(369.08865))
	assert.Equal(t, "0.00 €", NewFormatter(" € ").Amount(0))
	assert.Equal(t, "12.35 $", Formatter{Symbol: "$"}.Amount(12.345001))
}

func TestRowsSkipZeroDebts(t *testing.T) {
	roster, err := split.NewRoster("Ilan", "Mira", "Yaakov", "Parents")
	require.NoError(t, err)

	rows := Rows(roster, split.Debts{"Ilan": 10, "Mira": 0, "Yaakov": 0, "Parents": 2.5})
	assert.Equal(t, []Row{{Name: "Ilan", Amount: 10}, {Name: "Parents", Amount: 2.5}}, rows)
}

func TestWrite(t *testing.T) {
	roster, err := split.NewRoster("Ilan", "Mira", "Yaakov", "Parents")
	require.NoError(t, err)
	debts, summary, err := split.NewCalculator(roster).Compute(split.ReceiptInput{
		TotalReceiptCost: 767.34,
		DiscountRate:     0.055,
		SpecificCosts:    map[string]float64{"Mira": 13.80},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	f := NewFormatter("₪")
	err = f.Write(&buf, View{
		Payer:           "Yaakov",
		DiscountPercent: 5.5,
		Multiplier:      0.945,
		Roster:          roster,
		Debts:           debts,
		Summary:         summary,
		Reconciliation:  split.Reconcile(debts, summary),
		Transfers:       []settlement.Transfer{{From: "Mira", To: "Ilan", Amount: 369.09}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Debts owed to Yaakov")
	assert.Contains(t, out, "369.09 ₪")
	assert.Contains(t, out, "356.05 ₪")
	assert.NotContains(t, out, "Parents")
	assert.Contains(t, out, "1. Mira owes Ilan 369.09 ₪")
	assert.Contains(t, out, "1 - 5.5% = 0.945")
	assert.Contains(t, out, "Check passed")
}

func TestWriteUsesGivenMultiplier(t *testing.T) {
	roster, err := split.NewRoster("Ilan", "Mira", "Yaakov", "Parents")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewFormatter("₪").Write(&buf, View{
		Payer:           "Yaakov",
		DiscountPercent: 5.5,
		Multiplier:      0.9,
		Roster:          roster,
		Debts:           split.Debts{},
	}))
	assert.Contains(t, buf.String(), "1 - 5.5% = 0.900")
}

func TestCheckLineFailure(t *testing.T) {
	line := NewFormatter("₪").CheckLine(split.Reconciliation{ComputedSum: 90, TotalActualDebt: 100})
	assert.Contains(t, line, "FAILED")
	assert.Contains(t, line, "90.00 ₪")
	assert.Contains(t, line, "100.00 ₪")
}
