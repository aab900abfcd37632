package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/receiptsplit/internal/receipt/split"
)

func allocate(t *testing.T, total, rate float64, specific map[string]float64) (split.Roster, split.Debts, split.Summary) {
	t.Helper()
	roster, err := split.NewRoster("Ilan", "Mira", "Yaakov", "Parents")
	require.NoError(t, err)
	debts, summary, err := split.NewCalculator(roster).Compute(split.ReceiptInput{
		TotalReceiptCost: total,
		DiscountRate:     rate,
		SpecificCosts:    specific,
	})
	require.NoError(t, err)
	return roster, debts, summary
}

func TestPlanChained_VoucherReceipt(t *testing.T) {
	roster, debts, summary := allocate(t, 767.34, 0.055, map[string]float64{"Mira": 13.80})

	transfers, err := Plan(ModeChained, "Yaakov", roster, debts, summary)
	require.NoError(t, err)

	assert.Equal(t, []Transfer{
		{From: "Ilan", To: "Yaakov", Amount: 725.14},
		{From: "Mira", To: "Ilan", Amount: 369.09},
	}, transfers)
}

func TestPlanChained_NetPositionsMatchDebts(t *testing.T) {
	roster, debts, summary := allocate(t, 100, 0, map[string]float64{"Yaakov": 5, "Parents": 10})

	transfers, err := Plan(ModeChained, "Yaakov", roster, debts, summary)
	require.NoError(t, err)
	require.Len(t, transfers, 3)

	net := NetPositions(transfers)
	assert.InDelta(t, debts["Ilan"], net["Ilan"], 0.01)
	assert.InDelta(t, debts["Mira"], net["Mira"], 0.01)
	assert.InDelta(t, debts["Parents"], net["Parents"], 0.01)
	assert.InDelta(t, -(summary.TotalActualDebt - debts["Yaakov"]), net["Yaakov"], 0.01)
}

func TestPlanDirect(t *testing.T) {
	roster, debts, summary := allocate(t, 100, 0, map[string]float64{"Yaakov": 5, "Parents": 10})

	transfers, err := Plan(ModeDirect, "Yaakov", roster, debts, summary)
	require.NoError(t, err)

	assert.Equal(t, []Transfer{
		{From: "Ilan", To: "Yaakov", Amount: 42.5},
		{From: "Mira", To: "Yaakov", Amount: 42.5},
		{From: "Parents", To: "Yaakov", Amount: 10},
	}, transfers)
}

func TestPlanChained_SharerPayerFallsBackToDirect(t *testing.T) {
	roster, debts, summary := allocate(t, 100, 0, map[string]float64{"Yaakov": 5, "Parents": 10})

	chained, err := Plan(ModeChained, "Ilan", roster, debts, summary)
	require.NoError(t, err)
	direct, err := Plan(ModeDirect, "Ilan", roster, debts, summary)
	require.NoError(t, err)

	assert.Equal(t, direct, chained)
	for _, tr := range chained {
		assert.Equal(t, "Ilan", tr.To)
	}
}

func TestPlan_UnknownMode(t *testing.T) {
	roster, debts, summary := allocate(t, 10, 0, nil)

	_, err := Plan(Mode("SPLITWISE"), "Yaakov", roster, debts, summary)
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("", ModeChained)
	require.NoError(t, err)
	assert.Equal(t, ModeChained, mode)

	mode, err = ParseMode("DIRECT", ModeChained)
	require.NoError(t, err)
	assert.Equal(t, ModeDirect, mode)

	_, err = ParseMode("direct", ModeChained)
	assert.ErrorIs(t, err, ErrUnknownMode)
}
