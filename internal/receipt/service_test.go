package receipt

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/receiptsplit/internal/obs"
	"github.com/fkhayef/receiptsplit/internal/receipt/split"
	"github.com/fkhayef/receiptsplit/internal/report"
	"github.com/fkhayef/receiptsplit/internal/settlement"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *obs.CalculationMetrics) {
	t.Helper()
	roster, err := split.NewRoster("Ilan", "Mira", "Yaakov", "Parents")
	require.NoError(t, err)

	metrics := obs.NewCalculationMetrics("test", prometheus.NewRegistry())
	svc, err := NewService(ServiceConfig{
		Calculator:   split.NewCalculator(roster),
		DefaultPayer: "Yaakov",
		DefaultMode:  settlement.ModeChained,
		Metrics:      metrics,
		Logger:       zerolog.Nop(),
		Now:          func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return svc, metrics
}

func voucherRequest() *CalculateRequest {
	return &CalculateRequest{
		TotalReceiptCost: 767.34,
		DiscountPercent:  5.5,
		SpecificCosts:    map[string]float64{"Mira": 13.80},
	}
}

func TestNewService_RequiresCalculatorAndPayer(t *testing.T) {
	roster, err := split.NewRoster("Ilan", "Mira", "Yaakov", "Parents")
	require.NoError(t, err)

	_, err = NewService(ServiceConfig{DefaultPayer: "Yaakov"})
	assert.Error(t, err)

	_, err = NewService(ServiceConfig{Calculator: split.NewCalculator(roster), DefaultPayer: "  "})
	assert.Error(t, err)

	_, err = NewService(ServiceConfig{Calculator: split.NewCalculator(roster), DefaultPayer: "Yaakov", DefaultMode: "LOOP"})
	assert.ErrorIs(t, err, settlement.ErrUnknownMode)
}

func TestCalculate_VoucherReceipt(t *testing.T) {
	svc, metrics := newTestService(t)

	calc, err := svc.Calculate(context.Background(), voucherRequest())
	require.NoError(t, err)

	assert.Equal(t, "Yaakov", calc.Input.PayerName)
	assert.InDelta(t, 0.055, calc.Input.DiscountRate, 1e-12)
	assert.InDelta(t, 725.1363, calc.Summary.TotalActualDebt, 1e-6)
	assert.InDelta(t, 13.041, calc.Summary.SpecificDebtTotal, 1e-6)
	assert.InDelta(t, 356.04765, calc.Debts["Ilan"], 1e-6)
	assert.InDelta(t, 369.08865, calc.Debts["Mira"], 1e-6)
	assert.Zero(t, calc.Debts["Yaakov"])
	assert.Zero(t, calc.Debts["Parents"])
	assert.True(t, calc.Reconciliation.Balanced)
	assert.Equal(t, settlement.ModeChained, calc.Mode)
	assert.Len(t, calc.Transfers, 2)
	assert.Equal(t, fixedNow, calc.CalculatedAt)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Total.WithLabelValues(obs.OutcomeOK)))
}

func TestCalculate_RequestOverridesPayerAndMode(t *testing.T) {
	svc, _ := newTestService(t)

	req := voucherRequest()
	req.PayerName = " Parents "
	req.SettlementMode = "DIRECT"
	calc, err := svc.Calculate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Parents", calc.Input.PayerName)
	assert.Equal(t, settlement.ModeDirect, calc.Mode)
	for _, tr := range calc.Transfers {
		assert.Equal(t, "Parents", tr.To)
	}
}

func TestCalculate_RejectsInvalidFields(t *testing.T) {
	svc, metrics := newTestService(t)

	_, err := svc.Calculate(context.Background(), &CalculateRequest{
		TotalReceiptCost: -1,
		DiscountPercent:  150,
	})
	require.ErrorIs(t, err, ErrInvalidRequest)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, []FieldError{
		{Field: "total_receipt_cost", Rule: "gt"},
		{Field: "discount_percent", Rule: "lte"},
	}, reqErr.Fields)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Total.WithLabelValues(obs.OutcomeInvalid)))
}

func TestCalculate_RejectsNegativeSpecificCost(t *testing.T) {
	svc, _ := newTestService(t)

	req := voucherRequest()
	req.SpecificCosts = map[string]float64{"Mira": -1}
	_, err := svc.Calculate(context.Background(), req)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, []FieldError{{Field: "specific_costs[Mira]", Rule: "gte"}}, reqErr.Fields)
}

func TestCalculate_RejectsZeroTotal(t *testing.T) {
	svc, metrics := newTestService(t)

	calc, err := svc.Calculate(context.Background(), &CalculateRequest{TotalReceiptCost: 0, DiscountPercent: 5.5})
	require.ErrorIs(t, err, ErrInvalidRequest)
	assert.Nil(t, calc)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, []FieldError{{Field: "total_receipt_cost", Rule: "gt"}}, reqErr.Fields)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Total.WithLabelValues(obs.OutcomeInvalid)))
}

func TestCalculate_RejectsNilRequest(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Calculate(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestCalculate_RejectsUnknownParticipant(t *testing.T) {
	svc, _ := newTestService(t)

	req := voucherRequest()
	req.SpecificCosts = map[string]float64{"Mira": 1, "Zed": 2}
	_, err := svc.Calculate(context.Background(), req)

	assert.ErrorIs(t, err, ErrUnknownParticipant)
	assert.Contains(t, err.Error(), `"Zed"`)
}

func TestCalculate_SpecificCostsExceedTotal(t *testing.T) {
	svc, metrics := newTestService(t)

	_, err := svc.Calculate(context.Background(), &CalculateRequest{
		TotalReceiptCost: 20,
		DiscountPercent:  10,
		SpecificCosts:    map[string]float64{"Yaakov": 25},
	})

	assert.ErrorIs(t, err, split.ErrSpecificCostsExceedTotal)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Total.WithLabelValues(obs.OutcomeRejected)))
}

func TestCalculate_ToResponseListsWholeRoster(t *testing.T) {
	svc, _ := newTestService(t)

	calc, err := svc.Calculate(context.Background(), voucherRequest())
	require.NoError(t, err)

	resp := calc.ToResponse(report.NewFormatter(""))
	require.Len(t, resp.Debts, 4)
	assert.Equal(t, "Ilan", resp.Debts[0].Name)
	assert.Equal(t, split.RoleSharer, resp.Debts[0].Role)
	assert.Equal(t, "Parents", resp.Debts[3].Name)
	assert.Equal(t, "0.00 ₪", resp.Debts[3].Formatted)
	assert.Equal(t, "369.09 ₪", resp.Debts[1].Formatted)
	assert.InDelta(t, 0.945, resp.Multiplier, 1e-12)
	assert.Equal(t, "CHAINED", resp.SettlementMode)
	assert.Equal(t, "2026-03-01T12:00:00Z", resp.CalculatedAt)
	assert.Equal(t, calc.ID.String(), resp.ID)
}

func TestCalculate_ReportAndResponseShareMultiplier(t *testing.T) {
	svc, _ := newTestService(t)

	req := voucherRequest()
	req.DiscountPercent = 12.5
	calc, err := svc.Calculate(context.Background(), req)
	require.NoError(t, err)

	view := calc.View()
	resp := calc.ToResponse(report.NewFormatter(""))
	assert.Equal(t, resp.Multiplier, view.Multiplier)
	assert.InDelta(t, 0.875, view.Multiplier, 1e-12)

	var b strings.Builder
	require.NoError(t, report.NewFormatter("").Write(&b, view))
	assert.Contains(t, b.String(), "1 - 12.5% = 0.875")
}
