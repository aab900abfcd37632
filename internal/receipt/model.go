package receipt

import (
	"time"

	"github.com/google/uuid"

	"github.com/fkhayef/receiptsplit/internal/receipt/split"
	"github.com/fkhayef/receiptsplit/internal/report"
	"github.com/fkhayef/receiptsplit/internal/settlement"
)

// Calculation is the outcome of splitting one receipt
type Calculation struct {
	ID              uuid.UUID
	Input           split.ReceiptInput
	DiscountPercent float64
	Roster          split.Roster
	Debts           split.Debts
	Summary         split.Summary
	Reconciliation  split.Reconciliation
	Mode            settlement.Mode
	Transfers       []settlement.Transfer
	CalculatedAt    time.Time
}

// View adapts the calculation for the text report
func (c *Calculation) View() report.View {
	return report.View{
		Payer:           c.Input.PayerName,
		DiscountPercent: c.DiscountPercent,
		Multiplier:      c.Input.Multiplier(),
		Roster:          c.Roster,
		Debts:           c.Debts,
		Summary:         c.Summary,
		Reconciliation:  c.Reconciliation,
		Transfers:       c.Transfers,
	}
}

// ToResponse converts a Calculation to a CalculationResponse DTO
func (c *Calculation) ToResponse(f report.Formatter) *CalculationResponse {
	participants := c.Roster.Participants()
	debts := make([]DebtResponse, len(participants))
	for i, p := range participants {
		amount := c.Debts[p.Name]
		debts[i] = DebtResponse{
			Name:      p.Name,
			Role:      p.Role,
			Amount:    amount,
			Formatted: f.Amount(amount),
		}
	}

	transfers := make([]TransferResponse, len(c.Transfers))
	for i, t := range c.Transfers {
		transfers[i] = TransferResponse{
			From:      t.From,
			To:        t.To,
			Amount:    t.Amount,
			Formatted: f.Amount(t.Amount),
		}
	}

	return &CalculationResponse{
		ID:              c.ID.String(),
		PayerName:       c.Input.PayerName,
		CurrencySymbol:  f.Symbol,
		DiscountPercent: c.DiscountPercent,
		Multiplier:      c.Input.Multiplier(),
		Debts:           debts,
		Summary:         c.Summary,
		Reconciliation:  c.Reconciliation,
		SettlementMode:  string(c.Mode),
		Transfers:       transfers,
		CalculatedAt:    c.CalculatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
