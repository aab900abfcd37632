package receipt

import (
	"github.com/fkhayef/receiptsplit/internal/receipt/split"
)

// CalculateRequest represents the request to split a voucher receipt
type CalculateRequest struct {
	TotalReceiptCost float64            `json:"total_receipt_cost" validate:"gt=0"`
	DiscountPercent  float64            `json:"discount_percent" validate:"gte=0,lte=100"`
	PayerName        string             `json:"payer_name,omitempty" validate:"omitempty,max=100"`
	SpecificCosts    map[string]float64 `json:"specific_costs,omitempty" validate:"omitempty,dive,keys,required,max=100,endkeys,gte=0"` // pre-discount
	SettlementMode   string             `json:"settlement_mode,omitempty" validate:"omitempty,oneof=DIRECT CHAINED"`
}

// DebtResponse represents one participant's debt to the payer
type DebtResponse struct {
	Name      string     `json:"name"`
	Role      split.Role `json:"role"`
	Amount    float64    `json:"amount"`
	Formatted string     `json:"formatted"`
}

// TransferResponse represents one ledger transfer
type TransferResponse struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Amount    float64 `json:"amount"`
	Formatted string  `json:"formatted"`
}

// CalculationResponse represents the response for a receipt calculation
type CalculationResponse struct {
	ID              string               `json:"id"`
	PayerName       string               `json:"payer_name"`
	CurrencySymbol  string               `json:"currency_symbol"`
	DiscountPercent float64              `json:"discount_percent"`
	Multiplier      float64              `json:"multiplier"`
	Debts           []DebtResponse       `json:"debts"`
	Summary         split.Summary        `json:"summary"`
	Reconciliation  split.Reconciliation `json:"reconciliation"`
	SettlementMode  string               `json:"settlement_mode"`
	Transfers       []TransferResponse   `json:"transfers"`
	CalculatedAt    string               `json:"calculated_at"`
}

// RosterResponse describes who takes part in receipt splits
type RosterResponse struct {
	Participants   []split.Participant `json:"participants"`
	DefaultPayer   string              `json:"default_payer"`
	CurrencySymbol string              `json:"currency_symbol"`
	SettlementMode string              `json:"settlement_mode"`
}
