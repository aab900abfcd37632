package settlement

// Mode selects how receipt debts are turned into ledger transfers
type Mode string

const (
	// ModeDirect has every debtor pay the payer
	ModeDirect Mode = "DIRECT"
	// ModeChained has the first sharer take over the whole debt to the payer
	// and collect the other participants' shares
	ModeChained Mode = "CHAINED"
)

// Transfer is a single ledger entry between two participants
type Transfer struct {
	From   string  `json:"from"`   // Who sends the money
	To     string  `json:"to"`     // Who receives the money
	Amount float64 `json:"amount"` // Rounded to cents
}

// ParseMode validates a mode name, defaulting to fallback when empty
func ParseMode(value string, fallback Mode) (Mode, error) {
	switch Mode(value) {
	case "":
		return fallback, nil
	case ModeDirect, ModeChained:
		return Mode(value), nil
	default:
		return "", ErrUnknownMode
	}
}
