package receipt

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fkhayef/receiptsplit/internal/obs"
	"github.com/fkhayef/receiptsplit/internal/receipt/split"
	"github.com/fkhayef/receiptsplit/internal/settlement"
)

// Common errors
var (
	ErrInvalidRequest     = errors.New("invalid calculation request")
	ErrUnknownParticipant = errors.New("unknown participant")
)

// FieldError names a request field and the rule it broke
type FieldError struct {
	Field string
	Rule  string
}

// RequestError is returned when a request fails boundary validation
type RequestError struct {
	Fields []FieldError
}

func (e *RequestError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " (" + f.Rule + ")"
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRequest, strings.Join(parts, ", "))
}

func (e *RequestError) Unwrap() error {
	return ErrInvalidRequest
}

// ServiceConfig wires the receipt service
type ServiceConfig struct {
	Calculator   *split.Calculator
	DefaultPayer string
	DefaultMode  settlement.Mode
	Metrics      *obs.CalculationMetrics
	Logger       zerolog.Logger
	Now          func() time.Time
}

// Service validates receipt requests and runs the debt calculation
type Service struct {
	calculator   *split.Calculator
	defaultPayer string
	defaultMode  settlement.Mode
	metrics      *obs.CalculationMetrics
	logger       zerolog.Logger
	now          func() time.Time
	validate     *validator.Validate
}

// NewService creates a new receipt service with dependencies injected
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Calculator == nil {
		return nil, errors.New("calculator is required")
	}
	if strings.TrimSpace(cfg.DefaultPayer) == "" {
		return nil, errors.New("default payer is required")
	}
	mode, err := settlement.ParseMode(string(cfg.DefaultMode), settlement.ModeChained)
	if err != nil {
		return nil, err
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &Service{
		calculator:   cfg.Calculator,
		defaultPayer: strings.TrimSpace(cfg.DefaultPayer),
		defaultMode:  mode,
		metrics:      cfg.Metrics,
		logger:       cfg.Logger,
		now:          now,
		validate:     validate,
	}, nil
}

// Roster returns the participants the service splits receipts between
func (s *Service) Roster() split.Roster {
	return s.calculator.Roster()
}

// DefaultPayer returns the payer used when a request names none
func (s *Service) DefaultPayer() string {
	return s.defaultPayer
}

// DefaultMode returns the settlement mode used when a request names none
func (s *Service) DefaultMode() settlement.Mode {
	return s.defaultMode
}

// Calculate validates the request at the boundary, allocates the receipt and
// plans the ledger transfers. A failed self-check is reported on the
// returned calculation, not as an error.
func (s *Service) Calculate(ctx context.Context, req *CalculateRequest) (*Calculation, error) {
	if req == nil {
		return nil, &RequestError{Fields: []FieldError{{Field: "body", Rule: "required"}}}
	}
	if err := s.check(ctx, req); err != nil {
		s.metrics.Observe(obs.OutcomeInvalid, req.TotalReceiptCost)
		s.logger.Info().Err(err).Msg("receipt request rejected")
		return nil, err
	}

	mode, err := settlement.ParseMode(req.SettlementMode, s.defaultMode)
	if err != nil {
		s.metrics.Observe(obs.OutcomeInvalid, req.TotalReceiptCost)
		return nil, err
	}
	rate, err := split.RateFromPercent(req.DiscountPercent)
	if err != nil {
		s.metrics.Observe(obs.OutcomeInvalid, req.TotalReceiptCost)
		return nil, err
	}

	payer := strings.TrimSpace(req.PayerName)
	if payer == "" {
		payer = s.defaultPayer
	}

	input := split.ReceiptInput{
		TotalReceiptCost: req.TotalReceiptCost,
		DiscountRate:     rate,
		PayerName:        payer,
		SpecificCosts:    req.SpecificCosts,
	}
	debts, summary, err := s.calculator.Compute(input)
	if err != nil {
		s.metrics.Observe(obs.OutcomeRejected, req.TotalReceiptCost)
		s.logger.Info().Err(err).
			Float64("total_receipt_cost", req.TotalReceiptCost).
			Float64("discount_percent", req.DiscountPercent).
			Msg("receipt allocation rejected")
		return nil, err
	}

	roster := s.calculator.Roster()
	transfers, err := settlement.Plan(mode, payer, roster, debts, summary)
	if err != nil {
		return nil, err
	}

	calc := &Calculation{
		ID:              uuid.New(),
		Input:           input,
		DiscountPercent: req.DiscountPercent,
		Roster:          roster,
		Debts:           debts,
		Summary:         summary,
		Reconciliation:  split.Reconcile(debts, summary),
		Mode:            mode,
		Transfers:       transfers,
		CalculatedAt:    s.now(),
	}

	if !calc.Reconciliation.Balanced {
		s.metrics.Observe(obs.OutcomeUnbalanced, req.TotalReceiptCost)
		s.logger.Warn().
			Str("calculation_id", calc.ID.String()).
			Float64("computed_sum", calc.Reconciliation.ComputedSum).
			Float64("total_actual_debt", calc.Reconciliation.TotalActualDebt).
			Msg("receipt debts do not reconcile")
		return calc, nil
	}

	s.metrics.Observe(obs.OutcomeOK, req.TotalReceiptCost)
	s.logger.Debug().
		Str("calculation_id", calc.ID.String()).
		Str("payer", payer).
		Float64("total_actual_debt", summary.TotalActualDebt).
		Float64("net_shared_debt", summary.NetSharedDebt).
		Msg("receipt calculated")
	return calc, nil
}

func (s *Service) check(ctx context.Context, req *CalculateRequest) error {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate request: %w", err)
		}
		fields := make([]FieldError, len(verrs))
		for i, fe := range verrs {
			fields[i] = FieldError{Field: fieldPath(fe), Rule: fe.Tag()}
		}
		return &RequestError{Fields: fields}
	}

	roster := s.calculator.Roster()
	names := make([]string, 0, len(req.SpecificCosts))
	for name := range req.SpecificCosts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !roster.Has(name) {
			return fmt.Errorf("%w: %q", ErrUnknownParticipant, name)
		}
	}
	return nil
}

// fieldPath drops the struct name from the validator namespace
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
