// Package app wires the receipt service and its HTTP dependencies from
// configuration. Both the API server and the CLI build on it.
package app

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	limiter "github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/fkhayef/receiptsplit/internal/config"
	"github.com/fkhayef/receiptsplit/internal/obs"
	"github.com/fkhayef/receiptsplit/internal/receipt"
	"github.com/fkhayef/receiptsplit/internal/receipt/split"
	"github.com/fkhayef/receiptsplit/internal/settlement"
	"github.com/fkhayef/receiptsplit/pkg/response"
)

// NewRoster builds the participant roster from configuration
func NewRoster(cfg *config.Config) (split.Roster, error) {
	if len(cfg.SharerNames) != 2 || len(cfg.SpecificOnlyNames) != 2 {
		return split.Roster{}, fmt.Errorf("%w: need two sharers and two specific-only participants", split.ErrInvalidRoster)
	}
	return split.NewRoster(cfg.SharerNames[0], cfg.SharerNames[1], cfg.SpecificOnlyNames[0], cfg.SpecificOnlyNames[1])
}

// NewReceiptService builds the receipt service. Calculation metrics are
// registered on reg when metrics are enabled.
func NewReceiptService(cfg *config.Config, logger zerolog.Logger, reg prometheus.Registerer) (*receipt.Service, error) {
	roster, err := NewRoster(cfg)
	if err != nil {
		return nil, err
	}

	var metrics *obs.CalculationMetrics
	if cfg.MetricsEnabled {
		metrics = obs.NewCalculationMetrics(cfg.MetricsNamespace, reg)
	}

	return receipt.NewService(receipt.ServiceConfig{
		Calculator:   split.NewCalculator(roster),
		DefaultPayer: cfg.DefaultPayer,
		DefaultMode:  settlement.Mode(cfg.SettlementMode),
		Metrics:      metrics,
		Logger:       logger,
	})
}

// NewRateLimit returns a per-client rate limiting middleware backed by an
// in-memory store. An empty rate disables limiting.
func NewRateLimit(rate string) (func(http.Handler) http.Handler, error) {
	if rate == "" {
		return func(next http.Handler) http.Handler { return next }, nil
	}
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("parse rate limit %q: %w", rate, err)
	}

	mw := stdlib.NewMiddleware(limiter.New(memory.NewStore(), parsed),
		stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			response.TooManyRequests(w, "Too many requests, try again later")
		}),
	)
	return mw.Handler, nil
}
