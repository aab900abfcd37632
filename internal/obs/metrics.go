package obs

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Calculation outcomes recorded by CalculationMetrics
const (
	OutcomeOK         = "ok"
	OutcomeUnbalanced = "unbalanced"
	OutcomeRejected   = "rejected"
	OutcomeInvalid    = "invalid"
)

// HTTPMetrics groups Prometheus collectors for HTTP traffic
type HTTPMetrics struct {
	ReqTotal *prometheus.CounterVec
	ReqDur   *prometheus.HistogramVec
}

// NewHTTPMetrics registers and returns HTTP metrics collectors
func NewHTTPMetrics(namespace string, reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &HTTPMetrics{
		ReqTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled by the server.",
		}, []string{"method", "route", "status"}),
		ReqDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency distribution in milliseconds.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}, []string{"method", "route"}),
	}
	m.ReqTotal = register(reg, m.ReqTotal)
	m.ReqDur = register(reg, m.ReqDur)
	return m
}

// Middleware counts requests and observes their latency
func (m *HTTPMetrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := routePattern(r)
		m.ReqTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.ReqDur.WithLabelValues(r.Method, route).Observe(float64(time.Since(start)) / float64(time.Millisecond))
	})
}

// CalculationMetrics tracks receipt calculations by outcome
type CalculationMetrics struct {
	Total        *prometheus.CounterVec
	ReceiptTotal prometheus.Histogram
}

// NewCalculationMetrics registers and returns the calculation collectors
func NewCalculationMetrics(namespace string, reg prometheus.Registerer) *CalculationMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &CalculationMetrics{
		Total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Receipt calculations by outcome.",
		}, []string{"outcome"}),
		ReceiptTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "receipt_total_amount",
			Help:      "Distribution of receipt totals before discount.",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 10),
		}),
	}
	m.Total = register(reg, m.Total)
	m.ReceiptTotal = register(reg, m.ReceiptTotal)
	return m
}

// Observe records one calculation. A nil receiver is a no-op.
func (m *CalculationMetrics) Observe(outcome string, receiptTotal float64) {
	if m == nil {
		return
	}
	m.Total.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK || outcome == OutcomeUnbalanced {
		m.ReceiptTotal.Observe(receiptTotal)
	}
}

// register adds c to reg, reusing a collector that is already registered
func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(fmt.Errorf("register collector: %w", err))
	}
	return c
}
