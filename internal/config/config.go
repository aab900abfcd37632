package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds all application configuration
type Config struct {
	AppEnv             string
	Port               string
	CurrencySymbol     string
	DefaultPayer       string
	SharerNames        []string
	SpecificOnlyNames  []string
	SettlementMode     string
	LogFormat          string
	LogLevel           string
	MetricsEnabled     bool
	MetricsNamespace   string
	RateLimit          string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

// Load reads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:             getString(k, "APP_ENV", "development"),
		Port:               getString(k, "PORT", "8080"),
		CurrencySymbol:     getString(k, "CURRENCY_SYMBOL", "₪"),
		DefaultPayer:       getString(k, "DEFAULT_PAYER", "Yaakov"),
		SharerNames:        splitAndTrim(getString(k, "SHARER_NAMES", "Ilan,Mira")),
		SpecificOnlyNames:  splitAndTrim(getString(k, "SPECIFIC_ONLY_NAMES", "Yaakov,Parents")),
		SettlementMode:     strings.ToUpper(getString(k, "SETTLEMENT_MODE", "CHAINED")),
		LogFormat:          getString(k, "LOG_FORMAT", "json"),
		LogLevel:           getString(k, "LOG_LEVEL", "info"),
		MetricsEnabled:     parseBool(getString(k, "METRICS_ENABLED", "true")),
		MetricsNamespace:   getString(k, "METRICS_NAMESPACE", "receiptsplit"),
		RateLimit:          strings.TrimSpace(k.String("RATE_LIMIT")),
		CORSAllowedOrigins: splitAndTrim(k.String("CORS_ALLOWED_ORIGINS")),
		ShutdownTimeout:    parseDuration(k.String("SHUTDOWN_TIMEOUT"), "10s"),
	}
	if _, set := os.LookupEnv("RATE_LIMIT"); !set {
		cfg.RateLimit = "120-M"
	}

	if len(cfg.SharerNames) != 2 {
		return nil, fmt.Errorf("SHARER_NAMES must list exactly two names, got %d", len(cfg.SharerNames))
	}
	if len(cfg.SpecificOnlyNames) != 2 {
		return nil, fmt.Errorf("SPECIFIC_ONLY_NAMES must list exactly two names, got %d", len(cfg.SpecificOnlyNames))
	}

	return cfg, nil
}

// HTTPAddr returns the address the HTTP server should bind to
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// LoadForTests loads configuration with the given environment overrides and
// restores the previous environment afterwards.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]*string, len(env))
	for key, value := range env {
		if prev, ok := os.LookupEnv(key); ok {
			original[key] = &prev
		} else {
			original[key] = nil
		}
		if err := os.Setenv(key, value); err != nil {
			return nil, err
		}
	}
	defer func() {
		for key, prev := range original {
			if prev == nil {
				_ = os.Unsetenv(key)
				continue
			}
			_ = os.Setenv(key, *prev)
		}
	}()
	return Load()
}

// getString retrieves a trimmed value or returns a default value
func getString(k *koanf.Koanf, key, defaultValue string) string {
	if value := strings.TrimSpace(k.String(key)); value != "" {
		return value
	}
	return defaultValue
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
