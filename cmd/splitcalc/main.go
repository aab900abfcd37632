// Command splitcalc splits one voucher receipt and prints the report.
//
//	splitcalc -total 767.34 -discount 5.5 -specific Mira=13.80
//
// Without -specific the second sharer is charged 13.80 before discount.
// Exit status is 1 on invalid input, 2 on bad flags and 3 when the
// debts do not reconcile with the discounted total.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fkhayef/receiptsplit/internal/app"
	"github.com/fkhayef/receiptsplit/internal/config"
	"github.com/fkhayef/receiptsplit/internal/obs"
	"github.com/fkhayef/receiptsplit/internal/receipt"
	"github.com/fkhayef/receiptsplit/internal/report"
)

const defaultSecondSharerCost = 13.80

const (
	exitOK         = 0
	exitError      = 1
	exitUsage      = 2
	exitUnbalanced = 3
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(exitError)
	}
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, cfg))
}

type flags struct {
	Total    float64
	Discount float64
	Payer    string
	Mode     string
	Currency string
	Specific map[string]float64 // nil when no -specific flag was given
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("splitcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&f.Total, "total", 767.34, "Total receipt cost before discount")
	fs.Float64Var(&f.Discount, "discount", 5.5, "Voucher discount in percent")
	fs.StringVar(&f.Payer, "payer", "", "Who paid the receipt (defaults to DEFAULT_PAYER)")
	fs.StringVar(&f.Mode, "mode", "", "Settlement mode, DIRECT or CHAINED (defaults to SETTLEMENT_MODE)")
	fs.StringVar(&f.Currency, "currency", "", "Currency symbol (defaults to CURRENCY_SYMBOL)")

	fs.Func("specific", "Pre-discount specific cost as Name=amount, repeatable; pass an empty value for none", func(v string) error {
		if f.Specific == nil {
			f.Specific = map[string]float64{}
		}
		if v == "" {
			return nil
		}
		name, amount, ok := strings.Cut(v, "=")
		if !ok {
			return fmt.Errorf("want Name=amount, got %q", v)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
		if err != nil {
			return fmt.Errorf("amount for %s: %w", name, err)
		}
		f.Specific[strings.TrimSpace(name)] += value
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if fs.NArg() > 0 {
		return f, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return f, nil
}

func run(args []string, stdout, stderr io.Writer, cfg *config.Config) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger := obs.NewLogger(stderr, "console", cfg.LogLevel)
	local := *cfg
	local.MetricsEnabled = false

	svc, err := app.NewReceiptService(&local, logger, nil)
	if err != nil {
		logger.Error().Err(err).Msg("build receipt service")
		return exitError
	}
	if f.Specific == nil {
		_, second := svc.Roster().Sharers()
		f.Specific = map[string]float64{second: defaultSecondSharerCost}
	}

	calc, err := svc.Calculate(context.Background(), &receipt.CalculateRequest{
		TotalReceiptCost: f.Total,
		DiscountPercent:  f.Discount,
		PayerName:        f.Payer,
		SpecificCosts:    f.Specific,
		SettlementMode:   strings.ToUpper(f.Mode),
	})
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}

	symbol := f.Currency
	if symbol == "" {
		symbol = cfg.CurrencySymbol
	}
	if err := report.NewFormatter(symbol).Write(stdout, calc.View()); err != nil {
		logger.Error().Err(err).Msg("write report")
		return exitError
	}
	if !calc.Reconciliation.Balanced {
		return exitUnbalanced
	}
	return exitOK
}
