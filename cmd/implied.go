package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bonds"
	"github.com/etnz/bonds/quote"
	"github.com/etnz/bonds/renderer"
	"github.com/google/subcommands"
)

type impliedCmd struct {
	ticker string
	price  string
	quote  string
	path   string
	method string
}

func (*impliedCmd) Name() string     { return "implied" }
func (*impliedCmd) Synopsis() string { return "compute the rate implied by a market price" }
func (*impliedCmd) Usage() string {
	return `bcs implied -t <id|ticker> (-p <price> | -quote <location> [-path <jsonpath>]) [-method <method>]

  Computes the TNA at which an instrument trades at the given price, for a
  settlement today (CI) and in 24h.

  The price is either given with -p, or read from a JSON quote document with
  -quote: a file, "-" for stdin, or an http(s) URL. -path selects the price
  in the document (default "$.last"); numeric strings are accepted.
`
}

func (c *impliedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Id or ticker of the instrument (required)")
	f.StringVar(&c.price, "p", "", "Observed market price")
	f.StringVar(&c.quote, "quote", "", "Location of a JSON quote document holding the price")
	f.StringVar(&c.path, "path", quote.DefaultPath, "jsonpath expression selecting the price in the quote document")
	f.StringVar(&c.method, "method", "", "Discounting method (compound, simple). Defaults to the configured one")
}

func (c *impliedCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -t flag is required.")
		return subcommands.ExitUsageError
	}
	if (c.price == "") == (c.quote == "") {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -p or -quote is required.")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	log := newLogger(cfg)

	method := cfg.Scenario.Method
	if c.method != "" {
		if method, err = bonds.ParseMethod(c.method); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	p, err := DecodePortfolio(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	instrument, ok := p.Lookup(c.ticker)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no instrument %q in the portfolio.\n", c.ticker)
		return subcommands.ExitFailure
	}

	var price float64
	if c.price != "" {
		price, err = bonds.ParseAmount(c.price)
		if err != nil || !(price > 0) {
			fmt.Fprintf(os.Stderr, "Error: invalid price %q\n", c.price)
			return subcommands.ExitUsageError
		}
	} else {
		price, err = quote.New(c.path, log).Fetch(ctx, c.quote)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading quote: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	q := bonds.Imply(instrument, price, method, now())
	log.Debug().Str("ticker", instrument.Ticker).Float64("price", price).Int("days", q.CI.Days).Msg("implied rate")
	if q.CI.Days <= 0 {
		log.Warn().Str("ticker", instrument.Ticker).Msg("instrument has matured, no rate can be implied")
	}

	printMarkdown(renderer.RenderImplied(q, cfg.Currency))
	return subcommands.ExitSuccess
}
