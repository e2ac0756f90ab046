package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bonds"
	"github.com/etnz/bonds/date"
	"github.com/google/subcommands"
)

type addCmd struct {
	ticker   string
	maturity string
	vf       string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an instrument to the portfolio" }
func (*addCmd) Usage() string {
	return `bcs add -t <ticker> -m <maturity> -vf <redemption value>

  Adds a bond or a letter to the portfolio:
  - t: the ticker (e.g., "S31M5"), upper cased.
  - m: the maturity date, YYYY-MM-DD.
  - vf: the redemption value paid at maturity (e.g., "100" or "1234.56").

  Instruments are identified by a random id, so the same ticker can be added twice.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker of the instrument (required)")
	f.StringVar(&c.maturity, "m", "", "Maturity date, YYYY-MM-DD (required)")
	f.StringVar(&c.vf, "vf", "", "Redemption value (required)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.maturity == "" || c.vf == "" {
		fmt.Fprintln(os.Stderr, "Error: -t, -m and -vf flags are required.")
		return subcommands.ExitUsageError
	}
	if _, err := date.Parse(c.maturity); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid maturity date %q: %v\n", c.maturity, err)
		return subcommands.ExitUsageError
	}
	vf, err := bonds.ParseAmount(c.vf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid redemption value %q: %v\n", c.vf, err)
		return subcommands.ExitUsageError
	}
	instrument, err := bonds.NewInstrument(c.ticker, c.maturity, vf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	log := newLogger(cfg)

	p, err := DecodePortfolio(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := p.Add(instrument); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := EncodePortfolio(cfg, p); status != subcommands.ExitSuccess {
		return status
	}
	log.Debug().Str("id", instrument.ID).Str("file", cfg.PortfolioFile).Msg("instrument added")

	fmt.Printf("✅ Added %s maturing %s, redemption value %s.\n", instrument.Ticker, instrument.Maturity().Display(), bonds.M(vf, cfg.Currency))
	return subcommands.ExitSuccess
}
