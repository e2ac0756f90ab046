package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bonds"
	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove instruments from the portfolio" }
func (*removeCmd) Usage() string {
	return `bcs remove <id|ticker>...

  Removes instruments by id, or by ticker (case insensitive). A ticker
  removes the first instrument holding it.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one id or ticker is required.")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	p, err := DecodePortfolio(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	// Nothing is reported nor saved unless every key matches.
	var removed []bonds.Instrument
	for _, key := range f.Args() {
		i, ok := p.Lookup(key)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no instrument %q in the portfolio.\n", key)
			return subcommands.ExitFailure
		}
		p.Remove(i.ID)
		removed = append(removed, i)
	}
	if status := EncodePortfolio(cfg, p); status != subcommands.ExitSuccess {
		return status
	}
	for _, i := range removed {
		fmt.Printf("Removed %s (%s).\n", i.Ticker, i.ID)
	}
	return subcommands.ExitSuccess
}
