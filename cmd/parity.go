package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/bonds"
	"github.com/etnz/bonds/renderer"
	"github.com/google/subcommands"
)

type parityCmd struct {
	ticker   string
	scenario scenarioFlags
}

func (*parityCmd) Name() string     { return "parity" }
func (*parityCmd) Synopsis() string { return "display the parities of the portfolio" }
func (*parityCmd) Usage() string {
	return `bcs parity [-t <ticker>] [-tna <rate>] [-opt <spread>] [-pess <spread>] [-method <method>]

  Displays, for each scenario, the 24h price of every instrument as a
  percentage of its redemption value, followed by the portfolio parities
  weighted by redemption value.
`
}

func (c *parityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Only display this ticker")
	c.scenario.SetFlags(f)
}

func (c *parityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	board, status := c.scenario.board(bonds.SortConfig{Key: bonds.ByDaysToMaturity, Direction: bonds.Asc})
	if status != subcommands.ExitSuccess {
		return status
	}
	if c.ticker != "" {
		board = board.Filter(strings.ToUpper(c.ticker))
		if len(board.Analyses) == 0 {
			fmt.Fprintf(os.Stderr, "Error: no instrument %q in the portfolio.\n", c.ticker)
			return subcommands.ExitFailure
		}
	}
	printMarkdown(renderer.RenderParity(board))
	return subcommands.ExitSuccess
}
