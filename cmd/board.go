package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bonds"
	"github.com/etnz/bonds/renderer"
	"github.com/google/subcommands"
)

type boardCmd struct {
	sort     sortFlag
	desc     bool
	json     bool
	scenario scenarioFlags
}

func (*boardCmd) Name() string     { return "board" }
func (*boardCmd) Synopsis() string { return "display the theoretical prices of the portfolio" }
func (*boardCmd) Usage() string {
	return `bcs board [-sort <key>]... [-desc] [-json] [-tna <rate>] [-opt <spread>] [-pess <spread>] [-method <method>]

  Values every instrument in the optimistic, normal and pessimistic
  scenarios, for a settlement today (CI) and in 24h.

  Sort keys are ticker, maturity, days and vf. Repeating a key flips the
  direction, like clicking twice on a column header.
`
}

func (c *boardCmd) SetFlags(f *flag.FlagSet) {
	c.sort = sortFlag{config: bonds.DefaultSort()}
	f.Var(&c.sort, "sort", "Sort key (ticker, maturity, days, vf). Repeat to flip the direction")
	f.BoolVar(&c.desc, "desc", false, "Sort in descending order")
	f.BoolVar(&c.json, "json", false, "Print the board as JSON")
	c.scenario.SetFlags(f)
}

func (c *boardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	board, status := c.scenario.board(c.sortConfig())
	if status != subcommands.ExitSuccess {
		return status
	}

	if c.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(board); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding board: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderBoard(board))
	return subcommands.ExitSuccess
}

func (c *boardCmd) sortConfig() bonds.SortConfig {
	s := c.sort.config
	if c.desc {
		s.Direction = bonds.Desc
	}
	return s
}

// board loads the config and the portfolio, and evaluates it with the
// overridden scenario parameters.
func (s *scenarioFlags) board(sort bonds.SortConfig) (*bonds.Board, subcommands.ExitStatus) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	params, err := s.apply(cfg.Scenario)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	p, err := DecodePortfolio(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	log := newLogger(cfg)
	log.Debug().
		Int("instruments", p.Len()).
		Float64("tna", params.TargetTNA).
		Stringer("method", params.Method).
		Str("sort", string(sort.Key)+" "+string(sort.Direction)).
		Msg("evaluating portfolio")

	return bonds.NewBoard(p.Instruments(), params, sort, cfg.Currency, now()), subcommands.ExitSuccess
}
