package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bonds/renderer"
	"github.com/google/subcommands"
)

type paramsCmd struct {
	scenario scenarioFlags
	save     bool
}

func (*paramsCmd) Name() string     { return "params" }
func (*paramsCmd) Synopsis() string { return "show or change the scenario parameters" }
func (*paramsCmd) Usage() string {
	return `bcs params [-tna <rate>] [-opt <spread>] [-pess <spread>] [-method <method>] [-save]

  Shows the scenario parameters: the target TNA, the spreads of the
  optimistic and pessimistic scenarios, and the discounting method.

  With -save, the changed parameters are written to the config file
  (-config, or the file in use, or ./bcs.yaml).
`
}

func (c *paramsCmd) SetFlags(f *flag.FlagSet) {
	c.scenario.SetFlags(f)
	f.BoolVar(&c.save, "save", false, "Save the parameters into the config file")
}

func (c *paramsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	cfg.Scenario, err = c.scenario.apply(cfg.Scenario)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.save {
		file := *configFile
		if file == "" {
			file = cfg.File()
		}
		if file == "" {
			file = "bcs.yaml"
		}
		if err := cfg.Save(file); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			return subcommands.ExitFailure
		}
		log := newLogger(cfg)
		log.Debug().Str("file", file).Msg("scenario parameters saved")
		fmt.Printf("✅ Saved scenario parameters to %s.\n", file)
	} else if c.scenario.changed() {
		fmt.Fprintln(os.Stderr, "Parameters are not saved, use -save to keep them.")
	}

	printMarkdown(renderer.RenderParams(cfg.Scenario))
	return subcommands.ExitSuccess
}
