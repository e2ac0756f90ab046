// Package cmd implements the bcs command line application.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bonds"
	"github.com/etnz/bonds/config"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "portfolio")
	c.Register(&removeCmd{}, "portfolio")
	c.Register(&importCmd{}, "portfolio")
	c.Register(&exportCmd{}, "portfolio")

	c.Register(&boardCmd{}, "reports")
	c.Register(&parityCmd{}, "reports")
	c.Register(&impliedCmd{}, "reports")

	c.Register(&paramsCmd{}, "settings")

	c.Register(&topicCmd{}, "help")
}

// EnvTestingNow fixes the current time, formatted as "2006-01-02 15:04:05" in
// the local zone. Documentation tests use it to get stable reports.
const EnvTestingNow = "BCS_TESTING_NOW"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the config file. Defaults to ./bcs.yaml, then ~/.bcs/bcs.yaml")
var portfolioFile = flag.String("portfolio-file", "", "Path to the portfolio file (JSON array). Overrides the config")
var currency = flag.String("currency", "", "Currency of the redemption values, 3-letter code. Overrides the config")

// Verbose enables debug logs.
var Verbose = flag.Bool("v", false, "Enable debug logs")

// loadConfig reads the config and applies the global flags on top of it.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if *configFile != "" {
		cfg, err = config.LoadFromFile(*configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if *portfolioFile != "" {
		cfg.PortfolioFile = *portfolioFile
	}
	if *currency != "" {
		cfg.Currency = strings.ToUpper(*currency)
	}
	return cfg, nil
}

// newLogger returns the console logger for cfg's log level, or debug when verbose.
func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if *Verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// DecodePortfolio loads the portfolio file of cfg. A missing file is an empty portfolio.
func DecodePortfolio(cfg *config.Config) (*bonds.Portfolio, error) {
	return bonds.LoadPortfolio(cfg.PortfolioFile)
}

// EncodePortfolio stores p into the portfolio file of cfg.
func EncodePortfolio(cfg *config.Config, p *bonds.Portfolio) subcommands.ExitStatus {
	if err := bonds.SavePortfolio(cfg.PortfolioFile, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing portfolio file %q: %v\n", cfg.PortfolioFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// now returns the current time, unless EnvTestingNow is set.
func now() time.Time {
	if s := os.Getenv(EnvTestingNow); s != "" {
		if t, err := time.ParseInLocation(time.DateTime, s, time.Local); err == nil {
			return t
		}
	}
	return time.Now()
}

// printMarkdown renders md for the terminal, or prints it as is if it cannot.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
