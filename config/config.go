// Package config loads the bcs settings from an optional config file and
// the environment.
//
// Config file search order:
//  1. ./bcs.yaml (working directory)
//  2. ~/.bcs/bcs.yaml (home directory)
//
// Environment variables override config file values.
// Format: BCS_<SECTION>_<KEY>, e.g., BCS_SCENARIO_TARGET_TNA
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/bonds"
	"github.com/spf13/viper"
)

const (
	keyPortfolioFile     = "portfolio_file"
	keyCurrency          = "currency"
	keyLogLevel          = "log_level"
	keyTargetTNA         = "scenario.target_tna"
	keyOptimisticSpread  = "scenario.optimistic_spread"
	keyPessimisticSpread = "scenario.pessimistic_spread"
	keyMethod            = "scenario.method"
)

// Config holds the bcs settings.
type Config struct {
	PortfolioFile string
	Currency      string
	LogLevel      string
	Scenario      bonds.ScenarioParams

	v *viper.Viper
}

// Load reads the configuration from the default locations and the environment.
// A missing config file is not an error.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("bcs")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".bcs"))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

// LoadFromFile reads configuration from a specific file path. A missing
// file yields the defaults, so that Save can create it.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("BCS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults mirrors bonds.DefaultParams.
func setDefaults(v *viper.Viper) {
	p := bonds.DefaultParams()
	v.SetDefault(keyPortfolioFile, "portfolio.json")
	v.SetDefault(keyCurrency, bonds.DefaultCurrency)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyTargetTNA, p.TargetTNA)
	v.SetDefault(keyOptimisticSpread, p.OptimisticSpread)
	v.SetDefault(keyPessimisticSpread, p.PessimisticSpread)
	v.SetDefault(keyMethod, p.Method.String())
}

func decode(v *viper.Viper) (*Config, error) {
	method, err := bonds.ParseMethod(v.GetString(keyMethod))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", keyMethod, err)
	}
	return &Config{
		PortfolioFile: v.GetString(keyPortfolioFile),
		Currency:      strings.ToUpper(v.GetString(keyCurrency)),
		LogLevel:      v.GetString(keyLogLevel),
		Scenario: bonds.ScenarioParams{
			TargetTNA:         v.GetFloat64(keyTargetTNA),
			OptimisticSpread:  v.GetFloat64(keyOptimisticSpread),
			PessimisticSpread: v.GetFloat64(keyPessimisticSpread),
			Method:            method,
		},
		v: v,
	}, nil
}

// File returns the config file in use, if any.
func (c *Config) File() string { return c.v.ConfigFileUsed() }

// Save writes the scenario parameters to file, keeping the other settings
// found in the config.
func (c *Config) Save(file string) error {
	c.v.Set(keyTargetTNA, c.Scenario.TargetTNA)
	c.v.Set(keyOptimisticSpread, c.Scenario.OptimisticSpread)
	c.v.Set(keyPessimisticSpread, c.Scenario.PessimisticSpread)
	c.v.Set(keyMethod, c.Scenario.Method.String())
	if err := c.v.WriteConfigAs(file); err != nil {
		return fmt.Errorf("cannot write config %q: %w", file, err)
	}
	return nil
}
