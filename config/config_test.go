package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/bonds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "portfolio.json", cfg.PortfolioFile)
	assert.Equal(t, "ARS", cfg.Currency)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, bonds.DefaultParams(), cfg.Scenario)
	assert.Empty(t, cfg.File())
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	content := `
portfolio_file: cartera.json
currency: usd
scenario:
  target_tna: 38.5
  optimistic_spread: 2
  method: simple
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bcs.yaml"), []byte(content), 0o644))
	t.Setenv("BCS_SCENARIO_PESSIMISTIC_SPREAD", "7.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "cartera.json", cfg.PortfolioFile)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, bonds.ScenarioParams{
		TargetTNA:         38.5,
		OptimisticSpread:  2,
		PessimisticSpread: 7.5,
		Method:            bonds.Simple,
	}, cfg.Scenario)
	assert.NotEmpty(t, cfg.File())
}

func TestLoadInvalidMethod(t *testing.T) {
	t.Setenv("BCS_SCENARIO_METHOD", "continuous")
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "bcs.yaml"))
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bcs.yaml")

	cfg, err := LoadFromFile(file)
	require.NoError(t, err)
	assert.Equal(t, bonds.DefaultParams(), cfg.Scenario)

	cfg.Scenario.TargetTNA = 52
	cfg.Scenario.Method = bonds.Simple
	require.NoError(t, cfg.Save(file))

	reloaded, err := LoadFromFile(file)
	require.NoError(t, err)
	assert.Equal(t, 52.0, reloaded.Scenario.TargetTNA)
	assert.Equal(t, bonds.Simple, reloaded.Scenario.Method)
	assert.Equal(t, 5.0, reloaded.Scenario.OptimisticSpread)
}
