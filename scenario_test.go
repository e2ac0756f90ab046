package bonds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScenarioFanOut(t *testing.T) {
	p := ScenarioParams{TargetTNA: 45, OptimisticSpread: 5, PessimisticSpread: 5, Method: Compound}

	assert.Equal(t, 40.0, p.OptimisticTNA())
	assert.Equal(t, 50.0, p.PessimisticTNA())

	for _, days := range []int{2, 30, 365} {
		s := p.Evaluate(100, days)
		assert.InDelta(t, 0.40, s.Optimistic.Rate, 1e-12)
		assert.InDelta(t, 0.45, s.Normal.Rate, 1e-12)
		assert.InDelta(t, 0.50, s.Pessimistic.Rate, 1e-12)

		assert.Greater(t, s.Optimistic.PriceCI, s.Normal.PriceCI, "days=%d", days)
		assert.Greater(t, s.Normal.PriceCI, s.Pessimistic.PriceCI, "days=%d", days)
		assert.Greater(t, s.Optimistic.Price24h, s.Normal.Price24h, "days=%d", days)
		assert.Greater(t, s.Normal.Price24h, s.Pessimistic.Price24h, "days=%d", days)

		// 24h settlement has one day less to discount.
		for _, r := range s.All() {
			assert.Greater(t, r.Price24h, r.PriceCI, "days=%d %s", days, r.Label)
		}
	}
}

func TestScenarioSettlementDays(t *testing.T) {
	p := DefaultParams()
	s := p.Evaluate(100, 30)
	assert.Equal(t, Price(100, 45, 30, Compound), s.Normal.PriceCI)
	assert.Equal(t, Price(100, 45, 29, Compound), s.Normal.Price24h)

	s = p.Evaluate(100, 1)
	assert.Equal(t, 100.0, s.Normal.Price24h, "a single day left settles at maturity in 24h")
	assert.Less(t, s.Normal.PriceCI, 100.0)

	s = p.Evaluate(100, 0)
	for _, r := range s.All() {
		assert.Equal(t, 100.0, r.PriceCI)
		assert.Equal(t, 100.0, r.Price24h)
	}
}

func TestScenarioLabels(t *testing.T) {
	s := DefaultParams().Evaluate(100, 10)
	assert.Equal(t, OptimisticLabel, s.Optimistic.Label)
	assert.Equal(t, NormalLabel, s.Normal.Label)
	assert.Equal(t, PessimisticLabel, s.Pessimistic.Label)
}

func TestScenarioNegativeRate(t *testing.T) {
	// spreads are not clamped.
	p := ScenarioParams{TargetTNA: 3, OptimisticSpread: 8, PessimisticSpread: 1, Method: Compound}
	s := p.Evaluate(100, 90)
	assert.InDelta(t, -0.05, s.Optimistic.Rate, 1e-12)
	assert.Greater(t, s.Optimistic.PriceCI, 100.0)
}

func TestScenarioParity(t *testing.T) {
	r := ScenarioResult{Price24h: 96.5, PriceCI: 96.4}
	assert.True(t, r.Parity(200).Equal(48.25))
	assert.True(t, r.ParityCI(100).Equal(96.4))
}

func TestAnalyze(t *testing.T) {
	zone := time.FixedZone("ART", -3*60*60)
	now := time.Date(2025, time.March, 1, 10, 0, 0, 0, zone)
	i := Instrument{ID: "1", Ticker: "S31M5", MaturityDate: "2025-03-31", RedemptionValue: 120}

	a := Analyze(i, DefaultParams(), now)
	assert.Equal(t, i, a.Instrument)
	assert.Equal(t, 30, a.DaysToMaturity)
	assert.Equal(t, DefaultParams().Evaluate(120, 30), a.Scenarios)

	matured := Analyze(Instrument{ID: "2", Ticker: "OLD", MaturityDate: "2024-12-31", RedemptionValue: 100}, DefaultParams(), now)
	assert.Equal(t, 0, matured.DaysToMaturity)
	assert.Equal(t, 100.0, matured.Scenarios.Pessimistic.PriceCI)
}

func TestImply(t *testing.T) {
	now := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	i := Instrument{ID: "a", Ticker: "S31M5", MaturityDate: "2025-03-31", RedemptionValue: 100}
	price := Price(100, 45, 30, Simple)

	q := Imply(i, price, Simple, now)
	assert.Equal(t, 30, q.CI.Days)
	assert.Equal(t, 29, q.H24.Days)
	assert.InDelta(t, 45, float64(q.CI.TNA), 1e-9)
	assert.Greater(t, float64(q.H24.TNA), float64(q.CI.TNA), "same price over fewer days implies a higher rate")
	assert.InDelta(t, price, float64(q.Parity()), 1e-9)

	matured := Imply(Instrument{ID: "b", MaturityDate: "2025-01-01", RedemptionValue: 100}, 99, Compound, now)
	assert.Equal(t, Percent(0), matured.CI.TNA)
	assert.Equal(t, Percent(0), matured.H24.TNA)
}
