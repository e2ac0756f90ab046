package bonds

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ScenarioSummary aggregates the 24h parities of a portfolio for one scenario.
type ScenarioSummary struct {
	Label      string  `json:"label"`
	MeanParity Percent `json:"meanParity"` // weighted by redemption value
	MinParity  Percent `json:"minParity"`
	MaxParity  Percent `json:"maxParity"`
}

// Summary aggregates a set of analyses.
type Summary struct {
	Count       int             `json:"count"` // instruments taken into account
	MinDays     int             `json:"minDays"`
	MaxDays     int             `json:"maxDays"`
	Optimistic  ScenarioSummary `json:"optimistic"`
	Normal      ScenarioSummary `json:"normal"`
	Pessimistic ScenarioSummary `json:"pessimistic"`
}

// Summarize computes the portfolio wide parities. Instruments without a
// positive redemption value have no parity and are skipped.
func Summarize(analyses []Analysis) Summary {
	var weights, days []float64
	var optimistic, normal, pessimistic []float64
	for _, a := range analyses {
		vf := a.Instrument.RedemptionValue
		if !(vf > 0) {
			continue
		}
		weights = append(weights, vf)
		days = append(days, float64(a.DaysToMaturity))
		optimistic = append(optimistic, float64(a.Scenarios.Optimistic.Parity(vf)))
		normal = append(normal, float64(a.Scenarios.Normal.Parity(vf)))
		pessimistic = append(pessimistic, float64(a.Scenarios.Pessimistic.Parity(vf)))
	}
	s := Summary{
		Count:       len(weights),
		Optimistic:  ScenarioSummary{Label: OptimisticLabel},
		Normal:      ScenarioSummary{Label: NormalLabel},
		Pessimistic: ScenarioSummary{Label: PessimisticLabel},
	}
	if s.Count == 0 {
		return s
	}
	s.MinDays, s.MaxDays = int(floats.Min(days)), int(floats.Max(days))
	summarize := func(ss *ScenarioSummary, parities []float64) {
		ss.MeanParity = Percent(stat.Mean(parities, weights))
		ss.MinParity = Percent(floats.Min(parities))
		ss.MaxParity = Percent(floats.Max(parities))
	}
	summarize(&s.Optimistic, optimistic)
	summarize(&s.Normal, normal)
	summarize(&s.Pessimistic, pessimistic)
	return s
}

// All returns the scenario summaries from the lowest to the highest rate.
func (s Summary) All() []ScenarioSummary {
	return []ScenarioSummary{s.Optimistic, s.Normal, s.Pessimistic}
}
