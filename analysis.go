package bonds

import "time"

// Analysis is the valuation of one instrument for the current scenarios.
// It is derived data: recompute it whenever the instrument, the scenarios,
// or the current date change.
type Analysis struct {
	Instrument     Instrument
	DaysToMaturity int
	Scenarios      Scenarios
}

// Analyze values a single instrument on now's day.
func Analyze(i Instrument, p ScenarioParams, now time.Time) Analysis {
	days := i.DaysToMaturity(now)
	return Analysis{
		Instrument:     i,
		DaysToMaturity: days,
		Scenarios:      p.Evaluate(i.RedemptionValue, days),
	}
}

// Evaluate values every instrument, in the order given by s.
func Evaluate(instruments []Instrument, p ScenarioParams, s SortConfig, now time.Time) []Analysis {
	sorted := s.Sort(instruments)
	analyses := make([]Analysis, 0, len(sorted))
	for _, i := range sorted {
		analyses = append(analyses, Analyze(i, p, now))
	}
	return analyses
}
