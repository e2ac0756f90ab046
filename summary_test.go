package bonds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	instruments := []Instrument{
		{ID: "a", Ticker: "S31M5", MaturityDate: "2025-03-31", RedemptionValue: 100},
		{ID: "b", Ticker: "S30J5", MaturityDate: "2025-06-30", RedemptionValue: 300},
		{ID: "c", Ticker: "BROKEN", MaturityDate: "2025-06-30", RedemptionValue: 0},
	}
	analyses := Evaluate(instruments, DefaultParams(), DefaultSort(), now)
	s := Summarize(analyses)

	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 30, s.MinDays)
	assert.Equal(t, 121, s.MaxDays)

	pa := float64(analyses[0].Scenarios.Normal.Parity(100))
	pb := float64(analyses[1].Scenarios.Normal.Parity(300))
	assert.InDelta(t, (pa*100+pb*300)/400, float64(s.Normal.MeanParity), 1e-9)
	assert.InDelta(t, pb, float64(s.Normal.MinParity), 1e-9)
	assert.InDelta(t, pa, float64(s.Normal.MaxParity), 1e-9)

	assert.Greater(t, float64(s.Optimistic.MeanParity), float64(s.Normal.MeanParity))
	assert.Greater(t, float64(s.Normal.MeanParity), float64(s.Pessimistic.MeanParity))
	assert.Equal(t, []string{OptimisticLabel, NormalLabel, PessimisticLabel},
		[]string{s.All()[0].Label, s.All()[1].Label, s.All()[2].Label})
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Count)
	assert.Equal(t, Percent(0), s.Normal.MeanParity)
	assert.Equal(t, NormalLabel, s.Normal.Label)
}
