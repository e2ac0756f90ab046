package bonds

import (
	"time"

	"github.com/etnz/bonds/date"
)

// ImpliedResult is the rate implied by a price for one settlement convention.
type ImpliedResult struct {
	Days int
	TNA  Percent
}

// ImpliedQuote holds the rates implied by an observed market price.
type ImpliedQuote struct {
	Instrument Instrument
	On         date.Date
	Price      float64
	Method     Method
	CI         ImpliedResult // price settled today
	H24        ImpliedResult // price settled in 24h
}

// Imply computes the rates at which i trades at price on now's day.
func Imply(i Instrument, price float64, m Method, now time.Time) ImpliedQuote {
	ci, h24 := SettlementDays(i.DaysToMaturity(now))
	return ImpliedQuote{
		Instrument: i,
		On:         date.Of(now),
		Price:      price,
		Method:     m,
		CI:         ImpliedResult{Days: ci, TNA: Percent(ImpliedRate(price, i.RedemptionValue, ci, m))},
		H24:        ImpliedResult{Days: h24, TNA: Percent(ImpliedRate(price, i.RedemptionValue, h24, m))},
	}
}

// Parity returns the price as a percentage of the redemption value.
func (q ImpliedQuote) Parity() Percent {
	return Percent(q.Price / q.Instrument.RedemptionValue * 100)
}
