package bonds

import (
	"math"
	"time"

	"github.com/etnz/bonds/date"
)

// DaysPerYear is the flat day-count basis: no leap year adjustment.
const DaysPerYear = 365

// DaysToMaturity returns the number of whole days from the start of now's
// day to the start of the maturity day, both in now's location. A partial
// day counts as a full one. Matured instruments have 0 days left, never a
// negative count.
//
// An empty or malformed maturity date is read as now itself.
func DaysToMaturity(maturityDate string, now time.Time) int {
	maturity := date.ParseLocal(maturityDate, now)
	return max(0, date.CeilDays(date.Midnight(now), maturity))
}

// SettlementDays returns the day counts for both settlement conventions.
// Cash settlement (T+0) keeps the full count; 24h settlement (T+1) settles
// one calendar day later, with no business day calendar.
func SettlementDays(days int) (ci, h24 int) {
	return days, max(0, days-1)
}

// Price returns the theoretical present value of redemptionValue paid in
// 'days' days, discounted at the annual nominal rate ratePercent (45 for 45%).
// At or past maturity, it returns redemptionValue.
func Price(redemptionValue, ratePercent float64, days int, m Method) float64 {
	if days <= 0 {
		return redemptionValue
	}
	rate := ratePercent / 100
	n := float64(days) / DaysPerYear
	if m == Simple {
		return redemptionValue / (1 + rate*n)
	}
	return redemptionValue / math.Pow(1+rate, n)
}

// ImpliedRate returns the annual nominal rate, in percent, at which
// redemptionValue paid in 'days' days is worth marketPrice today. It is the
// inverse of [Price]. No rate is implied (0) at maturity or for a
// non-positive price.
func ImpliedRate(marketPrice, redemptionValue float64, days int, m Method) float64 {
	if days <= 0 || marketPrice <= 0 {
		return 0
	}
	n := float64(days) / DaysPerYear
	if m == Simple {
		return (redemptionValue/marketPrice - 1) / n * 100
	}
	return (math.Pow(redemptionValue/marketPrice, 1/n) - 1) * 100
}
