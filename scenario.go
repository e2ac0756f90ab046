package bonds

// ScenarioParams defines the three rate scenarios applied to every
// instrument. Rates and spreads are in percent (45 for 45%).
type ScenarioParams struct {
	TargetTNA         float64 `json:"targetTNA"`         // annual nominal rate of the normal scenario
	PessimisticSpread float64 `json:"pessimisticSpread"` // points added to TargetTNA
	OptimisticSpread  float64 `json:"optimisticSpread"`  // points subtracted from TargetTNA
	Method            Method  `json:"method"`
}

// DefaultParams returns the parameters used when none are configured.
func DefaultParams() ScenarioParams {
	return ScenarioParams{
		TargetTNA:         45,
		PessimisticSpread: 5,
		OptimisticSpread:  5,
		Method:            Compound,
	}
}

// OptimisticTNA is the lower rate, giving the higher prices.
func (p ScenarioParams) OptimisticTNA() float64 { return p.TargetTNA - p.OptimisticSpread }

// PessimisticTNA is the higher rate, giving the lower prices.
func (p ScenarioParams) PessimisticTNA() float64 { return p.TargetTNA + p.PessimisticSpread }

// Scenario labels.
const (
	OptimisticLabel  = "Optimistic (-rate)"
	NormalLabel      = "Normal (target)"
	PessimisticLabel = "Pessimistic (+rate)"
)

// ScenarioResult holds the theoretical prices of an instrument for one rate.
type ScenarioResult struct {
	Rate     float64 // annual nominal rate as a fraction (0.45)
	Price24h float64 // T+1 settlement
	PriceCI  float64 // T+0 settlement
	Label    string
}

// Parity returns the 24h price as a percentage of the redemption value.
func (r ScenarioResult) Parity(redemptionValue float64) Percent {
	return Percent(r.Price24h / redemptionValue * 100)
}

// ParityCI returns the cash price as a percentage of the redemption value.
func (r ScenarioResult) ParityCI(redemptionValue float64) Percent {
	return Percent(r.PriceCI / redemptionValue * 100)
}

// Scenarios groups the results of the three scenarios.
type Scenarios struct {
	Optimistic  ScenarioResult
	Normal      ScenarioResult
	Pessimistic ScenarioResult
}

// All returns the scenarios from the lowest to the highest rate.
func (s Scenarios) All() []ScenarioResult {
	return []ScenarioResult{s.Optimistic, s.Normal, s.Pessimistic}
}

// Evaluate prices redemptionValue, due in 'days' days, for each scenario and
// both settlement conventions.
//
// Spreads are not clamped: a rate can be negative.
func (p ScenarioParams) Evaluate(redemptionValue float64, days int) Scenarios {
	ci, h24 := SettlementDays(days)
	scenario := func(tna float64, label string) ScenarioResult {
		return ScenarioResult{
			Rate:     tna / 100,
			Price24h: Price(redemptionValue, tna, h24, p.Method),
			PriceCI:  Price(redemptionValue, tna, ci, p.Method),
			Label:    label,
		}
	}
	return Scenarios{
		Optimistic:  scenario(p.OptimisticTNA(), OptimisticLabel),
		Normal:      scenario(p.TargetTNA, NormalLabel),
		Pessimistic: scenario(p.PessimisticTNA(), PessimisticLabel),
	}
}
