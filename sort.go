package bonds

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey names the instrument property used to order a report.
type SortKey string

const (
	ByTicker          SortKey = "ticker"
	ByMaturityDate    SortKey = "maturityDate"
	ByDaysToMaturity  SortKey = "daysToMaturity"
	ByRedemptionValue SortKey = "redemptionValue"
)

// ParseSortKey parses a SortKey, accepting a few short aliases.
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "ticker", "t":
		return ByTicker, nil
	case "maturityDate", "maturity", "m":
		return ByMaturityDate, nil
	case "daysToMaturity", "days", "d":
		return ByDaysToMaturity, nil
	case "redemptionValue", "redemption", "vf":
		return ByRedemptionValue, nil
	default:
		return "", fmt.Errorf("unknown sort key: %q", s)
	}
}

// Direction is the sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortConfig is the current ordering of the instruments.
type SortConfig struct {
	Key       SortKey
	Direction Direction
}

// DefaultSort orders instruments by maturity, nearest first.
func DefaultSort() SortConfig { return SortConfig{Key: ByMaturityDate, Direction: Asc} }

// Toggle returns the ordering after selecting key: selecting the current
// key while ascending switches to descending, anything else sorts
// ascending on key.
func (c SortConfig) Toggle(key SortKey) SortConfig {
	if c.Key == key && c.Direction == Asc {
		return SortConfig{Key: key, Direction: Desc}
	}
	return SortConfig{Key: key, Direction: Asc}
}

// compareFunc returns the comparison function for this ordering.
func (c SortConfig) compareFunc() func(a, b Instrument) int {
	var compare func(a, b Instrument) int
	switch c.Key {
	case ByTicker:
		// tickers are compared the way people read them, not byte per byte.
		col := collate.New(language.Spanish)
		compare = func(a, b Instrument) int { return col.CompareString(a.Ticker, b.Ticker) }
	case ByMaturityDate, ByDaysToMaturity:
		compare = func(a, b Instrument) int { return a.Maturity().Compare(b.Maturity()) }
	case ByRedemptionValue:
		compare = func(a, b Instrument) int { return cmp.Compare(a.RedemptionValue, b.RedemptionValue) }
	default:
		compare = func(a, b Instrument) int { return 0 }
	}
	if c.Direction == Desc {
		return func(a, b Instrument) int { return -compare(a, b) }
	}
	return compare
}

// Sort returns a sorted copy of instruments.
func (c SortConfig) Sort(instruments []Instrument) []Instrument {
	sorted := slices.Clone(instruments)
	slices.SortStableFunc(sorted, c.compareFunc())
	return sorted
}
