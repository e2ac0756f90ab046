package bonds

import (
	"encoding/json"
	"fmt"
	"math"
)

// Percent is a value expressed in percent: 45 is 45%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	if !p.IsFinite() {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", p)
}

// Short formats with a single decimal, like rates on a price board.
func (p Percent) Short() string {
	if !p.IsFinite() {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", p)
}

// IsFinite reports whether p is neither NaN nor infinite.
func (p Percent) IsFinite() bool {
	return !math.IsNaN(float64(p)) && !math.IsInf(float64(p), 0)
}

// MarshalJSON writes p as a number, or null when it is not finite.
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.IsFinite() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(p))
}
