package bonds

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency instruments are quoted in unless configured otherwise.
const DefaultCurrency = "ARS"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
	valid bool // false for NaN or infinite values, that have no amount
}

// M returns value as Money in currency. A NaN or infinite value, like the
// price discounted at a rate of -100% or below, gives an invalid Money.
func M(value float64, currency string) Money {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{cur: currency}
	}
	return Money{value: decimal.NewFromFloat(value), cur: currency, valid: true}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the value formatted with its currency conventions, like
// "$96,85" for ARS, or "-" for an invalid Money.
func (m Money) String() string {
	if !m.valid {
		return "-"
	}
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string { return m.cur }
func (m Money) IsValid() bool    { return m.valid }
func (m Money) IsZero() bool     { return m.value.IsZero() }
func (m Money) IsPositive() bool { return m.valid && m.value.IsPositive() }
func (m Money) Equal(n Money) bool {
	return m.valid == n.valid && m.value.Equal(n.value) && m.cur == n.cur
}

// Rounded returns the value rounded to the currency's minor unit.
func (m Money) Rounded() decimal.Decimal { return m.value.Round(int32(m.currency().Fraction)) }

// AsFloat returns the value as a float64, possibly losing precision. An
// invalid Money is NaN.
func (m Money) AsFloat() float64 {
	if !m.valid {
		return math.NaN()
	}
	return m.value.InexactFloat64()
}

// ParseAmount reads a decimal amount like "100" or "1234.56".
func ParseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	if m.valid {
		w.Append("amount", m.Rounded())
	}
	return w.MarshalJSON()
}
