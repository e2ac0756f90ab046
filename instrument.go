package bonds

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/bonds/date"
	"github.com/google/uuid"
)

// ErrInvalidInput reports user supplied data that cannot be accepted.
var ErrInvalidInput = errors.New("invalid input")

// Instrument is a fixed-income title held in the portfolio: a bond or a
// short term note that pays its redemption value at maturity.
//
// The json field names are the portfolio file format and must not change.
type Instrument struct {
	ID              string  `json:"id"`
	Ticker          string  `json:"ticker"`
	MaturityDate    string  `json:"maturityDate"` // YYYY-MM-DD
	RedemptionValue float64 `json:"redemptionValue"`
}

// NewInstrument creates an Instrument with a fresh random identifier.
// The ticker is upper cased.
func NewInstrument(ticker, maturityDate string, redemptionValue float64) (Instrument, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	maturityDate = strings.TrimSpace(maturityDate)
	switch {
	case ticker == "":
		return Instrument{}, fmt.Errorf("%w: missing ticker", ErrInvalidInput)
	case maturityDate == "":
		return Instrument{}, fmt.Errorf("%w: missing maturity date for %q", ErrInvalidInput, ticker)
	case !(redemptionValue > 0):
		return Instrument{}, fmt.Errorf("%w: redemption value of %q must be positive, got %v", ErrInvalidInput, ticker, redemptionValue)
	}
	return Instrument{
		ID:              uuid.NewString(),
		Ticker:          ticker,
		MaturityDate:    maturityDate,
		RedemptionValue: redemptionValue,
	}, nil
}

// Maturity returns the maturity day, or the zero Date if it cannot be read.
func (i Instrument) Maturity() date.Date {
	t := date.ParseLocal(i.MaturityDate, time.Time{})
	if t.IsZero() {
		return date.Date{}
	}
	return date.Of(t)
}

// DaysToMaturity returns the whole days left until maturity, see [DaysToMaturity].
func (i Instrument) DaysToMaturity(now time.Time) int {
	return DaysToMaturity(i.MaturityDate, now)
}
