package bonds

import (
	"fmt"
	"slices"
	"strings"
)

// Portfolio is the ordered set of instruments a user tracks.
// Instruments are immutable: they are only added or removed.
type Portfolio struct {
	instruments []Instrument
}

// NewPortfolio returns a portfolio holding instruments, in that order.
func NewPortfolio(instruments ...Instrument) *Portfolio {
	return &Portfolio{instruments: slices.Clone(instruments)}
}

// Len returns the number of instruments.
func (p *Portfolio) Len() int { return len(p.instruments) }

// Instruments returns a copy of the instruments in insertion order.
func (p *Portfolio) Instruments() []Instrument { return slices.Clone(p.instruments) }

// Add appends i to the portfolio. Identifiers must be unique.
func (p *Portfolio) Add(i Instrument) error {
	if i.ID == "" {
		return fmt.Errorf("%w: instrument %q has no identifier", ErrInvalidInput, i.Ticker)
	}
	if p.index(i.ID) >= 0 {
		return fmt.Errorf("%w: identifier %q is already used", ErrInvalidInput, i.ID)
	}
	p.instruments = append(p.instruments, i)
	return nil
}

// Lookup finds an instrument by identifier or, failing that, by ticker.
// Tickers are compared case insensitively and the first match wins.
func (p *Portfolio) Lookup(idOrTicker string) (Instrument, bool) {
	if i := p.index(idOrTicker); i >= 0 {
		return p.instruments[i], true
	}
	for _, i := range p.instruments {
		if strings.EqualFold(i.Ticker, idOrTicker) {
			return i, true
		}
	}
	return Instrument{}, false
}

// Remove deletes the instrument with the given identifier. It reports
// whether such an instrument existed.
func (p *Portfolio) Remove(id string) bool {
	i := p.index(id)
	if i < 0 {
		return false
	}
	p.instruments = slices.Delete(p.instruments, i, i+1)
	return true
}

func (p *Portfolio) index(id string) int {
	return slices.IndexFunc(p.instruments, func(i Instrument) bool { return i.ID == id })
}
