package bonds

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/etnz/bonds/date"
)

// Board is the price board of a portfolio on a given day: every instrument
// valued under the current scenarios, in report order.
type Board struct {
	On       date.Date
	Currency string
	Params   ScenarioParams
	Sort     SortConfig
	Analyses []Analysis
	Summary  Summary
}

// NewBoard evaluates instruments on now's day.
func NewBoard(instruments []Instrument, p ScenarioParams, s SortConfig, currency string, now time.Time) *Board {
	analyses := Evaluate(instruments, p, s, now)
	return &Board{
		On:       date.Of(now),
		Currency: currency,
		Params:   p,
		Sort:     s,
		Analyses: analyses,
		Summary:  Summarize(analyses),
	}
}

// Money returns v in the board's currency.
func (b *Board) Money(v float64) Money { return M(v, b.Currency) }

// Tickers returns the distinct tickers on the board, in board order.
func (b *Board) Tickers() []string {
	seen := make(map[string]bool)
	var tickers []string
	for _, a := range b.Analyses {
		if !seen[a.Instrument.Ticker] {
			seen[a.Instrument.Ticker] = true
			tickers = append(tickers, a.Instrument.Ticker)
		}
	}
	return tickers
}

// Filter returns a board restricted to the given ticker, ignoring case. An
// empty ticker keeps everything.
func (b *Board) Filter(ticker string) *Board {
	if ticker == "" {
		return b
	}
	f := *b
	f.Analyses = nil
	for _, a := range b.Analyses {
		if strings.EqualFold(a.Instrument.Ticker, ticker) {
			f.Analyses = append(f.Analyses, a)
		}
	}
	f.Summary = Summarize(f.Analyses)
	return &f
}

func (b *Board) MarshalJSON() ([]byte, error) {
	analyses := make([]json.RawMessage, 0, len(b.Analyses))
	for _, a := range b.Analyses {
		raw, err := b.marshalAnalysis(a)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, raw)
	}
	var w jsonObjectWriter
	w.Append("date", b.On)
	w.Optional("currency", b.Currency)
	w.Append("params", b.Params)
	w.Append("instruments", analyses)
	w.Append("summary", b.Summary)
	return w.MarshalJSON()
}

func (b *Board) marshalAnalysis(a Analysis) (json.RawMessage, error) {
	var w jsonObjectWriter
	w.EmbedFrom(a.Instrument)
	w.Append("daysToMaturity", a.DaysToMaturity)
	w.Append("optimistic", b.marshalScenario(a.Scenarios.Optimistic, a.Instrument.RedemptionValue))
	w.Append("normal", b.marshalScenario(a.Scenarios.Normal, a.Instrument.RedemptionValue))
	w.Append("pessimistic", b.marshalScenario(a.Scenarios.Pessimistic, a.Instrument.RedemptionValue))
	return w.MarshalJSON()
}

func (b *Board) marshalScenario(r ScenarioResult, redemptionValue float64) *jsonObjectWriter {
	var w jsonObjectWriter
	w.Optional("label", r.Label)
	w.Append("tna", Percent(r.Rate*100))
	w.Append("priceCI", b.Money(r.PriceCI))
	w.Append("price24h", b.Money(r.Price24h))
	if redemptionValue > 0 {
		w.Append("parity", r.Parity(redemptionValue))
	}
	return &w
}
