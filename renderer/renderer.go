// Package renderer turns valuation reports into Markdown.
package renderer

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"text/template"

	"github.com/etnz/bonds"
)

// RenderBoard renders the price board: every instrument with its CI and 24h
// prices for each scenario, followed by the portfolio parities.
func RenderBoard(b *bonds.Board) string {
	partials := map[string]string{
		"board_title":   "board_title.md",
		"board_table":   "board_table.md",
		"board_summary": "board_summary.md",
	}
	return renderTemplate("board", "board.md", partials, funcs(b), b)
}

// RenderParity renders the parity of each instrument in each scenario.
func RenderParity(b *bonds.Board) string {
	partials := map[string]string{
		"parity_title":   "parity_title.md",
		"parity_table":   "parity_table.md",
		"parity_summary": "board_summary.md",
	}
	return renderTemplate("parity", "parity.md", partials, funcs(b), b)
}

// RenderImplied renders the rates implied by an observed price, amounts in currency.
func RenderImplied(q bonds.ImpliedQuote, currency string) string {
	funcs := template.FuncMap{
		"money": func(v float64) string { return bonds.M(v, currency).String() },
		"parity": func(q bonds.ImpliedQuote) string {
			if !(q.Instrument.RedemptionValue > 0) {
				return "-"
			}
			return q.Parity().String()
		},
	}
	return renderTemplate("implied", "implied.md", nil, funcs, q)
}

// RenderParams renders the scenario parameters and the rates they give.
func RenderParams(p bonds.ScenarioParams) string {
	data := struct {
		Params                                          bonds.ScenarioParams
		OptimisticLabel, NormalLabel, PessimisticLabel string
	}{p, bonds.OptimisticLabel, bonds.NormalLabel, bonds.PessimisticLabel}
	funcs := template.FuncMap{
		"pct":    func(v float64) string { return bonds.Percent(v).String() },
		"points": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
	}
	return renderTemplate("params", "params.md", nil, funcs, data)
}

// funcs returns the template functions formatting values of board b.
func funcs(b *bonds.Board) template.FuncMap {
	return template.FuncMap{
		"money": func(v float64) string { return b.Money(v).String() },
		"pct":   func(v float64) string { return bonds.Percent(v).Short() },
		"parity": func(r bonds.ScenarioResult, redemptionValue float64) string {
			if !(redemptionValue > 0) {
				return "-"
			}
			return r.Parity(redemptionValue).String()
		},
	}
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, funcs template.FuncMap, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
