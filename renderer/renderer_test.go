package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/bonds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var testNow = time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC)

func testBoard(instruments ...bonds.Instrument) *bonds.Board {
	return bonds.NewBoard(instruments, bonds.DefaultParams(), bonds.DefaultSort(), bonds.DefaultCurrency, testNow)
}

// outline is what the tests look at in a rendered document.
type outline struct {
	headings []string
	tables   int
	rows     []string // body rows, cells joined by "|"
}

// parse reads a Markdown document with GFM tables.
func parse(t *testing.T, doc string) outline {
	t.Helper()
	src := []byte(doc)
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(src))

	var o outline
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			o.headings = append(o.headings, string(n.Text(src)))
		case *extast.Table:
			o.tables++
		case *extast.TableRow:
			var cells []string
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				cells = append(cells, strings.TrimSpace(string(c.Text(src))))
			}
			o.rows = append(o.rows, strings.Join(cells, "|"))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	return o
}

func TestRenderBoard(t *testing.T) {
	b := testBoard(
		bonds.Instrument{ID: "2", Ticker: "TZX26", MaturityDate: "2026-06-30", RedemptionValue: 150},
		bonds.Instrument{ID: "1", Ticker: "S31E5", MaturityDate: "2025-01-31", RedemptionValue: 100},
	)
	doc := RenderBoard(b)

	o := parse(t, doc)
	assert.Equal(t, []string{"Price board on 01/01/2025", "Parity (24h)"}, o.headings)
	assert.Equal(t, 2, o.tables)
	require.Len(t, o.rows, 5, "2 instruments and 3 scenarios")

	// Sorted by maturity, the letter comes first.
	assert.True(t, strings.HasPrefix(o.rows[0], "S31E5|31/01/2025|30|$100,00|$97,27 / $97,36|$96,99 / $97,09|$96,72 / $96,83"), o.rows[0])
	assert.True(t, strings.HasPrefix(o.rows[1], "TZX26|30/06/2026|"), o.rows[1])
	assert.True(t, strings.HasPrefix(o.rows[2], bonds.OptimisticLabel+"|"), o.rows[2])
	assert.True(t, strings.HasPrefix(o.rows[4], bonds.PessimisticLabel+"|"), o.rows[4])

	assert.Contains(t, doc, "optimistic 40.0%, normal 45.0%, pessimistic 50.0%")
	assert.Contains(t, doc, "sorted by maturityDate (asc)")
	assert.NotContains(t, doc, "error")
}

func TestRenderBoardEmpty(t *testing.T) {
	doc := RenderBoard(testBoard())

	o := parse(t, doc)
	assert.Equal(t, 0, o.tables)
	assert.Contains(t, doc, "No instruments in the portfolio.")
	assert.NotContains(t, doc, "Parity (24h)")
}

func TestRenderBoardRatesBelowMinus100(t *testing.T) {
	p := bonds.ScenarioParams{TargetTNA: 45, OptimisticSpread: 150, PessimisticSpread: 5, Method: bonds.Compound}
	instruments := []bonds.Instrument{{ID: "1", Ticker: "S31E5", MaturityDate: "2025-01-31", RedemptionValue: 100}}
	b := bonds.NewBoard(instruments, p, bonds.DefaultSort(), bonds.DefaultCurrency, testNow)

	doc := RenderBoard(b)
	assert.NotContains(t, doc, "error")
	o := parse(t, doc)
	require.Len(t, o.rows, 4)
	assert.True(t, strings.HasPrefix(o.rows[0], "S31E5|31/01/2025|30|$100,00|- / -|$96,99 / $97,09|"), o.rows[0])
	assert.Equal(t, bonds.OptimisticLabel+"|-|-|-", o.rows[1])

	parity := parse(t, RenderParity(b))
	assert.True(t, strings.HasPrefix(parity.rows[0], "S31E5|30|- (-)|97.09% ($97,09)|"), parity.rows[0])
}

func TestRenderParity(t *testing.T) {
	b := testBoard(
		bonds.Instrument{ID: "1", Ticker: "S31E5", MaturityDate: "2025-01-31", RedemptionValue: 100},
		bonds.Instrument{ID: "2", Ticker: "BAD", MaturityDate: "2025-01-31", RedemptionValue: 0},
	)
	doc := RenderParity(b)

	o := parse(t, doc)
	assert.Equal(t, []string{"Parity on 01/01/2025", "Parity (24h)"}, o.headings)
	require.Len(t, o.rows, 5)
	assert.Contains(t, o.rows, "BAD|30|- ($0,00)|- ($0,00)|- ($0,00)")
	assert.True(t, strings.HasPrefix(o.rows[0], "S31E5|30|97.36% ($97,36)|97.09% ($97,09)|96.83% ($96,83)"), o.rows[0])

	assert.Contains(t, RenderParity(testBoard()), "No instruments to chart.")
}

func TestRenderImplied(t *testing.T) {
	i := bonds.Instrument{ID: "1", Ticker: "S31E5", MaturityDate: "2025-01-31", RedemptionValue: 100}
	q := bonds.Imply(i, 96.99, bonds.Compound, testNow)
	doc := RenderImplied(q, "ARS")

	o := parse(t, doc)
	assert.Equal(t, []string{"S31E5 at $96,99"}, o.headings)
	require.Len(t, o.rows, 2)
	assert.True(t, strings.HasPrefix(o.rows[0], "CI|30|"), o.rows[0])
	assert.True(t, strings.HasPrefix(o.rows[1], "24h|29|"), o.rows[1])
	assert.Contains(t, doc, "parity 96.99%")
}

func TestRenderParams(t *testing.T) {
	p := bonds.ScenarioParams{TargetTNA: 45, OptimisticSpread: 7.5, PessimisticSpread: 5, Method: bonds.Simple}
	doc := RenderParams(p)

	o := parse(t, doc)
	assert.Equal(t, []string{"Scenario parameters"}, o.headings)
	assert.Equal(t, []string{
		bonds.OptimisticLabel + "|-7.5|37.50%",
		bonds.NormalLabel + "||45.00%",
		bonds.PessimisticLabel + "|+5|50.00%",
	}, o.rows)
	assert.Contains(t, doc, "Discounting method: simple.")
	assert.NotContains(t, doc, "error")
}

func TestTemplatesParse(t *testing.T) {
	entries, err := templates.ReadDir(".")
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	for _, want := range []string{"board.md", "board_table.md", "parity.md", "implied.md", "params.md"} {
		assert.Contains(t, names, want)
	}
}
