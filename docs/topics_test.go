package docs

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	topics, err := Index()
	require.NoError(t, err)

	names, err := Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"portfolio", "valuation", "scenarios", "implied"}, names, "readme order")

	for _, topic := range topics {
		assert.NotEmpty(t, topic.Summary, topic.Name)
		content, err := Read(topic.Name)
		if assert.NoError(t, err) {
			assert.True(t, strings.HasPrefix(content, "# "), "%s.md starts with its title", topic.Name)
		}
	}

	// Every embedded file but the readme is reachable from the index.
	embedded, err := fs.Glob(files, "*.md")
	require.NoError(t, err)
	for _, file := range embedded {
		name := strings.TrimSuffix(file, ".md")
		if name != Readme {
			assert.Contains(t, names, name, "%s is not listed in readme.md", file)
		}
	}
}

func TestManual(t *testing.T) {
	readme, err := Read(Readme)
	require.NoError(t, err)
	got, err := Manual()
	require.NoError(t, err)
	assert.Equal(t, readme+"\n", got)

	all, err := Manual(All)
	require.NoError(t, err)
	last := -1
	for _, title := range []string{"# Portfolio", "# Valuation", "# Scenarios", "# Implied"} {
		i := strings.Index(all, title)
		require.GreaterOrEqual(t, i, 0, title)
		assert.Greater(t, i, last, "%s is out of order", title)
		last = i
	}
	assert.NotContains(t, all, "# bcs user manual")

	_, err = Manual("implied", "coupons")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"coupons"`)
	assert.Contains(t, err.Error(), "portfolio, valuation, scenarios, implied")
}
