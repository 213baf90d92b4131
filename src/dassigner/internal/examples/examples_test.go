package examples

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	list := c.List()
	require.Len(t, list, 3)
	assert.Equal(t, `A sleek, modern "Product of the Day" card, dark theme, suitable for a tech launch website.`, list[0].Prompt)
	assert.Equal(t, "A clean hero section for a minimalist SaaS application, light theme.", list[1].Prompt)
	assert.True(t, strings.HasPrefix(list[2].HTMLCode, `<div class="p-8 bg-white`))
	assert.True(t, strings.HasSuffix(list[2].HTMLCode, "</div>"))

	list[0].Prompt = "changed"
	assert.NotEqual(t, "changed", c.List()[0].Prompt, "List returns a copy")

	ex, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, c.List()[1], ex)

	_, err = c.Get(3)
	assert.EqualError(t, err, "unknown example: index 3, the catalog holds 3")
	_, err = c.Get(-1)
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := Parse(bytes.NewReader([]byte("- prompt: hero\n  htmlCode: <section></section>\n")))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "<section></section>", got[0].HTMLCode)
	})

	t.Run("invalid entries are all reported", func(t *testing.T) {
		_, err := Parse(bytes.NewReader([]byte("- prompt: ''\n  htmlCode: plain text\n")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty prompt")
		assert.Contains(t, err.Error(), "markup must start with a tag")
	})

	t.Run("not yaml", func(t *testing.T) {
		_, err := Parse(bytes.NewReader([]byte("prompt: [")))
		assert.Error(t, err)
	})
}
