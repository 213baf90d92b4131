package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	from := "<div>\n<h1>Title</h1>\n<p>old</p>\n</div>\n"
	to := "<div>\n<h1>Title</h1>\n<p>new</p>\n<p>more</p>\n</div>\n"

	d := Diff(from, to)
	assert.Equal(t, 2, d.LinesAdded)
	assert.Equal(t, 1, d.LinesRemoved)
	assert.Contains(t, d.Patch, "@@")
	assert.Contains(t, d.Patch, "new")

	same := Diff(from, from)
	assert.Zero(t, same.LinesAdded)
	assert.Zero(t, same.LinesRemoved)
	assert.Empty(t, same.Patch)
}
