package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTitle(t *testing.T) {
	fifty := strings.Repeat("abcdefghij", 5)

	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{
			name:   "short prompt is unchanged",
			prompt: "Hero block",
			want:   "Hero block",
		},
		{
			name:   "exactly forty characters is unchanged",
			prompt: fifty[:40],
			want:   fifty[:40],
		},
		{
			name:   "fifty characters is cut to forty plus ellipsis",
			prompt: fifty,
			want:   fifty[:40] + "...",
		},
		{
			name:   "multi-byte characters are counted as characters",
			prompt: strings.Repeat("é", 41),
			want:   strings.Repeat("é", 40) + "...",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DeriveTitle(tt.prompt))
		})
	}
}

func TestNextHistoryID(t *testing.T) {
	at := time.UnixMilli(1700000000000)

	tests := []struct {
		name    string
		history []HistoryItem
		want    string
	}{
		{
			name: "empty history uses the timestamp",
			want: "1700000000000",
		},
		{
			name:    "earlier last item uses the timestamp",
			history: []HistoryItem{{ID: "1699999999999"}},
			want:    "1700000000000",
		},
		{
			name:    "colliding last item is bumped",
			history: []HistoryItem{{ID: "1700000000000"}},
			want:    "1700000000001",
		},
		{
			name:    "last item from a skewed clock is bumped",
			history: []HistoryItem{{ID: "1700000000500"}},
			want:    "1700000000501",
		},
		{
			name:    "non numeric last item uses the timestamp",
			history: []HistoryItem{{ID: "example"}},
			want:    "1700000000000",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NextHistoryID(tt.history, at))
		})
	}
}

func TestFindHistoryItem(t *testing.T) {
	history := []HistoryItem{
		{ID: "1", Prompt: "a"},
		{ID: "2", Prompt: "b"},
	}

	item, ok := FindHistoryItem(history, "2")
	assert.True(t, ok)
	assert.Equal(t, "b", item.Prompt)

	_, ok = FindHistoryItem(history, "3")
	assert.False(t, ok)
}

func TestMostRecentAndSort(t *testing.T) {
	base := time.UnixMilli(1700000000000)
	a := &Project{ID: "a", LastModified: base}
	b := &Project{ID: "b", LastModified: base.Add(time.Minute)}
	c := &Project{ID: "c", LastModified: base.Add(-time.Minute)}

	assert.Nil(t, MostRecent(nil))
	assert.Equal(t, "b", MostRecent([]*Project{a, b, c}).ID)

	projects := []*Project{a, b, c}
	SortByRecency(projects)
	assert.Equal(t, []string{"b", "a", "c"}, []string{projects[0].ID, projects[1].ID, projects[2].ID})
}

func TestConversionTargetValid(t *testing.T) {
	assert.True(t, TargetReact.Valid())
	assert.True(t, TargetVue.Valid())
	assert.False(t, ConversionTarget("Svelte").Valid())
}
