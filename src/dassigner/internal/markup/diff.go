package markup

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// VersionDiff is a line oriented comparison of two designs.
type VersionDiff struct {
	Patch        string `json:"patch"`
	LinesAdded   int    `json:"linesAdded"`
	LinesRemoved int    `json:"linesRemoved"`
}

// Diff compares two markup strings line by line.
func Diff(from, to string) VersionDiff {
	dmp := diffmatchpatch.New()
	fromChars, toChars, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(fromChars, toChars, false), lines)

	result := VersionDiff{
		Patch: dmp.PatchToText(dmp.PatchMake(from, diffs)),
	}
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			result.LinesAdded += countLines(d.Text)
		case diffmatchpatch.DiffDelete:
			result.LinesRemoved += countLines(d.Text)
		}
	}
	return result
}

func countLines(text string) int {
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
