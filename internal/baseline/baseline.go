// Package baseline measures line churn with a conventional Myers diff, for
// comparison with the block-move churn of movediff. A Myers diff has no
// notion of moves, so a moved block counts as both deleted and added.
package baseline

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Churn holds the added and deleted line counts of a Myers line diff.
type Churn struct {
	Added   int `json:"added" yaml:"added"`
	Deleted int `json:"deleted" yaml:"deleted"`
}

// LineChurn diffs a and b line by line and counts inserted and deleted lines.
func LineChurn(a, b string) Churn {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var c Churn
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			c.Added += countLines(d.Text)
		case diffmatchpatch.DiffDelete:
			c.Deleted += countLines(d.Text)
		}
	}
	return c
}

// countLines counts lines the way movediff.Text does: every newline ends a
// line, and trailing bytes without one form a final line.
func countLines(s string) int {
	n := strings.Count(s, "\n")
	if s != "" && !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
