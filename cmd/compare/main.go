// Comparison tool for contrasting movediff churn with a Myers line diff
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dacharyc/movediff"
	"github.com/dacharyc/movediff/internal/baseline"
)

func main() {
	testCases := []struct {
		name string
		a, b string
	}{
		{
			name: "Function moved to end of file",
			a:    "func a() {\n\treturn 1\n}\n\nfunc b() {\n\treturn 2\n}\n",
			b:    "func b() {\n\treturn 2\n}\n\nfunc a() {\n\treturn 1\n}\n",
		},
		{
			name: "Reindented block",
			a:    "if x {\n  y()\n  z()\n}\n",
			b:    "if x {\n\ty()\n\tz()\n}\n",
		},
		{
			name: "Line inserted and line removed",
			a:    "a\nb\nc\nd\n",
			b:    "a\nc\nX\nd\n",
		},
	}

	largeA := generateLargeText(500, 0)
	largeB := shuffleBlocks(generateLargeText(500, 42), 25)
	testCases = append(testCases, struct {
		name string
		a, b string
	}{
		name: "Large file (500 lines, scattered changes, shuffled blocks)",
		a:    largeA,
		b:    largeB,
	})

	for _, tc := range testCases {
		ta, tb := movediff.NewText([]byte(tc.a)), movediff.NewText([]byte(tc.b))
		fmt.Printf("\n=== %s ===\n", tc.name)
		fmt.Printf("A: %d lines, B: %d lines\n", ta.Len(), tb.Len())

		for _, c := range []struct {
			name string
			cmp  movediff.Comparator
		}{
			{"exact", movediff.Default},
			{"ignore whitespace", movediff.IgnoreWhitespace},
		} {
			start := time.Now()
			edits := movediff.Diff(ta, tb, c.cmp)
			elapsed := time.Since(start)
			churn, err := movediff.Tally(edits, ta.Len())
			if err != nil {
				fmt.Printf("  %s: %v\n", c.name, err)
				continue
			}
			moves, inserts := countEdits(edits)
			fmt.Printf("\nmovediff (%s): %v\n", c.name, elapsed)
			fmt.Printf("  Edits: %d (Move: %d, Insert: %d)\n", len(edits), moves, inserts)
			fmt.Printf("  Added: %d, Deleted: %d\n", churn.Added, churn.Deleted)

			if tb.Len() <= 20 {
				for _, e := range edits {
					fmt.Printf("  %v\n", e)
				}
			}
		}

		start := time.Now()
		base := baseline.LineChurn(tc.a, tc.b)
		fmt.Printf("\ngo-diff (Myers lines): %v\n", time.Since(start))
		fmt.Printf("  Added: %d, Deleted: %d\n", base.Added, base.Deleted)
	}
}

func countEdits(edits []movediff.Edit) (moves, inserts int) {
	for _, e := range edits {
		switch e.Type {
		case movediff.Move:
			moves++
		case movediff.Insert:
			inserts++
		}
	}
	return moves, inserts
}

func generateLargeText(lines int, seed int) string {
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"func", "main", "return", "if", "else", "for", "range", "var", "const",
		"import", "package", "type", "struct", "interface", "map", "slice"}

	result := make([]string, lines)
	for i := 0; i < lines; i++ {
		lineWords := make([]string, 5+i%3)
		for j := range lineWords {
			idx := (i*7 + j*13) % len(words)
			lineWords[j] = words[idx]
		}
		result[i] = strings.Join(lineWords, " ")
	}

	// Introduce some changes based on seed
	if seed > 0 {
		for i := seed % 10; i < lines; i += 10 + seed%5 {
			result[i] = "CHANGED LINE " + fmt.Sprint(i)
		}
	}

	return strings.Join(result, "\n") + "\n"
}

// shuffleBlocks reverses the order of consecutive blocks of size lines.
func shuffleBlocks(text string, size int) string {
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var blocks [][]string
	for len(lines) > 0 {
		n := min(size, len(lines))
		blocks = append(blocks, lines[:n])
		lines = lines[n:]
	}

	var sb strings.Builder
	for i := len(blocks) - 1; i >= 0; i-- {
		for _, l := range blocks[i] {
			sb.WriteString(l)
		}
	}
	return sb.String()
}
