package movediff

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Churn counts the lines added and deleted between two revisions.
type Churn struct {
	// Added is the number of lines of the new text covered by Insert edits.
	Added int `json:"added" yaml:"added"`
	// Deleted is the number of lines of the old text that are the origin of
	// no Move. A line is counted even when identical content survives
	// elsewhere, since Diff reports one alignment, not the one with the
	// fewest deletions.
	Deleted int `json:"deleted" yaml:"deleted"`
}

// NewChurn diffs a and b with cmp and tallies the result.
func NewChurn(a, b *Text, cmp Comparator) Churn {
	c, err := Tally(Diff(a, b, cmp), a.Len())
	if err != nil {
		// Diff only produces Insert and Move.
		panic(err)
	}
	return c
}

// Tally computes the churn of an edit script whose old text has oldLines
// lines. It fails with ErrUnknownEditType on an edit that is neither an
// Insert nor a Move, and with ErrInvalidEditScript on a Move whose A range
// is not inside [0, oldLines).
func Tally(edits []Edit, oldLines int) (Churn, error) {
	var c Churn
	remains := bitset.New(uint(oldLines))
	for _, e := range edits {
		switch e.Type {
		case Insert:
			c.Added += e.LengthB()
		case Move:
			if e.BeginA < 0 || e.EndA < e.BeginA || e.EndA >= oldLines {
				return Churn{}, fmt.Errorf("%w: move %v outside old text of %d lines", ErrInvalidEditScript, e, oldLines)
			}
			for i := e.BeginA; i <= e.EndA; i++ {
				remains.Set(uint(i))
			}
		default:
			return Churn{}, fmt.Errorf("%w: %v", ErrUnknownEditType, e)
		}
	}
	c.Deleted = oldLines - int(remains.Count())
	return c, nil
}
