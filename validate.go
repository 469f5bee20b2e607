package movediff

import "fmt"

// Validate checks that edits is a well-formed script for a and b: the edits
// cover every line of b exactly once and in order, every Move lies inside a
// and spans as many old lines as new ones, and every Insert has an A range
// of -1. Move origins may overlap each other.
func Validate(edits []Edit, a, b Sequence) error {
	next := 0
	for i, e := range edits {
		if e.BeginB != next {
			return fmt.Errorf("%w: edit %d %v starts at %d, want %d", ErrInvalidEditScript, i, e, e.BeginB, next)
		}
		if e.EndB < e.BeginB || e.EndB >= b.Len() {
			return fmt.Errorf("%w: edit %d %v has B range outside [0,%d)", ErrInvalidEditScript, i, e, b.Len())
		}

		switch e.Type {
		case Insert:
			if e.BeginA != -1 || e.EndA != -1 {
				return fmt.Errorf("%w: insert %d %v has an A range", ErrInvalidEditScript, i, e)
			}
		case Move:
			if e.BeginA < 0 || e.EndA >= a.Len() || e.EndA < e.BeginA {
				return fmt.Errorf("%w: move %d %v has A range outside [0,%d)", ErrInvalidEditScript, i, e, a.Len())
			}
			if e.LengthA() != e.LengthB() {
				return fmt.Errorf("%w: move %d %v has unequal lengths", ErrInvalidEditScript, i, e)
			}
		default:
			return fmt.Errorf("%w: edit %d: %w", ErrInvalidEditScript, i, ErrUnknownEditType)
		}
		next = e.EndB + 1
	}
	if next != b.Len() {
		return fmt.Errorf("%w: edits cover %d of %d lines", ErrInvalidEditScript, next, b.Len())
	}
	return nil
}
