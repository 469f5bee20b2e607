// Package movediff computes line-level edit scripts that distinguish lines
// added to a file from lines moved unchanged from its previous revision.
//
// The engine solves the string-to-string correction problem with block moves
// (Tichy, 1984). For each position of the new text it searches the whole old
// text for the longest block of equivalent lines starting there. Such a block
// is reported as a Move; a line with no match is reported as an Insert.
// Unlike LCS-based diffs, a block of the old text may be the origin of
// several moves, and moves may appear in any order relative to the old text.
//
// The search is exhaustive and greedy per output position, so it is
// O(n·m²) in the worst case. Callers diffing untrusted or very large input
// should bound it, for example with WithMaxLines.
package movediff

import (
	"errors"
	"fmt"
)

// EditType identifies the kind of an Edit.
type EditType int

const (
	// Insert means lines of the new text that have no origin in the old text.
	Insert EditType = iota
	// Move means a block of lines copied unchanged from the old text.
	Move
)

// String returns a string representation of the EditType.
func (t EditType) String() string {
	switch t {
	case Insert:
		return "INSERT"
	case Move:
		return "MOVE"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t EditType) MarshalText() ([]byte, error) {
	switch t {
	case Insert, Move:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEditType, int(t))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *EditType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "INSERT":
		*t = Insert
	case "MOVE":
		*t = Move
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEditType, text)
	}
	return nil
}

// Edit is a single operation of an edit script. Ranges are inclusive line
// indices. BeginA and EndA locate the origin of a Move in the old text and
// are -1 for an Insert. BeginB and EndB locate the edit in the new text.
type Edit struct {
	Type   EditType `json:"type" yaml:"type"`
	BeginA int      `json:"beginA" yaml:"beginA"`
	EndA   int      `json:"endA" yaml:"endA"`
	BeginB int      `json:"beginB" yaml:"beginB"`
	EndB   int      `json:"endB" yaml:"endB"`
}

// LengthA returns the number of old lines covered by the edit.
func (e Edit) LengthA() int {
	if e.Type != Move {
		return 0
	}
	return e.EndA - e.BeginA + 1
}

// LengthB returns the number of new lines covered by the edit.
func (e Edit) LengthB() int {
	return e.EndB - e.BeginB + 1
}

// String formats the edit as TYPE(beginA-endA,beginB-endB).
func (e Edit) String() string {
	return fmt.Sprintf("%s(%d-%d,%d-%d)", e.Type, e.BeginA, e.EndA, e.BeginB, e.EndB)
}

var (
	// ErrInputTooLarge is returned when an input exceeds the configured line limit.
	ErrInputTooLarge = errors.New("input exceeds line limit")
	// ErrUnknownEditType reports an edit type other than Insert or Move.
	ErrUnknownEditType = errors.New("unknown edit type")
	// ErrInvalidEditScript is returned by Validate and Tally.
	ErrInvalidEditScript = errors.New("invalid edit script")
)

// options holds configuration for DiffBytes.
type options struct {
	cmp      Comparator
	maxLines int
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() *options {
	return &options{
		cmp:      Default,
		maxLines: 0, // unlimited
	}
}

// Option configures DiffBytes.
type Option func(*options)

// WithComparator sets the line comparator.
// Default: Default.
func WithComparator(cmp Comparator) Option {
	return func(o *options) {
		o.cmp = cmp
	}
}

// WithIgnoreWhitespace selects IgnoreWhitespace when enabled and Default
// otherwise.
func WithIgnoreWhitespace(enabled bool) Option {
	return func(o *options) {
		if enabled {
			o.cmp = IgnoreWhitespace
		} else {
			o.cmp = Default
		}
	}
}

// WithMaxLines rejects inputs with more than n lines on either side.
// 0 means no limit.
// Default: 0.
func WithMaxLines(n int) Option {
	return func(o *options) {
		o.maxLines = n
	}
}

// DiffBytes splits a and b into lines and diffs them.
func DiffBytes(a, b []byte, opts ...Option) ([]Edit, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	ta, tb := NewText(a), NewText(b)
	if o.maxLines > 0 {
		if ta.Len() > o.maxLines {
			return nil, fmt.Errorf("old text has %d lines, limit %d: %w", ta.Len(), o.maxLines, ErrInputTooLarge)
		}
		if tb.Len() > o.maxLines {
			return nil, fmt.Errorf("new text has %d lines, limit %d: %w", tb.Len(), o.maxLines, ErrInputTooLarge)
		}
	}
	return Diff(ta, tb, o.cmp), nil
}
