package movediff

import "bytes"

// Sequence is an indexable, length-bounded collection of lines.
// Valid indices are 0 through Len()-1.
type Sequence interface {
	Len() int
}

// Text is an immutable line-indexed view over a byte buffer.
//
// A line is delimited by '\n'. A final line without a trailing newline is
// still a line. The bytes of a line include its terminating newline, if any.
type Text struct {
	content []byte

	// starts holds the offset of every line start followed by the end of
	// the buffer, so line i spans [starts[i], starts[i+1]).
	starts []int
}

// NewText builds the line map for content. The buffer is retained, not
// copied; callers must not modify it afterwards.
func NewText(content []byte) *Text {
	starts := make([]int, 0, CountLines(content)+1)
	for ptr := 0; ptr < len(content); {
		starts = append(starts, ptr)
		next := bytes.IndexByte(content[ptr:], '\n')
		if next < 0 {
			ptr = len(content)
			break
		}
		ptr += next + 1
	}
	starts = append(starts, len(content))
	return &Text{content: content, starts: starts}
}

// CountLines returns the number of lines NewText(content) would have,
// without building the line map.
func CountLines(content []byte) int {
	n := bytes.Count(content, []byte{'\n'})
	if len(content) > 0 && content[len(content)-1] != '\n' {
		n++
	}
	return n
}

// Len returns the number of lines.
func (t *Text) Len() int {
	return len(t.starts) - 1
}

// Line returns the content of line i, including its newline.
// It is meant for display; the diff engine compares raw bytes.
func (t *Text) Line(i int) string {
	return string(t.raw(i))
}

// Content returns the underlying buffer.
func (t *Text) Content() []byte {
	return t.content
}

// raw returns the bytes of line i without copying.
func (t *Text) raw(i int) []byte {
	return t.content[t.starts[i]:t.starts[i+1]]
}
