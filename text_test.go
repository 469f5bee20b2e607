package movediff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewText_Lines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty", content: "", want: nil},
		{name: "single unterminated line", content: "a", want: []string{"a"}},
		{name: "single terminated line", content: "a\n", want: []string{"a\n"}},
		{name: "trailing partial line", content: "a\nb", want: []string{"a\n", "b"}},
		{name: "blank lines", content: "\n\n", want: []string{"\n", "\n"}},
		{name: "crlf", content: "x\r\ny\r\n", want: []string{"x\r\n", "y\r\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := NewText([]byte(tt.content))
			assert.Equal(t, len(tt.want), text.Len())
			assert.Equal(t, text.Len(), CountLines([]byte(tt.content)))

			var got []string
			for i := 0; i < text.Len(); i++ {
				got = append(got, text.Line(i))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestText_Content(t *testing.T) {
	content := []byte("one\ntwo\n")
	text := NewText(content)
	assert.Equal(t, content, text.Content())
}

func TestText_ImplementsSequence(t *testing.T) {
	var s Sequence = NewText([]byte("a\nb\nc\n"))
	assert.Equal(t, 3, s.Len())
}
