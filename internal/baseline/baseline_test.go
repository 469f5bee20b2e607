package baseline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineChurn(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want Churn
	}{
		{name: "identical", a: "a\nb\nc\n", b: "a\nb\nc\n", want: Churn{}},
		{name: "empty", a: "", b: "", want: Churn{}},
		{name: "all added", a: "", b: "a\nb\n", want: Churn{Added: 2}},
		{name: "all deleted", a: "a\nb\n", b: "", want: Churn{Deleted: 2}},
		{name: "replace one line", a: "a\nb\nc\n", b: "a\nx\nc\n", want: Churn{Added: 1, Deleted: 1}},
		{name: "append", a: "a\n", b: "a\nb\nc\n", want: Churn{Added: 2}},
		{name: "unterminated last line", a: "a\n", b: "a\nb", want: Churn{Added: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineChurn(tt.a, tt.b))
		})
	}
}

func TestLineChurn_MoveCountsTwice(t *testing.T) {
	a := "1\n2\n3\n4\n5\n6\n"
	b := "4\n5\n6\n1\n2\n3\n"
	got := LineChurn(a, b)
	assert.Equal(t, 3, got.Added)
	assert.Equal(t, 3, got.Deleted)
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 0, countLines(""))
	assert.Equal(t, 1, countLines("a"))
	assert.Equal(t, 1, countLines("a\n"))
	assert.Equal(t, 2, countLines("a\nb"))
	assert.Equal(t, 2, countLines("\n\n"))
}
