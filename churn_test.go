package movediff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChurn(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		cmp  Comparator
		want Churn
	}{
		{
			name: "identical",
			a:    numberedLines(1, 10),
			b:    numberedLines(1, 10),
			cmp:  Default,
			want: Churn{Added: 0, Deleted: 0},
		},
		{
			name: "line 5 deleted",
			a:    numberedLines(1, 10),
			b:    numberedLines(1, 4) + numberedLines(6, 10),
			cmp:  Default,
			want: Churn{Added: 0, Deleted: 1},
		},
		{
			name: "lines appended",
			a:    numberedLines(1, 10),
			b:    numberedLines(1, 13),
			cmp:  Default,
			want: Churn{Added: 3, Deleted: 0},
		},
		{
			name: "line replaced",
			a:    numberedLines(1, 3),
			b:    "line 1\nchanged\nline 3\n",
			cmp:  Default,
			want: Churn{Added: 1, Deleted: 1},
		},
		{
			name: "whitespace only change exact",
			a:    "foo();\n",
			b:    "foo() ;\n",
			cmp:  Default,
			want: Churn{Added: 1, Deleted: 1},
		},
		{
			name: "whitespace only change ignored",
			a:    "foo();\n",
			b:    "foo() ;\n",
			cmp:  IgnoreWhitespace,
			want: Churn{Added: 0, Deleted: 0},
		},
		{
			name: "block moved",
			a:    numberedLines(1, 6),
			b:    numberedLines(4, 6) + numberedLines(1, 3),
			cmp:  Default,
			want: Churn{Added: 0, Deleted: 0},
		},
		{
			name: "duplicate old line counted as deleted",
			a:    "x\nx\n",
			b:    "x\n",
			cmp:  Default,
			want: Churn{Added: 0, Deleted: 1},
		},
		{
			name: "everything new",
			a:    "",
			b:    numberedLines(1, 4),
			cmp:  Default,
			want: Churn{Added: 4, Deleted: 0},
		},
		{
			name: "everything removed",
			a:    numberedLines(1, 4),
			b:    "",
			cmp:  Default,
			want: Churn{Added: 0, Deleted: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewChurn(text(tt.a), text(tt.b), tt.cmp))
		})
	}
}

func TestTally_OverlappingMoves(t *testing.T) {
	edits := []Edit{move(0, 2, 0, 2), move(1, 3, 3, 5), insert(6, 7)}
	got, err := Tally(edits, 6)
	require.NoError(t, err)
	assert.Equal(t, Churn{Added: 2, Deleted: 2}, got)
}

func TestTally_UnknownEditType(t *testing.T) {
	edits := []Edit{move(0, 0, 0, 0), {Type: EditType(7), BeginB: 1, EndB: 1}}
	_, err := Tally(edits, 1)
	assert.ErrorIs(t, err, ErrUnknownEditType)
}

func TestTally_MoveOutsideOldText(t *testing.T) {
	tests := []struct {
		name  string
		edits []Edit
	}{
		{name: "end past old text", edits: []Edit{move(0, 4, 0, 4)}},
		{name: "begin past old text", edits: []Edit{move(2, 2, 0, 0)}},
		{name: "negative begin", edits: []Edit{move(-1, 0, 0, 1)}},
		{name: "insert-style A range on a move", edits: []Edit{move(-1, -1, 0, 0)}},
		{name: "reversed range", edits: []Edit{move(1, 0, 0, 1)}},
		{name: "valid move then bad one", edits: []Edit{move(0, 1, 0, 1), move(1, 2, 2, 3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tally(tt.edits, 2)
			assert.ErrorIs(t, err, ErrInvalidEditScript)
			assert.Equal(t, Churn{}, got)
		})
	}
}

func TestTally_EmptyOldText(t *testing.T) {
	got, err := Tally([]Edit{insert(0, 2)}, 0)
	require.NoError(t, err)
	assert.Equal(t, Churn{Added: 3, Deleted: 0}, got)

	_, err = Tally([]Edit{move(0, 0, 0, 0)}, 0)
	assert.ErrorIs(t, err, ErrInvalidEditScript)
}
