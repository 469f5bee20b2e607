package movediff

// Diff returns the edit script that builds b from a, using cmp to decide
// which lines are equivalent.
//
// The edits cover every line of b exactly once, in order. Consecutive
// inserted lines are merged into a single Insert. Diff is safe for
// concurrent use; all state is local to the call.
func Diff(a, b *Text, cmp Comparator) []Edit {
	ctx := newDiffContext(a, b, cmp)
	n := ctx.b.Len()

	var edits []Edit
	for q := 0; q < n; {
		p, l := ctx.longestMove(q)
		if l > 0 {
			edits = append(edits, Edit{
				Type:   Move,
				BeginA: p,
				EndA:   p + l - 1,
				BeginB: q,
				EndB:   q + l - 1,
			})
			q += l
			continue
		}
		edits = appendInsert(edits, q)
		q++
	}
	return edits
}

// longestMove finds the longest block of a that matches b starting at q.
// It returns the block's start in a and its length, which is 0 when b[q]
// matches no line of a. Among blocks of equal length the one starting
// earliest in a wins.
func (ctx *diffContext) longestMove(q int) (p, l int) {
	m, n := ctx.a.Len(), ctx.b.Len()
	for pCur := 0; pCur < m; pCur++ {
		lCur := ctx.matchLength(pCur, q, m, n)
		if lCur > l {
			p, l = pCur, lCur
		}
	}
	return p, l
}

// matchLength returns how many lines match pairwise from a[p] and b[q].
func (ctx *diffContext) matchLength(p, q, m, n int) int {
	l := 0
	for p+l < m && q+l < n && ctx.equal(p+l, q+l) {
		l++
	}
	return l
}

// appendInsert records b[q] as inserted, extending the previous edit when
// it is an Insert ending at q-1.
func appendInsert(edits []Edit, q int) []Edit {
	if last := len(edits) - 1; last >= 0 && edits[last].Type == Insert && edits[last].EndB == q-1 {
		grown := edits[last]
		grown.EndB = q
		edits[last] = grown
		return edits
	}
	return append(edits, Edit{Type: Insert, BeginA: -1, EndA: -1, BeginB: q, EndB: q})
}
