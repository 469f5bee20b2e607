package movediff

// hashedSequence pairs a text with the hash of each of its lines,
// computed once per diff call.
type hashedSequence struct {
	text   *Text
	hashes []uint32
}

// wrap hashes every line of t with cmp.
func wrap(t *Text, cmp Comparator) *hashedSequence {
	hashes := make([]uint32, t.Len())
	for i := range hashes {
		hashes[i] = cmp.Hash(t, i)
	}
	return &hashedSequence{text: t, hashes: hashes}
}

// Len returns the number of lines in the wrapped text.
func (s *hashedSequence) Len() int {
	return len(s.hashes)
}

// hashedComparator rejects unequal lines by hash before asking the
// wrapped comparator. Hashes may collide, so a hash match alone
// never decides equality.
type hashedComparator struct {
	cmp Comparator
}

func (c hashedComparator) equal(a *hashedSequence, ai int, b *hashedSequence, bi int) bool {
	return a.hashes[ai] == b.hashes[bi] && c.cmp.Equal(a.text, ai, b.text, bi)
}

// diffContext holds the state of a single Diff call.
type diffContext struct {
	a, b *hashedSequence // old and new sequences
	cmp  hashedComparator
}

// newDiffContext hashes both texts for comparison with cmp.
func newDiffContext(a, b *Text, cmp Comparator) *diffContext {
	return &diffContext{
		a:   wrap(a, cmp),
		b:   wrap(b, cmp),
		cmp: hashedComparator{cmp: cmp},
	}
}

// equal reports whether a[i] is equivalent to b[j].
func (ctx *diffContext) equal(i, j int) bool {
	return ctx.cmp.equal(ctx.a, i, ctx.b, j)
}
