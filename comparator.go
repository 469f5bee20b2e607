package movediff

// Comparator decides line equivalence between two texts.
// Implementations must keep Hash consistent with Equal:
// lines that are Equal must have equal hashes.
type Comparator interface {
	// Equal reports whether line ai of a is equivalent to line bi of b.
	Equal(a *Text, ai int, b *Text, bi int) bool
	// Hash returns a hash of line i of t.
	Hash(t *Text, i int) uint32
}

var (
	// Default compares lines byte for byte.
	Default Comparator = exactComparator{}

	// IgnoreWhitespace compares lines ignoring all space, tab, carriage
	// return and newline bytes, wherever they occur in the line.
	IgnoreWhitespace Comparator = whitespaceComparator{}
)

// djb2Seed is the initial value of the running hash.
const djb2Seed uint32 = 5381

type exactComparator struct{}

func (exactComparator) Equal(a *Text, ai int, b *Text, bi int) bool {
	la, lb := a.raw(ai), b.raw(bi)
	if len(la) != len(lb) {
		return false
	}
	for i := range la {
		if la[i] != lb[i] {
			return false
		}
	}
	return true
}

func (exactComparator) Hash(t *Text, i int) uint32 {
	hash := djb2Seed
	for _, c := range t.raw(i) {
		hash = hash<<5 + hash + uint32(c)
	}
	return hash
}

type whitespaceComparator struct{}

func (whitespaceComparator) Equal(a *Text, ai int, b *Text, bi int) bool {
	la := trimTrailingWhitespace(a.raw(ai))
	lb := trimTrailingWhitespace(b.raw(bi))

	as, bs := 0, 0
	ae, be := len(la), len(lb)
	for as < ae && bs < be {
		ac, bc := la[as], lb[bs]

		// Both lines end in non-whitespace after trimming, so these
		// loops always stop on a non-whitespace byte.
		for as < ae-1 && isWhitespace(ac) {
			as++
			ac = la[as]
		}
		for bs < be-1 && isWhitespace(bc) {
			bs++
			bc = lb[bs]
		}

		if ac != bc {
			return false
		}
		as++
		bs++
	}
	return as == ae && bs == be
}

func (whitespaceComparator) Hash(t *Text, i int) uint32 {
	hash := djb2Seed
	for _, c := range t.raw(i) {
		if !isWhitespace(c) {
			hash = hash<<5 + hash + uint32(c)
		}
	}
	return hash
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

func trimTrailingWhitespace(line []byte) []byte {
	end := len(line)
	for end > 0 && isWhitespace(line[end-1]) {
		end--
	}
	return line[:end]
}
