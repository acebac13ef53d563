package boolalg

import "math/bits"

// Monomial is a 64-bit mask over at most 62 leaves plus two reserved
// sentinel bits. Bit i (i < 62) set means leaf i is a conjunct of this
// and-chain. Bit 62 is the zero sentinel, bit 63 is the all-ones sentinel.
type Monomial uint64

const (
	// ZeroSentinel marks the monomial for the constant 0. It never
	// appears alongside any other bit in a canonical monomial.
	ZeroSentinel Monomial = 1 << 62
	// AllOnesSentinel marks the monomial for the constant 1 (the
	// multiplicative identity, i.e. all-ones of the relevant width).
	AllOnesSentinel Monomial = 1 << 63

	leafBits Monomial = ZeroSentinel - 1 // bits 0..61
)

// Leaf returns the monomial consisting of exactly one leaf conjunct.
func Leaf(id int) Monomial {
	return Monomial(1) << uint(id)
}

// IsZeroSentinel reports whether m is exactly the zero sentinel.
func (m Monomial) IsZeroSentinel() bool { return m == ZeroSentinel }

// IsAllOnesSentinel reports whether m is exactly the all-ones sentinel.
func (m Monomial) IsAllOnesSentinel() bool { return m == AllOnesSentinel }

// LeafMask returns the leaf bits of m, with both sentinel bits cleared.
func (m Monomial) LeafMask() Monomial { return m & leafBits }

// IsOneHotLeaf reports whether m has exactly one leaf bit set and neither
// sentinel bit set — the shape reconstruction maps back to a single leaf.
func (m Monomial) IsOneHotLeaf() bool {
	lm := m.LeafMask()
	return lm != 0 && lm == m && bits.OnesCount64(uint64(lm)) == 1
}

// LeafIndex returns the bit position of the single leaf in a one-hot
// monomial. Callers must check IsOneHotLeaf first.
func (m Monomial) LeafIndex() int {
	return bits.TrailingZeros64(uint64(m))
}
