package simplifier

import "clc/internal/logicir"

// Reconstruct maps node's polynomial back to a host IR value when it is
// empty (→ zero), a singleton sentinel (→ zero/all-ones), or a singleton
// one-hot monomial (→ that leaf). Any other shape (a multi-term polynomial,
// or a true multi-leaf conjunction) has no known compact form and returns
// ok=false (spec.md §4.4).
func (b *Builder) Reconstruct(node *ExprNode) (logicir.Value, bool) {
	p := node.Poly
	switch p.Size() {
	case 0:
		return b.host.Zero(node.Value.Type()), true
	case 1:
		m := p.Terms()[0]
		switch {
		case m.IsZeroSentinel():
			return b.host.Zero(node.Value.Type()), true
		case m.IsAllOnesSentinel():
			return b.host.AllOnes(node.Value.Type()), true
		case m.IsOneHotLeaf():
			return b.cache.leafAt(m.LeafIndex()), true
		default:
			return nil, false
		}
	default:
		return nil, false
	}
}
