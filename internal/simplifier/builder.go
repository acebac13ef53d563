package simplifier

import (
	"clc/internal/boolalg"
	"clc/internal/logicir"

	"github.com/google/uuid"
)

// Builder walks a rooted host IR expression and produces ExprNodes,
// memoizing per-value polynomials in its own cache. A Builder is not safe
// for concurrent use; run one Builder per goroutine (spec.md §5).
type Builder struct {
	host  logicir.Host
	cfg   logicir.Config
	cache *cache

	debug   *Debugger
	traceID uuid.UUID
}

// NewBuilder constructs a Builder with a fresh cache over host, bounded by
// cfg. debug may be nil to disable debug tracing.
func NewBuilder(host logicir.Host, cfg logicir.Config, debug *Debugger) *Builder {
	return &Builder{
		host:    host,
		cfg:     cfg,
		cache:   newCache(),
		debug:   debug,
		traceID: uuid.New(),
	}
}

// Node returns the cached or newly built ExprNode for v at the given
// recursion depth, or ok=false if any bound was violated or v is
// unsupported at the root.
func (b *Builder) Node(v logicir.Value, depth int) (*ExprNode, bool) {
	if depth == b.cfg.MaxDepth {
		return nil, false
	}
	if n, ok := b.cache.get(v); ok {
		return n, true
	}
	if op, lhs, rhs, ok := b.host.ClassifyBinary(v); ok {
		lnode, ok := b.Node(lhs, depth+1)
		if !ok {
			return nil, false
		}
		rnode, ok := b.Node(rhs, depth+1)
		if !ok {
			return nil, false
		}
		poly := combine(op, lnode.Poly, rnode.Poly)
		node := &ExprNode{Value: v, Poly: poly}
		b.cache.put(v, node)
		b.traceNode(node)
		return node, true
	}
	return b.leaf(v, depth)
}

func combine(op logicir.BinOp, lhs, rhs boolalg.Polynomial) boolalg.Polynomial {
	switch op {
	case logicir.OpAnd:
		return boolalg.And(lhs, rhs)
	case logicir.OpOr:
		return boolalg.Or(lhs, rhs)
	case logicir.OpXor:
		return boolalg.Xor(lhs, rhs)
	default:
		return boolalg.Zero()
	}
}

// leaf handles a value the builder declines to decompose further: a
// non-AND/OR/XOR binary op, or any other opaque IR value.
func (b *Builder) leaf(v logicir.Value, depth int) (*ExprNode, bool) {
	if depth == 0 {
		// The root itself is not a supported binary op; there is
		// nothing to simplify.
		return nil, false
	}
	if b.cache.leafCount() >= logicir.MaxLeafCeiling {
		// The leaf-table length becomes the next leaf id; id 62 would
		// collide bit-for-bit with boolalg.ZeroSentinel, so this guard
		// holds regardless of how cfg.MaxLeaves is configured.
		return nil, false
	}
	if b.cache.leafCount() > b.cfg.MaxLeaves {
		return nil, false
	}
	if b.host.IsZero(v) {
		node := &ExprNode{Value: v, Poly: boolalg.New(boolalg.ZeroSentinel)}
		b.cache.put(v, node)
		b.traceNode(node)
		return node, true
	}
	if b.host.IsAllOnes(v) {
		node := &ExprNode{Value: v, Poly: boolalg.One()}
		b.cache.put(v, node)
		b.traceNode(node)
		return node, true
	}
	id := b.cache.internLeaf(v)
	node := &ExprNode{Value: v, Poly: boolalg.New(boolalg.Leaf(id))}
	b.cache.put(v, node)
	b.traceNode(node)
	return node, true
}

// LeafName returns the debug name of the leaf at bit index id.
func (b *Builder) LeafName(id int) string {
	return b.cache.leafAt(id).Name()
}
