// Package ssair adapts golang.org/x/tools/go/ssa values to logicir.Host.
// It is the simplifier's second real host IR, alongside internal/llvmir:
// where llvmir reads LLVM's bitwise instructions, ssair reads the SSA form
// of Go's own bitwise operators (&, |, ^) as produced by go/ssa, grounded
// on the ssa.BinOp/ssa.Const value shapes mirrored in the example pack's
// golang.org/x/tools/go/ssa snapshot.
package ssair

import (
	"go/constant"
	"go/token"
	"go/types"
	"math/big"

	"clc/internal/logicir"

	"golang.org/x/tools/go/ssa"
)

type wrapped struct {
	v ssa.Value
}

var _ logicir.Value = wrapped{}

func (w wrapped) Name() string       { return w.v.Name() }
func (w wrapped) Type() logicir.Type { return wrappedType{w.v.Type()} }

type wrappedType struct{ t types.Type }

func (w wrappedType) String() string { return w.t.String() }

// Host implements logicir.Host over golang.org/x/tools/go/ssa values.
// Like internal/llvmir.Host, it interns wrappers by ssa.Value identity so
// repeated sightings of one register map to one logicir.Value.
type Host struct {
	interned map[ssa.Value]wrapped
}

var _ logicir.Host = (*Host)(nil)

// NewHost returns a Host ready to wrap values from a single function's SSA
// form. Not safe for concurrent use.
func NewHost() *Host {
	return &Host{interned: make(map[ssa.Value]wrapped)}
}

// Wrap returns the logicir.Value for v, interning it on first sight.
func (h *Host) Wrap(v ssa.Value) logicir.Value {
	if w, ok := h.interned[v]; ok {
		return w
	}
	w := wrapped{v: v}
	h.interned[v] = w
	return w
}

func (h *Host) unwrap(v logicir.Value) (ssa.Value, bool) {
	w, ok := v.(wrapped)
	if !ok {
		return nil, false
	}
	return w.v, true
}

func (h *Host) ClassifyBinary(v logicir.Value) (logicir.BinOp, logicir.Value, logicir.Value, bool) {
	raw, ok := h.unwrap(v)
	if !ok {
		return 0, nil, nil, false
	}
	bin, ok := raw.(*ssa.BinOp)
	if !ok {
		return 0, nil, nil, false
	}
	var op logicir.BinOp
	switch bin.Op {
	case token.AND:
		op = logicir.OpAnd
	case token.OR:
		op = logicir.OpOr
	case token.XOR:
		op = logicir.OpXor
	default:
		return 0, nil, nil, false
	}
	return op, h.Wrap(bin.X), h.Wrap(bin.Y), true
}

func (h *Host) IsZero(v logicir.Value) bool {
	c, ok := h.constOf(v)
	if !ok {
		return false
	}
	return c.Value.Kind() == constant.Int && constant.Sign(c.Value) == 0
}

func (h *Host) IsAllOnes(v logicir.Value) bool {
	c, ok := h.constOf(v)
	if !ok || c.Value.Kind() != constant.Int {
		return false
	}
	basic, ok := c.Type().Underlying().(*types.Basic)
	if !ok {
		return false
	}
	negOne := constant.MakeInt64(-1)
	if constant.Compare(c.Value, token.EQL, negOne) {
		return true
	}
	mask := allOnesConst(basicBitSize(basic))
	return constant.Compare(c.Value, token.EQL, mask)
}

func (h *Host) constOf(v logicir.Value) (*ssa.Const, bool) {
	raw, ok := h.unwrap(v)
	if !ok {
		return nil, false
	}
	c, ok := raw.(*ssa.Const)
	return c, ok
}

func (h *Host) Zero(t logicir.Type) logicir.Value {
	return h.Wrap(ssa.NewConst(constant.MakeInt64(0), goType(t)))
}

func (h *Host) AllOnes(t logicir.Type) logicir.Value {
	return h.Wrap(ssa.NewConst(constant.MakeInt64(-1), goType(t)))
}

func goType(t logicir.Type) types.Type {
	if wt, ok := t.(wrappedType); ok {
		return wt.t
	}
	return types.Typ[types.Int]
}

// basicBitSize returns the bit width of a *types.Basic integer kind,
// defaulting to 64 for the platform-sized kinds (Int/Uint/Uintptr).
func basicBitSize(b *types.Basic) uint {
	switch b.Kind() {
	case types.Int8, types.Uint8:
		return 8
	case types.Int16, types.Uint16:
		return 16
	case types.Int32, types.Uint32:
		return 32
	case types.Int64, types.Uint64:
		return 64
	default:
		return 64
	}
}

func allOnesConst(bits uint) constant.Value {
	one := big.NewInt(1)
	max := new(big.Int).Lsh(one, bits)
	max.Sub(max, big.NewInt(1))
	return constant.Make(max)
}
