// Package llvmir adapts github.com/llir/llvm/ir values to logicir.Host, so
// the simplifier can run directly against real LLVM IR: *ir.InstAnd,
// *ir.InstOr and *ir.InstXor instructions, and *constant.Int zero/all-ones
// constants.
package llvmir

import (
	"math/big"

	"clc/internal/logicir"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// wrapped adapts one value.Value to logicir.Value. The simplifier's node
// cache keys on logicir.Value identity, so wrapped must compare equal
// across repeated sightings of the same underlying value.Value — achieved
// by interning wrappers in Host.Wrap below rather than constructing a
// fresh wrapper on every visit.
type wrapped struct {
	v value.Value
}

var _ logicir.Value = wrapped{}

func (w wrapped) Name() string { return w.v.Ident() }
func (w wrapped) Type() logicir.Type {
	return wrappedType{w.v.Type()}
}

type wrappedType struct{ t types.Type }

func (w wrappedType) String() string { return w.t.String() }

// Host implements logicir.Host over LLVM IR. Wrappers are interned by the
// underlying value.Value's identity so that the same IR value always maps
// to the same logicir.Value, which the node cache and leaf table rely on
// for cancellation laws such as a ^ a -> 0.
type Host struct {
	interned map[value.Value]wrapped
}

var _ logicir.Host = (*Host)(nil)

// NewHost returns a Host ready to wrap values from a single LLVM function
// or module walk. Like internal/simplifier.Builder, a Host is not safe for
// concurrent use; use one per goroutine.
func NewHost() *Host {
	return &Host{interned: make(map[value.Value]wrapped)}
}

// Wrap returns the logicir.Value for v, interning it on first sight.
func (h *Host) Wrap(v value.Value) logicir.Value {
	if w, ok := h.interned[v]; ok {
		return w
	}
	w := wrapped{v: v}
	h.interned[v] = w
	return w
}

func (h *Host) unwrap(v logicir.Value) (value.Value, bool) {
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
	switch inst := raw.(type) {
	case *ir.InstAnd:
		return logicir.OpAnd, h.Wrap(inst.X), h.Wrap(inst.Y), true
	case *ir.InstOr:
		return logicir.OpOr, h.Wrap(inst.X), h.Wrap(inst.Y), true
	case *ir.InstXor:
		return logicir.OpXor, h.Wrap(inst.X), h.Wrap(inst.Y), true
	default:
		return 0, nil, nil, false
	}
}

func (h *Host) IsZero(v logicir.Value) bool {
	raw, ok := h.unwrap(v)
	if !ok {
		return false
	}
	c, ok := raw.(*constant.Int)
	if !ok {
		return false
	}
	return c.X.Sign() == 0
}

func (h *Host) IsAllOnes(v logicir.Value) bool {
	raw, ok := h.unwrap(v)
	if !ok {
		return false
	}
	c, ok := raw.(*constant.Int)
	if !ok {
		return false
	}
	it, ok := c.Typ.(*types.IntType)
	if !ok {
		return false
	}
	// LLVM constants are bit patterns, not signed/unsigned values: an
	// all-ones i8 may have been written as the signed literal -1 or the
	// unsigned literal 255. Accept either big.Int encoding.
	return c.X.Cmp(negativeOne) == 0 || c.X.Cmp(allOnes(it.BitSize)) == 0
}

func (h *Host) Zero(t logicir.Type) logicir.Value {
	it := intType(t)
	return h.Wrap(constant.NewInt(it, 0))
}

func (h *Host) AllOnes(t logicir.Type) logicir.Value {
	it := intType(t)
	return h.Wrap(constant.NewInt(it, -1))
}

var negativeOne = big.NewInt(-1)

func intType(t logicir.Type) *types.IntType {
	wt, ok := t.(wrappedType)
	if !ok {
		return types.I64
	}
	it, ok := wt.t.(*types.IntType)
	if !ok {
		return types.I64
	}
	return it
}

// allOnes returns the 2^bits-1 value representing every bit set for an
// unsigned integer of the given width.
func allOnes(bits uint64) *big.Int {
	one := big.NewInt(1)
	max := new(big.Int).Lsh(one, uint(bits))
	return max.Sub(max, one)
}
