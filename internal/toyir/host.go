package toyir

import "clc/internal/logicir"

// Host implements logicir.Host over toyir's own Value tree.
type Host struct{}

var _ logicir.Host = Host{}

func (Host) ClassifyBinary(v logicir.Value) (logicir.BinOp, logicir.Value, logicir.Value, bool) {
	tv, ok := v.(*Value)
	if !ok {
		return 0, nil, nil, false
	}
	switch tv.Kind {
	case KAnd:
		return logicir.OpAnd, tv.X, tv.Y, true
	case KOr:
		return logicir.OpOr, tv.X, tv.Y, true
	case KXor:
		return logicir.OpXor, tv.X, tv.Y, true
	default:
		return 0, nil, nil, false
	}
}

func (Host) IsZero(v logicir.Value) bool {
	tv, ok := v.(*Value)
	return ok && tv.Kind == KConstZero
}

func (Host) IsAllOnes(v logicir.Value) bool {
	tv, ok := v.(*Value)
	return ok && tv.Kind == KConstAllOnes
}

func (Host) Zero(t logicir.Type) logicir.Value {
	ty, _ := t.(Type)
	return &Value{Kind: KConstZero, Ty: ty}
}

func (Host) AllOnes(t logicir.Type) logicir.Value {
	ty, _ := t.(Type)
	return &Value{Kind: KConstAllOnes, Ty: ty}
}
