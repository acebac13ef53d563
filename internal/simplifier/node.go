package simplifier

import (
	"clc/internal/boolalg"
	"clc/internal/logicir"
)

// ExprNode binds one IR value to the polynomial that represents it. Nodes
// are exclusively owned by the cache that created them; a given IR value
// has at most one node (spec.md §3).
type ExprNode struct {
	Value logicir.Value
	Poly  boolalg.Polynomial
}
