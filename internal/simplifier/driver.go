package simplifier

import (
	"clc/internal/diag"
	"clc/internal/logicir"
)

// Simplify is the public entry point: it builds a polynomial for root,
// reconstructs it, and reports whether the result differs from root. A nil
// Value with ok=false means "no change" for any of the reasons in
// spec.md §7 (depth exceeded, leaf budget exceeded, unsupported root, no
// reduction, or the reconstructed value being identical to root).
//
// debug may be nil. Each call gets its own Builder (and therefore its own
// node cache and leaf table) so callers can never accidentally leak state
// across roots by reusing one builder (see DESIGN.md open-question 1).
func Simplify(host logicir.Host, cfg logicir.Config, root logicir.Value, debug *Debugger) (logicir.Value, bool) {
	diag.Assertf(cfg.Validate() == nil, "invalid config: %v", cfg)

	b := NewBuilder(host, cfg, debug)
	node, ok := b.Node(root, 0)
	if !ok {
		return nil, false
	}
	replacement, ok := b.Reconstruct(node)
	if !ok {
		return nil, false
	}
	if replacement == root {
		return nil, false
	}
	NumComplexLogicalOpsSimplified.Add(1)
	return replacement, true
}
