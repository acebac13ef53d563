package simplifier

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"clc/internal/boolalg"
	"clc/internal/logicir"

	"github.com/google/uuid"
)

// Debugger writes the "<value> --> <and-chain> + ... \n" trace lines
// described in spec.md §6 to an arbitrary sink. If it was created with
// tagBuilds set, each line is prefixed with the emitting builder's
// correlation id so output from builders sharing a sink (e.g. under
// ParallelSimplify) stays attributable; otherwise lines are untagged.
// Writes are always serialized so lines from different builders never
// interleave mid-line.
type Debugger struct {
	mu        sync.Mutex
	w         io.Writer
	tagBuilds bool
}

// NewDebugger wraps w. If tagBuilds is true every line is prefixed with the
// emitting Builder's uuid, useful when several builders log concurrently.
func NewDebugger(w io.Writer, tagBuilds bool) *Debugger {
	return &Debugger{w: w, tagBuilds: tagBuilds}
}

func (b *Builder) traceNode(node *ExprNode) {
	if b.debug == nil {
		return
	}
	line := fmt.Sprintf("%s --> %s", node.Value.Name(), polynomialString(node.Poly, b.LeafName))
	b.debug.mu.Lock()
	defer b.debug.mu.Unlock()
	if b.debug.tagBuilds {
		fmt.Fprintf(b.debug.w, "[%s] %s\n", b.traceID, line)
		return
	}
	fmt.Fprintf(b.debug.w, "%s\n", line)
}

func polynomialString(p boolalg.Polynomial, leafName func(int) string) string {
	if p.Size() == 0 {
		return "0"
	}
	terms := p.Terms()
	parts := make([]string, 0, len(terms))
	for _, m := range terms {
		parts = append(parts, monomialString(m, leafName))
	}
	return strings.Join(parts, " + ")
}

func monomialString(m boolalg.Monomial, leafName func(int) string) string {
	if m.IsAllOnesSentinel() {
		return "-1"
	}
	if m.IsZeroSentinel() {
		return ""
	}
	var names []string
	for id := 0; id < logicir.MaxLeafCeiling; id++ {
		if m&boolalg.Leaf(id) != 0 {
			names = append(names, leafName(id))
		}
	}
	return strings.Join(names, "*")
}
