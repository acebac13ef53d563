package simplifier

import "sync/atomic"

// NumComplexLogicalOpsSimplified counts successful rewrites across every
// Simplify call in the process. It is safe to read and is incremented
// atomically so independent Builders running in parallel (spec.md §5) do
// not race on it.
var NumComplexLogicalOpsSimplified atomic.Int64
