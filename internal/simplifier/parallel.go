package simplifier

import (
	"context"

	"clc/internal/logicir"

	"golang.org/x/sync/errgroup"
)

// Result is one root's outcome from ParallelSimplify.
type Result struct {
	Root        logicir.Value
	Replacement logicir.Value
	Changed     bool
}

// ParallelSimplify runs Simplify independently over a batch of disjoint
// roots, one Builder per root, fanned out across an errgroup.Group. This is
// the concurrency model spec.md §5 allows ("multiple builders may run in
// parallel on disjoint IR") made concrete: host must tolerate concurrent
// read-only calls to its classifier/synthesizer methods, and the roots
// themselves must not share mutable state the simplifier would race on.
//
// ctx cancellation stops scheduling of not-yet-started roots; it cannot
// interrupt a Simplify call already in flight, since the core performs no
// blocking operation to check it against (spec.md §5: "no operation
// suspends or blocks").
func ParallelSimplify(ctx context.Context, host logicir.Host, cfg logicir.Config, roots []logicir.Value, debug *Debugger) ([]Result, error) {
	results := make([]Result, len(roots))
	g, gctx := errgroup.WithContext(ctx)
	for i, root := range roots {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			replacement, changed := Simplify(host, cfg, root, debug)
			results[i] = Result{Root: root, Replacement: replacement, Changed: changed}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
