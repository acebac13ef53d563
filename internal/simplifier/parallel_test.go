package simplifier

import (
	"context"
	"testing"

	"clc/internal/logicir"
	"clc/internal/toyir"
)

// TestParallelSimplifyDisjointRoots fans a batch of independent expressions
// out across ParallelSimplify's errgroup and checks each root's outcome
// lands in the matching slot, in the order the roots were given.
func TestParallelSimplifyDisjointRoots(t *testing.T) {
	exprs := []string{"a ^ a", "a & ~a", "a", "a | ~a"}
	roots := make([]logicir.Value, len(exprs))
	for i, e := range exprs {
		root, _, err := toyir.Parse(e)
		if err != nil {
			t.Fatalf("Parse(%q): %v", e, err)
		}
		roots[i] = root
	}

	results, err := ParallelSimplify(context.Background(), toyir.Host{}, logicir.DefaultConfig(), roots, nil)
	if err != nil {
		t.Fatalf("ParallelSimplify: %v", err)
	}
	if len(results) != len(exprs) {
		t.Fatalf("expected %d results, got %d", len(exprs), len(results))
	}

	wantZero := []bool{true, true, false, false}
	wantChanged := []bool{true, true, false, true}
	for i, r := range results {
		if r.Root != roots[i] {
			t.Fatalf("result %d: root mismatch, results must stay aligned to their input index", i)
		}
		if r.Changed != wantChanged[i] {
			t.Fatalf("result %d (%q): changed=%v, want %v", i, exprs[i], r.Changed, wantChanged[i])
		}
		if wantChanged[i] && wantZero[i] && !isZero(r.Replacement) {
			t.Fatalf("result %d (%q): expected replacement to be zero, got %v", i, exprs[i], r.Replacement)
		}
		if exprs[i] == "a | ~a" && r.Changed && !isAllOnes(r.Replacement) {
			t.Fatalf("result %d (%q): expected replacement to be all-ones, got %v", i, exprs[i], r.Replacement)
		}
	}
}

// TestParallelSimplifyCancellation checks that a pre-cancelled context stops
// ParallelSimplify from returning a successful batch.
func TestParallelSimplifyCancellation(t *testing.T) {
	root, _, err := toyir.Parse("a ^ a")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = ParallelSimplify(ctx, toyir.Host{}, logicir.DefaultConfig(), []logicir.Value{root}, nil)
	if err == nil {
		t.Fatalf("expected an error from a pre-cancelled context")
	}
}
