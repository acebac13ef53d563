// cmd/clc/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"go/token"
	"os"
	"strings"

	"clc/internal/llvmir"
	"clc/internal/logicir"
	"clc/internal/simplifier"
	"clc/internal/ssair"
	"clc/internal/toyir"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/kr/pretty"
	"github.com/llir/llvm/ir"
	llvmconstant "github.com/llir/llvm/ir/constant"
	llvmtypes "github.com/llir/llvm/ir/types"
	"github.com/mattn/go-isatty"
	"golang.org/x/mod/semver"
	"golang.org/x/tools/go/ssa"
)

// Version is the CLI's own version string, validated as semver before it
// is ever printed — see showVersion.
const Version = "v0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run implements the whole CLI and returns a process exit code. It is
// split out of main so cmd/clc's testscript-driven tests can drive it
// in-process via testscript.RunMain instead of shelling out to a built
// binary.
func run(args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "version", "--version", "-v":
			return showVersion()
		case "help", "--help", "-h":
			showUsage()
			return 0
		}
	}
	return runSimplify(args)
}

func showVersion() int {
	if !semver.IsValid(Version) {
		fmt.Fprintf(os.Stderr, "clc: internal error: version string %q is not valid semver\n", Version)
		return 1
	}
	fmt.Printf("clc %s\n", Version)
	return 0
}

func showUsage() {
	fmt.Println(`usage:
  clc -expr "a & b ^ c" [-clc-max-logic-leafs N] [-clc-max-depth N] [-debug] [-pretty]
  clc -batch "a ^ a;a & b;a | ~a"
  clc -llvm-demo | -ssa-demo
  clc version`)
}

func runSimplify(args []string) int {
	fs := flag.NewFlagSet("clc", flag.ContinueOnError)
	maxLeaves := fs.Int("clc-max-logic-leafs", 8, "maximum distinct opaque leaves before aborting")
	maxDepth := fs.Int("clc-max-depth", 8, "maximum recursion depth before aborting")
	expr := fs.String("expr", "", `expression to simplify, e.g. "a & b ^ c"`)
	batch := fs.String("batch", "", `semicolon-separated independent expressions, simplified concurrently`)
	debug := fs.Bool("debug", false, "print the and-chain debug trace to stderr")
	prettyTree := fs.Bool("pretty", false, "pretty-print the parsed expression tree before simplifying")
	llvmDemo := fs.Bool("llvm-demo", false, "simplify a fixed `a & ~a` expression built directly out of llir/llvm IR")
	ssaDemo := fs.Bool("ssa-demo", false, "simplify a fixed `a ^ a` expression built directly out of go/ssa values")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := logicir.Config{MaxLeaves: *maxLeaves, MaxDepth: *maxDepth}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "clc:", err)
		return 1
	}

	var dbg *simplifier.Debugger
	if *debug {
		dbg = simplifier.NewDebugger(os.Stderr, false)
	}
	color := isatty.IsTerminal(os.Stdout.Fd())

	switch {
	case *llvmDemo:
		return runLLVMDemo(cfg, dbg, color)
	case *ssaDemo:
		return runSSADemo(cfg, dbg, color)
	case *batch != "":
		return runBatch(*batch, cfg, dbg, color)
	case *expr == "":
		showUsage()
		return 2
	}

	root, idents, err := toyir.Parse(*expr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "clc:", err)
		return 1
	}

	if *prettyTree {
		fmt.Fprintf(os.Stderr, "%# v\n", pretty.Formatter(root))
	}

	sessionID := uuid.New()
	replacement, changed := simplifier.Simplify(toyir.Host{}, cfg, root, dbg)
	if !changed {
		printLine(color, "no simplification found for %q", *expr)
	} else {
		printLine(color, "%s  -->  %s", root.Name(), replacement.Name())
	}

	printStats(sessionID, len(idents))
	return 0
}

// runBatch parses each semicolon-separated expression into its own root
// and simplifies the whole batch concurrently via simplifier.ParallelSimplify,
// the CLI's entry point into the disjoint-root parallelism spec.md §5
// allows — one Builder per root, fanned out across golang.org/x/sync/errgroup.
func runBatch(batch string, cfg logicir.Config, dbg *simplifier.Debugger, color bool) int {
	parts := strings.Split(batch, ";")
	roots := make([]logicir.Value, 0, len(parts))
	exprs := make([]string, 0, len(parts))
	leafCount := 0
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		root, idents, err := toyir.Parse(p)
		if err != nil {
			fmt.Fprintln(os.Stderr, "clc:", err)
			return 1
		}
		roots = append(roots, root)
		exprs = append(exprs, p)
		leafCount += len(idents)
	}
	if len(roots) == 0 {
		showUsage()
		return 2
	}

	sessionID := uuid.New()
	results, err := simplifier.ParallelSimplify(context.Background(), toyir.Host{}, cfg, roots, dbg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "clc:", err)
		return 1
	}

	for i, r := range results {
		if !r.Changed {
			printLine(color, "%s: no simplification found", exprs[i])
			continue
		}
		printLine(color, "%s  -->  %s", exprs[i], r.Replacement.Name())
	}
	printStats(sessionID, leafCount)
	return 0
}

// runLLVMDemo exercises internal/llvmir against a fixed `a & ~a`
// expression, so the CLI itself — not just llvmir's own tests — drives
// the simplifier over real LLVM IR values.
func runLLVMDemo(cfg logicir.Config, dbg *simplifier.Debugger, color bool) int {
	h := llvmir.NewHost()
	aLeaf := &ir.InstAdd{X: llvmconstant.NewInt(llvmtypes.I8, 1), Y: llvmconstant.NewInt(llvmtypes.I8, 2)}
	allOnes := llvmconstant.NewInt(llvmtypes.I8, -1)
	notA := ir.NewXor(aLeaf, allOnes)
	root := ir.NewAnd(aLeaf, notA)

	sessionID := uuid.New()
	wrappedRoot := h.Wrap(root)
	replacement, changed := simplifier.Simplify(h, cfg, wrappedRoot, dbg)
	if !changed {
		printLine(color, "no simplification found for the llvm-demo expression (a & ~a)")
	} else {
		printLine(color, "a & ~a  -->  %s", describeConst(h, replacement))
	}
	printStats(sessionID, 1)
	return 0
}

// runSSADemo exercises internal/ssair against a fixed `a ^ a` expression
// built directly out of go/ssa values.
func runSSADemo(cfg logicir.Config, dbg *simplifier.Debugger, color bool) int {
	h := ssair.NewHost()
	aLeaf := &ssa.Parameter{}
	root := &ssa.BinOp{Op: token.XOR, X: aLeaf, Y: aLeaf}

	sessionID := uuid.New()
	wrappedRoot := h.Wrap(root)
	replacement, changed := simplifier.Simplify(h, cfg, wrappedRoot, dbg)
	if !changed {
		printLine(color, "no simplification found for the ssa-demo expression (a ^ a)")
	} else {
		printLine(color, "a ^ a  -->  %s", describeConst(h, replacement))
	}
	printStats(sessionID, 1)
	return 0
}

// describeConst labels a demo's replacement value as the zero constant,
// the all-ones constant, or an unresolved leaf, for any host exposing
// logicir.ConstClassifier.
func describeConst(h logicir.ConstClassifier, v logicir.Value) string {
	switch {
	case h.IsZero(v):
		return "0"
	case h.IsAllOnes(v):
		return "-1"
	default:
		return "<leaf>"
	}
}

func printStats(sessionID uuid.UUID, leafCount int) {
	fmt.Printf("session %s: leaves discovered=%s, total simplifications this process=%s\n",
		sessionID,
		humanize.Comma(int64(leafCount)),
		humanize.Comma(simplifier.NumComplexLogicalOpsSimplified.Load()))
}

func printLine(color bool, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if color {
		fmt.Printf("\x1b[32m%s\x1b[0m\n", msg)
		return
	}
	fmt.Println(msg)
}
