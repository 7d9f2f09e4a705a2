// Package main implements the filecheck harness: run a chain of transform
// passes over every built-in fixture function (see fixtures.go) and
// compare the resulting textual IR against that fixture's expected text,
// in the spirit of LLVM's FileCheck. No fixture files are read from disk.
//
// Grounded on original_source/crates/filecheck/src/main.rs's
// run-attach-run-print-exit(101) shape: a runner accumulates one or more
// transforms, runs them in sequence, and reports a nonzero exit if any
// fixture's actual output didn't match its expected block.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sonatina-go/sonatina/ir/function"
	"github.com/sonatina-go/sonatina/irwriter"
	"github.com/sonatina-go/sonatina/pkg/logger"
	"github.com/sonatina-go/sonatina/xform"
)

// Fixture is one named function under test and the text its transform
// chain is expected to produce.
type Fixture struct {
	Name     string
	Build    func() *function.Function
	Expected string
}

// Runner accumulates transforms and fixtures, matching the Rust
// FileCheckRunner's attach/run/print_results/is_ok lifecycle.
type Runner struct {
	fixtures   []Fixture
	transforms []xform.Pass
	failures   []string
}

// NewRunner starts a runner seeded with fixtures and an initial transform.
func NewRunner(fixtures []Fixture, first xform.Pass) *Runner {
	return &Runner{fixtures: fixtures, transforms: []xform.Pass{first}}
}

// AttachTransformer appends another transform to the chain run against
// every fixture.
func (r *Runner) AttachTransformer(p xform.Pass) {
	r.transforms = append(r.transforms, p)
}

// Run applies the full transform chain to every fixture and records any
// mismatch against its expected text. Each call recomputes results from
// scratch, so a later Run (after AttachTransformer extends the chain)
// isn't haunted by failures an earlier, shorter chain recorded.
func (r *Runner) Run() {
	r.failures = nil
	for _, fx := range r.fixtures {
		fn := fx.Build()
		xform.RunToFixpoint(fn, r.transforms...)
		got := irwriter.FunctionText(fn)
		if strings.TrimSpace(got) != strings.TrimSpace(fx.Expected) {
			r.failures = append(r.failures, fmt.Sprintf(
				"%s: mismatch\n  expected: %q\n  actual:   %q", fx.Name, fx.Expected, got))
		}
	}
}

// PrintResults writes a pass/fail line per fixture plus any failure detail.
func (r *Runner) PrintResults() {
	fmt.Printf("ran %d fixture(s), %d failure(s)\n", len(r.fixtures), len(r.failures))
	for _, f := range r.failures {
		fmt.Println(f)
	}
}

// IsOk reports whether every fixture matched.
func (r *Runner) IsOk() bool { return len(r.failures) == 0 }

func main() {
	logger.InitDev()

	runner := NewRunner(builtinFixtures(), xform.Peephole)
	runner.Run()

	runner.AttachTransformer(xform.ADCE)
	runner.Run()

	runner.PrintResults()
	if !runner.IsOk() {
		os.Exit(101)
	}
}
