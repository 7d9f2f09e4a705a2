// Package main implements the sonatina CLI binary.
//
// Philosophy: fast, minimal, elegant — inspired by Go's compiler
// architecture, grounded on the teacher's cmd/typthon/main.go shape
// (init logging, parse a flat subcommand, dispatch).
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sonatina-go/sonatina/graphviz"
	"github.com/sonatina-go/sonatina/ir/builder"
	"github.com/sonatina-go/sonatina/ir/cfg"
	"github.com/sonatina-go/sonatina/ir/function"
	"github.com/sonatina-go/sonatina/ir/gvar"
	"github.com/sonatina-go/sonatina/ir/inst/arith"
	"github.com/sonatina-go/sonatina/ir/inst/controlflow"
	"github.com/sonatina-go/sonatina/ir/types"
	"github.com/sonatina-go/sonatina/irwriter"
	"github.com/sonatina-go/sonatina/isa"
	"github.com/sonatina-go/sonatina/pkg/logger"
	"github.com/sonatina-go/sonatina/xform"
)

const version = "0.1.0"

func main() {
	logger.InitDev()
	logger.LogCompilerStart(os.Args)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	start := time.Now()
	cmd := os.Args[1]
	var err error
	switch cmd {
	case "demo":
		err = demo(os.Args[2:])
	case "version":
		fmt.Printf("sonatina version %s\n", version)
	case "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
	if err != nil {
		logger.LogToolError(cmd, err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.LogCompilerComplete(true, time.Since(start).String())
}

func usage() {
	fmt.Println(`sonatina - a target-agnostic SSA IR core

Usage:
    sonatina demo [-isa amd64|arm64|riscv64|evm] [-opt] [-dot]
    sonatina version
    sonatina help

Options:
    -isa <name>    Target ISA for the demo module (default: amd64)
    -opt           Run the peephole + ADCE passes before printing
    -dot           Emit a graphviz DOT export instead of textual IR`)
}

// demo builds a small module — one function f(i32, i32) -> i32 computing
// v2 = add v0, v1; ret v2 — against the chosen target, optionally runs
// xform passes, and prints either its textual form or a DOT export.
func demo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	isaName := fs.String("isa", "amd64", "target isa")
	runOpt := fs.Bool("opt", false, "run xform passes")
	dot := fs.Bool("dot", false, "emit graphviz dot instead of text")
	if err := fs.Parse(args); err != nil {
		return err
	}

	target, err := isa.Resolve(*isaName)
	if err != nil {
		return err
	}

	mb := builder.NewModuleBuilder(target)
	sig := function.NewSignature("f", gvar.Public)
	sig.AppendArg(types.TI32)
	sig.AppendArg(types.TI32)
	sig.AppendReturn(types.TI32)
	ref := mb.DeclareFunction(sig)
	logger.LogFunctionDeclare(sig.Name, len(sig.Args), len(sig.Rets))

	fb := mb.FuncBuilder(ref)
	fb.AppendBlock()
	fn := fb.Function()

	resTy := types.TI32
	addInsn := fb.AppendInst(&arith.Add{BinaryOp: arith.BinaryOp{
		Lhs: fn.ArgValues[0],
		Rhs: fn.ArgValues[1],
	}}, &resTy)
	sum, _ := fn.DFG.InstResult(addInsn)
	fb.AppendInst(&controlflow.Return{Value: sum, HasVal: true}, nil)

	mod := mb.Build()
	logger.LogModuleBuild(target.Triple(), len(mod.IterFunctions()))

	if *runOpt {
		changed := false
		before := irwriter.FunctionText(fn)
		xform.RunToFixpoint(fn, xform.Peephole, xform.ADCE)
		changed = irwriter.FunctionText(fn) != before
		logger.LogPassRun("peephole+adce", fn.Name, changed)
	}

	if *dot {
		g := cfg.New()
		g.Compute(fn)
		logger.LogCfgCompute(fn.Name, len(fn.Layout.IterBlock()), len(g.PostOrder()))
		fmt.Print(graphviz.Export(fn, g))
		return nil
	}

	fmt.Println(irwriter.FunctionText(fn))
	return nil
}
