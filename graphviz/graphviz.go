// Package graphviz implements the DOT exporter named in spec.md §6 ("to
// graph viewers"): a block renderer showing each block's instruction
// text as a plain left-justified ("\l"-separated) label, with CFG edges for
// successors, and a dummy header node carrying the function's signature.
//
// Grounded on original_source/crates/ir/src/graphviz/block.rs's
// block-table layout.
package graphviz

import (
	"fmt"
	"strings"

	"github.com/sonatina-go/sonatina/ir/blockid"
	"github.com/sonatina-go/sonatina/ir/cfg"
	"github.com/sonatina-go/sonatina/ir/function"
	"github.com/sonatina-go/sonatina/irwriter"
)

// Export renders fn and its computed CFG as a DOT digraph.
func Export(fn *function.Function, g *cfg.ControlFlowGraph) string {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", fn.Name)
	b.WriteString("  node [shape=plaintext];\n")
	fmt.Fprintf(&b, "  sig [label=%s];\n", quote(signatureText(fn)))

	for _, block := range fn.Layout.IterBlock() {
		fmt.Fprintf(&b, "  %s [label=%s];\n", block, quote(blockLabel(fn, block)))
	}
	if entry, ok := fn.Layout.EntryBlock(); ok {
		fmt.Fprintf(&b, "  sig -> %s;\n", entry)
	}
	for _, block := range fn.Layout.IterBlock() {
		for _, succ := range g.SuccsOf(block) {
			fmt.Fprintf(&b, "  %s -> %s;\n", block, succ)
		}
	}
	b.WriteString("}\n")
	return b.String()
}

func signatureText(fn *function.Function) string {
	args := make([]string, len(fn.Sig.Args))
	for i := range fn.Sig.Args {
		args[i] = irwriter.ValueText(fn.ArgValues[i])
	}
	return fmt.Sprintf("%s(%s)", fn.Name, strings.Join(args, ", "))
}

func blockLabel(fn *function.Function, id blockid.BlockId) string {
	var lines []string
	for _, insn := range fn.Layout.IterInst(id) {
		text := irwriter.InstText(fn.DFG, insn)
		if v, ok := fn.DFG.InstResult(insn); ok {
			text = fmt.Sprintf("%s = %s", irwriter.ValueText(v), text)
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\\l") + "\\l"
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
