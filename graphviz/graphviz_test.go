package graphviz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sonatina-go/sonatina/ir/builder"
	"github.com/sonatina-go/sonatina/ir/cfg"
	"github.com/sonatina-go/sonatina/ir/function"
	"github.com/sonatina-go/sonatina/ir/gvar"
	"github.com/sonatina-go/sonatina/ir/inst/controlflow"
	"github.com/sonatina-go/sonatina/ir/types"
	"github.com/sonatina-go/sonatina/graphviz"
	"github.com/sonatina-go/sonatina/isa"
)

func TestExportContainsNodesAndEdges(t *testing.T) {
	mb := builder.NewModuleBuilder(isa.Amd64())
	sig := function.NewSignature("branch_fn", gvar.Public)
	sig.AppendArg(types.TI1)
	ref := mb.DeclareFunction(sig)

	fb := mb.FuncBuilder(ref)
	entry := fb.AppendBlock()
	fn := fb.Function()
	thenB := fb.AppendBlock()

	fb.SwitchToBlock(entry)
	fb.AppendInst(&controlflow.Jump{Dest: thenB}, nil)
	fb.SwitchToBlock(thenB)
	fb.AppendInst(&controlflow.Return{HasVal: false}, nil)

	g := cfg.New()
	g.Compute(fn)

	dot := graphviz.Export(fn, g)
	assert.Contains(t, dot, "digraph branch_fn {")
	assert.Contains(t, dot, "sig -> "+entry.String()+";")
	assert.Contains(t, dot, entry.String()+" -> "+thenB.String()+";")
	assert.Contains(t, dot, "jump")
	assert.Contains(t, dot, "ret")
}
