package parse

import (
	"fmt"

	"github.com/expr-lang/expr/parser"

	"github.com/quill-lang/quill/debug"
	"github.com/quill-lang/quill/ids"
	"github.com/quill-lang/quill/ir"
)

type parseState struct {
	seed     int64
	noMacros bool
}

type ParseOption func(*parseState)

// Seed sets the id the first parsed node receives, minus one. The
// default seed is 0, so node ids start at 1.
func Seed(n int64) ParseOption {
	return func(ps *parseState) { ps.seed = n }
}

// NoMacros disables comprehension lowering. Macro-shaped builtins
// (all, any, none, one, filter, map) come out as plain calls instead.
func NoMacros(v bool) ParseOption {
	return func(ps *parseState) { ps.noMacros = v }
}

// Parse parses source text and lowers it to an expression tree. Node
// ids are assigned in preorder starting just above the seed, so
// parsing the same source with the same options is deterministic.
func Parse(src string, opts ...ParseOption) (*ir.Expr, error) {
	ps := &parseState{}
	for _, opt := range opts {
		opt(ps)
	}
	tree, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	lw := &lowerer{
		gen:      ids.NewMonotonic(ps.seed),
		noMacros: ps.noMacros,
	}
	e, err := lw.lower(tree.Node)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parse: %q -> root id %d, %d nodes", src, e.ID(), lw.count)
	}
	return e, nil
}
