package parse

import (
	"fmt"

	"github.com/quill-lang/quill/debug"
	"github.com/quill-lang/quill/ids"
	"github.com/quill-lang/quill/ir"
)

// Splice returns host with the node carrying id atID replaced by repl.
// The replacement subtree is renumbered through gen so its ids cannot
// collide with host's; host nodes outside the replaced subtree keep
// their ids and are shared with the result. The replaced subtree's old
// ids simply disappear.
func Splice(host *ir.Expr, atID int64, repl *ir.Expr, gen *ids.Stable) (*ir.Expr, error) {
	res, found := splice(host, atID, func() *ir.Expr { return Renumber(repl, gen) })
	if !found {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchID, atID)
	}
	if debug.Splice() {
		debug.Logf("splice: replaced id=%d in tree rooted at id=%d", atID, host.ID())
	}
	return res, nil
}

func splice(e *ir.Expr, atID int64, repl func() *ir.Expr) (*ir.Expr, bool) {
	if e == nil {
		return nil, false
	}
	if e.ID() == atID {
		return repl(), true
	}
	switch e.Kind() {
	case ir.NotSetKind, ir.ConstKind, ir.IdentKind:
		return e, false
	case ir.SelectKind:
		s := e.Select()
		operand, found := splice(s.Operand(), atID, repl)
		if !found {
			return e, false
		}
		if s.IsTestOnly() {
			return ir.NewTestOnlySelect(e.ID(), operand, s.Field()), true
		}
		return ir.NewSelect(e.ID(), operand, s.Field()), true
	case ir.CallKind:
		c := e.Call()
		target, found := splice(c.Target(), atID, repl)
		args, argsFound := spliceAll(c.Args(), atID, repl)
		if !found && !argsFound {
			return e, false
		}
		if target != nil {
			return ir.NewMemberCall(e.ID(), target, c.Function(), args...), true
		}
		return ir.NewCall(e.ID(), c.Function(), args...), true
	case ir.ListKind:
		l := e.List()
		elems, found := spliceAll(l.Elements(), atID, repl)
		if !found {
			return e, false
		}
		return ir.NewList(e.ID(), elems, l.OptionalIndices()), true
	case ir.StructKind:
		s := e.Struct()
		found := false
		entries := make([]*ir.StructEntry, len(s.Entries()))
		for i, ent := range s.Entries() {
			value, f := splice(ent.Value(), atID, repl)
			if f {
				found = true
				entries[i] = ir.NewStructEntry(ent.ID(), ent.Key(), value, ent.IsOptional())
			} else {
				entries[i] = ent
			}
		}
		if !found {
			return e, false
		}
		return ir.NewStruct(e.ID(), s.MessageName(), entries), true
	case ir.MapKind:
		m := e.Map()
		found := false
		entries := make([]*ir.MapEntry, len(m.Entries()))
		for i, ent := range m.Entries() {
			key, kf := splice(ent.Key(), atID, repl)
			value, vf := splice(ent.Value(), atID, repl)
			if kf || vf {
				found = true
				entries[i] = ir.NewMapEntry(ent.ID(), key, value, ent.IsOptional())
			} else {
				entries[i] = ent
			}
		}
		if !found {
			return e, false
		}
		return ir.NewMap(e.ID(), entries), true
	case ir.ComprehensionKind:
		c := e.Comprehension()
		rng, f1 := splice(c.IterRange(), atID, repl)
		init, f2 := splice(c.AccuInit(), atID, repl)
		cond, f3 := splice(c.LoopCondition(), atID, repl)
		step, f4 := splice(c.LoopStep(), atID, repl)
		result, f5 := splice(c.Result(), atID, repl)
		if !(f1 || f2 || f3 || f4 || f5) {
			return e, false
		}
		return ir.NewComprehension(e.ID(),
			c.IterVar(), rng, c.AccuVar(), init, cond, step, result), true
	}
	return e, false
}

func spliceAll(es []*ir.Expr, atID int64, repl func() *ir.Expr) ([]*ir.Expr, bool) {
	found := false
	res := make([]*ir.Expr, len(es))
	for i, e := range es {
		r, f := splice(e, atID, repl)
		res[i] = r
		found = found || f
	}
	return res, found
}

// Renumber rebuilds e with every node and entry id passed through gen.
// Ids that were already renumbered map to the same output, so
// renumbering two overlapping subtrees with one generator keeps their
// shared ids aligned.
func Renumber(e *ir.Expr, gen *ids.Stable) *ir.Expr {
	if e == nil {
		return nil
	}
	id := gen.Renumber(e.ID())
	switch e.Kind() {
	case ir.NotSetKind:
		return ir.NewNotSet(id)
	case ir.ConstKind:
		return ir.NewConst(id, e.Const())
	case ir.IdentKind:
		return ir.NewIdent(id, e.Ident())
	case ir.SelectKind:
		s := e.Select()
		if s.IsTestOnly() {
			return ir.NewTestOnlySelect(id, Renumber(s.Operand(), gen), s.Field())
		}
		return ir.NewSelect(id, Renumber(s.Operand(), gen), s.Field())
	case ir.CallKind:
		c := e.Call()
		args := make([]*ir.Expr, len(c.Args()))
		for i, a := range c.Args() {
			args[i] = Renumber(a, gen)
		}
		if c.Target() != nil {
			return ir.NewMemberCall(id, Renumber(c.Target(), gen), c.Function(), args...)
		}
		return ir.NewCall(id, c.Function(), args...)
	case ir.ListKind:
		l := e.List()
		elems := make([]*ir.Expr, len(l.Elements()))
		for i, el := range l.Elements() {
			elems[i] = Renumber(el, gen)
		}
		return ir.NewList(id, elems, l.OptionalIndices())
	case ir.StructKind:
		s := e.Struct()
		entries := make([]*ir.StructEntry, len(s.Entries()))
		for i, ent := range s.Entries() {
			entries[i] = ir.NewStructEntry(
				gen.Renumber(ent.ID()), ent.Key(),
				Renumber(ent.Value(), gen), ent.IsOptional())
		}
		return ir.NewStruct(id, s.MessageName(), entries)
	case ir.MapKind:
		m := e.Map()
		entries := make([]*ir.MapEntry, len(m.Entries()))
		for i, ent := range m.Entries() {
			entries[i] = ir.NewMapEntry(
				gen.Renumber(ent.ID()),
				Renumber(ent.Key(), gen),
				Renumber(ent.Value(), gen), ent.IsOptional())
		}
		return ir.NewMap(id, entries)
	case ir.ComprehensionKind:
		c := e.Comprehension()
		return ir.NewComprehension(id,
			c.IterVar(), Renumber(c.IterRange(), gen),
			c.AccuVar(), Renumber(c.AccuInit(), gen),
			Renumber(c.LoopCondition(), gen),
			Renumber(c.LoopStep(), gen),
			Renumber(c.Result(), gen))
	}
	panic(fmt.Sprintf("parse: Renumber on unrecognized kind %d", int(e.Kind())))
}
