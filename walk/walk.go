// Package walk provides preorder traversal over immutable expression trees.
//
// Walk visits a node, dispatches to the visitor hook for its kind, then
// recurses into children left to right. Embed Base and override only the
// hooks of interest; everything else is a no-op and the full tree is still
// covered. After each call argument and each comprehension slot, a
// positional hook fires so a rewriting visitor can address children by
// position without re-deriving which slot it was in.
package walk

import (
	"fmt"

	"github.com/quill-lang/quill/ir"
)

// Slot names a comprehension child position.
type Slot int

const (
	IterRangeSlot Slot = iota
	AccuInitSlot
	LoopConditionSlot
	LoopStepSlot
	ResultSlot
)

func (s Slot) String() string {
	switch s {
	case IterRangeSlot:
		return "iter_range"
	case AccuInitSlot:
		return "accu_init"
	case LoopConditionSlot:
		return "loop_condition"
	case LoopStepSlot:
		return "loop_step"
	case ResultSlot:
		return "result"
	}
	return "<unknown slot>"
}

// Visitor receives per-kind hooks during a Walk. Each kind hook fires before
// the node's children are visited. VisitCallArg fires after each call
// argument with its index; VisitComprehensionSlot fires after each
// comprehension child with its slot.
type Visitor interface {
	VisitNotSet(e *ir.Expr)
	VisitConst(e *ir.Expr)
	VisitIdent(e *ir.Expr)
	VisitSelect(e *ir.Expr)
	VisitCall(e *ir.Expr)
	VisitList(e *ir.Expr)
	VisitStruct(e *ir.Expr)
	VisitMap(e *ir.Expr)
	VisitComprehension(e *ir.Expr)
	VisitCallArg(call, arg *ir.Expr, index int)
	VisitComprehensionSlot(comp, child *ir.Expr, slot Slot)
}

// Base is a Visitor whose hooks all do nothing. Embed it to override only
// the hooks you care about.
type Base struct{}

func (Base) VisitNotSet(*ir.Expr)                         {}
func (Base) VisitConst(*ir.Expr)                          {}
func (Base) VisitIdent(*ir.Expr)                          {}
func (Base) VisitSelect(*ir.Expr)                         {}
func (Base) VisitCall(*ir.Expr)                           {}
func (Base) VisitList(*ir.Expr)                           {}
func (Base) VisitStruct(*ir.Expr)                         {}
func (Base) VisitMap(*ir.Expr)                            {}
func (Base) VisitComprehension(*ir.Expr)                  {}
func (Base) VisitCallArg(_, _ *ir.Expr, _ int)            {}
func (Base) VisitComprehensionSlot(_, _ *ir.Expr, _ Slot) {}

// Walk traverses e in preorder, invoking v's hooks. Nil children (an absent
// call target) are skipped. It panics on a kind it does not recognize; all
// kinds defined by package ir are recognized.
func Walk(e *ir.Expr, v Visitor) {
	if e == nil {
		return
	}
	switch e.Kind() {
	case ir.NotSetKind:
		v.VisitNotSet(e)
	case ir.ConstKind:
		v.VisitConst(e)
	case ir.IdentKind:
		v.VisitIdent(e)
	case ir.SelectKind:
		v.VisitSelect(e)
		Walk(e.Select().Operand(), v)
	case ir.CallKind:
		v.VisitCall(e)
		call := e.Call()
		Walk(call.Target(), v)
		for i, arg := range call.Args() {
			Walk(arg, v)
			v.VisitCallArg(e, arg, i)
		}
	case ir.ListKind:
		v.VisitList(e)
		for _, el := range e.List().Elements() {
			Walk(el, v)
		}
	case ir.StructKind:
		v.VisitStruct(e)
		for _, en := range e.Struct().Entries() {
			Walk(en.Value(), v)
		}
	case ir.MapKind:
		v.VisitMap(e)
		for _, en := range e.Map().Entries() {
			Walk(en.Key(), v)
			Walk(en.Value(), v)
		}
	case ir.ComprehensionKind:
		v.VisitComprehension(e)
		comp := e.Comprehension()
		for _, sc := range []struct {
			child *ir.Expr
			slot  Slot
		}{
			{comp.IterRange(), IterRangeSlot},
			{comp.AccuInit(), AccuInitSlot},
			{comp.LoopCondition(), LoopConditionSlot},
			{comp.LoopStep(), LoopStepSlot},
			{comp.Result(), ResultSlot},
		} {
			Walk(sc.child, v)
			v.VisitComprehensionSlot(e, sc.child, sc.slot)
		}
	default:
		panic(fmt.Sprintf("walk: %v %d", ir.ErrUnexpectedKind, int(e.Kind())))
	}
}

// MaxID returns the largest node or entry id in the tree, or 0 for an empty
// tree. Use it to seed an id generator when appending to an existing tree.
func MaxID(e *ir.Expr) int64 {
	m := &maxVisitor{}
	Walk(e, m)
	return m.max
}

type maxVisitor struct {
	Base
	max int64
}

func (m *maxVisitor) note(id int64) {
	if id > m.max {
		m.max = id
	}
}

func (m *maxVisitor) VisitNotSet(e *ir.Expr)        { m.note(e.ID()) }
func (m *maxVisitor) VisitConst(e *ir.Expr)         { m.note(e.ID()) }
func (m *maxVisitor) VisitIdent(e *ir.Expr)         { m.note(e.ID()) }
func (m *maxVisitor) VisitSelect(e *ir.Expr)        { m.note(e.ID()) }
func (m *maxVisitor) VisitCall(e *ir.Expr)          { m.note(e.ID()) }
func (m *maxVisitor) VisitList(e *ir.Expr)          { m.note(e.ID()) }
func (m *maxVisitor) VisitComprehension(e *ir.Expr) { m.note(e.ID()) }

func (m *maxVisitor) VisitStruct(e *ir.Expr) {
	m.note(e.ID())
	for _, en := range e.Struct().Entries() {
		m.note(en.ID())
	}
}

func (m *maxVisitor) VisitMap(e *ir.Expr) {
	m.note(e.ID())
	for _, en := range e.Map().Entries() {
		m.note(en.ID())
	}
}
