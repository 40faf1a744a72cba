// Package bridge converts between the immutable (ir) and mutable (mir)
// expression trees. It is the seam between the parse/serialize world and the
// optimize world: a pass enters through ToMutable, edits in place, and exits
// through ToImmutable.
//
// Both directions are total structural recursions that preserve ids, scalar
// fields and collection order exactly, so for any well-formed tree t,
// ToImmutable(ToMutable(t)) is structurally equal to t. A kind neither
// direction recognizes is version skew; it fails fast with an error wrapping
// ir.ErrUnexpectedKind rather than silently dropping the node.
package bridge

import (
	"fmt"

	"github.com/quill-lang/quill/ir"
	"github.com/quill-lang/quill/mir"
)

// ToMutable converts an immutable tree into a freshly-allocated mutable one.
// The result shares no state with e.
func ToMutable(e *ir.Expr) (*mir.Expr, error) {
	if e == nil {
		return nil, nil
	}
	switch e.Kind() {
	case ir.NotSetKind:
		return mir.NewNotSet(e.ID()), nil
	case ir.ConstKind:
		return mir.NewConst(e.ID(), e.Const()), nil
	case ir.IdentKind:
		return mir.NewIdent(e.ID(), e.Ident()), nil
	case ir.SelectKind:
		sel := e.Select()
		operand, err := ToMutable(sel.Operand())
		if err != nil {
			return nil, err
		}
		if sel.IsTestOnly() {
			return mir.NewTestOnlySelect(e.ID(), operand, sel.Field()), nil
		}
		return mir.NewSelect(e.ID(), operand, sel.Field()), nil
	case ir.CallKind:
		call := e.Call()
		target, err := ToMutable(call.Target())
		if err != nil {
			return nil, err
		}
		args := make([]*mir.Expr, len(call.Args()))
		for i, a := range call.Args() {
			if args[i], err = ToMutable(a); err != nil {
				return nil, err
			}
		}
		if target != nil {
			return mir.NewMemberCall(e.ID(), target, call.Function(), args...), nil
		}
		return mir.NewCall(e.ID(), call.Function(), args...), nil
	case ir.ListKind:
		list := e.List()
		elems := make([]*mir.Expr, len(list.Elements()))
		var err error
		for i, el := range list.Elements() {
			if elems[i], err = ToMutable(el); err != nil {
				return nil, err
			}
		}
		optIdxs := append([]int32(nil), list.OptionalIndices()...)
		return mir.NewList(e.ID(), elems, optIdxs), nil
	case ir.StructKind:
		strct := e.Struct()
		entries := make([]*mir.StructEntry, len(strct.Entries()))
		for i, en := range strct.Entries() {
			value, err := ToMutable(en.Value())
			if err != nil {
				return nil, err
			}
			entries[i] = mir.NewStructEntry(en.ID(), en.Key(), value, en.IsOptional())
		}
		return mir.NewStruct(e.ID(), strct.MessageName(), entries), nil
	case ir.MapKind:
		mp := e.Map()
		entries := make([]*mir.MapEntry, len(mp.Entries()))
		for i, en := range mp.Entries() {
			key, err := ToMutable(en.Key())
			if err != nil {
				return nil, err
			}
			value, err := ToMutable(en.Value())
			if err != nil {
				return nil, err
			}
			entries[i] = mir.NewMapEntry(en.ID(), key, value, en.IsOptional())
		}
		return mir.NewMap(e.ID(), entries), nil
	case ir.ComprehensionKind:
		comp := e.Comprehension()
		iterRange, err := ToMutable(comp.IterRange())
		if err != nil {
			return nil, err
		}
		accuInit, err := ToMutable(comp.AccuInit())
		if err != nil {
			return nil, err
		}
		loopCond, err := ToMutable(comp.LoopCondition())
		if err != nil {
			return nil, err
		}
		loopStep, err := ToMutable(comp.LoopStep())
		if err != nil {
			return nil, err
		}
		result, err := ToMutable(comp.Result())
		if err != nil {
			return nil, err
		}
		return mir.NewComprehension(e.ID(),
			comp.IterVar(), iterRange,
			comp.AccuVar(), accuInit, loopCond, loopStep, result), nil
	}
	return nil, fmt.Errorf("bridge: to mutable: %w %d", ir.ErrUnexpectedKind, int(e.Kind()))
}

// ToImmutable converts a mutable tree into a freshly-built immutable one.
// The result shares no state with m; m may be discarded or edited further.
func ToImmutable(m *mir.Expr) (*ir.Expr, error) {
	if m == nil {
		return nil, nil
	}
	switch m.Kind() {
	case ir.NotSetKind:
		return ir.NewNotSet(m.ID()), nil
	case ir.ConstKind:
		return ir.NewConst(m.ID(), m.Const()), nil
	case ir.IdentKind:
		return ir.NewIdent(m.ID(), m.Ident()), nil
	case ir.SelectKind:
		sel := m.Select()
		operand, err := ToImmutable(sel.Operand())
		if err != nil {
			return nil, err
		}
		if sel.IsTestOnly() {
			return ir.NewTestOnlySelect(m.ID(), operand, sel.Field()), nil
		}
		return ir.NewSelect(m.ID(), operand, sel.Field()), nil
	case ir.CallKind:
		call := m.Call()
		target, err := ToImmutable(call.Target())
		if err != nil {
			return nil, err
		}
		args := make([]*ir.Expr, len(call.Args()))
		for i, a := range call.Args() {
			if args[i], err = ToImmutable(a); err != nil {
				return nil, err
			}
		}
		if target != nil {
			return ir.NewMemberCall(m.ID(), target, call.Function(), args...), nil
		}
		return ir.NewCall(m.ID(), call.Function(), args...), nil
	case ir.ListKind:
		list := m.List()
		elems := make([]*ir.Expr, len(list.Elements()))
		var err error
		for i, el := range list.Elements() {
			if elems[i], err = ToImmutable(el); err != nil {
				return nil, err
			}
		}
		optIdxs := append([]int32(nil), list.OptionalIndices()...)
		return ir.NewList(m.ID(), elems, optIdxs), nil
	case ir.StructKind:
		strct := m.Struct()
		entries := make([]*ir.StructEntry, len(strct.Entries()))
		for i, en := range strct.Entries() {
			value, err := ToImmutable(en.Value())
			if err != nil {
				return nil, err
			}
			entries[i] = ir.NewStructEntry(en.ID(), en.Key(), value, en.IsOptional())
		}
		return ir.NewStruct(m.ID(), strct.MessageName(), entries), nil
	case ir.MapKind:
		mp := m.Map()
		entries := make([]*ir.MapEntry, len(mp.Entries()))
		for i, en := range mp.Entries() {
			key, err := ToImmutable(en.Key())
			if err != nil {
				return nil, err
			}
			value, err := ToImmutable(en.Value())
			if err != nil {
				return nil, err
			}
			entries[i] = ir.NewMapEntry(en.ID(), key, value, en.IsOptional())
		}
		return ir.NewMap(m.ID(), entries), nil
	case ir.ComprehensionKind:
		comp := m.Comprehension()
		iterRange, err := ToImmutable(comp.IterRange())
		if err != nil {
			return nil, err
		}
		accuInit, err := ToImmutable(comp.AccuInit())
		if err != nil {
			return nil, err
		}
		loopCond, err := ToImmutable(comp.LoopCondition())
		if err != nil {
			return nil, err
		}
		loopStep, err := ToImmutable(comp.LoopStep())
		if err != nil {
			return nil, err
		}
		result, err := ToImmutable(comp.Result())
		if err != nil {
			return nil, err
		}
		return ir.NewComprehension(m.ID(),
			comp.IterVar(), iterRange,
			comp.AccuVar(), accuInit, loopCond, loopStep, result), nil
	}
	return nil, fmt.Errorf("bridge: to immutable: %w %d", ir.ErrUnexpectedKind, int(m.Kind()))
}
