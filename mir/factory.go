package mir

import "github.com/quill-lang/quill/ir"

// NewNotSet returns a mutable placeholder node.
func NewNotSet(id int64) *Expr {
	return &Expr{id: id, kind: ir.NotSetKind}
}

// NewConst returns a mutable constant node.
func NewConst(id int64, c ir.Constant) *Expr {
	e := NewNotSet(id)
	e.SetConst(c)
	return e
}

// NewIdent returns a mutable identifier node.
func NewIdent(id int64, name string) *Expr {
	e := NewNotSet(id)
	e.SetIdent(name)
	return e
}

// NewSelect returns a mutable field-access node.
func NewSelect(id int64, operand *Expr, field string) *Expr {
	e := NewNotSet(id)
	e.SetSelect(operand, field, false)
	return e
}

// NewTestOnlySelect returns a mutable presence-probe node.
func NewTestOnlySelect(id int64, operand *Expr, field string) *Expr {
	e := NewNotSet(id)
	e.SetSelect(operand, field, true)
	return e
}

// NewCall returns a mutable free-function call node.
func NewCall(id int64, function string, args ...*Expr) *Expr {
	e := NewNotSet(id)
	e.SetCall(nil, function, args...)
	return e
}

// NewMemberCall returns a mutable method-style call node.
func NewMemberCall(id int64, target *Expr, function string, args ...*Expr) *Expr {
	e := NewNotSet(id)
	e.SetCall(target, function, args...)
	return e
}

// NewList returns a mutable list node.
func NewList(id int64, elems []*Expr, optionalIndices []int32) *Expr {
	e := NewNotSet(id)
	e.SetList(elems, optionalIndices)
	return e
}

// NewStruct returns a mutable message-construction node.
func NewStruct(id int64, messageName string, entries []*StructEntry) *Expr {
	e := NewNotSet(id)
	e.SetStruct(messageName, entries)
	return e
}

// NewStructEntry returns one mutable field initializer.
func NewStructEntry(id int64, key string, value *Expr, optional bool) *StructEntry {
	return &StructEntry{id: id, key: key, value: value, optional: optional}
}

// NewMap returns a mutable map-literal node.
func NewMap(id int64, entries []*MapEntry) *Expr {
	e := NewNotSet(id)
	e.SetMap(entries)
	return e
}

// NewMapEntry returns one mutable key-value pair.
func NewMapEntry(id int64, key, value *Expr, optional bool) *MapEntry {
	return &MapEntry{id: id, key: key, value: value, optional: optional}
}

// NewComprehension returns a mutable fold node.
func NewComprehension(id int64, iterVar string, iterRange *Expr, accuVar string, accuInit, loopCondition, loopStep, result *Expr) *Expr {
	e := NewNotSet(id)
	e.SetComprehension(iterVar, iterRange, accuVar, accuInit, loopCondition, loopStep, result)
	return e
}
