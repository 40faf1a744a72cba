package ir

import "fmt"

// Builder assembles an Expr incrementally. With* methods select the payload;
// Add* methods accumulate into growable scratch slices that are frozen into
// the node's ordered collections only at Build time, so large call/list/
// struct/map nodes can be grown without quadratic copying.
//
// A Builder seeded from an existing node (BuilderFrom) never mutates that
// node; Build always produces a fresh Expr.
type Builder struct {
	id   int64
	kind Kind

	c        Constant
	ident    string
	operand  *Expr
	field    string
	testOnly bool

	target   *Expr
	function string
	args     []*Expr

	elems   []*Expr
	optIdxs []int32

	messageName   string
	structEntries []*StructEntry
	mapEntries    []*MapEntry

	iterVar   string
	iterRange *Expr
	accuVar   string
	accuInit  *Expr
	loopCond  *Expr
	loopStep  *Expr
	result    *Expr
}

// NewBuilder returns a Builder for a NotSet node with the given id.
func NewBuilder(id int64) *Builder {
	return &Builder{id: id, kind: NotSetKind}
}

// BuilderFrom returns a Builder pre-loaded with e's id, kind and payload.
// Collections are copied into scratch, so accumulating further entries does
// not touch e.
func BuilderFrom(e *Expr) *Builder {
	b := &Builder{id: e.id, kind: e.kind}
	switch e.kind {
	case NotSetKind:
	case ConstKind:
		b.c = e.c
	case IdentKind:
		b.ident = e.ident
	case SelectKind:
		b.operand = e.sel.operand
		b.field = e.sel.field
		b.testOnly = e.sel.testOnly
	case CallKind:
		b.target = e.call.target
		b.function = e.call.function
		b.args = append([]*Expr(nil), e.call.args...)
	case ListKind:
		b.elems = append([]*Expr(nil), e.list.elems...)
		b.optIdxs = append([]int32(nil), e.list.optIdxs...)
	case StructKind:
		b.messageName = e.strct.messageName
		b.structEntries = append([]*StructEntry(nil), e.strct.entries...)
	case MapKind:
		b.mapEntries = append([]*MapEntry(nil), e.mp.entries...)
	case ComprehensionKind:
		b.iterVar = e.comp.iterVar
		b.iterRange = e.comp.iterRange
		b.accuVar = e.comp.accuVar
		b.accuInit = e.comp.accuInit
		b.loopCond = e.comp.loopCond
		b.loopStep = e.comp.loopStep
		b.result = e.comp.result
	}
	return b
}

// retag switches the builder to a new kind, dropping scratch collections
// that belong to the previous kind.
func (b *Builder) retag(k Kind) {
	if b.kind == k {
		return
	}
	b.kind = k
	if k != CallKind {
		b.args = nil
	}
	if k != ListKind {
		b.elems = nil
		b.optIdxs = nil
	}
	if k != StructKind {
		b.structEntries = nil
	}
	if k != MapKind {
		b.mapEntries = nil
	}
}

// WithID replaces the node id.
func (b *Builder) WithID(id int64) *Builder {
	b.id = id
	return b
}

// WithConst makes the node a constant.
func (b *Builder) WithConst(c Constant) *Builder {
	b.retag(ConstKind)
	b.c = c
	return b
}

// WithIdent makes the node an identifier.
func (b *Builder) WithIdent(name string) *Builder {
	b.retag(IdentKind)
	b.ident = name
	return b
}

// WithSelect makes the node a field access.
func (b *Builder) WithSelect(operand *Expr, field string, testOnly bool) *Builder {
	b.retag(SelectKind)
	b.operand = operand
	b.field = field
	b.testOnly = testOnly
	return b
}

// WithCall makes the node a call. target may be nil. Args accumulated so far
// are kept; AddArgs appends more.
func (b *Builder) WithCall(target *Expr, function string) *Builder {
	b.retag(CallKind)
	b.target = target
	b.function = function
	return b
}

// WithList makes the node a list. Elements accumulated so far are kept.
func (b *Builder) WithList(optionalIndices []int32) *Builder {
	b.retag(ListKind)
	b.optIdxs = optionalIndices
	return b
}

// WithStruct makes the node a message construction.
func (b *Builder) WithStruct(messageName string) *Builder {
	b.retag(StructKind)
	b.messageName = messageName
	return b
}

// WithMap makes the node a map literal.
func (b *Builder) WithMap() *Builder {
	b.retag(MapKind)
	return b
}

// WithComprehension makes the node a fold.
func (b *Builder) WithComprehension(iterVar string, iterRange *Expr, accuVar string, accuInit, loopCondition, loopStep, result *Expr) *Builder {
	b.retag(ComprehensionKind)
	b.iterVar = iterVar
	b.iterRange = iterRange
	b.accuVar = accuVar
	b.accuInit = accuInit
	b.loopCond = loopCondition
	b.loopStep = loopStep
	b.result = result
	return b
}

// AddArgs appends call arguments. The node must be (or become) a Call.
func (b *Builder) AddArgs(args ...*Expr) *Builder {
	b.args = append(b.args, args...)
	return b
}

// AddElements appends list elements. The node must be (or become) a List.
func (b *Builder) AddElements(elems ...*Expr) *Builder {
	b.elems = append(b.elems, elems...)
	return b
}

// AddStructEntries appends struct field initializers.
func (b *Builder) AddStructEntries(entries ...*StructEntry) *Builder {
	b.structEntries = append(b.structEntries, entries...)
	return b
}

// AddMapEntries appends map key-value pairs.
func (b *Builder) AddMapEntries(entries ...*MapEntry) *Builder {
	b.mapEntries = append(b.mapEntries, entries...)
	return b
}

// Build freezes the scratch state into an immutable Expr. It panics if
// arguments, elements or entries were accumulated for a payload the final
// kind does not carry.
func (b *Builder) Build() *Expr {
	switch b.kind {
	case NotSetKind:
		b.mustNotHold("NotSet", len(b.args)+len(b.elems)+len(b.structEntries)+len(b.mapEntries))
		return NewNotSet(b.id)
	case ConstKind:
		b.mustNotHold("Const", len(b.args)+len(b.elems)+len(b.structEntries)+len(b.mapEntries))
		return NewConst(b.id, b.c)
	case IdentKind:
		b.mustNotHold("Ident", len(b.args)+len(b.elems)+len(b.structEntries)+len(b.mapEntries))
		return NewIdent(b.id, b.ident)
	case SelectKind:
		b.mustNotHold("Select", len(b.args)+len(b.elems)+len(b.structEntries)+len(b.mapEntries))
		if b.testOnly {
			return NewTestOnlySelect(b.id, b.operand, b.field)
		}
		return NewSelect(b.id, b.operand, b.field)
	case CallKind:
		b.mustNotHold("Call", len(b.elems)+len(b.structEntries)+len(b.mapEntries))
		args := append([]*Expr(nil), b.args...)
		if b.target != nil {
			return NewMemberCall(b.id, b.target, b.function, args...)
		}
		return NewCall(b.id, b.function, args...)
	case ListKind:
		b.mustNotHold("List", len(b.args)+len(b.structEntries)+len(b.mapEntries))
		return NewList(b.id, append([]*Expr(nil), b.elems...), append([]int32(nil), b.optIdxs...))
	case StructKind:
		b.mustNotHold("Struct", len(b.args)+len(b.elems)+len(b.mapEntries))
		return NewStruct(b.id, b.messageName, append([]*StructEntry(nil), b.structEntries...))
	case MapKind:
		b.mustNotHold("Map", len(b.args)+len(b.elems)+len(b.structEntries))
		return NewMap(b.id, append([]*MapEntry(nil), b.mapEntries...))
	case ComprehensionKind:
		b.mustNotHold("Comprehension", len(b.args)+len(b.elems)+len(b.structEntries)+len(b.mapEntries))
		return NewComprehension(b.id, b.iterVar, b.iterRange, b.accuVar, b.accuInit, b.loopCond, b.loopStep, b.result)
	}
	panic(fmt.Sprintf("ir: Build on unexpected kind %d", int(b.kind)))
}

func (b *Builder) mustNotHold(kind string, n int) {
	if n != 0 {
		panic(fmt.Sprintf("ir: Build %s node with %d stray collection entries", kind, n))
	}
}
