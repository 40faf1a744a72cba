package ir

// NewNotSet returns a placeholder node with no payload. NotSet nodes appear
// only in structurally-incomplete or template trees.
func NewNotSet(id int64) *Expr {
	return &Expr{id: id, kind: NotSetKind}
}

// NewConst returns a constant node wrapping c.
func NewConst(id int64, c Constant) *Expr {
	return &Expr{id: id, kind: ConstKind, c: c}
}

// NewIdent returns an identifier node.
func NewIdent(id int64, name string) *Expr {
	return &Expr{id: id, kind: IdentKind, ident: name}
}

// NewSelect returns a field-access node operand.field.
func NewSelect(id int64, operand *Expr, field string) *Expr {
	return &Expr{id: id, kind: SelectKind, sel: &SelectExpr{operand: operand, field: field}}
}

// NewTestOnlySelect returns a presence-probe node, the lowering of
// has(operand.field).
func NewTestOnlySelect(id int64, operand *Expr, field string) *Expr {
	return &Expr{id: id, kind: SelectKind, sel: &SelectExpr{operand: operand, field: field, testOnly: true}}
}

// NewCall returns a free-function call node.
func NewCall(id int64, function string, args ...*Expr) *Expr {
	return &Expr{id: id, kind: CallKind, call: &CallExpr{function: function, args: args}}
}

// NewMemberCall returns a method-style call node with a receiver.
func NewMemberCall(id int64, target *Expr, function string, args ...*Expr) *Expr {
	return &Expr{id: id, kind: CallKind, call: &CallExpr{target: target, function: function, args: args}}
}

// NewList returns a list node. optionalIndices may be nil.
func NewList(id int64, elems []*Expr, optionalIndices []int32) *Expr {
	return &Expr{id: id, kind: ListKind, list: &ListExpr{elems: elems, optIdxs: optionalIndices}}
}

// NewStruct returns a message-construction node.
func NewStruct(id int64, messageName string, entries []*StructEntry) *Expr {
	return &Expr{id: id, kind: StructKind, strct: &StructExpr{messageName: messageName, entries: entries}}
}

// NewStructEntry returns one field initializer for a struct node.
func NewStructEntry(id int64, key string, value *Expr, optional bool) *StructEntry {
	return &StructEntry{id: id, key: key, value: value, optional: optional}
}

// NewMap returns a map-literal node.
func NewMap(id int64, entries []*MapEntry) *Expr {
	return &Expr{id: id, kind: MapKind, mp: &MapExpr{entries: entries}}
}

// NewMapEntry returns one key-value pair for a map node.
func NewMapEntry(id int64, key, value *Expr, optional bool) *MapEntry {
	return &MapEntry{id: id, key: key, value: value, optional: optional}
}

// NewComprehension returns a fold node. See ComprehensionExpr for the
// evaluation contract.
func NewComprehension(id int64, iterVar string, iterRange *Expr, accuVar string, accuInit, loopCondition, loopStep, result *Expr) *Expr {
	return &Expr{id: id, kind: ComprehensionKind, comp: &ComprehensionExpr{
		iterVar:   iterVar,
		iterRange: iterRange,
		accuVar:   accuVar,
		accuInit:  accuInit,
		loopCond:  loopCondition,
		loopStep:  loopStep,
		result:    result,
	}}
}
