package ir

import "fmt"

// Expr is an immutable expression node. Exactly one payload is populated,
// selected by Kind. Nodes are built through the New* constructors or a
// Builder and never change afterwards, so a finished tree may be shared
// across goroutines without coordination.
//
// The kind-specific accessors (Const, Ident, Select, ...) are partial:
// calling one whose kind does not match panics. The ...OrDefault variants
// return a zero-value payload instead, for callers probing a kind without a
// prior check.
type Expr struct {
	id   int64
	kind Kind

	c     Constant
	ident string
	sel   *SelectExpr
	call  *CallExpr
	list  *ListExpr
	strct *StructExpr
	mp    *MapExpr
	comp  *ComprehensionExpr
}

// ID returns the node id. 0 means the id is unassigned.
func (e *Expr) ID() int64 { return e.id }

// Kind returns the populated payload's kind.
func (e *Expr) Kind() Kind { return e.kind }

func (e *Expr) mustBe(k Kind, op string) {
	if e.kind != k {
		panic(fmt.Sprintf("ir: Expr.%s on %s node (id=%d)", op, e.kind, e.id))
	}
}

// Const returns the constant payload. It panics unless Kind is Const.
func (e *Expr) Const() Constant {
	e.mustBe(ConstKind, "Const")
	return e.c
}

// ConstOrDefault returns the constant payload, or the null constant if the
// kind does not match.
func (e *Expr) ConstOrDefault() Constant {
	if e.kind != ConstKind {
		return Constant{}
	}
	return e.c
}

// Ident returns the identifier name. It panics unless Kind is Ident.
func (e *Expr) Ident() string {
	e.mustBe(IdentKind, "Ident")
	return e.ident
}

// IdentOrDefault returns the identifier name, or "" if the kind does not
// match.
func (e *Expr) IdentOrDefault() string {
	if e.kind != IdentKind {
		return ""
	}
	return e.ident
}

// Select returns the select payload. It panics unless Kind is Select.
func (e *Expr) Select() *SelectExpr {
	e.mustBe(SelectKind, "Select")
	return e.sel
}

// SelectOrDefault returns the select payload, or an empty one if the kind
// does not match.
func (e *Expr) SelectOrDefault() *SelectExpr {
	if e.kind != SelectKind {
		return &SelectExpr{}
	}
	return e.sel
}

// Call returns the call payload. It panics unless Kind is Call.
func (e *Expr) Call() *CallExpr {
	e.mustBe(CallKind, "Call")
	return e.call
}

// CallOrDefault returns the call payload, or an empty one if the kind does
// not match.
func (e *Expr) CallOrDefault() *CallExpr {
	if e.kind != CallKind {
		return &CallExpr{}
	}
	return e.call
}

// List returns the list payload. It panics unless Kind is List.
func (e *Expr) List() *ListExpr {
	e.mustBe(ListKind, "List")
	return e.list
}

// ListOrDefault returns the list payload, or an empty one if the kind does
// not match.
func (e *Expr) ListOrDefault() *ListExpr {
	if e.kind != ListKind {
		return &ListExpr{}
	}
	return e.list
}

// Struct returns the struct payload. It panics unless Kind is Struct.
func (e *Expr) Struct() *StructExpr {
	e.mustBe(StructKind, "Struct")
	return e.strct
}

// StructOrDefault returns the struct payload, or an empty one if the kind
// does not match.
func (e *Expr) StructOrDefault() *StructExpr {
	if e.kind != StructKind {
		return &StructExpr{}
	}
	return e.strct
}

// Map returns the map payload. It panics unless Kind is Map.
func (e *Expr) Map() *MapExpr {
	e.mustBe(MapKind, "Map")
	return e.mp
}

// MapOrDefault returns the map payload, or an empty one if the kind does not
// match.
func (e *Expr) MapOrDefault() *MapExpr {
	if e.kind != MapKind {
		return &MapExpr{}
	}
	return e.mp
}

// Comprehension returns the comprehension payload. It panics unless Kind is
// Comprehension.
func (e *Expr) Comprehension() *ComprehensionExpr {
	e.mustBe(ComprehensionKind, "Comprehension")
	return e.comp
}

// ComprehensionOrDefault returns the comprehension payload, or an empty one
// if the kind does not match.
func (e *Expr) ComprehensionOrDefault() *ComprehensionExpr {
	if e.kind != ComprehensionKind {
		return &ComprehensionExpr{}
	}
	return e.comp
}

// SelectExpr is field access: operand.field. TestOnly marks a presence
// probe, produced by has()-style macros, meaning "is the field set" rather
// than "read the field".
type SelectExpr struct {
	operand  *Expr
	field    string
	testOnly bool
}

func (s *SelectExpr) Operand() *Expr   { return s.operand }
func (s *SelectExpr) Field() string    { return s.field }
func (s *SelectExpr) IsTestOnly() bool { return s.testOnly }

// CallExpr is a function or method invocation. Target is nil for
// free-function calls. Args are ordered; evaluation order is left to right.
//
// The Args slice is owned by the node. Callers must not modify it.
type CallExpr struct {
	target   *Expr
	function string
	args     []*Expr
}

func (c *CallExpr) Target() *Expr    { return c.target }
func (c *CallExpr) Function() string { return c.function }
func (c *CallExpr) Args() []*Expr    { return c.args }

// ListExpr is an ordered list literal. OptionalIndices names element
// positions whose value may be conditionally omitted.
//
// The returned slices are owned by the node. Callers must not modify them.
type ListExpr struct {
	elems   []*Expr
	optIdxs []int32
}

func (l *ListExpr) Elements() []*Expr        { return l.elems }
func (l *ListExpr) OptionalIndices() []int32 { return l.optIdxs }

// IsOptional reports whether the element at index i is optional.
func (l *ListExpr) IsOptional(i int32) bool {
	for _, oi := range l.optIdxs {
		if oi == i {
			return true
		}
	}
	return false
}

// StructExpr is a message construction: MessageName{field: value, ...}.
type StructExpr struct {
	messageName string
	entries     []*StructEntry
}

func (s *StructExpr) MessageName() string     { return s.messageName }
func (s *StructExpr) Entries() []*StructEntry { return s.entries }

// StructEntry is one field initializer of a StructExpr. The entry carries
// its own id so annotators can reference it.
type StructEntry struct {
	id       int64
	key      string
	value    *Expr
	optional bool
}

func (e *StructEntry) ID() int64        { return e.id }
func (e *StructEntry) Key() string      { return e.key }
func (e *StructEntry) Value() *Expr     { return e.value }
func (e *StructEntry) IsOptional() bool { return e.optional }

// MapExpr is a map literal with expression keys.
type MapExpr struct {
	entries []*MapEntry
}

func (m *MapExpr) Entries() []*MapEntry { return m.entries }

// MapEntry is one key-value pair of a MapExpr.
type MapEntry struct {
	id       int64
	key      *Expr
	value    *Expr
	optional bool
}

func (e *MapEntry) ID() int64        { return e.id }
func (e *MapEntry) Key() *Expr       { return e.key }
func (e *MapEntry) Value() *Expr     { return e.value }
func (e *MapEntry) IsOptional() bool { return e.optional }

// ComprehensionExpr models a fold over IterRange: the accumulator AccuVar is
// seeded with AccuInit; each iteration binds IterVar and evaluates
// LoopCondition (false short-circuits the remaining iterations), then
// LoopStep to update the accumulator; Result is evaluated against the final
// accumulator value. Macros like all/exists/filter/map lower to this shape.
type ComprehensionExpr struct {
	iterVar   string
	iterRange *Expr
	accuVar   string
	accuInit  *Expr
	loopCond  *Expr
	loopStep  *Expr
	result    *Expr
}

func (c *ComprehensionExpr) IterVar() string      { return c.iterVar }
func (c *ComprehensionExpr) IterRange() *Expr     { return c.iterRange }
func (c *ComprehensionExpr) AccuVar() string      { return c.accuVar }
func (c *ComprehensionExpr) AccuInit() *Expr      { return c.accuInit }
func (c *ComprehensionExpr) LoopCondition() *Expr { return c.loopCond }
func (c *ComprehensionExpr) LoopStep() *Expr      { return c.loopStep }
func (c *ComprehensionExpr) Result() *Expr        { return c.result }
