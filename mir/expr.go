// Package mir provides the mutable mirror of the ir expression tree.
//
// The shape is identical to package ir, but every field has an in-place
// setter and the ordered collections support index-based replacement. It
// exists so an optimization pass can apply localized edits (rename one
// call's function, fold one constant subexpression) without rebuilding every
// ancestor, which the persistent ir form would require. Convert between the
// two forms with package bridge at pass boundaries.
//
// Expr is not safe for concurrent use. A mutable tree must stay confined to
// the single goroutine that owns the pass; there is deliberately no runtime
// guard, as that would tax the common single-threaded optimizer path.
// Temporary aliasing during a rewrite is fine, but a subtree that ends up in
// two places must be Clone()d first: mutation of one copy must never be
// observable through the other.
package mir

import (
	"fmt"

	"github.com/quill-lang/quill/ir"
)

// Expr is a mutable expression node. Exactly one payload is populated,
// selected by Kind; the Set* methods switch the payload and clear the
// previous one. Kind-specific getters panic on mismatch, mirroring ir.
type Expr struct {
	id   int64
	kind ir.Kind

	c     ir.Constant
	ident string
	sel   *Select
	call  *Call
	list  *List
	strct *Struct
	mp    *Map
	comp  *Comprehension
}

func (e *Expr) ID() int64      { return e.id }
func (e *Expr) SetID(id int64) { e.id = id }

func (e *Expr) Kind() ir.Kind { return e.kind }

func (e *Expr) mustBe(k ir.Kind, op string) {
	if e.kind != k {
		panic(fmt.Sprintf("mir: Expr.%s on %s node (id=%d)", op, e.kind, e.id))
	}
}

// reset clears every payload slot before a Set* installs a new one.
func (e *Expr) reset(k ir.Kind) {
	e.kind = k
	e.c = ir.Constant{}
	e.ident = ""
	e.sel = nil
	e.call = nil
	e.list = nil
	e.strct = nil
	e.mp = nil
	e.comp = nil
}

func (e *Expr) SetNotSet() { e.reset(ir.NotSetKind) }

func (e *Expr) Const() ir.Constant {
	e.mustBe(ir.ConstKind, "Const")
	return e.c
}

func (e *Expr) SetConst(c ir.Constant) {
	e.reset(ir.ConstKind)
	e.c = c
}

func (e *Expr) Ident() string {
	e.mustBe(ir.IdentKind, "Ident")
	return e.ident
}

func (e *Expr) SetIdent(name string) {
	e.reset(ir.IdentKind)
	e.ident = name
}

// Select returns the mutable select payload for in-place edits.
func (e *Expr) Select() *Select {
	e.mustBe(ir.SelectKind, "Select")
	return e.sel
}

func (e *Expr) SetSelect(operand *Expr, field string, testOnly bool) {
	e.reset(ir.SelectKind)
	e.sel = &Select{operand: operand, field: field, testOnly: testOnly}
}

// Call returns the mutable call payload for in-place edits.
func (e *Expr) Call() *Call {
	e.mustBe(ir.CallKind, "Call")
	return e.call
}

func (e *Expr) SetCall(target *Expr, function string, args ...*Expr) {
	e.reset(ir.CallKind)
	e.call = &Call{target: target, function: function, args: args}
}

// List returns the mutable list payload for in-place edits.
func (e *Expr) List() *List {
	e.mustBe(ir.ListKind, "List")
	return e.list
}

func (e *Expr) SetList(elems []*Expr, optionalIndices []int32) {
	e.reset(ir.ListKind)
	e.list = &List{elems: elems, optIdxs: optionalIndices}
}

// Struct returns the mutable struct payload for in-place edits.
func (e *Expr) Struct() *Struct {
	e.mustBe(ir.StructKind, "Struct")
	return e.strct
}

func (e *Expr) SetStruct(messageName string, entries []*StructEntry) {
	e.reset(ir.StructKind)
	e.strct = &Struct{messageName: messageName, entries: entries}
}

// Map returns the mutable map payload for in-place edits.
func (e *Expr) Map() *Map {
	e.mustBe(ir.MapKind, "Map")
	return e.mp
}

func (e *Expr) SetMap(entries []*MapEntry) {
	e.reset(ir.MapKind)
	e.mp = &Map{entries: entries}
}

// Comprehension returns the mutable fold payload for in-place edits.
func (e *Expr) Comprehension() *Comprehension {
	e.mustBe(ir.ComprehensionKind, "Comprehension")
	return e.comp
}

func (e *Expr) SetComprehension(iterVar string, iterRange *Expr, accuVar string, accuInit, loopCondition, loopStep, result *Expr) {
	e.reset(ir.ComprehensionKind)
	e.comp = &Comprehension{
		iterVar:   iterVar,
		iterRange: iterRange,
		accuVar:   accuVar,
		accuInit:  accuInit,
		loopCond:  loopCondition,
		loopStep:  loopStep,
		result:    result,
	}
}

// Select is the mutable field-access payload.
type Select struct {
	operand  *Expr
	field    string
	testOnly bool
}

func (s *Select) Operand() *Expr     { return s.operand }
func (s *Select) SetOperand(e *Expr) { s.operand = e }
func (s *Select) Field() string      { return s.field }
func (s *Select) SetField(f string)  { s.field = f }
func (s *Select) IsTestOnly() bool   { return s.testOnly }
func (s *Select) SetTestOnly(v bool) { s.testOnly = v }

// Call is the mutable call payload.
type Call struct {
	target   *Expr
	function string
	args     []*Expr
}

func (c *Call) Target() *Expr         { return c.target }
func (c *Call) SetTarget(e *Expr)     { c.target = e }
func (c *Call) Function() string      { return c.function }
func (c *Call) SetFunction(f string)  { c.function = f }
func (c *Call) Args() []*Expr         { return c.args }
func (c *Call) AddArgs(args ...*Expr) { c.args = append(c.args, args...) }

// SetArg replaces the argument at index i. It panics if i is out of range.
func (c *Call) SetArg(i int, a *Expr) {
	if i < 0 || i >= len(c.args) {
		panic(fmt.Sprintf("mir: SetArg index %d out of range [0,%d)", i, len(c.args)))
	}
	c.args[i] = a
}

// List is the mutable list payload.
type List struct {
	elems   []*Expr
	optIdxs []int32
}

func (l *List) Elements() []*Expr              { return l.elems }
func (l *List) AddElements(elems ...*Expr)     { l.elems = append(l.elems, elems...) }
func (l *List) OptionalIndices() []int32       { return l.optIdxs }
func (l *List) SetOptionalIndices(idx []int32) { l.optIdxs = idx }

// SetElement replaces the element at index i. It panics if i is out of range.
func (l *List) SetElement(i int, e *Expr) {
	if i < 0 || i >= len(l.elems) {
		panic(fmt.Sprintf("mir: SetElement index %d out of range [0,%d)", i, len(l.elems)))
	}
	l.elems[i] = e
}

// Struct is the mutable message-construction payload.
type Struct struct {
	messageName string
	entries     []*StructEntry
}

func (s *Struct) MessageName() string                { return s.messageName }
func (s *Struct) SetMessageName(n string)            { s.messageName = n }
func (s *Struct) Entries() []*StructEntry            { return s.entries }
func (s *Struct) AddEntries(entries ...*StructEntry) { s.entries = append(s.entries, entries...) }

// SetEntry replaces the entry at index i. It panics if i is out of range.
func (s *Struct) SetEntry(i int, e *StructEntry) {
	if i < 0 || i >= len(s.entries) {
		panic(fmt.Sprintf("mir: SetEntry index %d out of range [0,%d)", i, len(s.entries)))
	}
	s.entries[i] = e
}

// StructEntry is one mutable field initializer.
type StructEntry struct {
	id       int64
	key      string
	value    *Expr
	optional bool
}

func (e *StructEntry) ID() int64          { return e.id }
func (e *StructEntry) SetID(id int64)     { e.id = id }
func (e *StructEntry) Key() string        { return e.key }
func (e *StructEntry) SetKey(k string)    { e.key = k }
func (e *StructEntry) Value() *Expr       { return e.value }
func (e *StructEntry) SetValue(v *Expr)   { e.value = v }
func (e *StructEntry) IsOptional() bool   { return e.optional }
func (e *StructEntry) SetOptional(v bool) { e.optional = v }

// Map is the mutable map-literal payload.
type Map struct {
	entries []*MapEntry
}

func (m *Map) Entries() []*MapEntry            { return m.entries }
func (m *Map) AddEntries(entries ...*MapEntry) { m.entries = append(m.entries, entries...) }

// SetEntry replaces the entry at index i. It panics if i is out of range.
func (m *Map) SetEntry(i int, e *MapEntry) {
	if i < 0 || i >= len(m.entries) {
		panic(fmt.Sprintf("mir: SetEntry index %d out of range [0,%d)", i, len(m.entries)))
	}
	m.entries[i] = e
}

// MapEntry is one mutable key-value pair.
type MapEntry struct {
	id       int64
	key      *Expr
	value    *Expr
	optional bool
}

func (e *MapEntry) ID() int64          { return e.id }
func (e *MapEntry) SetID(id int64)     { e.id = id }
func (e *MapEntry) Key() *Expr         { return e.key }
func (e *MapEntry) SetKey(k *Expr)     { e.key = k }
func (e *MapEntry) Value() *Expr       { return e.value }
func (e *MapEntry) SetValue(v *Expr)   { e.value = v }
func (e *MapEntry) IsOptional() bool   { return e.optional }
func (e *MapEntry) SetOptional(v bool) { e.optional = v }

// Comprehension is the mutable fold payload.
type Comprehension struct {
	iterVar   string
	iterRange *Expr
	accuVar   string
	accuInit  *Expr
	loopCond  *Expr
	loopStep  *Expr
	result    *Expr
}

func (c *Comprehension) IterVar() string          { return c.iterVar }
func (c *Comprehension) SetIterVar(v string)      { c.iterVar = v }
func (c *Comprehension) IterRange() *Expr         { return c.iterRange }
func (c *Comprehension) SetIterRange(e *Expr)     { c.iterRange = e }
func (c *Comprehension) AccuVar() string          { return c.accuVar }
func (c *Comprehension) SetAccuVar(v string)      { c.accuVar = v }
func (c *Comprehension) AccuInit() *Expr          { return c.accuInit }
func (c *Comprehension) SetAccuInit(e *Expr)      { c.accuInit = e }
func (c *Comprehension) LoopCondition() *Expr     { return c.loopCond }
func (c *Comprehension) SetLoopCondition(e *Expr) { c.loopCond = e }
func (c *Comprehension) LoopStep() *Expr          { return c.loopStep }
func (c *Comprehension) SetLoopStep(e *Expr)      { c.loopStep = e }
func (c *Comprehension) Result() *Expr            { return c.result }
func (c *Comprehension) SetResult(e *Expr)        { c.result = e }
