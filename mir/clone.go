package mir

import "github.com/quill-lang/quill/ir"

// Clone returns a value-equal, reference-distinct deep copy of the node.
// All children are cloned recursively; constants are copied by value since
// they are themselves immutable. Mutating the clone is never observable
// through the original, and vice versa.
func (e *Expr) Clone() *Expr {
	res := &Expr{}
	return e.CloneTo(res)
}

// CloneTo deep-copies e into dst and returns dst.
func (e *Expr) CloneTo(dst *Expr) *Expr {
	dst.id = e.id
	dst.kind = e.kind
	dst.c = e.c
	dst.ident = e.ident
	dst.sel = nil
	dst.call = nil
	dst.list = nil
	dst.strct = nil
	dst.mp = nil
	dst.comp = nil

	switch e.kind {
	case ir.SelectKind:
		dst.sel = &Select{
			operand:  cloneChild(e.sel.operand),
			field:    e.sel.field,
			testOnly: e.sel.testOnly,
		}
	case ir.CallKind:
		c := &Call{
			target:   cloneChild(e.call.target),
			function: e.call.function,
		}
		if e.call.args != nil {
			c.args = make([]*Expr, len(e.call.args))
			for i, a := range e.call.args {
				c.args[i] = cloneChild(a)
			}
		}
		dst.call = c
	case ir.ListKind:
		l := &List{}
		if e.list.elems != nil {
			l.elems = make([]*Expr, len(e.list.elems))
			for i, el := range e.list.elems {
				l.elems[i] = cloneChild(el)
			}
		}
		if e.list.optIdxs != nil {
			l.optIdxs = append([]int32(nil), e.list.optIdxs...)
		}
		dst.list = l
	case ir.StructKind:
		s := &Struct{messageName: e.strct.messageName}
		if e.strct.entries != nil {
			s.entries = make([]*StructEntry, len(e.strct.entries))
			for i, en := range e.strct.entries {
				s.entries[i] = &StructEntry{
					id:       en.id,
					key:      en.key,
					value:    cloneChild(en.value),
					optional: en.optional,
				}
			}
		}
		dst.strct = s
	case ir.MapKind:
		m := &Map{}
		if e.mp.entries != nil {
			m.entries = make([]*MapEntry, len(e.mp.entries))
			for i, en := range e.mp.entries {
				m.entries[i] = &MapEntry{
					id:       en.id,
					key:      cloneChild(en.key),
					value:    cloneChild(en.value),
					optional: en.optional,
				}
			}
		}
		dst.mp = m
	case ir.ComprehensionKind:
		dst.comp = &Comprehension{
			iterVar:   e.comp.iterVar,
			iterRange: cloneChild(e.comp.iterRange),
			accuVar:   e.comp.accuVar,
			accuInit:  cloneChild(e.comp.accuInit),
			loopCond:  cloneChild(e.comp.loopCond),
			loopStep:  cloneChild(e.comp.loopStep),
			result:    cloneChild(e.comp.result),
		}
	}
	return dst
}

func cloneChild(e *Expr) *Expr {
	if e == nil {
		return nil
	}
	return e.Clone()
}
