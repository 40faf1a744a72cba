package ir

// Equal reports whether a and b are structurally equal: same id, same kind
// and recursively equal payloads, including collection order.
func Equal(a, b *Expr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.id != b.id || a.kind != b.kind {
		return false
	}
	switch a.kind {
	case NotSetKind:
		return true
	case ConstKind:
		return a.c.Equal(b.c)
	case IdentKind:
		return a.ident == b.ident
	case SelectKind:
		return a.sel.field == b.sel.field &&
			a.sel.testOnly == b.sel.testOnly &&
			Equal(a.sel.operand, b.sel.operand)
	case CallKind:
		if a.call.function != b.call.function {
			return false
		}
		if !Equal(a.call.target, b.call.target) {
			return false
		}
		return equalSlices(a.call.args, b.call.args)
	case ListKind:
		if len(a.list.optIdxs) != len(b.list.optIdxs) {
			return false
		}
		for i, oi := range a.list.optIdxs {
			if b.list.optIdxs[i] != oi {
				return false
			}
		}
		return equalSlices(a.list.elems, b.list.elems)
	case StructKind:
		if a.strct.messageName != b.strct.messageName {
			return false
		}
		if len(a.strct.entries) != len(b.strct.entries) {
			return false
		}
		for i, ae := range a.strct.entries {
			be := b.strct.entries[i]
			if ae.id != be.id || ae.key != be.key || ae.optional != be.optional {
				return false
			}
			if !Equal(ae.value, be.value) {
				return false
			}
		}
		return true
	case MapKind:
		if len(a.mp.entries) != len(b.mp.entries) {
			return false
		}
		for i, ae := range a.mp.entries {
			be := b.mp.entries[i]
			if ae.id != be.id || ae.optional != be.optional {
				return false
			}
			if !Equal(ae.key, be.key) || !Equal(ae.value, be.value) {
				return false
			}
		}
		return true
	case ComprehensionKind:
		return a.comp.iterVar == b.comp.iterVar &&
			a.comp.accuVar == b.comp.accuVar &&
			Equal(a.comp.iterRange, b.comp.iterRange) &&
			Equal(a.comp.accuInit, b.comp.accuInit) &&
			Equal(a.comp.loopCond, b.comp.loopCond) &&
			Equal(a.comp.loopStep, b.comp.loopStep) &&
			Equal(a.comp.result, b.comp.result)
	}
	return false
}

func equalSlices(a, b []*Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
