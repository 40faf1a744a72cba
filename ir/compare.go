package ir

import (
	"bytes"
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Nodes order first by kind rank, then by id, then by payload. The ordering
// is total and consistent with Equal, which makes it usable for
// canonicalizing node sets and for deterministic test output.
func Compare(a, b *Expr) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	if c := cmp.Compare(rank(a.kind), rank(b.kind)); c != 0 {
		return c
	}
	if c := cmp.Compare(a.id, b.id); c != 0 {
		return c
	}

	switch a.kind {
	case NotSetKind:
		return 0
	case ConstKind:
		return compareConstants(a.c, b.c)
	case IdentKind:
		return strings.Compare(a.ident, b.ident)
	case SelectKind:
		if c := strings.Compare(a.sel.field, b.sel.field); c != 0 {
			return c
		}
		if a.sel.testOnly != b.sel.testOnly {
			if !a.sel.testOnly {
				return -1
			}
			return 1
		}
		return Compare(a.sel.operand, b.sel.operand)
	case CallKind:
		if c := strings.Compare(a.call.function, b.call.function); c != 0 {
			return c
		}
		if c := Compare(a.call.target, b.call.target); c != 0 {
			return c
		}
		return compareSlices(a.call.args, b.call.args)
	case ListKind:
		return compareSlices(a.list.elems, b.list.elems)
	case StructKind:
		if c := strings.Compare(a.strct.messageName, b.strct.messageName); c != 0 {
			return c
		}
		if c := cmp.Compare(len(a.strct.entries), len(b.strct.entries)); c != 0 {
			return c
		}
		for i, ae := range a.strct.entries {
			be := b.strct.entries[i]
			if c := strings.Compare(ae.key, be.key); c != 0 {
				return c
			}
			if c := Compare(ae.value, be.value); c != 0 {
				return c
			}
		}
		return 0
	case MapKind:
		if c := cmp.Compare(len(a.mp.entries), len(b.mp.entries)); c != 0 {
			return c
		}
		for i, ae := range a.mp.entries {
			be := b.mp.entries[i]
			if c := Compare(ae.key, be.key); c != 0 {
				return c
			}
			if c := Compare(ae.value, be.value); c != 0 {
				return c
			}
		}
		return 0
	case ComprehensionKind:
		if c := strings.Compare(a.comp.iterVar, b.comp.iterVar); c != 0 {
			return c
		}
		if c := strings.Compare(a.comp.accuVar, b.comp.accuVar); c != 0 {
			return c
		}
		for _, pair := range [][2]*Expr{
			{a.comp.iterRange, b.comp.iterRange},
			{a.comp.accuInit, b.comp.accuInit},
			{a.comp.loopCond, b.comp.loopCond},
			{a.comp.loopStep, b.comp.loopStep},
			{a.comp.result, b.comp.result},
		} {
			if c := Compare(pair[0], pair[1]); c != 0 {
				return c
			}
		}
		return 0
	}
	return 0
}

// rank returns the sorting rank of a kind.
// Order: NotSet < Const < Ident < Select < Call < List < Struct < Map < Comprehension
func rank(k Kind) int {
	switch k {
	case NotSetKind:
		return 0
	case ConstKind:
		return 1
	case IdentKind:
		return 2
	case SelectKind:
		return 3
	case CallKind:
		return 4
	case ListKind:
		return 5
	case StructKind:
		return 6
	case MapKind:
		return 7
	case ComprehensionKind:
		return 8
	}
	return 100
}

func compareConstants(a, b Constant) int {
	if c := cmp.Compare(int(a.kind), int(b.kind)); c != 0 {
		return c
	}
	switch a.kind {
	case NullConst:
		return 0
	case BoolConst:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case IntConst:
		return cmp.Compare(a.i, b.i)
	case UintConst:
		return cmp.Compare(a.u, b.u)
	case DoubleConst:
		return cmp.Compare(a.d, b.d)
	case StringConst:
		return strings.Compare(a.s, b.s)
	case BytesConst:
		return bytes.Compare(a.bs, b.bs)
	}
	return 0
}

func compareSlices(a, b []*Expr) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	for i := range a {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}
