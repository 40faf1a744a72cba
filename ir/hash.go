package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// seed is shared by all hashes so equal trees hash equal within a process.
var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node derived from (id, kind, payload).
// Equal trees produce equal hashes. It panics if e is nil.
func (e *Expr) Hash() uint64 {
	if e == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(seed)
	var b [8]byte

	binary.LittleEndian.PutUint64(b[:], uint64(e.id))
	h.Write(b[:])
	h.WriteByte(byte(e.kind))

	writeChild := func(c *Expr) {
		if c == nil {
			h.WriteByte(0)
			return
		}
		binary.LittleEndian.PutUint64(b[:], c.Hash())
		h.Write(b[:])
	}

	switch e.kind {
	case NotSetKind:
	case ConstKind:
		hashConstant(&h, e.c)
	case IdentKind:
		h.WriteString(e.ident)
	case SelectKind:
		h.WriteString(e.sel.field)
		if e.sel.testOnly {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
		writeChild(e.sel.operand)
	case CallKind:
		h.WriteString(e.call.function)
		writeChild(e.call.target)
		for _, a := range e.call.args {
			writeChild(a)
		}
	case ListKind:
		for _, oi := range e.list.optIdxs {
			binary.LittleEndian.PutUint64(b[:], uint64(oi))
			h.Write(b[:])
		}
		for _, el := range e.list.elems {
			writeChild(el)
		}
	case StructKind:
		h.WriteString(e.strct.messageName)
		for _, en := range e.strct.entries {
			binary.LittleEndian.PutUint64(b[:], uint64(en.id))
			h.Write(b[:])
			h.WriteString(en.key)
			if en.optional {
				h.WriteByte(1)
			} else {
				h.WriteByte(0)
			}
			writeChild(en.value)
		}
	case MapKind:
		for _, en := range e.mp.entries {
			binary.LittleEndian.PutUint64(b[:], uint64(en.id))
			h.Write(b[:])
			if en.optional {
				h.WriteByte(1)
			} else {
				h.WriteByte(0)
			}
			writeChild(en.key)
			writeChild(en.value)
		}
	case ComprehensionKind:
		h.WriteString(e.comp.iterVar)
		h.WriteString(e.comp.accuVar)
		writeChild(e.comp.iterRange)
		writeChild(e.comp.accuInit)
		writeChild(e.comp.loopCond)
		writeChild(e.comp.loopStep)
		writeChild(e.comp.result)
	}
	return h.Sum64()
}

func hashConstant(h *maphash.Hash, c Constant) {
	h.WriteByte(byte(c.kind))
	var b [8]byte
	switch c.kind {
	case NullConst:
	case BoolConst:
		if c.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntConst:
		binary.LittleEndian.PutUint64(b[:], uint64(c.i))
		h.Write(b[:])
	case UintConst:
		binary.LittleEndian.PutUint64(b[:], c.u)
		h.Write(b[:])
	case DoubleConst:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(c.d))
		h.Write(b[:])
	case StringConst:
		h.WriteString(c.s)
	case BytesConst:
		h.Write(c.bs)
	}
}
