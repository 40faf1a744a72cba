package mir

import (
	"encoding/binary"
	"hash/maphash"
	"math"

	"github.com/quill-lang/quill/ir"
)

// seed is shared by all hashes so equal trees hash equal within a process.
var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node derived from (id, kind, payload),
// mirroring the immutable tree's hashing semantics: equal trees produce
// equal hashes. It panics if e is nil.
func (e *Expr) Hash() uint64 {
	if e == nil {
		panic("mir: Hash called on nil node")
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
	case ir.NotSetKind:
	case ir.ConstKind:
		hashConstant(&h, e.c)
	case ir.IdentKind:
		h.WriteString(e.ident)
	case ir.SelectKind:
		h.WriteString(e.sel.field)
		if e.sel.testOnly {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
		writeChild(e.sel.operand)
	case ir.CallKind:
		h.WriteString(e.call.function)
		writeChild(e.call.target)
		for _, a := range e.call.args {
			writeChild(a)
		}
	case ir.ListKind:
		for _, oi := range e.list.optIdxs {
			binary.LittleEndian.PutUint64(b[:], uint64(oi))
			h.Write(b[:])
		}
		for _, el := range e.list.elems {
			writeChild(el)
		}
	case ir.StructKind:
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
	case ir.MapKind:
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
	case ir.ComprehensionKind:
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

func hashConstant(h *maphash.Hash, c ir.Constant) {
	h.WriteByte(byte(c.Kind()))
	var b [8]byte
	switch c.Kind() {
	case ir.NullConst:
	case ir.BoolConst:
		if c.Bool() {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case ir.IntConst:
		binary.LittleEndian.PutUint64(b[:], uint64(c.Int()))
		h.Write(b[:])
	case ir.UintConst:
		binary.LittleEndian.PutUint64(b[:], c.Uint())
		h.Write(b[:])
	case ir.DoubleConst:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(c.Double()))
		h.Write(b[:])
	case ir.StringConst:
		h.WriteString(c.String())
	case ir.BytesConst:
		h.Write(c.Bytes())
	}
}
