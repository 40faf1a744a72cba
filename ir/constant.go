package ir

import (
	"bytes"
	"fmt"
	"strconv"
)

// ConstKindType selects which value a Constant carries.
type ConstKindType int

const (
	NullConst ConstKindType = iota
	BoolConst
	IntConst
	UintConst
	DoubleConst
	StringConst
	BytesConst
)

func (k ConstKindType) String() string {
	s, ok := map[ConstKindType]string{
		NullConst:   "Null",
		BoolConst:   "Bool",
		IntConst:    "Int",
		UintConst:   "Uint",
		DoubleConst: "Double",
		StringConst: "String",
		BytesConst:  "Bytes",
	}[k]
	if ok {
		return s
	}
	return "<unknown const kind>"
}

// Constant is a literal value: null, bool, int64, uint64, double, string or
// bytes. The zero Constant is null. Constants are values; they are copied
// freely and never mutated.
type Constant struct {
	kind ConstKindType
	b    bool
	i    int64
	u    uint64
	d    float64
	s    string
	bs   []byte
}

func Null() Constant            { return Constant{kind: NullConst} }
func Bool(v bool) Constant      { return Constant{kind: BoolConst, b: v} }
func Int(v int64) Constant      { return Constant{kind: IntConst, i: v} }
func Uint(v uint64) Constant    { return Constant{kind: UintConst, u: v} }
func Double(v float64) Constant { return Constant{kind: DoubleConst, d: v} }
func String(v string) Constant  { return Constant{kind: StringConst, s: v} }

func Bytes(v []byte) Constant {
	return Constant{kind: BytesConst, bs: append([]byte(nil), v...)}
}

func (c Constant) Kind() ConstKindType { return c.kind }

func (c Constant) Bool() bool {
	c.mustBe(BoolConst, "Bool")
	return c.b
}

func (c Constant) Int() int64 {
	c.mustBe(IntConst, "Int")
	return c.i
}

func (c Constant) Uint() uint64 {
	c.mustBe(UintConst, "Uint")
	return c.u
}

func (c Constant) Double() float64 {
	c.mustBe(DoubleConst, "Double")
	return c.d
}

func (c Constant) String() string {
	c.mustBe(StringConst, "String")
	return c.s
}

func (c Constant) Bytes() []byte {
	c.mustBe(BytesConst, "Bytes")
	return append([]byte(nil), c.bs...)
}

func (c Constant) mustBe(k ConstKindType, op string) {
	if c.kind != k {
		panic(fmt.Sprintf("ir: Constant.%s on %s constant", op, c.kind))
	}
}

// Equal reports whether two constants hold the same kind and value.
func (c Constant) Equal(o Constant) bool {
	if c.kind != o.kind {
		return false
	}
	switch c.kind {
	case NullConst:
		return true
	case BoolConst:
		return c.b == o.b
	case IntConst:
		return c.i == o.i
	case UintConst:
		return c.u == o.u
	case DoubleConst:
		return c.d == o.d
	case StringConst:
		return c.s == o.s
	case BytesConst:
		return bytes.Equal(c.bs, o.bs)
	}
	return false
}

// Format renders the constant as source-like text: null, true, 5, 5u, 1.5,
// "s", b"...". The output is deterministic for a given constant.
func (c Constant) Format() string {
	switch c.kind {
	case NullConst:
		return "null"
	case BoolConst:
		return strconv.FormatBool(c.b)
	case IntConst:
		return strconv.FormatInt(c.i, 10)
	case UintConst:
		return strconv.FormatUint(c.u, 10) + "u"
	case DoubleConst:
		return strconv.FormatFloat(c.d, 'g', -1, 64)
	case StringConst:
		return strconv.Quote(c.s)
	case BytesConst:
		return "b" + strconv.Quote(string(c.bs))
	}
	return "<unknown const>"
}
