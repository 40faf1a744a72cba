package ir

import (
	"strings"
	"testing"
)

func TestNewCallShape(t *testing.T) {
	e := NewCall(1, "size", NewIdent(2, "x"))
	if e.Kind() != CallKind {
		t.Fatalf("Kind() = %s, want Call", e.Kind())
	}
	call := e.Call()
	if call.Function() != "size" {
		t.Errorf("Function() = %q, want %q", call.Function(), "size")
	}
	if call.Target() != nil {
		t.Errorf("Target() = %v, want nil", call.Target())
	}
	if len(call.Args()) != 1 {
		t.Fatalf("len(Args()) = %d, want 1", len(call.Args()))
	}
	if arg := call.Args()[0]; arg.Kind() != IdentKind || arg.Ident() != "x" {
		t.Errorf("Args()[0] = %s %q, want Ident x", arg.Kind(), arg.IdentOrDefault())
	}
}

func TestNewMemberCall(t *testing.T) {
	e := NewMemberCall(3, NewIdent(1, "xs"), "size")
	if e.Call().Target() == nil {
		t.Fatal("Target() = nil, want receiver")
	}
	if got := e.Call().Target().Ident(); got != "xs" {
		t.Errorf("Target().Ident() = %q, want xs", got)
	}
}

func TestWrongKindAccessorPanics(t *testing.T) {
	ident := NewIdent(1, "x")
	tests := []struct {
		name string
		f    func()
	}{
		{"Call", func() { ident.Call() }},
		{"Select", func() { ident.Select() }},
		{"Const", func() { ident.Const() }},
		{"List", func() { ident.List() }},
		{"Struct", func() { ident.Struct() }},
		{"Map", func() { ident.Map() }},
		{"Comprehension", func() { ident.Comprehension() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("%s() on Ident node did not panic", tt.name)
				}
				msg, ok := r.(string)
				if !ok || !strings.Contains(msg, "Ident") {
					t.Errorf("panic = %v, want message naming actual kind Ident", r)
				}
			}()
			tt.f()
		})
	}
}

func TestOrDefaultAccessors(t *testing.T) {
	ident := NewIdent(1, "x")
	if got := ident.CallOrDefault(); got.Function() != "" || len(got.Args()) != 0 {
		t.Errorf("CallOrDefault() = %+v, want zero call", got)
	}
	if got := ident.ConstOrDefault(); got.Kind() != NullConst {
		t.Errorf("ConstOrDefault().Kind() = %s, want Null", got.Kind())
	}
	if got := ident.SelectOrDefault(); got.Field() != "" || got.IsTestOnly() {
		t.Errorf("SelectOrDefault() = %+v, want zero select", got)
	}
	call := NewCall(2, "f")
	if got := call.IdentOrDefault(); got != "" {
		t.Errorf("IdentOrDefault() = %q, want empty", got)
	}
}

func TestIdentAccessor(t *testing.T) {
	e := NewIdent(7, "acct")
	if e.ID() != 7 {
		t.Errorf("ID() = %d, want 7", e.ID())
	}
	if e.Ident() != "acct" {
		t.Errorf("Ident() = %q, want acct", e.Ident())
	}
}

func TestTestOnlySelect(t *testing.T) {
	probe := NewTestOnlySelect(2, NewIdent(1, "x"), "f")
	if !probe.Select().IsTestOnly() {
		t.Error("IsTestOnly() = false for presence probe")
	}
	read := NewSelect(2, NewIdent(1, "x"), "f")
	if read.Select().IsTestOnly() {
		t.Error("IsTestOnly() = true for plain select")
	}
}

func TestListOptionalIndices(t *testing.T) {
	e := NewList(1, []*Expr{NewConst(2, Int(1)), NewConst(3, Int(2))}, []int32{1})
	l := e.List()
	if l.IsOptional(0) {
		t.Error("IsOptional(0) = true")
	}
	if !l.IsOptional(1) {
		t.Error("IsOptional(1) = false")
	}
}

func TestConstantAccessors(t *testing.T) {
	if got := Int(5).Int(); got != 5 {
		t.Errorf("Int(5).Int() = %d", got)
	}
	if got := Uint(5).Uint(); got != 5 {
		t.Errorf("Uint(5).Uint() = %d", got)
	}
	if got := String("s").String(); got != "s" {
		t.Errorf("String(s).String() = %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("Int().String() did not panic")
		}
	}()
	_ = Int(5).String()
}

func TestConstantBytesCopied(t *testing.T) {
	src := []byte{1, 2, 3}
	c := Bytes(src)
	src[0] = 9
	if got := c.Bytes(); got[0] != 1 {
		t.Errorf("Bytes() = %v, want construction-time copy", got)
	}
	got := c.Bytes()
	got[1] = 9
	if again := c.Bytes(); again[1] != 2 {
		t.Errorf("Bytes() = %v after caller mutation, want independence", again)
	}
}

func TestConstantFormat(t *testing.T) {
	tests := []struct {
		c    Constant
		want string
	}{
		{Null(), "null"},
		{Bool(true), "true"},
		{Int(-3), "-3"},
		{Uint(3), "3u"},
		{Double(1.5), "1.5"},
		{String("a\"b"), `"a\"b"`},
		{Bytes([]byte("ab")), `b"ab"`},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.c.Format(); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}
