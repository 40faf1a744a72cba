package ir

import "testing"

func sampleTree() *Expr {
	// xs.all-style fold over a struct-bearing list, touching every kind.
	return NewComprehension(12,
		"x",
		NewList(1, []*Expr{
			NewStruct(2, "pkg.Msg", []*StructEntry{
				NewStructEntry(3, "f", NewConst(4, Int(5)), true),
			}),
			NewMap(5, []*MapEntry{
				NewMapEntry(6, NewConst(7, String("k")), NewNotSet(8), false),
			}),
		}, []int32{1}),
		"__result__",
		NewConst(9, Bool(true)),
		NewIdent(10, "__result__"),
		NewCall(11, "&&",
			NewIdent(13, "__result__"),
			NewTestOnlySelect(14, NewIdent(15, "x"), "f"),
		),
		NewIdent(16, "__result__"),
	)
}

func TestEqualReflexive(t *testing.T) {
	a, b := sampleTree(), sampleTree()
	if !Equal(a, b) {
		t.Error("Equal(a, b) = false for identically-built trees")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal trees hash differently")
	}
}

func TestEqualDistinguishes(t *testing.T) {
	base := NewCall(1, "f", NewIdent(2, "x"))
	tests := []struct {
		name  string
		other *Expr
	}{
		{"different id", NewCall(9, "f", NewIdent(2, "x"))},
		{"different function", NewCall(1, "g", NewIdent(2, "x"))},
		{"different child id", NewCall(1, "f", NewIdent(9, "x"))},
		{"different child name", NewCall(1, "f", NewIdent(2, "y"))},
		{"different arity", NewCall(1, "f")},
		{"different kind", NewIdent(1, "f")},
		{"member call", NewMemberCall(1, NewIdent(2, "x"), "f")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Equal(base, tt.other) {
				t.Error("Equal = true, want false")
			}
		})
	}
}

func TestEqualNil(t *testing.T) {
	if !Equal(nil, nil) {
		t.Error("Equal(nil, nil) = false")
	}
	if Equal(nil, NewNotSet(0)) || Equal(NewNotSet(0), nil) {
		t.Error("Equal(nil, node) = true")
	}
}

func TestEqualOrderSignificant(t *testing.T) {
	a := NewList(1, []*Expr{NewConst(2, Int(1)), NewConst(3, Int(2))}, nil)
	b := NewList(1, []*Expr{NewConst(3, Int(2)), NewConst(2, Int(1))}, nil)
	if Equal(a, b) {
		t.Error("Equal = true for reordered elements")
	}
}

func TestHashNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Hash on nil node did not panic")
		}
	}()
	var e *Expr
	e.Hash()
}

func TestCompareTotalOrder(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Expr
		expected int
	}{
		{"NotSet < Const", NewNotSet(1), NewConst(1, Null()), -1},
		{"Const < Ident", NewConst(1, Null()), NewIdent(1, "a"), -1},
		{"Ident < Select", NewIdent(1, "a"), NewSelect(1, nil, "f"), -1},
		{"Select < Call", NewSelect(1, nil, "f"), NewCall(1, "f"), -1},
		{"Call < List", NewCall(1, "f"), NewList(1, nil, nil), -1},
		{"List < Struct", NewList(1, nil, nil), NewStruct(1, "", nil), -1},
		{"Struct < Map", NewStruct(1, "", nil), NewMap(1, nil), -1},
		{"Map < Comprehension", NewMap(1, nil), NewComprehension(1, "", nil, "", nil, nil, nil, nil), -1},
		{"id ordering", NewIdent(1, "b"), NewIdent(2, "a"), -1},
		{"name ordering", NewIdent(1, "a"), NewIdent(1, "b"), -1},
		{"equal nodes", NewIdent(1, "a"), NewIdent(1, "a"), 0},
		{"plain select < probe", NewSelect(1, nil, "f"), NewTestOnlySelect(1, nil, "f"), -1},
		{"short args < long args", NewCall(1, "f"), NewCall(1, "f", NewIdent(2, "x")), -1},
		{"const ordering", NewConst(1, Int(1)), NewConst(1, Int(2)), -1},
		{"const kind ordering", NewConst(1, Bool(true)), NewConst(1, Int(0)), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestCompareConsistentWithEqual(t *testing.T) {
	a, b := sampleTree(), sampleTree()
	if Compare(a, b) != 0 {
		t.Error("Compare = nonzero for equal trees")
	}
}
