package ir

import "testing"

func TestBuilderAccumulatesArgs(t *testing.T) {
	b := NewBuilder(1).WithCall(nil, "f")
	for i := int64(2); i < 6; i++ {
		b.AddArgs(NewConst(i, Int(i)))
	}
	e := b.Build()
	if e.Kind() != CallKind {
		t.Fatalf("Kind() = %s, want Call", e.Kind())
	}
	args := e.Call().Args()
	if len(args) != 4 {
		t.Fatalf("len(Args()) = %d, want 4", len(args))
	}
	for i, a := range args {
		if want := int64(i + 2); a.Const().Int() != want {
			t.Errorf("args[%d] = %d, want %d (insertion order)", i, a.Const().Int(), want)
		}
	}
}

func TestBuilderCopyOnWrite(t *testing.T) {
	orig := NewCall(1, "f", NewIdent(2, "x"))
	e := BuilderFrom(orig).
		WithID(9).
		AddArgs(NewIdent(3, "y")).
		Build()

	if len(orig.Call().Args()) != 1 || orig.ID() != 1 {
		t.Error("source node changed by builder edits")
	}
	if e.ID() != 9 {
		t.Errorf("ID() = %d, want 9", e.ID())
	}
	if len(e.Call().Args()) != 2 {
		t.Errorf("len(Args()) = %d, want 2", len(e.Call().Args()))
	}
}

func TestBuilderFrozenAfterBuild(t *testing.T) {
	b := NewBuilder(1).WithList(nil).AddElements(NewConst(2, Int(1)))
	first := b.Build()
	b.AddElements(NewConst(3, Int(2)))
	second := b.Build()

	if len(first.List().Elements()) != 1 {
		t.Errorf("first build has %d elements, want 1", len(first.List().Elements()))
	}
	if len(second.List().Elements()) != 2 {
		t.Errorf("second build has %d elements, want 2", len(second.List().Elements()))
	}
}

func TestBuilderRetagDropsStaleCollections(t *testing.T) {
	e := NewCall(1, "f", NewIdent(2, "x"))
	got := BuilderFrom(e).WithIdent("y").Build()
	if got.Kind() != IdentKind || got.Ident() != "y" {
		t.Fatalf("Build() = %s %q, want Ident y", got.Kind(), got.IdentOrDefault())
	}
}

func TestBuilderStructEntries(t *testing.T) {
	e := NewBuilder(1).
		WithStruct("pkg.Msg").
		AddStructEntries(NewStructEntry(2, "field_key", NewConst(3, Int(5)), false)).
		Build()
	s := e.Struct()
	if s.MessageName() != "pkg.Msg" {
		t.Errorf("MessageName() = %q", s.MessageName())
	}
	if len(s.Entries()) != 1 {
		t.Fatalf("len(Entries()) = %d, want 1", len(s.Entries()))
	}
	en := s.Entries()[0]
	if en.ID() != 2 || en.Key() != "field_key" || en.IsOptional() {
		t.Errorf("entry = id=%d key=%q optional=%v", en.ID(), en.Key(), en.IsOptional())
	}
	if en.Value().Const().Int() != 5 {
		t.Errorf("entry value = %d, want 5", en.Value().Const().Int())
	}
}

func TestBuilderStrayCollectionPanics(t *testing.T) {
	b := NewBuilder(1)
	b.AddArgs(NewIdent(2, "x")) // still NotSet
	defer func() {
		if recover() == nil {
			t.Fatal("Build() with stray args on NotSet node did not panic")
		}
	}()
	b.Build()
}

func TestBuilderComprehension(t *testing.T) {
	e := NewBuilder(10).WithComprehension(
		"x",
		NewIdent(1, "xs"),
		"__result__",
		NewConst(2, Bool(true)),
		NewIdent(3, "__result__"),
		NewIdent(4, "__result__"),
		NewIdent(5, "__result__"),
	).Build()
	c := e.Comprehension()
	if c.IterVar() != "x" || c.AccuVar() != "__result__" {
		t.Errorf("vars = %q %q", c.IterVar(), c.AccuVar())
	}
	if c.IterRange().Ident() != "xs" {
		t.Errorf("IterRange() = %q", c.IterRange().Ident())
	}
	if !c.AccuInit().Const().Bool() {
		t.Error("AccuInit() != true")
	}
}
