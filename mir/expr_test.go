package mir

import (
	"strings"
	"testing"

	"github.com/quill-lang/quill/ir"
)

func sampleTree() *Expr {
	return NewComprehension(12,
		"x",
		NewList(1, []*Expr{
			NewStruct(2, "pkg.Msg", []*StructEntry{
				NewStructEntry(3, "f", NewConst(4, ir.Int(5)), true),
			}),
			NewMap(5, []*MapEntry{
				NewMapEntry(6, NewConst(7, ir.String("k")), NewNotSet(8), false),
			}),
		}, []int32{1}),
		"__result__",
		NewConst(9, ir.Bool(true)),
		NewIdent(10, "__result__"),
		NewCall(11, "&&",
			NewIdent(13, "__result__"),
			NewTestOnlySelect(14, NewIdent(15, "x"), "f"),
		),
		NewIdent(16, "__result__"),
	)
}

func TestCloneEqualButIndependent(t *testing.T) {
	orig := sampleTree()
	cp := orig.Clone()

	if !Equal(orig, cp) {
		t.Fatal("Equal(orig, Clone()) = false")
	}
	if orig == cp {
		t.Fatal("Clone() returned the receiver")
	}

	// Mutating the copy must not show through the original.
	cp.Comprehension().SetIterVar("y")
	cp.Comprehension().IterRange().List().SetElement(0, NewNotSet(99))
	if orig.Comprehension().IterVar() != "x" {
		t.Error("original iter var changed through clone")
	}
	if orig.Comprehension().IterRange().List().Elements()[0].Kind() != ir.StructKind {
		t.Error("original list element changed through clone")
	}

	// And the other direction.
	orig.Comprehension().LoopStep().Call().SetFunction("||")
	if cp.Comprehension().LoopStep().Call().Function() != "&&" {
		t.Error("clone loop step changed through original")
	}
}

func TestSettersSwitchKind(t *testing.T) {
	e := NewIdent(1, "x")
	e.SetCall(nil, "f", NewIdent(2, "y"))
	if e.Kind() != ir.CallKind {
		t.Fatalf("Kind() = %s after SetCall, want Call", e.Kind())
	}
	if got := e.Call().Function(); got != "f" {
		t.Errorf("Function() = %q", got)
	}
	// The previous payload is gone: Ident must now panic.
	defer func() {
		if recover() == nil {
			t.Fatal("Ident() after SetCall did not panic")
		}
	}()
	e.Ident()
}

func TestSetArgReplaces(t *testing.T) {
	e := NewCall(1, "f", NewIdent(2, "a"), NewIdent(3, "b"))
	e.Call().SetArg(1, NewConst(4, ir.Int(7)))
	args := e.Call().Args()
	if args[0].Ident() != "a" {
		t.Errorf("args[0] = %q, want untouched a", args[0].Ident())
	}
	if args[1].Const().Int() != 7 {
		t.Errorf("args[1] = %v, want replaced constant", args[1].Kind())
	}
}

func TestIndexEditOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		f    func()
	}{
		{"SetArg", func() { NewCall(1, "f").Call().SetArg(0, NewNotSet(0)) }},
		{"SetElement", func() { NewList(1, nil, nil).List().SetElement(0, NewNotSet(0)) }},
		{"Struct.SetEntry", func() { NewStruct(1, "m", nil).Struct().SetEntry(-1, nil) }},
		{"Map.SetEntry", func() { NewMap(1, nil).Map().SetEntry(2, nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("index edit out of range did not panic")
				}
				if msg, ok := r.(string); !ok || !strings.Contains(msg, "out of range") {
					t.Errorf("panic = %v, want out of range message", r)
				}
			}()
			tt.f()
		})
	}
}

func TestAddArgsAppendsInOrder(t *testing.T) {
	e := NewCall(1, "f")
	e.Call().AddArgs(NewIdent(2, "a"))
	e.Call().AddArgs(NewIdent(3, "b"), NewIdent(4, "c"))
	args := e.Call().Args()
	if len(args) != 3 {
		t.Fatalf("len(Args()) = %d, want 3", len(args))
	}
	for i, want := range []string{"a", "b", "c"} {
		if args[i].Ident() != want {
			t.Errorf("args[%d] = %q, want %q", i, args[i].Ident(), want)
		}
	}
}

func TestAliasingSharesMutation(t *testing.T) {
	// Without Clone, a scratch alias and the parent see the same node.
	// The explicit deep copy is what breaks the link.
	shared := NewIdent(2, "x")
	call := NewCall(1, "f", shared)
	shared.SetIdent("y")
	if call.Call().Args()[0].Ident() != "y" {
		t.Error("alias mutation not visible through parent")
	}

	cloned := call.Call().Args()[0].Clone()
	shared.SetIdent("z")
	if cloned.Ident() != "y" {
		t.Error("clone tracked later mutation of its source")
	}
}

func TestEqualMirrorsIR(t *testing.T) {
	a := NewCall(1, "f", NewIdent(2, "x"))
	b := NewCall(1, "f", NewIdent(2, "x"))
	if !Equal(a, b) {
		t.Error("Equal = false for identically-built trees")
	}
	b.Call().Args()[0].SetID(9)
	if Equal(a, b) {
		t.Error("Equal = true after id change")
	}
}

func TestHashMatchesEqual(t *testing.T) {
	a := sampleTree()
	b := sampleTree()
	if a.Hash() != b.Hash() {
		t.Error("equal trees hash differently")
	}
	c := a.Clone()
	if c.Hash() != a.Hash() {
		t.Error("clone hashes differently from source")
	}
	c.SetID(99)
	if c.Hash() == a.Hash() {
		t.Error("id change did not change hash")
	}
}
