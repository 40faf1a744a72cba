package walk

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/quill-lang/quill/ir"
)

type traceVisitor struct {
	Base
	events []string
}

func (t *traceVisitor) VisitIdent(e *ir.Expr) {
	t.events = append(t.events, fmt.Sprintf("ident %s", e.Ident()))
}

func (t *traceVisitor) VisitCall(e *ir.Expr) {
	t.events = append(t.events, fmt.Sprintf("call %s", e.Call().Function()))
}

func (t *traceVisitor) VisitConst(e *ir.Expr) {
	t.events = append(t.events, fmt.Sprintf("const %s", e.Const().Format()))
}

func (t *traceVisitor) VisitComprehension(e *ir.Expr) {
	t.events = append(t.events, "comprehension")
}

func (t *traceVisitor) VisitCallArg(call, arg *ir.Expr, index int) {
	t.events = append(t.events, fmt.Sprintf("arg %d of %s", index, call.Call().Function()))
}

func (t *traceVisitor) VisitComprehensionSlot(comp, child *ir.Expr, slot Slot) {
	t.events = append(t.events, fmt.Sprintf("slot %s", slot))
}

func TestWalkPreorderWithPositions(t *testing.T) {
	e := ir.NewCall(1, "&&",
		ir.NewIdent(2, "a"),
		ir.NewCall(3, ">", ir.NewIdent(4, "b"), ir.NewConst(5, ir.Int(0))),
	)
	v := &traceVisitor{}
	Walk(e, v)
	want := []string{
		"call &&",
		"ident a",
		"arg 0 of &&",
		"call >",
		"ident b",
		"arg 0 of >",
		"const 0",
		"arg 1 of >",
		"arg 1 of &&",
	}
	if diff := cmp.Diff(want, v.events); diff != "" {
		t.Errorf("event order (-want +got):\n%s", diff)
	}
}

func TestWalkComprehensionSlots(t *testing.T) {
	e := ir.NewComprehension(1,
		"x", ir.NewIdent(2, "xs"),
		"__result__",
		ir.NewConst(3, ir.Bool(true)),
		ir.NewIdent(4, "__result__"),
		ir.NewIdent(5, "__result__"),
		ir.NewIdent(6, "__result__"),
	)
	v := &traceVisitor{}
	Walk(e, v)
	want := []string{
		"comprehension",
		"ident xs",
		"slot iter_range",
		"const true",
		"slot accu_init",
		"ident __result__",
		"slot loop_condition",
		"ident __result__",
		"slot loop_step",
		"ident __result__",
		"slot result",
	}
	if diff := cmp.Diff(want, v.events); diff != "" {
		t.Errorf("event order (-want +got):\n%s", diff)
	}
}

type kindCounter struct {
	Base
	counts map[ir.Kind]int
}

func (k *kindCounter) VisitNotSet(e *ir.Expr)        { k.counts[ir.NotSetKind]++ }
func (k *kindCounter) VisitConst(e *ir.Expr)         { k.counts[ir.ConstKind]++ }
func (k *kindCounter) VisitIdent(e *ir.Expr)         { k.counts[ir.IdentKind]++ }
func (k *kindCounter) VisitSelect(e *ir.Expr)        { k.counts[ir.SelectKind]++ }
func (k *kindCounter) VisitCall(e *ir.Expr)          { k.counts[ir.CallKind]++ }
func (k *kindCounter) VisitList(e *ir.Expr)          { k.counts[ir.ListKind]++ }
func (k *kindCounter) VisitStruct(e *ir.Expr)        { k.counts[ir.StructKind]++ }
func (k *kindCounter) VisitMap(e *ir.Expr)           { k.counts[ir.MapKind]++ }
func (k *kindCounter) VisitComprehension(e *ir.Expr) { k.counts[ir.ComprehensionKind]++ }

func TestWalkCoversAllChildren(t *testing.T) {
	e := ir.NewComprehension(1,
		"x",
		ir.NewList(2, []*ir.Expr{
			ir.NewStruct(3, "m", []*ir.StructEntry{
				ir.NewStructEntry(4, "f", ir.NewNotSet(5), false),
			}),
			ir.NewMap(6, []*ir.MapEntry{
				ir.NewMapEntry(7, ir.NewConst(8, ir.String("k")), ir.NewIdent(9, "v"), false),
			}),
		}, nil),
		"acc",
		ir.NewConst(10, ir.Bool(true)),
		ir.NewIdent(11, "acc"),
		ir.NewSelect(12, ir.NewIdent(13, "acc"), "f"),
		ir.NewMemberCall(14, ir.NewIdent(15, "acc"), "out"),
	)
	k := &kindCounter{counts: map[ir.Kind]int{}}
	Walk(e, k)
	want := map[ir.Kind]int{
		ir.ComprehensionKind: 1,
		ir.ListKind:          1,
		ir.StructKind:        1,
		ir.MapKind:           1,
		ir.NotSetKind:        1,
		ir.ConstKind:         2,
		ir.IdentKind:         4,
		ir.SelectKind:        1,
		ir.CallKind:          1,
	}
	if diff := cmp.Diff(want, k.counts); diff != "" {
		t.Errorf("kind counts (-want +got):\n%s", diff)
	}
}

func TestWalkNil(t *testing.T) {
	Walk(nil, &traceVisitor{}) // must not panic
}

func TestMaxID(t *testing.T) {
	e := ir.NewStruct(3, "m", []*ir.StructEntry{
		ir.NewStructEntry(17, "f", ir.NewConst(5, ir.Int(0)), false),
	})
	if got := MaxID(e); got != 17 {
		t.Errorf("MaxID() = %d, want 17 (entry ids count)", got)
	}
	if got := MaxID(nil); got != 0 {
		t.Errorf("MaxID(nil) = %d, want 0", got)
	}
}
