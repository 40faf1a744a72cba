package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/quill-lang/quill/ir"
)

func TestEncodeGolden(t *testing.T) {
	tests := []struct {
		name string
		e    *ir.Expr
		want []string
	}{
		{
			name: "not-set",
			e:    ir.NewNotSet(7),
			want: []string{"NotSet id=7"},
		},
		{
			name: "const",
			e:    ir.NewConst(1, ir.String("hi")),
			want: []string{`Const id=1 value="hi"`},
		},
		{
			name: "call",
			e: ir.NewCall(1, "&&",
				ir.NewTestOnlySelect(2, ir.NewIdent(3, "msg"), "field"),
				ir.NewConst(4, ir.Bool(true)),
			),
			want: []string{
				`Call id=1 function="&&"`,
				`  args:`,
				`    Select id=2 field="field" test-only`,
				`      operand:`,
				`        Ident id=3 name="msg"`,
				`    Const id=4 value=true`,
			},
		},
		{
			name: "member-call",
			e: ir.NewMemberCall(1, ir.NewIdent(2, "x"), "size",
				ir.NewConst(3, ir.Int(5))),
			want: []string{
				`Call id=1 function="size"`,
				`  target:`,
				`    Ident id=2 name="x"`,
				`  args:`,
				`    Const id=3 value=5`,
			},
		},
		{
			name: "list-optionals",
			e: ir.NewList(1, []*ir.Expr{
				ir.NewConst(2, ir.Int(1)),
				ir.NewConst(3, ir.Int(2)),
			}, []int32{1}),
			want: []string{
				`List id=1 optional=[1]`,
				`  elements:`,
				`    Const id=2 value=1`,
				`    Const id=3 value=2`,
			},
		},
		{
			name: "struct",
			e: ir.NewStruct(1, "pkg.Msg", []*ir.StructEntry{
				ir.NewStructEntry(2, "f", ir.NewConst(3, ir.Uint(9)), true),
			}),
			want: []string{
				`Struct id=1 message="pkg.Msg"`,
				`  Entry id=2 optional key="f"`,
				`    value:`,
				`      Const id=3 value=9u`,
			},
		},
		{
			name: "map",
			e: ir.NewMap(1, []*ir.MapEntry{
				ir.NewMapEntry(2,
					ir.NewConst(3, ir.String("k")),
					ir.NewConst(4, ir.Double(1.5)), false),
			}),
			want: []string{
				`Map id=1`,
				`  Entry id=2`,
				`    key:`,
				`      Const id=3 value="k"`,
				`    value:`,
				`      Const id=4 value=1.5`,
			},
		},
		{
			name: "comprehension-partial",
			e: ir.NewComprehension(1, "x",
				ir.NewIdent(2, "xs"), "__result__",
				ir.NewConst(3, ir.Bool(true)), nil, nil,
				ir.NewIdent(4, "__result__")),
			want: []string{
				`Comprehension id=1 iter_var="x" accu_var="__result__"`,
				`  iter_range:`,
				`    Ident id=2 name="xs"`,
				`  accu_init:`,
				`    Const id=3 value=true`,
				`  loop_condition:`,
				`    ~`,
				`  loop_step:`,
				`    ~`,
				`  result:`,
				`    Ident id=4 name="__result__"`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustString(tt.e)
			want := strings.Join(tt.want, "\n")
			if d := cmp.Diff(want, got); d != "" {
				t.Errorf("encode mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestEncodeDeterministic(t *testing.T) {
	e := ir.NewCall(1, "==",
		ir.NewSelect(2, ir.NewIdent(3, "a"), "b"),
		ir.NewConst(4, ir.Bytes([]byte{0xca, 0xfe})),
	)
	first := MustString(e)
	for i := 0; i < 10; i++ {
		if got := MustString(e); got != first {
			t.Fatalf("render %d differs:\n%s\nvs\n%s", i, got, first)
		}
	}
}

func TestEncodeWithoutIDs(t *testing.T) {
	e := ir.NewCall(1, "size", ir.NewIdent(2, "x"))
	got := MustString(e, EncodeIDs(false))
	want := strings.Join([]string{
		`Call function="size"`,
		`  args:`,
		`    Ident name="x"`,
	}, "\n")
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("encode mismatch (-want +got):\n%s", d)
	}
	if strings.Contains(got, "id=") {
		t.Errorf("ids leaked into output: %s", got)
	}
}

func TestEncodeIndent(t *testing.T) {
	e := ir.NewCall(1, "size", ir.NewIdent(2, "x"))
	got := MustString(e, Indent(4))
	want := strings.Join([]string{
		`Call id=1 function="size"`,
		`    args:`,
		`        Ident id=2 name="x"`,
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeNil(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(nil, buf); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "~" {
		t.Errorf("got %q, want %q", got, "~")
	}
}

func TestColorsCoverKinds(t *testing.T) {
	colors := NewColors()
	for _, k := range ir.Kinds() {
		if colors.Get(k, KindColor) == nil {
			t.Errorf("no kind color for %s", k)
		}
	}
	// colored output must still contain the raw text
	e := ir.NewIdent(1, "x")
	got := MustString(e, EncodeColors(colors))
	if !strings.Contains(got, "Ident") {
		t.Errorf("colored output lost text: %q", got)
	}
}
