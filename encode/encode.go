package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/quill-lang/quill/ir"
)

type EncState struct {
	depth  int
	indent int
	ids    bool

	colorKind ir.Kind
	Color     func(ir.Kind, ColorAttr, string) string
}

// Encode writes a deterministic, line-oriented rendering of the tree
// rooted at e to w. Equal trees always render to identical bytes, so
// the output is suitable for golden files and textual diffing.
func Encode(e *ir.Expr, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		ids:    true,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.Color == nil {
		es.Color = func(_ ir.Kind, _ ColorAttr, s string) string { return s }
	}
	return encode(e, w, es)
}

func encode(e *ir.Expr, w io.Writer, es *EncState) error {
	if e == nil {
		return writeLine(w, es, "~")
	}
	es.colorKind = e.Kind()
	switch e.Kind() {
	case ir.NotSetKind:
		return writeLine(w, es, head(e, es))
	case ir.ConstKind:
		line := head(e, es) + " " + attr(es, "value", e.Const().Format())
		return writeLine(w, es, line)
	case ir.IdentKind:
		line := head(e, es) + " " + attrq(es, "name", e.Ident())
		return writeLine(w, es, line)
	case ir.SelectKind:
		s := e.Select()
		line := head(e, es) + " " + attrq(es, "field", s.Field())
		if s.IsTestOnly() {
			line += " " + es.Color(e.Kind(), FieldColor, "test-only")
		}
		if err := writeLine(w, es, line); err != nil {
			return err
		}
		return section(w, es, "operand", s.Operand())
	case ir.CallKind:
		c := e.Call()
		line := head(e, es) + " " + attrq(es, "function", c.Function())
		if err := writeLine(w, es, line); err != nil {
			return err
		}
		if c.Target() != nil {
			if err := section(w, es, "target", c.Target()); err != nil {
				return err
			}
		}
		if len(c.Args()) == 0 {
			return nil
		}
		return sections(w, es, "args", c.Args())
	case ir.ListKind:
		l := e.List()
		line := head(e, es)
		if idxs := l.OptionalIndices(); len(idxs) > 0 {
			line += " " + attr(es, "optional", fmt.Sprint(idxs))
		}
		if err := writeLine(w, es, line); err != nil {
			return err
		}
		if len(l.Elements()) == 0 {
			return nil
		}
		return sections(w, es, "elements", l.Elements())
	case ir.StructKind:
		s := e.Struct()
		line := head(e, es) + " " + attrq(es, "message", s.MessageName())
		if err := writeLine(w, es, line); err != nil {
			return err
		}
		for _, ent := range s.Entries() {
			eline := entryHead(es, ent.ID(), ent.IsOptional()) +
				" " + attrq(es, "key", ent.Key())
			if err := writeNested(w, es, 1, eline); err != nil {
				return err
			}
			es.depth++
			err := section(w, es, "value", ent.Value())
			es.depth--
			if err != nil {
				return err
			}
		}
		return nil
	case ir.MapKind:
		if err := writeLine(w, es, head(e, es)); err != nil {
			return err
		}
		for _, ent := range e.Map().Entries() {
			eline := entryHead(es, ent.ID(), ent.IsOptional())
			if err := writeNested(w, es, 1, eline); err != nil {
				return err
			}
			es.depth++
			if err := section(w, es, "key", ent.Key()); err != nil {
				es.depth--
				return err
			}
			err := section(w, es, "value", ent.Value())
			es.depth--
			if err != nil {
				return err
			}
		}
		return nil
	case ir.ComprehensionKind:
		c := e.Comprehension()
		line := head(e, es) +
			" " + attrq(es, "iter_var", c.IterVar()) +
			" " + attrq(es, "accu_var", c.AccuVar())
		if err := writeLine(w, es, line); err != nil {
			return err
		}
		slots := []struct {
			label string
			child *ir.Expr
		}{
			{"iter_range", c.IterRange()},
			{"accu_init", c.AccuInit()},
			{"loop_condition", c.LoopCondition()},
			{"loop_step", c.LoopStep()},
			{"result", c.Result()},
		}
		for _, sl := range slots {
			if err := section(w, es, sl.label, sl.child); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("encode: %w %d", ir.ErrUnexpectedKind, int(e.Kind()))
}

func head(e *ir.Expr, es *EncState) string {
	res := es.Color(e.Kind(), KindColor, e.Kind().String())
	if es.ids {
		res += " " + es.Color(e.Kind(), IDColor, fmt.Sprintf("id=%d", e.ID()))
	}
	return res
}

func entryHead(es *EncState, id int64, optional bool) string {
	res := es.Color(es.colorKind, KindColor, "Entry")
	if es.ids {
		res += " " + es.Color(es.colorKind, IDColor, fmt.Sprintf("id=%d", id))
	}
	if optional {
		res += " " + es.Color(es.colorKind, FieldColor, "optional")
	}
	return res
}

func attr(es *EncState, field, value string) string {
	return es.Color(es.colorKind, FieldColor, field) +
		es.Color(es.colorKind, SepColor, "=") +
		es.Color(es.colorKind, ValueColor, value)
}

func attrq(es *EncState, field, value string) string {
	return attr(es, field, fmt.Sprintf("%q", value))
}

// section writes an indented label line followed by the child one
// level deeper. The caller's colorKind is restored afterwards so
// sibling attributes keep the parent's coloring.
func section(w io.Writer, es *EncState, label string, child *ir.Expr) error {
	parent := es.colorKind
	line := es.Color(parent, SepColor, label+":")
	if err := writeNested(w, es, 1, line); err != nil {
		return err
	}
	es.depth += 2
	err := encode(child, w, es)
	es.depth -= 2
	es.colorKind = parent
	return err
}

func sections(w io.Writer, es *EncState, label string, children []*ir.Expr) error {
	parent := es.colorKind
	line := es.Color(parent, SepColor, label+":")
	if err := writeNested(w, es, 1, line); err != nil {
		return err
	}
	es.depth += 2
	for _, c := range children {
		if err := encode(c, w, es); err != nil {
			es.depth -= 2
			return err
		}
		es.colorKind = parent
	}
	es.depth -= 2
	es.colorKind = parent
	return nil
}

func writeLine(w io.Writer, es *EncState, line string) error {
	return writeNested(w, es, 0, line)
}

// writeNested writes line at extra indent levels below the current
// depth. depth is counted in levels, not columns.
func writeNested(w io.Writer, es *EncState, extra int, line string) error {
	pad := strings.Repeat(" ", (es.depth+extra)*es.indent)
	_, err := io.WriteString(w, pad+line+"\n")
	return err
}
