package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/quill-lang/quill/ir"
	"github.com/quill-lang/quill/parse"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	return dumpArgs(cfg, cc, cc.Out, args)
}

func dumpArgs(cfg *DumpConfig, cc *cli.Context, w io.Writer, args []string) error {
	n := len(args)
	for i, arg := range args {
		src, err := readSource(cc, arg)
		if err != nil {
			return err
		}
		e, err := parse.Parse(src, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", arg, err)
		}
		d, err := yaml.Marshal(dumpTree(e))
		if err != nil {
			return fmt.Errorf("internal error: %w", err)
		}
		if _, err := w.Write(d); err != nil {
			return fmt.Errorf("error writing result %d: %w", i, err)
		}
		if i < n-1 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return fmt.Errorf("error writing separator %d: %w", i, err)
			}
		}
	}
	return nil
}

type dumpNode struct {
	Kind          string       `yaml:"kind"`
	ID            int64        `yaml:"id"`
	Value         string       `yaml:"value,omitempty"`
	Name          string       `yaml:"name,omitempty"`
	Field         string       `yaml:"field,omitempty"`
	TestOnly      bool         `yaml:"testOnly,omitempty"`
	Operand       *dumpNode    `yaml:"operand,omitempty"`
	Function      string       `yaml:"function,omitempty"`
	Target        *dumpNode    `yaml:"target,omitempty"`
	Args          []*dumpNode  `yaml:"args,omitempty"`
	Elements      []*dumpNode  `yaml:"elements,omitempty"`
	Optional      []int32      `yaml:"optional,omitempty,flow"`
	Message       string       `yaml:"message,omitempty"`
	Entries       []*dumpEntry `yaml:"entries,omitempty"`
	IterVar       string       `yaml:"iterVar,omitempty"`
	IterRange     *dumpNode    `yaml:"iterRange,omitempty"`
	AccuVar       string       `yaml:"accuVar,omitempty"`
	AccuInit      *dumpNode    `yaml:"accuInit,omitempty"`
	LoopCondition *dumpNode    `yaml:"loopCondition,omitempty"`
	LoopStep      *dumpNode    `yaml:"loopStep,omitempty"`
	Result        *dumpNode    `yaml:"result,omitempty"`
}

type dumpEntry struct {
	ID       int64     `yaml:"id"`
	Key      string    `yaml:"key,omitempty"`
	KeyExpr  *dumpNode `yaml:"keyExpr,omitempty"`
	Value    *dumpNode `yaml:"value"`
	Optional bool      `yaml:"optional,omitempty"`
}

func dumpTree(e *ir.Expr) *dumpNode {
	if e == nil {
		return nil
	}
	d := &dumpNode{
		Kind: e.Kind().String(),
		ID:   e.ID(),
	}
	switch e.Kind() {
	case ir.ConstKind:
		d.Value = e.Const().Format()
	case ir.IdentKind:
		d.Name = e.Ident()
	case ir.SelectKind:
		s := e.Select()
		d.Field = s.Field()
		d.TestOnly = s.IsTestOnly()
		d.Operand = dumpTree(s.Operand())
	case ir.CallKind:
		c := e.Call()
		d.Function = c.Function()
		d.Target = dumpTree(c.Target())
		for _, a := range c.Args() {
			d.Args = append(d.Args, dumpTree(a))
		}
	case ir.ListKind:
		l := e.List()
		d.Optional = l.OptionalIndices()
		for _, el := range l.Elements() {
			d.Elements = append(d.Elements, dumpTree(el))
		}
	case ir.StructKind:
		s := e.Struct()
		d.Message = s.MessageName()
		for _, ent := range s.Entries() {
			d.Entries = append(d.Entries, &dumpEntry{
				ID:       ent.ID(),
				Key:      ent.Key(),
				Value:    dumpTree(ent.Value()),
				Optional: ent.IsOptional(),
			})
		}
	case ir.MapKind:
		for _, ent := range e.Map().Entries() {
			d.Entries = append(d.Entries, &dumpEntry{
				ID:       ent.ID(),
				KeyExpr:  dumpTree(ent.Key()),
				Value:    dumpTree(ent.Value()),
				Optional: ent.IsOptional(),
			})
		}
	case ir.ComprehensionKind:
		c := e.Comprehension()
		d.IterVar = c.IterVar()
		d.IterRange = dumpTree(c.IterRange())
		d.AccuVar = c.AccuVar()
		d.AccuInit = dumpTree(c.AccuInit())
		d.LoopCondition = dumpTree(c.LoopCondition())
		d.LoopStep = dumpTree(c.LoopStep())
		d.Result = dumpTree(c.Result())
	}
	return d
}
