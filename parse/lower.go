package parse

import (
	"fmt"

	"github.com/expr-lang/expr/ast"

	"github.com/quill-lang/quill/debug"
	"github.com/quill-lang/quill/ids"
	"github.com/quill-lang/quill/ir"
)

const (
	accuVar   = "__result__"
	iterVar   = "__iter__"
	unusedVar = "__unused__"
)

// binOps maps word operators to their symbolic spellings so that
// "a and b" and "a && b" lower to the same tree.
var binOps = map[string]string{
	"and": "&&",
	"or":  "||",
}

type lowerer struct {
	gen      *ids.Monotonic
	noMacros bool
	count    int

	// innermost-first stack of iteration variables bound by
	// enclosing predicates
	iters []string
}

func (lw *lowerer) next() int64 {
	lw.count++
	return lw.gen.Next()
}

func (lw *lowerer) lower(n ast.Node) (*ir.Expr, error) {
	if n == nil {
		return ir.NewNotSet(lw.next()), nil
	}
	switch n := n.(type) {
	case *ast.NilNode:
		return ir.NewConst(lw.next(), ir.Null()), nil
	case *ast.BoolNode:
		return ir.NewConst(lw.next(), ir.Bool(n.Value)), nil
	case *ast.IntegerNode:
		return ir.NewConst(lw.next(), ir.Int(int64(n.Value))), nil
	case *ast.FloatNode:
		return ir.NewConst(lw.next(), ir.Double(n.Value)), nil
	case *ast.StringNode:
		return ir.NewConst(lw.next(), ir.String(n.Value)), nil
	case *ast.ConstantNode:
		return lw.lowerConstant(n)
	case *ast.IdentifierNode:
		return ir.NewIdent(lw.next(), n.Value), nil
	case *ast.PointerNode:
		return lw.lowerPointer(n)
	case *ast.UnaryNode:
		return lw.lowerUnary(n)
	case *ast.BinaryNode:
		return lw.lowerBinary(n)
	case *ast.ConditionalNode:
		return lw.lowerConditional(n)
	case *ast.ChainNode:
		return lw.lower(n.Node)
	case *ast.MemberNode:
		return lw.lowerMember(n)
	case *ast.SliceNode:
		return lw.lowerSlice(n)
	case *ast.CallNode:
		return lw.lowerCall(n)
	case *ast.BuiltinNode:
		return lw.lowerBuiltin(n)
	case *ast.PredicateNode:
		return lw.lowerPredicate(n, iterVar)
	case *ast.ArrayNode:
		return lw.lowerArray(n)
	case *ast.MapNode:
		return lw.lowerMap(n)
	case *ast.VariableDeclaratorNode:
		return lw.lowerBind(n)
	case *ast.SequenceNode:
		if len(n.Nodes) == 1 {
			return lw.lower(n.Nodes[0])
		}
		return nil, fmt.Errorf("%w: statement sequence", ErrUnsupported)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, n)
}

func (lw *lowerer) lowerConstant(n *ast.ConstantNode) (*ir.Expr, error) {
	id := lw.next()
	switch v := n.Value.(type) {
	case nil:
		return ir.NewConst(id, ir.Null()), nil
	case bool:
		return ir.NewConst(id, ir.Bool(v)), nil
	case int:
		return ir.NewConst(id, ir.Int(int64(v))), nil
	case int64:
		return ir.NewConst(id, ir.Int(v)), nil
	case uint64:
		return ir.NewConst(id, ir.Uint(v)), nil
	case float64:
		return ir.NewConst(id, ir.Double(v)), nil
	case string:
		return ir.NewConst(id, ir.String(v)), nil
	case []byte:
		return ir.NewConst(id, ir.Bytes(v)), nil
	}
	return nil, fmt.Errorf("%w: folded constant %T", ErrUnsupported, n.Value)
}

func (lw *lowerer) lowerPointer(n *ast.PointerNode) (*ir.Expr, error) {
	if n.Name != "" {
		return ir.NewIdent(lw.next(), n.Name), nil
	}
	if len(lw.iters) == 0 {
		return nil, fmt.Errorf("%w: pointer outside predicate", ErrParse)
	}
	return ir.NewIdent(lw.next(), lw.iters[len(lw.iters)-1]), nil
}

func (lw *lowerer) lowerUnary(n *ast.UnaryNode) (*ir.Expr, error) {
	op := n.Operator
	if op == "not" {
		op = "!"
	}
	if op == "+" {
		// unary plus is the identity
		return lw.lower(n.Node)
	}
	id := lw.next()
	child, err := lw.lower(n.Node)
	if err != nil {
		return nil, err
	}
	return ir.NewCall(id, op, child), nil
}

func (lw *lowerer) lowerBinary(n *ast.BinaryNode) (*ir.Expr, error) {
	op := n.Operator
	if sym, ok := binOps[op]; ok {
		op = sym
	}
	id := lw.next()
	left, err := lw.lower(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := lw.lower(n.Right)
	if err != nil {
		return nil, err
	}
	return ir.NewCall(id, op, left, right), nil
}

func (lw *lowerer) lowerConditional(n *ast.ConditionalNode) (*ir.Expr, error) {
	id := lw.next()
	cond, err := lw.lower(n.Cond)
	if err != nil {
		return nil, err
	}
	then, err := lw.lower(n.Exp1)
	if err != nil {
		return nil, err
	}
	els, err := lw.lower(n.Exp2)
	if err != nil {
		return nil, err
	}
	return ir.NewCall(id, "?:", cond, then, els), nil
}

func (lw *lowerer) lowerMember(n *ast.MemberNode) (*ir.Expr, error) {
	id := lw.next()
	operand, err := lw.lower(n.Node)
	if err != nil {
		return nil, err
	}
	if prop, ok := n.Property.(*ast.StringNode); ok {
		return ir.NewSelect(id, operand, prop.Value), nil
	}
	index, err := lw.lower(n.Property)
	if err != nil {
		return nil, err
	}
	return ir.NewCall(id, "[]", operand, index), nil
}

func (lw *lowerer) lowerSlice(n *ast.SliceNode) (*ir.Expr, error) {
	id := lw.next()
	operand, err := lw.lower(n.Node)
	if err != nil {
		return nil, err
	}
	from, err := lw.lower(n.From)
	if err != nil {
		return nil, err
	}
	to, err := lw.lower(n.To)
	if err != nil {
		return nil, err
	}
	return ir.NewCall(id, "[:]", operand, from, to), nil
}

func (lw *lowerer) lowerCall(n *ast.CallNode) (*ir.Expr, error) {
	if ident, ok := n.Callee.(*ast.IdentifierNode); ok && ident.Value == "has" {
		return lw.lowerHas(n)
	}
	id := lw.next()
	var target *ir.Expr
	var function string
	switch callee := n.Callee.(type) {
	case *ast.IdentifierNode:
		function = callee.Value
	case *ast.MemberNode:
		prop, ok := callee.Property.(*ast.StringNode)
		if !ok {
			return nil, fmt.Errorf("%w: computed call target", ErrUnsupported)
		}
		t, err := lw.lower(callee.Node)
		if err != nil {
			return nil, err
		}
		target = t
		function = prop.Value
	default:
		return nil, fmt.Errorf("%w: call of %T", ErrUnsupported, n.Callee)
	}
	args := make([]*ir.Expr, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		arg, err := lw.lower(a)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if target != nil {
		return ir.NewMemberCall(id, target, function, args...), nil
	}
	return ir.NewCall(id, function, args...), nil
}

// lowerHas turns has(x.f) into a test-only field selection.
func (lw *lowerer) lowerHas(n *ast.CallNode) (*ir.Expr, error) {
	if len(n.Arguments) != 1 {
		return nil, fmt.Errorf("%w: has() takes one argument", ErrParse)
	}
	member, ok := n.Arguments[0].(*ast.MemberNode)
	if !ok {
		return nil, fmt.Errorf("%w: has() requires a field selection", ErrParse)
	}
	prop, ok := member.Property.(*ast.StringNode)
	if !ok {
		return nil, fmt.Errorf("%w: has() requires a field selection", ErrParse)
	}
	id := lw.next()
	operand, err := lw.lower(member.Node)
	if err != nil {
		return nil, err
	}
	return ir.NewTestOnlySelect(id, operand, prop.Value), nil
}

func (lw *lowerer) lowerPredicate(n *ast.PredicateNode, iter string) (*ir.Expr, error) {
	lw.iters = append(lw.iters, iter)
	body, err := lw.lower(n.Node)
	lw.iters = lw.iters[:len(lw.iters)-1]
	return body, err
}

func (lw *lowerer) lowerArray(n *ast.ArrayNode) (*ir.Expr, error) {
	id := lw.next()
	elems := make([]*ir.Expr, 0, len(n.Nodes))
	for _, el := range n.Nodes {
		e, err := lw.lower(el)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	return ir.NewList(id, elems, nil), nil
}

func (lw *lowerer) lowerMap(n *ast.MapNode) (*ir.Expr, error) {
	id := lw.next()
	entries := make([]*ir.MapEntry, 0, len(n.Pairs))
	for _, p := range n.Pairs {
		pair, ok := p.(*ast.PairNode)
		if !ok {
			return nil, fmt.Errorf("%w: map pair %T", ErrUnsupported, p)
		}
		eid := lw.next()
		key, err := lw.lower(pair.Key)
		if err != nil {
			return nil, err
		}
		value, err := lw.lower(pair.Value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ir.NewMapEntry(eid, key, value, false))
	}
	return ir.NewMap(id, entries), nil
}

// lowerBind turns "let x = v; body" into a single-shot comprehension
// that binds x to v over an empty range and yields body.
func (lw *lowerer) lowerBind(n *ast.VariableDeclaratorNode) (*ir.Expr, error) {
	id := lw.next()
	value, err := lw.lower(n.Value)
	if err != nil {
		return nil, err
	}
	body, err := lw.lower(n.Expr)
	if err != nil {
		return nil, err
	}
	return ir.NewComprehension(id,
		unusedVar, lw.emptyList(),
		n.Name, value,
		lw.constBool(false), lw.ident(n.Name),
		body,
	), nil
}

var macros = map[string]bool{
	"all":    true,
	"any":    true,
	"none":   true,
	"one":    true,
	"filter": true,
	"map":    true,
}

func (lw *lowerer) lowerBuiltin(n *ast.BuiltinNode) (*ir.Expr, error) {
	if lw.noMacros || !macros[n.Name] {
		id := lw.next()
		args := make([]*ir.Expr, 0, len(n.Arguments))
		for _, a := range n.Arguments {
			arg, err := lw.lower(a)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return ir.NewCall(id, n.Name, args...), nil
	}
	return lw.lowerMacro(n)
}

// lowerMacro expands the macro-shaped builtins to comprehensions so
// downstream passes see a single looping construct.
func (lw *lowerer) lowerMacro(n *ast.BuiltinNode) (*ir.Expr, error) {
	if len(n.Arguments) != 2 {
		return nil, fmt.Errorf("%w: %s takes two arguments", ErrParse, n.Name)
	}
	pred, ok := n.Arguments[1].(*ast.PredicateNode)
	if !ok {
		return nil, fmt.Errorf("%w: %s requires a predicate", ErrParse, n.Name)
	}
	id := lw.next()
	rng, err := lw.lower(n.Arguments[0])
	if err != nil {
		return nil, err
	}
	body, err := lw.lowerPredicate(pred, iterVar)
	if err != nil {
		return nil, err
	}
	var init, cond, step, result *ir.Expr
	switch n.Name {
	case "all":
		init = lw.constBool(true)
		cond = lw.ident(accuVar)
		step = lw.call("&&", lw.ident(accuVar), body)
		result = lw.ident(accuVar)
	case "any":
		init = lw.constBool(false)
		cond = lw.call("!", lw.ident(accuVar))
		step = lw.call("||", lw.ident(accuVar), body)
		result = lw.ident(accuVar)
	case "none":
		init = lw.constBool(true)
		cond = lw.ident(accuVar)
		step = lw.call("&&", lw.ident(accuVar), lw.call("!", body))
		result = lw.ident(accuVar)
	case "one":
		init = lw.constInt(0)
		cond = lw.constBool(true)
		step = lw.call("?:", body,
			lw.call("+", lw.ident(accuVar), lw.constInt(1)),
			lw.ident(accuVar))
		result = lw.call("==", lw.ident(accuVar), lw.constInt(1))
	case "filter":
		init = lw.emptyList()
		cond = lw.constBool(true)
		step = lw.call("?:", body,
			lw.call("+", lw.ident(accuVar), lw.list1(lw.ident(iterVar))),
			lw.ident(accuVar))
		result = lw.ident(accuVar)
	case "map":
		init = lw.emptyList()
		cond = lw.constBool(true)
		step = lw.call("+", lw.ident(accuVar), lw.list1(body))
		result = lw.ident(accuVar)
	default:
		return nil, fmt.Errorf("%w: macro %s", ErrUnsupported, n.Name)
	}
	if debug.Lower() {
		debug.Logf("lower: macro %s -> comprehension id=%d", n.Name, id)
	}
	return ir.NewComprehension(id, iterVar, rng, accuVar, init, cond, step, result), nil
}

func (lw *lowerer) ident(name string) *ir.Expr {
	return ir.NewIdent(lw.next(), name)
}

func (lw *lowerer) constBool(v bool) *ir.Expr {
	return ir.NewConst(lw.next(), ir.Bool(v))
}

func (lw *lowerer) constInt(v int64) *ir.Expr {
	return ir.NewConst(lw.next(), ir.Int(v))
}

func (lw *lowerer) emptyList() *ir.Expr {
	return ir.NewList(lw.next(), nil, nil)
}

func (lw *lowerer) list1(e *ir.Expr) *ir.Expr {
	return ir.NewList(lw.next(), []*ir.Expr{e}, nil)
}

func (lw *lowerer) call(fn string, args ...*ir.Expr) *ir.Expr {
	return ir.NewCall(lw.next(), fn, args...)
}
