// Package ir provides the immutable expression tree at the core of the
// Quill toolchain.
//
// # Overview
//
// Every component of the toolchain — parser, type-checker, optimizer,
// evaluator, serializer — exchanges programs as ir.Expr trees. The tree is
// persistent: nodes are created fully-formed by constructors or a Builder
// and never change afterwards. "Editing" a node means building a new one,
// typically by seeding a Builder from the old node. A finished tree is safe
// to share across goroutines without coordination, which callers rely on
// when caching parsed or optimized programs for concurrent evaluation.
//
// For optimization passes that want cheap localized edits instead, convert
// the tree to the mutable mirror representation in package mir via package
// bridge, edit in place, and convert back at the pass boundary.
//
// # Node Structure
//
// An Expr carries a 64-bit id and exactly one payload selected by Kind:
//
//   - NotSetKind: placeholder, no payload (incomplete or template nodes)
//   - ConstKind: a literal Constant (null, bool, int, uint, double, string, bytes)
//   - IdentKind: an identifier name
//   - SelectKind: field access, optionally a test-only presence probe
//   - CallKind: function or method call with ordered arguments
//   - ListKind: ordered list literal with optional-element positions
//   - StructKind: message construction with keyed entries
//   - MapKind: map literal with expression keys
//   - ComprehensionKind: a fold with a short-circuiting loop condition
//
// # Ids
//
// Ids are unique within a single tree; 0 is the "unassigned" sentinel and is
// never a real reference target. The parser mints ids with ids.Monotonic;
// splicing subtrees between sources renumbers through ids.Stable. The
// type-checker keys its annotations by node id in a side map — the tree
// itself never carries type information.
//
// # Creating Nodes
//
// Use the constructor functions to create nodes:
//
//	x := ir.NewIdent(2, "x")
//	c := ir.NewCall(1, "size", x)
//	k := ir.NewConst(3, ir.Int(5))
//
// Use a Builder to assemble large nodes incrementally or to rewrite an
// existing node copy-on-write:
//
//	b := ir.BuilderFrom(c)
//	b.AddArgs(ir.NewConst(4, ir.Bool(true)))
//	c2 := b.Build() // c is untouched
//
// # Accessors
//
// Kind-specific accessors are partial: Call() on an Ident node panics,
// naming the expected and actual kind. The ...OrDefault accessors return a
// zero-value payload instead and exist for callers probing a kind without a
// prior check. There is deliberately no accessor that silently returns a
// stale payload.
//
// # Comparison and Hashing
//
// Equal compares trees structurally, including ids and collection order.
// Hash derives a 64-bit hash from (id, kind, payload); equal trees hash
// equal within a process. Compare is a total order over nodes, useful for
// canonicalization:
//
//	if ir.Equal(a, b) { ... }
//	h := a.Hash()
//
// # Ownership
//
// Nodes own their children; there are no parent pointers and no cycles. A
// tree has no structural sharing of mutable state with any other tree.
//
// # Related Packages
//
//   - github.com/quill-lang/quill/mir - mutable mirror for optimization passes
//   - github.com/quill-lang/quill/bridge - conversion between the two forms
//   - github.com/quill-lang/quill/ids - id generators
//   - github.com/quill-lang/quill/walk - preorder traversal
//   - github.com/quill-lang/quill/encode - debug pretty-printer
package ir
