// Package parse turns source text into expression trees.
//
// Parsing is deterministic: node ids are assigned in preorder from a
// monotonic generator, so the same source with the same options always
// yields the same tree. Macro-shaped builtins (all, any, none, one,
// filter, map) are lowered to comprehensions, and has(x.f) becomes a
// test-only field selection.
//
// # Usage
//
//	e, err := parse.Parse(`all(msgs, len(#) > 0)`)
//
// # Related Packages
//
//   - github.com/quill-lang/quill/ir - expression tree representation
//   - github.com/quill-lang/quill/ids - id generators used here
package parse
