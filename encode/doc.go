// Package encode renders expression trees as indented, kind-labeled
// text.
//
// The rendering is deterministic: structurally equal trees produce
// byte-identical output, which makes it usable for golden-file tests
// and line-based diffing.
//
// # Usage
//
//	e := ir.NewCall(1, "size", ir.NewIdent(2, "x"))
//	err := encode.Encode(e, os.Stdout)
//
//	// or, when encoding cannot fail for the caller's purposes:
//	s := encode.MustString(e)
//
// # Related Packages
//
//   - github.com/quill-lang/quill/ir - expression tree representation
//   - github.com/quill-lang/quill/diff - textual tree diffs
package encode
