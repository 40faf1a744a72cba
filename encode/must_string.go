package encode

import (
	"bytes"
	"strings"

	"github.com/quill-lang/quill/ir"
)

func MustString(e *ir.Expr, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(e, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
