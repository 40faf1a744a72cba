package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Lower  bool
	Splice bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("QUILL_DEBUG_PARSE")
	d.Lower = boolEnv("QUILL_DEBUG_LOWER")
	d.Splice = boolEnv("QUILL_DEBUG_SPLICE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Lower() bool {
	return d.Lower
}
func Splice() bool {
	return d.Splice
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
