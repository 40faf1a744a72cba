// Package diff computes line-based textual diffs between expression
// trees using their deterministic encodings.
package diff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/quill-lang/quill/encode"
	"github.com/quill-lang/quill/ir"
)

// Trees renders both trees with encode and diffs them line by line.
// The result is empty when the renderings are identical. Lines are
// prefixed "-" (only in from), "+" (only in to), or "  " (common).
func Trees(from, to *ir.Expr, opts ...encode.EncodeOption) string {
	return Format(Lines(
		encode.MustString(from, opts...),
		encode.MustString(to, opts...),
	))
}

// Lines diffs two multi-line strings at line granularity.
func Lines(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToRunes(from, to)
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	return diffCfg.DiffCharsToLines(diffs, lines)
}

func Format(diffs []diffpatch.Diff) string {
	return format(diffs, func(_ diffpatch.Operation, line string) string {
		return line
	})
}

// FormatColor is Format with deletions in red and insertions in green.
func FormatColor(diffs []diffpatch.Diff) string {
	return format(diffs, func(op diffpatch.Operation, line string) string {
		switch op {
		case diffpatch.DiffDelete:
			return color.RedString("%s", line)
		case diffpatch.DiffInsert:
			return color.GreenString("%s", line)
		}
		return line
	})
}

func format(diffs []diffpatch.Diff, paint func(diffpatch.Operation, string) string) string {
	changed := false
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			changed = true
			break
		}
	}
	if !changed {
		return ""
	}
	sb := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		prefix := "  "
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range splitLines(diff.Text) {
			sb.WriteString(paint(diff.Type, prefix+line))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
