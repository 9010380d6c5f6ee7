package defpatch

import (
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/defpatch/defpatch/encode"
	"github.com/defpatch/defpatch/ir"
)

// DiffText renders a line diff between the encoded forms of from and to,
// with "-"/"+" prefixes. The core only supplies the two resolved trees;
// this is the presentation the surrounding tooling needs to inspect a
// patch.
func DiffText(from, to *ir.Node) string {
	buf := &strings.Builder{}
	writeDiff(buf, from, to, nil)
	return buf.String()
}

// WriteDiff writes the diff to w, colorized when colorize is set.
func WriteDiff(w io.Writer, from, to *ir.Node, colorize bool) error {
	var colors *diffColors
	if colorize {
		colors = &diffColors{
			del: color.RedString,
			ins: color.GreenString,
		}
	}
	return writeDiff(w, from, to, colors)
}

type diffColors struct {
	del func(string, ...any) string
	ins func(string, ...any) string
}

func writeDiff(w io.Writer, from, to *ir.Node, colors *diffColors) error {
	a := encode.MustString(from, encode.Indent(2)) + "\n"
	b := encode.MustString(to, encode.Indent(2)) + "\n"
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	for _, d := range diffs {
		prefix := "  "
		paint := func(s string) string { return s }
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
			if colors != nil {
				paint = func(s string) string { return colors.del("%s", s) }
			}
		case diffpatch.DiffInsert:
			prefix = "+ "
			if colors != nil {
				paint = func(s string) string { return colors.ins("%s", s) }
			}
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			if _, err := io.WriteString(w, prefix+paint(line)+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
