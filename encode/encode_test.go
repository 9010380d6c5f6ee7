package encode

import (
	"strings"
	"testing"

	"github.com/defpatch/defpatch/ir"
)

type encodeTest struct {
	In     *ir.Node
	Res    string
	Indent int
}

func TestEncode(t *testing.T) {
	tests := []encodeTest{
		{In: ir.Sym("x"), Res: `x`},
		{In: ir.FromInt(42), Res: `42`},
		{In: ir.FromInt(-7), Res: `-7`},
		{In: ir.FromFloat(1.5), Res: `1.5`},
		{In: ir.FromString("hi"), Res: `"hi"`},
		{In: ir.FromString(`a "b"`), Res: `"a \"b\""`},
		{In: ir.List(), Res: `()`},
		{In: ir.List(ir.Sym("f"), ir.Sym("x"), ir.FromInt(1)), Res: `(f x 1)`},
		{
			In:  ir.List(ir.Sym("f"), ir.List(ir.Sym("g"), ir.FromInt(1)), ir.FromString("s")),
			Res: `(f (g 1) "s")`,
		},
		{
			// flat lists stay on one line even when indenting
			In:     ir.List(ir.Sym("f"), ir.Sym("x"), ir.FromInt(1)),
			Res:    `(f x 1)`,
			Indent: 2,
		},
		{
			In: ir.List(ir.Sym("defun"), ir.Sym("f"), ir.List(ir.Sym("x")),
				ir.List(ir.Sym("+"), ir.Sym("x"), ir.FromInt(1))),
			Res: strings.Join([]string{
				"(defun",
				"  f",
				"  (x)",
				"  (+ x 1))",
			}, "\n"),
			Indent: 2,
		},
		{
			In: ir.List(ir.Sym("a"),
				ir.List(ir.Sym("b"), ir.List(ir.Sym("c"), ir.FromInt(1)), ir.FromInt(2)),
				ir.Sym("d")),
			Res: strings.Join([]string{
				"(a",
				"  (b",
				"    (c 1)",
				"    2)",
				"  d)",
			}, "\n"),
			Indent: 2,
		},
	}
	for i := range tests {
		test := &tests[i]
		var opts []EncodeOption
		if test.Indent > 0 {
			opts = append(opts, Indent(test.Indent))
		}
		got := MustString(test.In, opts...)
		if got != test.Res {
			t.Errorf("test case %d:\ngot  %q\nwant %q", i, got, test.Res)
		}
	}
}
