// Package encode writes ir trees as s-expression text.
package encode

import (
	"fmt"
	"io"
	"strconv"

	"github.com/defpatch/defpatch/ir"
)

type EncState struct {
	col    int
	depth  int
	indent int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. The default output is a single line; with a
// non-zero indent, lists containing sub-lists break one element per line.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.SymbolType:
		return writeLeaf(w, es, node, node.Symbol)
	case ir.StringType:
		return writeLeaf(w, es, node, strconv.Quote(node.String))
	case ir.NumberType:
		return writeLeaf(w, es, node, numberLexeme(node))
	case ir.ListType:
		return encodeList(node, w, es)
	}
	return fmt.Errorf("%w: %s", ErrEncoding, node.Type)
}

func encodeList(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, node, "("); err != nil {
		return err
	}
	broken := es.indent > 0 && hasListValues(node)
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if broken {
				if err := writeNL(w, es); err != nil {
					return err
				}
			} else if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	return writeSep(w, es, node, ")")
}

func hasListValues(node *ir.Node) bool {
	for _, v := range node.Values {
		if v.Type == ir.ListType {
			return true
		}
	}
	return false
}

func numberLexeme(node *ir.Node) string {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	if node.Float64 != nil {
		return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	}
	return node.Number
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	indent := es.depth * es.indent
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	for i := 0; i < indent; i++ {
		if err := writeString(w, " "); err != nil {
			return err
		}
	}
	es.col = indent
	return nil
}

func writeLeaf(w io.Writer, es *EncState, node *ir.Node, s string) error {
	if es.Color != nil {
		s = es.Color(node.Type, ValueColor, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, es *EncState, node *ir.Node, s string) error {
	if es.Color != nil {
		s = es.Color(node.Type, SepColor, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
