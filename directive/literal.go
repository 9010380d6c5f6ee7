package directive

import (
	"fmt"

	"github.com/defpatch/defpatch/ir"
)

var literalSym = &literalSymbol{name: literalName}

func Literal() Symbol {
	return literalSym
}

const (
	literalName name = "literal"
)

type literalSymbol struct {
	name
}

func (s literalSymbol) Instance(forms []*ir.Node) (Op, error) {
	if len(forms) < 1 {
		return nil, fmt.Errorf("%s: %w: expects at least 1 form, got 0", s, ErrArity)
	}
	return &literalOp{op: op{name: s.name, forms: forms}}, nil
}

type literalOp struct {
	op
}

// Resolve returns the forms untouched: directive symbols inside a literal
// are ordinary data in both views.
func (o literalOp) Resolve(bool, *Env, ResolveFunc) ([]*ir.Node, error) {
	return ir.CloneSlice(o.forms), nil
}
