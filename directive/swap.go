package directive

import (
	"fmt"

	"github.com/defpatch/defpatch/debug"
	"github.com/defpatch/defpatch/ir"
)

var swapSym = &swapSymbol{name: swapName}

func Swap() Symbol {
	return swapSym
}

const (
	swapName name = "swap"
)

type swapSymbol struct {
	name
}

func (s swapSymbol) Instance(forms []*ir.Node) (Op, error) {
	if len(forms) != 2 {
		return nil, fmt.Errorf("%s: %w: expects exactly 2 forms, got %d", s, ErrArity, len(forms))
	}
	return &swapOp{op: op{name: s.name, forms: forms}}, nil
}

type swapOp struct {
	op
}

func (o swapOp) Resolve(patched bool, env *Env, rf ResolveFunc) ([]*ir.Node, error) {
	if debug.Op() {
		debug.Logf("%s op, patched=%t\n", o, patched)
	}
	if patched {
		return rf(o.forms[1], patched, env)
	}
	return rf(o.forms[0], patched, env)
}
