package directive

import (
	"fmt"

	"github.com/defpatch/defpatch/debug"
	"github.com/defpatch/defpatch/ir"
)

var addSym = &addSymbol{name: addName}

func Add() Symbol {
	return addSym
}

const (
	addName name = "add"
)

type addSymbol struct {
	name
}

func (s addSymbol) Instance(forms []*ir.Node) (Op, error) {
	return includeInstance(s.name, forms, false)
}

// includeOp serves both add and remove; remove is add with inverted
// polarity.
type includeOp struct {
	op
	invert bool
}

func includeInstance(n name, forms []*ir.Node, invert bool) (Op, error) {
	if len(forms) < 1 {
		return nil, fmt.Errorf("%s: %w: expects at least 1 form, got 0", n, ErrArity)
	}
	return &includeOp{op: op{name: n, forms: forms}, invert: invert}, nil
}

func (o includeOp) Resolve(patched bool, env *Env, rf ResolveFunc) ([]*ir.Node, error) {
	if debug.Op() {
		debug.Logf("%s op, patched=%t\n", o, patched)
	}
	if patched == o.invert {
		return nil, nil
	}
	return resolveAll(o.forms, patched, env, rf)
}
