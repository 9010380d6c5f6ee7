package directive

import (
	"fmt"

	"github.com/defpatch/defpatch/debug"
	"github.com/defpatch/defpatch/ir"
)

var letSym = &letSymbol{name: letName}

func Let() Symbol {
	return letSym
}

const (
	letName name = "let"
)

type letSymbol struct {
	name
}

func (s letSymbol) Instance(forms []*ir.Node) (Op, error) {
	if len(forms) != 2 {
		return nil, fmt.Errorf("%s: %w: expects exactly 2 forms, got %d", s, ErrArity, len(forms))
	}
	bindings := forms[0]
	if bindings.Type != ir.ListType {
		return nil, fmt.Errorf("%s: %w: bindings must be a list, got %s", s, ErrBadForm, bindings.Type)
	}
	for _, b := range bindings.Values {
		if b.Type != ir.ListType || b.Len() != 2 {
			return nil, fmt.Errorf("%s: %w: each binding must be an (identifier value) pair", s, ErrBadForm)
		}
		if b.Values[0].Type != ir.SymbolType {
			return nil, fmt.Errorf("%s: %w: binding identifier must be a symbol, got %s",
				s, ErrBadForm, b.Values[0].Type)
		}
	}
	return &letOp{
		op:       op{name: s.name, forms: forms},
		bindings: bindings.Values,
		body:     forms[1],
	}, nil
}

type letOp struct {
	op
	bindings []*ir.Node
	body     *ir.Node
}

func (o letOp) Resolve(patched bool, env *Env, rf ResolveFunc) ([]*ir.Node, error) {
	if debug.Op() {
		debug.Logf("%s op, patched=%t bindings=%d\n", o, patched, len(o.bindings))
	}
	// Each binding value resolves exactly once, here, under the view and
	// bindings in effect at the point of declaration. Later bindings see
	// earlier ones.
	restores := make([]func(), 0, len(o.bindings))
	defer func() {
		for i := len(restores) - 1; i >= 0; i-- {
			restores[i]()
		}
	}()
	for _, b := range o.bindings {
		vals, err := rf(b.Values[1], patched, env)
		if err != nil {
			return nil, err
		}
		restores = append(restores, env.Bind(b.Values[0].Symbol, vals))
	}
	return rf(o.body, patched, env)
}
