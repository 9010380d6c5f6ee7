package directive

import (
	"fmt"

	"github.com/defpatch/defpatch/debug"
	"github.com/defpatch/defpatch/ir"
)

var wrapSym = &wrapSymbol{name: wrapName}

func Wrap() Symbol {
	return wrapSym
}

const (
	wrapName name = "wrap"
)

type wrapSymbol struct {
	name
}

func (s wrapSymbol) Instance(forms []*ir.Node) (Op, error) {
	return wrapInstance(s.name, forms, false)
}

// wrapOp serves both wrap and splice; splice is wrap with inverted
// polarity. The trailing form is the body; up to two leading integer atoms
// give the left and right trim counts.
type wrapOp struct {
	op
	triml, trimr int
	body         *ir.Node
	invert       bool
}

func wrapInstance(n name, forms []*ir.Node, invert bool) (Op, error) {
	if len(forms) < 1 || len(forms) > 3 {
		return nil, fmt.Errorf("%s: %w: expects 1 to 3 forms, got %d", n, ErrArity, len(forms))
	}
	body := forms[len(forms)-1]
	if body.Type != ir.ListType {
		return nil, fmt.Errorf("%s: %w: body must be a list, got %s", n, ErrBadForm, body.Type)
	}
	var triml, trimr int
	var err error
	if len(forms) >= 2 {
		if triml, err = trimArg(n, forms[0]); err != nil {
			return nil, err
		}
	}
	if len(forms) == 3 {
		if trimr, err = trimArg(n, forms[1]); err != nil {
			return nil, err
		}
	}
	if triml+trimr > body.Len() {
		return nil, fmt.Errorf("%s: %w: trims %d+%d exceed body length %d",
			n, ErrBadForm, triml, trimr, body.Len())
	}
	return &wrapOp{
		op:     op{name: n, forms: forms},
		triml:  triml,
		trimr:  trimr,
		body:   body,
		invert: invert,
	}, nil
}

func trimArg(n name, f *ir.Node) (int, error) {
	v, ok := f.Int()
	if !ok {
		return 0, fmt.Errorf("%s: %w: trim must be an integer, got %s", n, ErrBadForm, f.Type)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s: %w: trim must be non-negative, got %d", n, ErrBadForm, v)
	}
	return int(v), nil
}

func (o wrapOp) Resolve(patched bool, env *Env, rf ResolveFunc) ([]*ir.Node, error) {
	if debug.Op() {
		debug.Logf("%s op, patched=%t triml=%d trimr=%d\n", o, patched, o.triml, o.trimr)
	}
	if patched != o.invert {
		// wrapped branch: the full untrimmed body resolves into a single
		// nested list.
		vals, err := resolveAll(o.body.Values, patched, env, rf)
		if err != nil {
			return nil, err
		}
		return []*ir.Node{ir.FromSlice(vals)}, nil
	}
	// flat branch: trims apply, the survivors splice into the parent.
	trimmed := o.body.Values[o.triml : o.body.Len()-o.trimr]
	return resolveAll(trimmed, patched, env, rf)
}
