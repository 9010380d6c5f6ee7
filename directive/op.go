package directive

import (
	"errors"

	"github.com/defpatch/defpatch/ir"
)

var (
	ErrArity   = errors.New("wrong number of arguments")
	ErrBadForm = errors.New("malformed directive")
)

// ResolveFunc is the resolver handed back to ops so they can resolve their
// argument forms under the same view and bindings.
type ResolveFunc func(node *ir.Node, patched bool, env *Env) ([]*ir.Node, error)

type Op interface {
	Resolve(patched bool, env *Env, rf ResolveFunc) ([]*ir.Node, error)
	String() string
}

type op struct {
	name  name
	forms []*ir.Node
}

func (o op) String() string {
	return o.name.String()
}

// Split recognizes a directive node: a list whose first element is a symbol
// registered as a directive. Ordinary forms yield a nil Symbol.
func Split(node *ir.Node) (Symbol, []*ir.Node) {
	if node.Type != ir.ListType {
		return nil, nil
	}
	head := node.Head()
	if head == "" {
		return nil, nil
	}
	sym := Lookup(head)
	if sym == nil {
		return nil, nil
	}
	return sym, node.Values[1:]
}

func resolveAll(forms []*ir.Node, patched bool, env *Env, rf ResolveFunc) ([]*ir.Node, error) {
	var res []*ir.Node
	for _, f := range forms {
		vals, err := rf(f, patched, env)
		if err != nil {
			return nil, err
		}
		res = append(res, vals...)
	}
	return res, nil
}
