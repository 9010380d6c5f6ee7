// Package defpatch derives the original and patched views of an annotated
// definition and drives the declare/validate/apply/unpatch lifecycle
// against an external definition store.
package defpatch

import (
	"fmt"

	"github.com/defpatch/defpatch/debug"
	"github.com/defpatch/defpatch/directive"
	"github.com/defpatch/defpatch/encode"
	"github.com/defpatch/defpatch/ir"
)

// Resolve produces the node sequence a form contributes to the selected
// view. Atoms bound by an enclosing let expand to their resolved sequence;
// directives expand per their polarity; ordinary lists resolve their
// children and splice the results back into a single list.
//
// Resolving the same tree twice with the same view and an empty env yields
// identical results; all returned nodes are detached from the input.
func Resolve(node *ir.Node, patched bool, env *directive.Env) ([]*ir.Node, error) {
	if env == nil {
		env = directive.NewEnv()
	}
	return doResolve(node, patched, env)
}

func doResolve(node *ir.Node, patched bool, env *directive.Env) ([]*ir.Node, error) {
	if debug.Resolve() {
		debug.Logf("resolve type %s patched=%t: %s\n", node.Type, patched, encode.MustString(node))
	}
	if node.Type != ir.ListType {
		if node.Type == ir.SymbolType {
			if vals, ok := env.Lookup(node.Symbol); ok {
				return ir.CloneSlice(vals), nil
			}
		}
		return []*ir.Node{node.Clone()}, nil
	}
	sym, forms := directive.Split(node)
	if sym != nil {
		opInst, err := sym.Instance(forms)
		if err != nil {
			return nil, fmt.Errorf("%w in %q", err, encode.MustString(node))
		}
		res, err := opInst.Resolve(patched, env, doResolve)
		if err != nil {
			err = fmt.Errorf("%s resolving %q gave %w", opInst, encode.MustString(node), err)
		}
		return res, err
	}
	var values []*ir.Node
	for _, v := range node.Values {
		vals, err := doResolve(v, patched, env)
		if err != nil {
			return nil, err
		}
		values = append(values, vals...)
	}
	return []*ir.Node{ir.FromSlice(values)}, nil
}

// ResolveDef maps a definition's annotated body through the resolver for
// one view. The body must resolve to exactly one form.
func ResolveDef(def *Definition, patched bool) (*Definition, error) {
	vals, err := Resolve(def.Body, patched, nil)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, fmt.Errorf("%s %s: body resolved to %d forms, want 1",
			def.Kind, def.Name, len(vals))
	}
	return &Definition{Kind: def.Kind, Name: def.Name, Body: vals[0]}, nil
}
