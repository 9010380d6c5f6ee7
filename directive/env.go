package directive

import "github.com/defpatch/defpatch/ir"

// Env is the scoped binding table mapping a let-bound identifier to its
// already-resolved node sequence. Shadowing is save/restore: Bind returns a
// closure that reinstates the prior binding, or removes the identifier if
// there was none.
type Env struct {
	vars map[string][]*ir.Node
}

func NewEnv() *Env {
	return &Env{vars: map[string][]*ir.Node{}}
}

func (e *Env) Lookup(name string) ([]*ir.Node, bool) {
	if e == nil {
		return nil, false
	}
	vals, ok := e.vars[name]
	return vals, ok
}

func (e *Env) Bind(name string, vals []*ir.Node) func() {
	prior, had := e.vars[name]
	e.vars[name] = vals
	return func() {
		if had {
			e.vars[name] = prior
			return
		}
		delete(e.vars, name)
	}
}

func (e *Env) Len() int {
	if e == nil {
		return 0
	}
	return len(e.vars)
}
