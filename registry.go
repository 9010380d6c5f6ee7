package defpatch

import (
	"cmp"
	"slices"
)

// Key identifies a declared patch: one active definition per (name, kind).
type Key struct {
	Name string
	Kind Kind
}

func (k Key) String() string {
	return k.Kind.String() + " " + k.Name
}

// Registry is the process-wide record of declared patches. It is created at
// startup, mutated only through declare and undeclare, and never implicitly
// cleared. Callers exposing it to multiple goroutines must serialize
// access; the engine itself is single-threaded.
type Registry struct {
	defs map[string]map[Kind]*Definition
}

func NewRegistry() *Registry {
	return &Registry{defs: map[string]map[Kind]*Definition{}}
}

// Declare records def, replacing any previous definition for its key.
func (r *Registry) Declare(def *Definition) {
	byKind := r.defs[def.Name]
	if byKind == nil {
		byKind = map[Kind]*Definition{}
		r.defs[def.Name] = byKind
	}
	byKind[def.Kind] = def
}

func (r *Registry) Get(name string, kind Kind) *Definition {
	return r.defs[name][kind]
}

func (r *Registry) Remove(name string, kind Kind) bool {
	byKind := r.defs[name]
	if _, ok := byKind[kind]; !ok {
		return false
	}
	delete(byKind, kind)
	if len(byKind) == 0 {
		delete(r.defs, name)
	}
	return true
}

// List returns all declared keys sorted by name, then kind.
func (r *Registry) List() []Key {
	res := make([]Key, 0, len(r.defs))
	for name, byKind := range r.defs {
		for kind := range byKind {
			res = append(res, Key{Name: name, Kind: kind})
		}
	}
	slices.SortFunc(res, func(a, b Key) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.Kind, b.Kind)
	})
	return res
}

func (r *Registry) Len() int {
	n := 0
	for _, byKind := range r.defs {
		n += len(byKind)
	}
	return n
}
