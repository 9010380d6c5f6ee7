package defpatch

import (
	"errors"
	"fmt"

	"github.com/defpatch/defpatch/debug"
	"github.com/defpatch/defpatch/ir"
)

var ErrNotFound = errors.New("definition not found")

// Store is the external definition store the lifecycle drives: whatever is
// live for a (name, kind) pair. Find returns an error wrapping ErrNotFound
// when nothing is live, which for variable-like kinds doubles as the
// unbound status.
type Store interface {
	Find(name string, kind Kind) (*ir.Node, error)
	Set(name string, kind Kind, value *ir.Node) error
	Remove(name string, kind Kind) error
}

// MemStore is an in-memory Store.
type MemStore struct {
	defs map[Key]*ir.Node
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{defs: map[Key]*ir.Node{}}
}

func (m *MemStore) Find(name string, kind Kind) (*ir.Node, error) {
	node, ok := m.defs[Key{Name: name, Kind: kind}]
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, kind, name)
	}
	return node.Clone(), nil
}

func (m *MemStore) Set(name string, kind Kind, value *ir.Node) error {
	if debug.Store() {
		debug.Logf("store set %s %s\n", kind, name)
	}
	m.defs[Key{Name: name, Kind: kind}] = value.Clone()
	return nil
}

func (m *MemStore) Remove(name string, kind Kind) error {
	if debug.Store() {
		debug.Logf("store remove %s %s\n", kind, name)
	}
	delete(m.defs, Key{Name: name, Kind: kind})
	return nil
}

func (m *MemStore) Len() int {
	return len(m.defs)
}
