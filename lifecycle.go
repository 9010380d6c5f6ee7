package defpatch

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/defpatch/defpatch/debug"
	"github.com/defpatch/defpatch/ir"
)

var (
	ErrNotDeclared   = errors.New("patch not declared")
	ErrNotApplied    = errors.New("patch not applied")
	ErrDrift         = errors.New("live definition drifted")
	ErrEmptyRegistry = errors.New("no patches declared")
)

// appliedState is the installed-state record for one key: the live value
// before the first apply ever (nil when the definition did not exist) and
// the value this engine last wrote.
type appliedState struct {
	pristine *ir.Node
	current  *ir.Node
}

// Controller drives the patch lifecycle against an external store. It owns
// the registry and the installed-state side table; hosts running it from
// multiple goroutines must serialize apply/unpatch per key, since unpatch
// relies on the live value still being the one this controller wrote.
type Controller struct {
	reg     *Registry
	store   Store
	applied map[Key]*appliedState
}

func NewController(reg *Registry, store Store) *Controller {
	return &Controller{
		reg:     reg,
		store:   store,
		applied: map[Key]*appliedState{},
	}
}

func (c *Controller) Registry() *Registry {
	return c.reg
}

// Declare registers def and immediately applies it. Both views must
// resolve before the registry or the store is touched, so a malformed
// directive never partially mutates state.
func (c *Controller) Declare(def *Definition) error {
	if _, err := ResolveDef(def, false); err != nil {
		return err
	}
	if _, err := ResolveDef(def, true); err != nil {
		return err
	}
	c.reg.Declare(def)
	return c.Apply(def.Name, def.Kind)
}

// Apply resolves the patched view and installs it. The first apply for a
// key snapshots the pre-apply live value as pristine; every apply records
// the written value as current.
func (c *Controller) Apply(name string, kind Kind) error {
	def := c.reg.Get(name, kind)
	if def == nil {
		return fmt.Errorf("%w: %s %s", ErrNotDeclared, kind, name)
	}
	resolved, err := ResolveDef(def, true)
	if err != nil {
		return err
	}
	key := Key{Name: name, Kind: kind}
	st, ok := c.applied[key]
	if !ok {
		live, err := c.store.Find(name, kind)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		st = &appliedState{pristine: live}
	}
	if err := c.store.Set(name, kind, resolved.Body); err != nil {
		return err
	}
	if debug.Lifecycle() {
		debug.Logf("applied %s\n", key)
	}
	st.current = resolved.Body.Clone()
	c.applied[key] = st
	return nil
}

// Applied reports whether the key currently has an installed-state record.
func (c *Controller) Applied(name string, kind Kind) bool {
	_, ok := c.applied[Key{Name: name, Kind: kind}]
	return ok
}

// AppliedKeys returns the keys with installed-state records, sorted.
func (c *Controller) AppliedKeys() []Key {
	res := make([]Key, 0, len(c.applied))
	for key := range c.applied {
		res = append(res, key)
	}
	slices.SortFunc(res, func(a, b Key) int {
		if v := cmp.Compare(a.Name, b.Name); v != 0 {
			return v
		}
		return cmp.Compare(a.Kind, b.Kind)
	})
	return res
}

// AppliedState returns the snapshots recorded for a key. A nil pristine
// with ok set means the definition did not exist before the first apply.
func (c *Controller) AppliedState(name string, kind Kind) (pristine, current *ir.Node, ok bool) {
	st, ok := c.applied[Key{Name: name, Kind: kind}]
	if !ok {
		return nil, nil, false
	}
	return st.pristine, st.current, true
}

// RestoreState seeds the installed-state record for a key. Hosts that
// persist snapshots across processes use it to rebuild the side table
// before unpatching.
func (c *Controller) RestoreState(name string, kind Kind, pristine, current *ir.Node) {
	c.applied[Key{Name: name, Kind: kind}] = &appliedState{pristine: pristine, current: current}
}

// Unpatch restores the pre-apply state. It refuses with ErrDrift when the
// live value no longer equals the last value this controller wrote: the
// definition changed under us and a blind overwrite would destroy that
// change. On refusal nothing is mutated and the operation is retryable.
func (c *Controller) Unpatch(name string, kind Kind) error {
	key := Key{Name: name, Kind: kind}
	st, ok := c.applied[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotApplied, key)
	}
	live, err := c.store.Find(name, kind)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if live == nil || !ir.Equal(live, st.current) {
		return fmt.Errorf("%w: %s: live value no longer matches the last applied value", ErrDrift, key)
	}
	if st.pristine == nil {
		if err := c.store.Remove(name, kind); err != nil {
			return err
		}
	} else if err := c.store.Set(name, kind, st.pristine); err != nil {
		return err
	}
	if debug.Lifecycle() {
		debug.Logf("unpatched %s\n", key)
	}
	delete(c.applied, key)
	return nil
}

type Status int

const (
	Valid Status = iota
	NotFound
	Mismatch
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case NotFound:
		return "not found"
	case Mismatch:
		return "mismatch"
	}
	return "<unknown status>"
}

// Validation is the outcome of checking one patch's expected original view
// against the live definition. Want is the resolved original view; Got is
// the live value, nil when the store has none.
type Validation struct {
	Key    Key
	Status Status
	Want   *ir.Node
	Got    *ir.Node
}

// Validate compares the resolved original view with the live definition.
// Lookup failure and drift are statuses, not errors; only structural
// resolution errors are returned as errors.
func (c *Controller) Validate(name string, kind Kind) (*Validation, error) {
	def := c.reg.Get(name, kind)
	if def == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrNotDeclared, kind, name)
	}
	orig, err := ResolveDef(def, false)
	if err != nil {
		return nil, err
	}
	key := Key{Name: name, Kind: kind}
	live, err := c.store.Find(name, kind)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return &Validation{Key: key, Status: NotFound, Want: orig.Body}, nil
		}
		return nil, err
	}
	if ir.Equal(live, orig.Body) {
		return &Validation{Key: key, Status: Valid, Want: orig.Body, Got: live}, nil
	}
	return &Validation{Key: key, Status: Mismatch, Want: orig.Body, Got: live}, nil
}

// ValidateAll validates every declared patch in sorted key order,
// accumulating per-patch statuses. An empty registry is an error of its
// own, distinct from any per-patch failure.
func (c *Controller) ValidateAll() ([]*Validation, error) {
	if c.reg.Len() == 0 {
		return nil, ErrEmptyRegistry
	}
	keys := c.reg.List()
	res := make([]*Validation, 0, len(keys))
	for _, key := range keys {
		v, err := c.Validate(key.Name, key.Kind)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}
