package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/defpatch/defpatch"
	"github.com/defpatch/defpatch/encode"
	"github.com/defpatch/defpatch/parse"
)

// The controller's installed-state side table lives for one process; the
// CLI persists it next to the store manifest so apply in one run and
// unpatch in another see the same snapshots.

const appliedName = "applied.yaml"

type appliedManifest struct {
	Entries []appliedEntry `yaml:"entries"`
}

type appliedEntry struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	// Pristine is the encoded pre-apply value; empty records that the
	// definition did not exist before the first apply.
	Pristine string `yaml:"pristine,omitempty"`
	Current  string `yaml:"current"`
}

func loadAppliedState(root string, ctl *defpatch.Controller) error {
	d, err := os.ReadFile(filepath.Join(root, appliedName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("could not read %s: %w", appliedName, err)
	}
	m := &appliedManifest{}
	if err := yaml.Unmarshal(d, m); err != nil {
		return fmt.Errorf("could not decode %s: %w", appliedName, err)
	}
	for _, e := range m.Entries {
		var kind defpatch.Kind
		if err := kind.UnmarshalText([]byte(e.Kind)); err != nil {
			return fmt.Errorf("bad entry in %s: %v", appliedName, err)
		}
		current, err := parse.Parse([]byte(e.Current))
		if err != nil {
			return fmt.Errorf("bad current value in %s for %s: %w", appliedName, e.Name, err)
		}
		if e.Pristine != "" {
			p, err := parse.Parse([]byte(e.Pristine))
			if err != nil {
				return fmt.Errorf("bad pristine value in %s for %s: %w", appliedName, e.Name, err)
			}
			ctl.RestoreState(e.Name, kind, p, current)
			continue
		}
		ctl.RestoreState(e.Name, kind, nil, current)
	}
	return nil
}

func saveAppliedState(root string, ctl *defpatch.Controller) error {
	m := &appliedManifest{}
	for _, key := range ctl.AppliedKeys() {
		pristine, current, ok := ctl.AppliedState(key.Name, key.Kind)
		if !ok {
			continue
		}
		e := appliedEntry{
			Name:    key.Name,
			Kind:    key.Kind.String(),
			Current: encode.MustString(current),
		}
		if pristine != nil {
			e.Pristine = encode.MustString(pristine)
		}
		m.Entries = append(m.Entries, e)
	}
	d, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", appliedName, err)
	}
	if err := os.WriteFile(filepath.Join(root, appliedName), d, 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", appliedName, err)
	}
	return nil
}
