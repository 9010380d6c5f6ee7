// Package dirstore implements a definition store over a directory: a
// store.yaml manifest maps (name, kind) pairs to files, each file holding
// one encoded form.
package dirstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/defpatch/defpatch"
	"github.com/defpatch/defpatch/debug"
	"github.com/defpatch/defpatch/encode"
	"github.com/defpatch/defpatch/ir"
	"github.com/defpatch/defpatch/parse"
)

const ManifestName = "store.yaml"

type Entry struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	File string `yaml:"file"`
}

type Dir struct {
	Root    string  `yaml:"-"`
	Entries []Entry `yaml:"entries"`
}

var _ defpatch.Store = (*Dir)(nil)

// Open reads the manifest under root, creating root if needed. A missing
// manifest yields an empty store.
func Open(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("could not create store dir %q: %w", root, err)
	}
	dir := &Dir{Root: root}
	d, err := os.ReadFile(filepath.Join(root, ManifestName))
	if err != nil {
		if os.IsNotExist(err) {
			return dir, nil
		}
		return nil, fmt.Errorf("could not read %s in %q: %w", ManifestName, root, err)
	}
	if err := yaml.Unmarshal(d, dir); err != nil {
		return nil, fmt.Errorf("could not decode %s in %q: %w", ManifestName, root, err)
	}
	return dir, nil
}

func (dir *Dir) entry(name string, kind defpatch.Kind) *Entry {
	for i := range dir.Entries {
		e := &dir.Entries[i]
		if e.Name == name && e.Kind == kind.String() {
			return e
		}
	}
	return nil
}

func (dir *Dir) Find(name string, kind defpatch.Kind) (*ir.Node, error) {
	e := dir.entry(name, kind)
	if e == nil {
		return nil, fmt.Errorf("%w: %s %s", defpatch.ErrNotFound, kind, name)
	}
	d, err := os.ReadFile(filepath.Join(dir.Root, e.File))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s %s: %v", defpatch.ErrNotFound, kind, name, err)
		}
		return nil, fmt.Errorf("could not read %q: %w", e.File, err)
	}
	node, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", e.File, err)
	}
	return node, nil
}

func (dir *Dir) Set(name string, kind defpatch.Kind, value *ir.Node) error {
	e := dir.entry(name, kind)
	if e == nil {
		dir.Entries = append(dir.Entries, Entry{
			Name: name,
			Kind: kind.String(),
			File: dir.fileName(name, kind),
		})
		e = &dir.Entries[len(dir.Entries)-1]
	}
	if debug.Store() {
		debug.Logf("dirstore set %s %s -> %s\n", kind, name, e.File)
	}
	out := encode.MustString(value, encode.Indent(2)) + "\n"
	if err := os.WriteFile(filepath.Join(dir.Root, e.File), []byte(out), 0o644); err != nil {
		return fmt.Errorf("could not write %q: %w", e.File, err)
	}
	return dir.Flush()
}

func (dir *Dir) Remove(name string, kind defpatch.Kind) error {
	for i := range dir.Entries {
		e := dir.Entries[i]
		if e.Name != name || e.Kind != kind.String() {
			continue
		}
		if debug.Store() {
			debug.Logf("dirstore remove %s %s\n", kind, name)
		}
		if err := os.Remove(filepath.Join(dir.Root, e.File)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("could not remove %q: %w", e.File, err)
		}
		dir.Entries = append(dir.Entries[:i], dir.Entries[i+1:]...)
		return dir.Flush()
	}
	return nil
}

// Flush rewrites the manifest.
func (dir *Dir) Flush() error {
	d, err := yaml.Marshal(dir)
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", ManifestName, err)
	}
	if err := os.WriteFile(filepath.Join(dir.Root, ManifestName), d, 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", ManifestName, err)
	}
	return nil
}

func (dir *Dir) fileName(name string, kind defpatch.Kind) string {
	base := sanitize(name) + "-" + kind.String()
	file := base + ".sexp"
	for i := 1; dir.hasFile(file); i++ {
		file = fmt.Sprintf("%s-%d.sexp", base, i)
	}
	return file
}

func (dir *Dir) hasFile(file string) bool {
	for _, e := range dir.Entries {
		if e.File == file {
			return true
		}
	}
	return false
}

func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "def"
	}
	return b.String()
}

// KindValue parses a manifest entry's kind string.
func (e Entry) KindValue() (defpatch.Kind, error) {
	var k defpatch.Kind
	if err := k.UnmarshalText([]byte(e.Kind)); err != nil {
		return 0, fmt.Errorf("bad kind in manifest entry %q: %v", e.Name, err)
	}
	return k, nil
}
