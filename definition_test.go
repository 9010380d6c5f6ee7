package defpatch

import (
	"errors"
	"testing"

	"github.com/defpatch/defpatch/encode"
	"github.com/defpatch/defpatch/parse"
)

type defTest struct {
	In   string
	Kind Kind
	Name string
	Body string
	Err  error
}

func TestParseDefinition(t *testing.T) {
	tests := []defTest{
		{
			In:   `(patch function f (defun f (x) x))`,
			Kind: FunctionKind,
			Name: "f",
			Body: `(defun f (x) x)`,
		},
		{
			In:   `(patch variable threshold (defvar threshold 10))`,
			Kind: VariableKind,
			Name: "threshold",
			Body: `(defvar threshold 10)`,
		},
		{
			In:   `(patch composite widget (define-widget widget ()))`,
			Kind: CompositeKind,
			Name: "widget",
			Body: `(define-widget widget ())`,
		},
		{
			In:  `(patch function f)`,
			Err: ErrBadDefinition,
		},
		{
			In:  `(patch function f (defun f () nil) extra)`,
			Err: ErrBadDefinition,
		},
		{
			In:  `(patched function f (defun f () nil))`,
			Err: ErrBadDefinition,
		},
		{
			In:  `(patch method f (defun f () nil))`,
			Err: ErrBadDefinition,
		},
		{
			In:  `(patch function "f" (defun f () nil))`,
			Err: ErrBadDefinition,
		},
		{
			In:  `patch`,
			Err: ErrBadDefinition,
		},
	}
	for i := range tests {
		test := &tests[i]
		node, err := parse.Parse([]byte(test.In))
		if err != nil {
			t.Errorf("error decoding input in test %d: %v", i, err)
			continue
		}
		def, err := ParseDefinition(node)
		if test.Err != nil {
			if err == nil {
				t.Errorf("test case %d: expected error %v", i, test.Err)
			} else if !errors.Is(err, test.Err) {
				t.Errorf("test case %d: got error %v, want %v", i, err, test.Err)
			}
			continue
		}
		if err != nil {
			t.Errorf("test case %d: unexpected error %v", i, err)
			continue
		}
		if def.Kind != test.Kind || def.Name != test.Name {
			t.Errorf("test case %d: got %s %s, want %s %s", i, def.Kind, def.Name, test.Kind, test.Name)
		}
		if got := encode.MustString(def.Body); got != test.Body {
			t.Errorf("test case %d: body %q, want %q", i, got, test.Body)
		}
	}
}

func TestKindText(t *testing.T) {
	for _, kind := range Kinds() {
		d, err := kind.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != kind {
			t.Errorf("round trip %s gave %s", kind, back)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("method")); err == nil {
		t.Error("expected error for unrecognized kind")
	}
}
