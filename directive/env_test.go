package directive

import (
	"testing"

	"github.com/defpatch/defpatch/ir"
)

func TestEnvBindRestore(t *testing.T) {
	env := NewEnv()
	if _, ok := env.Lookup("x"); ok {
		t.Fatal("lookup in empty env succeeded")
	}

	restore := env.Bind("x", []*ir.Node{ir.FromInt(1)})
	vals, ok := env.Lookup("x")
	if !ok || len(vals) != 1 || !ir.Equal(vals[0], ir.FromInt(1)) {
		t.Fatal("bound value not visible")
	}

	// shadow, then unwind back to the outer binding
	inner := env.Bind("x", []*ir.Node{ir.FromInt(2)})
	vals, _ = env.Lookup("x")
	if !ir.Equal(vals[0], ir.FromInt(2)) {
		t.Fatal("shadowing binding not visible")
	}
	inner()
	vals, _ = env.Lookup("x")
	if !ir.Equal(vals[0], ir.FromInt(1)) {
		t.Fatal("outer binding not restored")
	}

	restore()
	if _, ok := env.Lookup("x"); ok {
		t.Fatal("binding survived its restore")
	}
	if env.Len() != 0 {
		t.Fatalf("env has %d entries after unwind", env.Len())
	}
}

func TestEnvNil(t *testing.T) {
	var env *Env
	if _, ok := env.Lookup("x"); ok {
		t.Fatal("nil env lookup succeeded")
	}
	if env.Len() != 0 {
		t.Fatal("nil env has entries")
	}
}

func TestRegister(t *testing.T) {
	for _, want := range []string{"add", "remove", "swap", "wrap", "splice", "let", "literal"} {
		if Lookup(want) == nil {
			t.Errorf("directive %s not registered", want)
		}
	}
	if Lookup("nope") != nil {
		t.Error("lookup of unregistered symbol succeeded")
	}
	syms := Symbols()
	if len(syms) != 7 {
		t.Errorf("got %d symbols, want 7", len(syms))
	}
	for i := 1; i < len(syms); i++ {
		if syms[i-1].String() >= syms[i].String() {
			t.Errorf("symbols not sorted: %s before %s", syms[i-1], syms[i])
		}
	}
	if err := Register(Add()); err == nil {
		t.Error("re-registering add succeeded")
	}
}

func TestSplit(t *testing.T) {
	sym, forms := Split(ir.List(ir.Sym("add"), ir.Sym("x"), ir.FromInt(1)))
	if sym == nil || sym.String() != "add" {
		t.Fatalf("got %v, want add", sym)
	}
	if len(forms) != 2 {
		t.Fatalf("got %d forms, want 2", len(forms))
	}
	if sym, _ := Split(ir.List(ir.Sym("f"), ir.Sym("x"))); sym != nil {
		t.Error("ordinary list recognized as directive")
	}
	if sym, _ := Split(ir.Sym("add")); sym != nil {
		t.Error("atom recognized as directive")
	}
	if sym, _ := Split(ir.List(ir.FromInt(1), ir.Sym("add"))); sym != nil {
		t.Error("list with non-symbol head recognized as directive")
	}
}
