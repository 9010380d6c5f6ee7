package ir

import "testing"

func TestCloneIndependence(t *testing.T) {
	orig := List(Sym("f"), List(Sym("g"), FromInt(1)), FromString("s"))
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatal("clone not equal to original")
	}
	cp.Values[1].Values[1] = FromInt(2)
	cp.Values[2].String = "t"
	if !Equal(orig, List(Sym("f"), List(Sym("g"), FromInt(1)), FromString("s"))) {
		t.Error("mutating clone changed original")
	}
}

func TestHead(t *testing.T) {
	if got := List(Sym("f"), Sym("x")).Head(); got != "f" {
		t.Errorf("got %q, want f", got)
	}
	if got := List(FromInt(1), Sym("x")).Head(); got != "" {
		t.Errorf("non-symbol head: got %q", got)
	}
	if got := List().Head(); got != "" {
		t.Errorf("empty list head: got %q", got)
	}
	if got := Sym("f").Head(); got != "" {
		t.Errorf("atom head: got %q", got)
	}
}

func TestInt(t *testing.T) {
	if v, ok := FromInt(42).Int(); !ok || v != 42 {
		t.Errorf("got %d %t", v, ok)
	}
	if _, ok := FromFloat(1.5).Int(); ok {
		t.Error("float reported as int")
	}
	if _, ok := Sym("x").Int(); ok {
		t.Error("symbol reported as int")
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("round trip %s gave %s", typ, back)
		}
	}
}
