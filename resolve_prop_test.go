package defpatch

import (
	"fmt"
	"testing"

	"github.com/defpatch/defpatch/ir"
	"pgregory.net/rapid"
)

// genAtom generates leaf nodes whose symbols cannot collide with
// directive names.
func genAtom() *rapid.Generator[*ir.Node] {
	return rapid.Custom(func(rt *rapid.T) *ir.Node {
		switch rapid.IntRange(0, 2).Draw(rt, "atomKind") {
		case 0:
			return ir.Sym(rapid.StringMatching(`v[0-9]{1,3}`).Draw(rt, "sym"))
		case 1:
			return ir.FromInt(rapid.Int64Range(-1000, 1000).Draw(rt, "int"))
		default:
			return ir.FromString(rapid.StringMatching(`[a-z ]{0,8}`).Draw(rt, "str"))
		}
	})
}

func genTree(depth int) *rapid.Generator[*ir.Node] {
	if depth <= 0 {
		return genAtom()
	}
	return rapid.OneOf(genAtom(), rapid.Custom(func(rt *rapid.T) *ir.Node {
		n := rapid.IntRange(0, 4).Draw(rt, "len")
		vals := make([]*ir.Node, n)
		for i := range vals {
			vals[i] = genTree(depth-1).Draw(rt, fmt.Sprintf("child%d", i))
		}
		return ir.List(vals...)
	}))
}

func TestResolvePlainTreeIdentity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tree := genTree(3).Draw(rt, "tree")
		for _, patched := range []bool{true, false} {
			res, err := Resolve(tree, patched, nil)
			if err != nil {
				rt.Fatal(err)
			}
			if len(res) != 1 || !ir.Equal(res[0], tree) {
				rt.Fatalf("plain tree changed under resolution: %s", encodeSeq(res))
			}
		}
	})
}

func TestResolveDeterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 3).Draw(rt, "n")
		forms := make([]*ir.Node, n)
		for i := range forms {
			forms[i] = genTree(2).Draw(rt, fmt.Sprintf("form%d", i))
		}
		head := rapid.SampledFrom([]string{"add", "remove", "literal"}).Draw(rt, "head")
		tree := ir.List(append([]*ir.Node{ir.Sym(head)}, forms...)...)
		for _, patched := range []bool{true, false} {
			a, err := Resolve(tree, patched, nil)
			if err != nil {
				rt.Fatal(err)
			}
			b, err := Resolve(tree, patched, nil)
			if err != nil {
				rt.Fatal(err)
			}
			if !ir.EqualSlices(a, b) {
				rt.Fatalf("resolution not deterministic: %s vs %s", encodeSeq(a), encodeSeq(b))
			}
		}
	})
}

func TestAddRemoveComplementary(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 3).Draw(rt, "n")
		forms := make([]*ir.Node, n)
		for i := range forms {
			forms[i] = genTree(2).Draw(rt, fmt.Sprintf("form%d", i))
		}
		add := ir.List(append([]*ir.Node{ir.Sym("add")}, forms...)...)
		rem := ir.List(append([]*ir.Node{ir.Sym("remove")}, forms...)...)

		addP, err := Resolve(add, true, nil)
		if err != nil {
			rt.Fatal(err)
		}
		remO, err := Resolve(rem, false, nil)
		if err != nil {
			rt.Fatal(err)
		}
		if !ir.EqualSlices(addP, forms) || !ir.EqualSlices(remO, forms) {
			rt.Fatalf("included view lost forms: %s vs %s", encodeSeq(addP), encodeSeq(remO))
		}
		addO, err := Resolve(add, false, nil)
		if err != nil {
			rt.Fatal(err)
		}
		remP, err := Resolve(rem, true, nil)
		if err != nil {
			rt.Fatal(err)
		}
		if len(addO) != 0 || len(remP) != 0 {
			rt.Fatalf("excluded view not empty: %s vs %s", encodeSeq(addO), encodeSeq(remP))
		}
	})
}

func TestSwapDual(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := genTree(2).Draw(rt, "a")
		b := genTree(2).Draw(rt, "b")
		swap := ir.List(ir.Sym("swap"), a, b)
		p, err := Resolve(swap, true, nil)
		if err != nil {
			rt.Fatal(err)
		}
		o, err := Resolve(swap, false, nil)
		if err != nil {
			rt.Fatal(err)
		}
		if len(p) != 1 || !ir.Equal(p[0], b) {
			rt.Fatalf("patched view is not the replacement: %s", encodeSeq(p))
		}
		if len(o) != 1 || !ir.Equal(o[0], a) {
			rt.Fatalf("original view is not the source: %s", encodeSeq(o))
		}
	})
}

func TestWrapSpliceInverse(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 5).Draw(rt, "n")
		vals := make([]*ir.Node, n)
		for i := range vals {
			vals[i] = genTree(1).Draw(rt, fmt.Sprintf("val%d", i))
		}
		body := ir.List(vals...)
		triml := rapid.IntRange(0, n).Draw(rt, "triml")
		trimr := rapid.IntRange(0, n-triml).Draw(rt, "trimr")
		wrap := ir.List(ir.Sym("wrap"), ir.FromInt(int64(triml)), ir.FromInt(int64(trimr)), body)
		splice := ir.List(ir.Sym("splice"), ir.FromInt(int64(triml)), ir.FromInt(int64(trimr)), body)

		wrapP, err := Resolve(wrap, true, nil)
		if err != nil {
			rt.Fatal(err)
		}
		spliceO, err := Resolve(splice, false, nil)
		if err != nil {
			rt.Fatal(err)
		}
		if len(wrapP) != 1 || !ir.Equal(wrapP[0], body) {
			rt.Fatalf("wrapped view is not the body list: %s", encodeSeq(wrapP))
		}
		if !ir.EqualSlices(wrapP, spliceO) {
			rt.Fatalf("wrap/splice not inverse: %s vs %s", encodeSeq(wrapP), encodeSeq(spliceO))
		}
		wrapO, err := Resolve(wrap, false, nil)
		if err != nil {
			rt.Fatal(err)
		}
		spliceP, err := Resolve(splice, true, nil)
		if err != nil {
			rt.Fatal(err)
		}
		trimmed := vals[triml : n-trimr]
		if !ir.EqualSlices(wrapO, trimmed) || !ir.EqualSlices(spliceP, trimmed) {
			rt.Fatalf("trimmed view wrong: %s vs %s", encodeSeq(wrapO), encodeSeq(spliceP))
		}
	})
}
