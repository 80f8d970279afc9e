package treedec_test

import (
	"testing"

	treedec "github.com/reoring/treedec"
)

func TestPure_IgnoresContext(t *testing.T) {
	r := decodeTree(t, "anything", treedec.Pure[terr, noExtra](42))
	if r.IsErr() || r.Value() != 42 {
		t.Fatalf("pure should always succeed: %v %v", r.Value(), r.Err())
	}
}

func TestMap_TransformsValue(t *testing.T) {
	d := treedec.Map(treedec.AsString[terr, noExtra](), func(s string) int { return len(s) })
	r := decodeTree(t, "four", d)
	if r.IsErr() || r.Value() != 4 {
		t.Fatalf("map: %v %v", r.Value(), r.Err())
	}
	// error-preserving
	if r := decodeTree(t, 1.0, d); !r.IsErr() {
		t.Fatalf("expected mismatch to survive Map")
	}
}

func TestMap2_AccumulatesBothFailures(t *testing.T) {
	d := treedec.Map2(
		treedec.AsString[terr, noExtra](),
		treedec.AsNumber[terr, noExtra](),
		func(s string, f float64) string { return s },
	)
	// a bool satisfies neither side; both mismatches must be retained
	r := decodeTree(t, true, d)
	if !r.IsErr() {
		t.Fatalf("expected failure")
	}
	if n := len(r.Err().Leaves()); n != 2 {
		t.Fatalf("expected 2 leaves, got %d", n)
	}
}

func TestMap2_SingleFailurePropagatesUnchanged(t *testing.T) {
	d := treedec.Map2(
		treedec.AsString[terr, noExtra](),
		treedec.Pure[terr, noExtra](1.0),
		func(s string, f float64) string { return s },
	)
	r := decodeTree(t, 5.0, d)
	if !r.IsErr() {
		t.Fatalf("expected failure")
	}
	leaves := r.Err().Leaves()
	if len(leaves) != 1 || leaves[0].Leaf.Kind != treedec.LeafTypeMismatch {
		t.Fatalf("single failure should pass through untouched: %+v", leaves)
	}
}

func TestAt_ExtendsPathForNestedFailure(t *testing.T) {
	inner := map[string]any{"n": "oops"}
	d := treedec.At(treedec.AtKey("n"), inner["n"], treedec.AsNumber[terr, noExtra]())
	r := decodeTree(t, inner, d)
	if !r.IsErr() {
		t.Fatalf("expected failure")
	}
	if got := r.Err().Leaves()[0].Path.String(); got != "ROOT.n" {
		t.Fatalf("expected ROOT.n, got %s", got)
	}
}

func TestWithOffset_DoesNotLeakAcrossSiblings(t *testing.T) {
	dc := treedec.DecodeCtx[terr, noExtra]{Value: nil, Strategy: treedec.TreeStrategy()}
	a := dc.WithOffset(treedec.AtKey("a"), 1.0)
	b := dc.WithOffset(treedec.AtKey("b"), 2.0)
	if a.Path.String() != "ROOT.a" || b.Path.String() != "ROOT.b" {
		t.Fatalf("sibling contexts interfered: %s / %s", a.Path, b.Path)
	}
	deep := a.WithOffset(treedec.AtIndex(0), nil)
	if a.Path.String() != "ROOT.a" {
		t.Fatalf("descent mutated parent path: %s", a.Path)
	}
	if deep.Path.String() != "ROOT.a[0]" {
		t.Fatalf("unexpected nested path: %s", deep.Path)
	}
}

func TestDecode_Deterministic(t *testing.T) {
	v := map[string]any{"a": "x", "b": 1.0}
	d := treedec.Map2(
		treedec.AsNumber[terr, noExtra](),
		treedec.AsString[terr, noExtra](),
		func(f float64, s string) string { return s },
	)
	r1 := decodeTree(t, v, d)
	r2 := decodeTree(t, v, d)
	if !r1.IsErr() || !r2.IsErr() {
		t.Fatalf("expected failures")
	}
	if treedec.Render(r1.Err()) != treedec.Render(r2.Err()) {
		t.Fatalf("repeated decode produced different diagnostics")
	}
}
