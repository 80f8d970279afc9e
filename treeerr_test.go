package treedec_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	treedec "github.com/reoring/treedec"
)

func mismatchAt(key string) terr {
	s := treedec.TreeStrategy()
	return s.OnTypeMismatch(treedec.Path{treedec.AtKey(key)}, treedec.KindString, treedec.Describe(1.0))
}

func TestMerge_Associative(t *testing.T) {
	a := mismatchAt("a")
	b := mismatchAt("b")
	c := mismatchAt("c")
	left := a.Merge(b).Merge(c)
	right := a.Merge(b.Merge(c))
	if treedec.Render(left) != treedec.Render(right) {
		t.Fatalf("merge is not associative:\n%s\n--\n%s", treedec.Render(left), treedec.Render(right))
	}
	if len(left.Leaves()) != 3 {
		t.Fatalf("merge dropped leaves: %d", len(left.Leaves()))
	}
}

func TestMerge_PreservesOperands(t *testing.T) {
	a := mismatchAt("a")
	b := mismatchAt("b")
	_ = a.Merge(b)
	if len(a.Leaves()) != 1 || len(b.Leaves()) != 1 {
		t.Fatalf("merge disturbed an operand")
	}
}

func TestAddHint_WrapsOnlyItsBranch(t *testing.T) {
	s := treedec.TreeStrategy()
	hinted := s.AddHint(treedec.Path{}, treedec.TypeName("Foo"), mismatchAt("a"))
	combined := s.Append(hinted, mismatchAt("b"))
	lines := treedec.RenderLines(combined)
	if !strings.Contains(lines[0], "while decoding the type, Foo") {
		t.Fatalf("expected hint line first, got %q", lines[0])
	}
	// the sibling leaf must not be indented under the hint: its path line
	// stays at depth zero ("  at path: ..."), not at the hinted depth
	var siblingLine string
	for _, ln := range lines {
		if strings.Contains(ln, "ROOT.b") {
			siblingLine = ln
		}
	}
	if siblingLine != "  at path: ROOT.b" {
		t.Fatalf("sibling was wrapped by a hint it does not belong to: %q", siblingLine)
	}
}

func TestTreeError_ErrorSummary(t *testing.T) {
	e := mismatchAt("a").Merge(mismatchAt("b")).Merge(mismatchAt("c")).Merge(mismatchAt("d"))
	msg := e.Error()
	if !strings.Contains(msg, "type_mismatch at ROOT.a") {
		t.Fatalf("summary missing first leaf: %q", msg)
	}
	if !strings.Contains(msg, "(total 4)") {
		t.Fatalf("summary missing overflow marker: %q", msg)
	}
}

func TestAsTreeError(t *testing.T) {
	e := mismatchAt("a")
	wrapped := fmt.Errorf("outer: %w", error(e))
	got, ok := treedec.AsTreeError(wrapped)
	if !ok || len(got.Leaves()) != 1 {
		t.Fatalf("failed to extract TreeError from chain")
	}
	if _, ok := treedec.AsTreeError(errors.New("plain")); ok {
		t.Fatalf("plain error should not extract")
	}
	if _, ok := treedec.AsTreeError(nil); ok {
		t.Fatalf("nil error should not extract")
	}
}

func TestLastErrorStrategy_KeepsMostRecentSibling(t *testing.T) {
	s := treedec.LastErrorStrategy()
	e := s.Append(mismatchAt("a"), mismatchAt("b"))
	leaves := e.Leaves()
	if len(leaves) != 1 || leaves[0].Path.String() != "ROOT.b" {
		t.Fatalf("expected only the most recent sibling, got %+v", leaves)
	}
}
