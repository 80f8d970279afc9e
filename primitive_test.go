package treedec_test

import (
	"testing"

	treedec "github.com/reoring/treedec"
)

type noExtra = struct{}

type terr = treedec.TreeError

func decodeTree[A any](t *testing.T, v any, d treedec.Decoder[terr, noExtra, A]) treedec.Result[terr, A] {
	t.Helper()
	return treedec.Decode(treedec.TreeStrategy(), noExtra{}, v, d)
}

func TestPrimitives_Success(t *testing.T) {
	if r := decodeTree(t, nil, treedec.AsNull[terr, noExtra]()); r.IsErr() {
		t.Fatalf("null: %v", r.Err())
	}
	if r := decodeTree(t, true, treedec.AsBool[terr, noExtra]()); r.IsErr() || r.Value() != true {
		t.Fatalf("bool: %v %v", r.Value(), r.Err())
	}
	if r := decodeTree(t, 1.5, treedec.AsNumber[terr, noExtra]()); r.IsErr() || r.Value() != 1.5 {
		t.Fatalf("number: %v %v", r.Value(), r.Err())
	}
	if r := decodeTree(t, "x", treedec.AsString[terr, noExtra]()); r.IsErr() || r.Value() != "x" {
		t.Fatalf("string: %v %v", r.Value(), r.Err())
	}
	if r := decodeTree(t, []any{1.0}, treedec.AsArray[terr, noExtra]()); r.IsErr() || len(r.Value()) != 1 {
		t.Fatalf("array: %v %v", r.Value(), r.Err())
	}
	if r := decodeTree(t, map[string]any{"a": 1.0}, treedec.AsObject[terr, noExtra]()); r.IsErr() || len(r.Value()) != 1 {
		t.Fatalf("object: %v %v", r.Value(), r.Err())
	}
}

func TestPrimitives_Mismatch(t *testing.T) {
	r := decodeTree(t, "x", treedec.AsNumber[terr, noExtra]())
	if !r.IsErr() {
		t.Fatalf("expected mismatch")
	}
	leaves := r.Err().Leaves()
	if len(leaves) != 1 {
		t.Fatalf("expected exactly one leaf, got %d", len(leaves))
	}
	l := leaves[0]
	if l.Leaf.Kind != treedec.LeafTypeMismatch {
		t.Fatalf("expected type mismatch, got %v", l.Leaf.Kind)
	}
	if l.Leaf.Expected != treedec.KindNumber {
		t.Fatalf("expected Number, got %v", l.Leaf.Expected)
	}
	if l.Leaf.Actual.Kind != treedec.KindString || l.Leaf.Actual.Value != "x" {
		t.Fatalf("actual description should carry the payload, got %+v", l.Leaf.Actual)
	}
	if l.Path.String() != "ROOT" {
		t.Fatalf("expected ROOT path, got %s", l.Path)
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "Null"},
		{true, "Bool(true)"},
		{42.0, "Number(42)"},
		{"x", `String("x")`},
		{[]any{1.0, 2.0, 3.0}, "Array(length 3)"},
		{map[string]any{"a": 1.0, "b": 2.0}, "Object(2 keys)"},
		{42, "Number(42)"},
	}
	for _, c := range cases {
		if got := treedec.Describe(c.in).String(); got != c.want {
			t.Fatalf("Describe(%v) = %q, want %q", c.in, got, c.want)
		}
	}
	if treedec.Describe(struct{}{}).Kind != treedec.KindInvalid {
		t.Fatalf("non-canonical value should describe as Invalid")
	}
}
