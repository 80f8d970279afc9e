package treedec_test

import (
	"testing"

	treedec "github.com/reoring/treedec"
)

func TestPath_String(t *testing.T) {
	p := treedec.Path{treedec.AtKey("items"), treedec.AtIndex(2), treedec.AtKey("price")}
	if got := p.String(); got != "ROOT.items[2].price" {
		t.Fatalf("unexpected rendering: %q", got)
	}
	if got := (treedec.Path{}).String(); got != "ROOT" {
		t.Fatalf("empty path should render ROOT, got %q", got)
	}
}

func TestOffset_Accessors(t *testing.T) {
	k := treedec.AtKey("name")
	if !k.IsKey() || k.Key() != "name" {
		t.Fatalf("key offset accessors broken: %+v", k)
	}
	i := treedec.AtIndex(7)
	if i.IsKey() || i.Index() != 7 {
		t.Fatalf("index offset accessors broken: %+v", i)
	}
}

func TestPath_Equal(t *testing.T) {
	a := treedec.Path{treedec.AtKey("a"), treedec.AtIndex(0)}
	b := treedec.Path{treedec.AtKey("a"), treedec.AtIndex(0)}
	c := treedec.Path{treedec.AtKey("a"), treedec.AtIndex(1)}
	if !a.Equal(b) {
		t.Fatalf("expected equal paths")
	}
	if a.Equal(c) {
		t.Fatalf("expected unequal paths")
	}
}
