package treedec

import (
	"strconv"
	"strings"
)

// Offset is one step of the route from the root value to the value under
// inspection: either an object key or an array index.
type Offset struct {
	key   string
	index int
	isKey bool
}

// AtKey builds an Offset descending into an object field.
func AtKey(name string) Offset { return Offset{key: name, isKey: true} }

// AtIndex builds an Offset descending into an array element.
func AtIndex(i int) Offset { return Offset{index: i} }

// IsKey reports whether the offset is an object-key step.
func (o Offset) IsKey() bool { return o.isKey }

// Key returns the object key for a key offset ("" for index offsets).
func (o Offset) Key() string { return o.key }

// Index returns the array index for an index offset (0 for key offsets).
func (o Offset) Index() int { return o.index }

func (o Offset) String() string {
	if o.isKey {
		return "." + o.key
	}
	return "[" + strconv.Itoa(o.index) + "]"
}

// Path is the ordered sequence of offsets from the root to the current value.
// It grows only through DecodeCtx.WithOffset; every descent allocates a fresh
// backing array so sibling decodes never observe each other's steps.
type Path []Offset

// String renders the path in ROOT.field[index] notation.
func (p Path) String() string {
	var b strings.Builder
	b.WriteString("ROOT")
	for _, o := range p {
		b.WriteString(o.String())
	}
	return b.String()
}

// Equal reports whether two paths denote the same route.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// HintKind discriminates the contextual annotations attachable to an error.
type HintKind int

const (
	HintTypeName HintKind = iota
	HintCtorName
	HintSubterm
	HintFieldName
)

// Hint is a non-structural annotation attached to an error while it unwinds
// through nested decoders. Hints affect the rendered explanation only; they
// never extend the path.
type Hint struct {
	Kind  HintKind
	Name  string // TypeName, CtorName, FieldName
	Index int    // Subterm
}

// TypeName annotates an error with the name of the type being decoded.
func TypeName(name string) Hint { return Hint{Kind: HintTypeName, Name: name} }

// CtorName annotates an error with the constructor being attempted.
func CtorName(name string) Hint { return Hint{Kind: HintCtorName, Name: name} }

// Subterm annotates an error with the positional subterm being decoded.
func Subterm(i int) Hint { return Hint{Kind: HintSubterm, Index: i} }

// FieldName annotates an error with the record field being decoded.
func FieldName(name string) Hint { return Hint{Kind: HintFieldName, Name: name} }
