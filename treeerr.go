package treedec

import (
	"errors"
	"fmt"
	"strings"
)

// LeafKind discriminates the closed leaf-error taxonomy.
type LeafKind int

const (
	LeafTypeMismatch LeafKind = iota
	LeafMissingField
	LeafMissingIndex
	LeafUnrefinableValue
	LeafStructureError
)

// Code returns the stable code string for the leaf kind.
func (k LeafKind) Code() string {
	switch k {
	case LeafTypeMismatch:
		return "type_mismatch"
	case LeafMissingField:
		return "missing_field"
	case LeafMissingIndex:
		return "missing_index"
	case LeafUnrefinableValue:
		return "unrefinable_value"
	case LeafStructureError:
		return "structure_error"
	default:
		return "unknown"
	}
}

// LeafError is one concrete failure. Only the fields relevant to its kind are
// populated.
type LeafError struct {
	Kind     LeafKind
	Expected Kind      // TypeMismatch
	Actual   ValueDesc // TypeMismatch
	Name     string    // MissingField
	Index    int       // MissingIndex
	Message  string    // UnrefinableValue, StructureError
}

// treeNode is either a leaf {path, leaf} or a hint branch {path, hint}
// wrapping child nodes.
type treeNode struct {
	path     Path
	branch   bool
	hint     Hint
	leaf     LeafError
	children []treeNode
}

// TreeError is the reference error representation: an ordered forest of hint
// branches over leaves. Merge is associative and preserves every leaf of both
// operands; AddHint wraps only the branch it was attached to.
//
// TreeError implements error so it can travel through ordinary error returns,
// but the engine always hands it back structurally via Result.
type TreeError struct {
	nodes []treeNode
}

// LeafAt pairs a leaf error with the path at which it occurred.
type LeafAt struct {
	Path Path
	Leaf LeafError
}

// IsZero reports whether the error carries no failures at all.
func (e TreeError) IsZero() bool { return len(e.nodes) == 0 }

// Merge concatenates the two forests without dropping any leaf. It allocates
// a fresh node slice, so neither operand is disturbed.
func (e TreeError) Merge(o TreeError) TreeError {
	nodes := make([]treeNode, 0, len(e.nodes)+len(o.nodes))
	nodes = append(nodes, e.nodes...)
	nodes = append(nodes, o.nodes...)
	return TreeError{nodes: nodes}
}

// Leaves returns every leaf failure in rendering order, each with its path.
func (e TreeError) Leaves() []LeafAt {
	var out []LeafAt
	var walk func(ns []treeNode)
	walk = func(ns []treeNode) {
		for _, n := range ns {
			if n.branch {
				walk(n.children)
				continue
			}
			out = append(out, LeafAt{Path: n.path, Leaf: n.leaf})
		}
	}
	walk(e.nodes)
	return out
}

// Error summarizes the first few leaves, code and path each, in the shape
// "type_mismatch at ROOT.name; ...".
func (e TreeError) Error() string {
	leaves := e.Leaves()
	if len(leaves) == 0 {
		return ""
	}
	const maxShown = 3
	lim := len(leaves)
	if lim > maxShown {
		lim = maxShown
	}
	b := &strings.Builder{}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", leaves[i].Leaf.Kind.Code(), leaves[i].Path)
	}
	if len(leaves) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(leaves))
	}
	return b.String()
}

// AsTreeError extracts a TreeError from an error chain.
func AsTreeError(err error) (TreeError, bool) {
	if err == nil {
		return TreeError{}, false
	}
	var te TreeError
	if errors.As(err, &te) {
		return te, true
	}
	return TreeError{}, false
}

func leafNode(p Path, l LeafError) TreeError {
	return TreeError{nodes: []treeNode{{path: p, leaf: l}}}
}

// TreeStrategy returns the reference strategy: every occasion becomes a leaf
// and Append merges forests structurally, never dropping a leaf.
func TreeStrategy() Strategy[TreeError] {
	return Strategy[TreeError]{
		OnTypeMismatch: func(p Path, want Kind, got ValueDesc) TreeError {
			return leafNode(p, LeafError{Kind: LeafTypeMismatch, Expected: want, Actual: got})
		},
		OnMissingField: func(p Path, name string) TreeError {
			return leafNode(p, LeafError{Kind: LeafMissingField, Name: name})
		},
		OnMissingIndex: func(p Path, idx int) TreeError {
			return leafNode(p, LeafError{Kind: LeafMissingIndex, Index: idx})
		},
		OnUnrefinableValue: func(p Path, msg string) TreeError {
			return leafNode(p, LeafError{Kind: LeafUnrefinableValue, Message: msg})
		},
		OnStructureError: func(p Path, msg string) TreeError {
			return leafNode(p, LeafError{Kind: LeafStructureError, Message: msg})
		},
		AddHint: func(p Path, h Hint, e TreeError) TreeError {
			return TreeError{nodes: []treeNode{{path: p, branch: true, hint: h, children: e.nodes}}}
		},
		Append: func(a, b TreeError) TreeError { return a.Merge(b) },
	}
}

// LastErrorStrategy returns a bounded-detail variant of the reference
// strategy: Append keeps only the most recent sibling error. Occasions and
// hints behave exactly as in TreeStrategy.
func LastErrorStrategy() Strategy[TreeError] {
	s := TreeStrategy()
	s.Append = func(a, b TreeError) TreeError { return b }
	return s
}
