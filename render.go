package treedec

import (
	"strconv"
	"strings"

	"github.com/reoring/treedec/i18n"
)

// RenderLines renders a TreeError into human-readable lines. Hints and leaves
// are indented proportionally to their nesting depth; each leaf is followed
// by a line naming the path at which it occurred. Leaf message text resolves
// through the i18n translator.
func RenderLines(e TreeError) []string {
	var out []string
	for _, n := range e.nodes {
		renderNode(&out, n, 0)
	}
	return out
}

// Render joins RenderLines with newlines.
func Render(e TreeError) string {
	return strings.Join(RenderLines(e), "\n")
}

func renderNode(out *[]string, n treeNode, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.branch {
		*out = append(*out, indent+hintText(n.hint))
		for _, c := range n.children {
			renderNode(out, c, depth+1)
		}
		return
	}
	*out = append(*out, indent+leafText(n.leaf))
	*out = append(*out, indent+"  at path: "+n.path.String())
}

func hintText(h Hint) string {
	switch h.Kind {
	case HintTypeName:
		return "while decoding the type, " + h.Name
	case HintCtorName:
		return "while decoding the constructor, " + h.Name
	case HintSubterm:
		return "while decoding the subterm at index " + strconv.Itoa(h.Index)
	case HintFieldName:
		return "while decoding the field, " + h.Name
	default:
		return "while decoding"
	}
}

func leafText(l LeafError) string {
	switch l.Kind {
	case LeafTypeMismatch:
		return i18n.T(l.Kind.Code(), map[string]string{
			"expected": l.Expected.String(),
			"got":      l.Actual.String(),
		})
	case LeafMissingField:
		return i18n.T(l.Kind.Code(), map[string]string{"key": l.Name})
	case LeafMissingIndex:
		return i18n.T(l.Kind.Code(), map[string]string{"index": strconv.Itoa(l.Index)})
	default:
		return i18n.T(l.Kind.Code(), map[string]string{"message": l.Message})
	}
}
