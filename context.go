package treedec

// DecodeCtx is the immutable per-call bundle threaded through a decode: the
// current subtree, the path traversed so far, the error strategy, and an
// opaque extra value for per-call overrides. The engine never inspects Extra.
//
// A decoder receiving a DecodeCtx never mutates it; descending into a subtree
// builds a new context via WithOffset, and the old one resumes untouched when
// the nested computation returns.
type DecodeCtx[E, X any] struct {
	Value    any
	Path     Path
	Strategy Strategy[E]
	Extra    X
}

// WithOffset returns a context identical to dc except that the value is
// replaced and the path is extended by one step. This is the only way a path
// grows, and it is always paired with a concrete structural descent.
func (dc DecodeCtx[E, X]) WithOffset(off Offset, v any) DecodeCtx[E, X] {
	p := make(Path, len(dc.Path), len(dc.Path)+1)
	copy(p, dc.Path)
	dc.Path = append(p, off)
	dc.Value = v
	return dc
}
