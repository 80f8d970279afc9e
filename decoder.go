package treedec

// Decoder is a context-threaded, side-effect-free computation from the
// current subtree to either a value of type A or an accumulated error of
// type E. Decoders are plain first-class values; composition happens through
// the free functions below (Go methods cannot introduce type parameters).
type Decoder[E, X, A any] func(DecodeCtx[E, X]) Result[E, A]

// Decode is the sole boundary between caller and engine: it runs a decoder
// against an already-parsed tree with an empty path.
func Decode[E, X, A any](s Strategy[E], extra X, v any, d Decoder[E, X, A]) Result[E, A] {
	return d(DecodeCtx[E, X]{Value: v, Strategy: s, Extra: extra})
}

// Pure always succeeds with v, ignoring the context.
func Pure[E, X, A any](v A) Decoder[E, X, A] {
	return func(DecodeCtx[E, X]) Result[E, A] { return Ok[E](v) }
}

// Map transforms the success value of a decoder, preserving errors.
func Map[E, X, A, B any](d Decoder[E, X, A], f func(A) B) Decoder[E, X, B] {
	return func(dc DecodeCtx[E, X]) Result[E, B] {
		r := d(dc)
		if r.IsErr() {
			return Fail[E, B](r.Err())
		}
		return Ok[E](f(r.Value()))
	}
}

// Map2 runs two decoders against the same context and combines their results.
// Both decoders always run: when both fail, their errors are merged via the
// strategy's Append; a single failure propagates unchanged.
func Map2[E, X, A, B, C any](da Decoder[E, X, A], db Decoder[E, X, B], f func(A, B) C) Decoder[E, X, C] {
	return func(dc DecodeCtx[E, X]) Result[E, C] {
		ra := da(dc)
		rb := db(dc)
		switch {
		case ra.IsErr() && rb.IsErr():
			return Fail[E, C](dc.Strategy.Append(ra.Err(), rb.Err()))
		case ra.IsErr():
			return Fail[E, C](ra.Err())
		case rb.IsErr():
			return Fail[E, C](rb.Err())
		}
		return Ok[E](f(ra.Value(), rb.Value()))
	}
}

// At descends one structural step before running d: the returned decoder
// evaluates d against the given subtree with the path extended by off.
func At[E, X, A any](off Offset, v any, d Decoder[E, X, A]) Decoder[E, X, A] {
	return func(dc DecodeCtx[E, X]) Result[E, A] {
		return d(dc.WithOffset(off, v))
	}
}

// Hinted wraps a decoder so that its failures carry an extra contextual hint.
// Multiple Hinted layers stack as the error propagates upward.
func Hinted[E, X, A any](d Decoder[E, X, A], h Hint) Decoder[E, X, A] {
	return func(dc DecodeCtx[E, X]) Result[E, A] {
		r := d(dc)
		if r.IsErr() {
			return Fail[E, A](dc.Strategy.AddHint(dc.Path, h, r.Err()))
		}
		return r
	}
}
