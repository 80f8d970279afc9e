package treedec

// Primitive type checkers, one per shape of the canonical value model. Each
// either succeeds with the unwrapped payload or reports a type mismatch
// through the strategy. These are the leaves of the decoder graph; nothing
// here recurses.

func mismatch[E, X, A any](dc DecodeCtx[E, X], want Kind) Result[E, A] {
	return Fail[E, A](dc.Strategy.OnTypeMismatch(dc.Path, want, Describe(dc.Value)))
}

// AsNull succeeds only on null.
func AsNull[E, X any]() Decoder[E, X, struct{}] {
	return func(dc DecodeCtx[E, X]) Result[E, struct{}] {
		if dc.Value == nil {
			return Ok[E](struct{}{})
		}
		return mismatch[E, X, struct{}](dc, KindNull)
	}
}

// AsBool succeeds with the underlying bool.
func AsBool[E, X any]() Decoder[E, X, bool] {
	return func(dc DecodeCtx[E, X]) Result[E, bool] {
		if b, ok := dc.Value.(bool); ok {
			return Ok[E](b)
		}
		return mismatch[E, X, bool](dc, KindBool)
	}
}

// AsNumber succeeds with the underlying float64. The canonical model carries
// numbers as float64 only; sources are responsible for normalization.
func AsNumber[E, X any]() Decoder[E, X, float64] {
	return func(dc DecodeCtx[E, X]) Result[E, float64] {
		if f, ok := dc.Value.(float64); ok {
			return Ok[E](f)
		}
		return mismatch[E, X, float64](dc, KindNumber)
	}
}

// AsString succeeds with the underlying string.
func AsString[E, X any]() Decoder[E, X, string] {
	return func(dc DecodeCtx[E, X]) Result[E, string] {
		if s, ok := dc.Value.(string); ok {
			return Ok[E](s)
		}
		return mismatch[E, X, string](dc, KindString)
	}
}

// AsArray succeeds with the raw element slice without descending into it.
func AsArray[E, X any]() Decoder[E, X, []any] {
	return func(dc DecodeCtx[E, X]) Result[E, []any] {
		if a, ok := dc.Value.([]any); ok {
			return Ok[E](a)
		}
		return mismatch[E, X, []any](dc, KindArray)
	}
}

// AsObject succeeds with the raw key-value map without descending into it.
func AsObject[E, X any]() Decoder[E, X, map[string]any] {
	return func(dc DecodeCtx[E, X]) Result[E, map[string]any] {
		if m, ok := dc.Value.(map[string]any); ok {
			return Ok[E](m)
		}
		return mismatch[E, X, map[string]any](dc, KindObject)
	}
}
