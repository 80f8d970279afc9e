package treedec

// Alternation combinators. Both run their alternatives against the same
// context and differ only in which diagnostics survive; which one to use is a
// caller policy, never an engine default.

// TryAccumulate tries d1 and, on failure, d2. When both fail, the two errors
// are combined via the strategy's Append (d1's error first). Use it when
// every alternative's failure is diagnostically relevant, typically sum types
// with few constructors.
func TryAccumulate[E, X, A any](d1, d2 Decoder[E, X, A]) Decoder[E, X, A] {
	return func(dc DecodeCtx[E, X]) Result[E, A] {
		r1 := d1(dc)
		if !r1.IsErr() {
			return r1
		}
		r2 := d2(dc)
		if !r2.IsErr() {
			return r2
		}
		return Fail[E, A](dc.Strategy.Append(r1.Err(), r2.Err()))
	}
}

// TryKeepLast tries d1 and, on failure, returns d2's outcome verbatim,
// discarding d1's error entirely. Use it when trying many alternatives in
// sequence and only the final, most specific attempt's diagnostics matter;
// it keeps error output from growing linearly with the constructor count.
func TryKeepLast[E, X, A any](d1, d2 Decoder[E, X, A]) Decoder[E, X, A] {
	return func(dc DecodeCtx[E, X]) Result[E, A] {
		r1 := d1(dc)
		if !r1.IsErr() {
			return r1
		}
		return d2(dc)
	}
}

// FirstOfAccumulate chains alternatives left to right under TryAccumulate.
// It panics when called with no alternatives: an empty sum type is a
// definition-time mistake, not a decodable shape.
func FirstOfAccumulate[E, X, A any](ds ...Decoder[E, X, A]) Decoder[E, X, A] {
	if len(ds) == 0 {
		panic("treedec: FirstOfAccumulate requires at least one alternative")
	}
	d := ds[0]
	for _, next := range ds[1:] {
		d = TryAccumulate(d, next)
	}
	return d
}

// FirstOfKeepLast chains alternatives left to right under TryKeepLast, so
// only the last failing alternative's error survives.
func FirstOfKeepLast[E, X, A any](ds ...Decoder[E, X, A]) Decoder[E, X, A] {
	if len(ds) == 0 {
		panic("treedec: FirstOfKeepLast requires at least one alternative")
	}
	d := ds[0]
	for _, next := range ds[1:] {
		d = TryKeepLast(d, next)
	}
	return d
}
