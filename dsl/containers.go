package dsl

import (
	"math"
	"sort"
	"strconv"

	treedec "github.com/reoring/treedec"
)

// errAcc folds sibling failures through Strategy.Append, keeping the first
// error as the seed so append order mirrors decode order.
type errAcc[E any] struct {
	err    E
	failed bool
}

func (a *errAcc[E]) add(s treedec.Strategy[E], e E) {
	if a.failed {
		a.err = s.Append(a.err, e)
		return
	}
	a.err = e
	a.failed = true
}

// ArrayOf decodes an array by running elem under every index offset.
// Element failures do not short-circuit; all of them accumulate.
func ArrayOf[E, X, A any](elem treedec.Decoder[E, X, A]) treedec.Decoder[E, X, []A] {
	return func(dc treedec.DecodeCtx[E, X]) treedec.Result[E, []A] {
		ra := treedec.AsArray[E, X]()(dc)
		if ra.IsErr() {
			return treedec.Fail[E, []A](ra.Err())
		}
		raw := ra.Value()
		out := make([]A, 0, len(raw))
		var acc errAcc[E]
		for i, el := range raw {
			r := elem(dc.WithOffset(treedec.AtIndex(i), el))
			if r.IsErr() {
				acc.add(dc.Strategy, r.Err())
				continue
			}
			out = append(out, r.Value())
		}
		if acc.failed {
			return treedec.Fail[E, []A](acc.err)
		}
		return treedec.Ok[E](out)
	}
}

// ObjectOf decodes every value of an object under its own key offset. Keys
// are visited in sorted order so accumulation is deterministic.
func ObjectOf[E, X, A any](elem treedec.Decoder[E, X, A]) treedec.Decoder[E, X, map[string]A] {
	return func(dc treedec.DecodeCtx[E, X]) treedec.Result[E, map[string]A] {
		ro := treedec.AsObject[E, X]()(dc)
		if ro.IsErr() {
			return treedec.Fail[E, map[string]A](ro.Err())
		}
		src := ro.Value()
		keys := make([]string, 0, len(src))
		for k := range src {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]A, len(src))
		var acc errAcc[E]
		for _, k := range keys {
			r := elem(dc.WithOffset(treedec.AtKey(k), src[k]))
			if r.IsErr() {
				acc.add(dc.Strategy, r.Err())
				continue
			}
			out[k] = r.Value()
		}
		if acc.failed {
			return treedec.Fail[E, map[string]A](acc.err)
		}
		return treedec.Ok[E](out)
	}
}

// MapOf decodes an associative container from an array of pair objects,
// each shaped {"k": ..., "v": ...}. A duplicate decoded key surfaces as a
// structure error at the offending pair's path.
func MapOf[E, X any, K comparable, V any](key treedec.Decoder[E, X, K], val treedec.Decoder[E, X, V]) treedec.Decoder[E, X, map[K]V] {
	return func(dc treedec.DecodeCtx[E, X]) treedec.Result[E, map[K]V] {
		ra := treedec.AsArray[E, X]()(dc)
		if ra.IsErr() {
			return treedec.Fail[E, map[K]V](ra.Err())
		}
		raw := ra.Value()
		out := make(map[K]V, len(raw))
		var acc errAcc[E]
		for i, el := range raw {
			ec := dc.WithOffset(treedec.AtIndex(i), el)
			ro := treedec.AsObject[E, X]()(ec)
			if ro.IsErr() {
				acc.add(dc.Strategy, ro.Err())
				continue
			}
			pair := ro.Value()
			kv, kok := pair["k"]
			vv, vok := pair["v"]
			if !kok {
				acc.add(dc.Strategy, dc.Strategy.OnMissingField(ec.Path, "k"))
			}
			if !vok {
				acc.add(dc.Strategy, dc.Strategy.OnMissingField(ec.Path, "v"))
			}
			if !kok || !vok {
				continue
			}
			rk := key(ec.WithOffset(treedec.AtKey("k"), kv))
			rv := val(ec.WithOffset(treedec.AtKey("v"), vv))
			if rk.IsErr() {
				acc.add(dc.Strategy, rk.Err())
			}
			if rv.IsErr() {
				acc.add(dc.Strategy, rv.Err())
			}
			if rk.IsErr() || rv.IsErr() {
				continue
			}
			if _, dup := out[rk.Value()]; dup {
				acc.add(dc.Strategy, dc.Strategy.OnStructureError(ec.Path, "duplicate map key"))
				continue
			}
			out[rk.Value()] = rv.Value()
		}
		if acc.failed {
			return treedec.Fail[E, map[K]V](acc.err)
		}
		return treedec.Ok[E](out)
	}
}

// SetOf decodes an array into a set. A duplicate element is a refinement
// failure at the offending index.
func SetOf[E, X any, A comparable](elem treedec.Decoder[E, X, A]) treedec.Decoder[E, X, map[A]struct{}] {
	return func(dc treedec.DecodeCtx[E, X]) treedec.Result[E, map[A]struct{}] {
		ra := treedec.AsArray[E, X]()(dc)
		if ra.IsErr() {
			return treedec.Fail[E, map[A]struct{}](ra.Err())
		}
		raw := ra.Value()
		out := make(map[A]struct{}, len(raw))
		var acc errAcc[E]
		for i, el := range raw {
			ec := dc.WithOffset(treedec.AtIndex(i), el)
			r := elem(ec)
			if r.IsErr() {
				acc.add(dc.Strategy, r.Err())
				continue
			}
			if _, dup := out[r.Value()]; dup {
				acc.add(dc.Strategy, dc.Strategy.OnUnrefinableValue(ec.Path, "duplicate set element"))
				continue
			}
			out[r.Value()] = struct{}{}
		}
		if acc.failed {
			return treedec.Fail[E, map[A]struct{}](acc.err)
		}
		return treedec.Ok[E](out)
	}
}

// Tuple2 decodes a fixed-arity array of exactly two slots. A longer array is
// a structure error; a shorter one reports each absent index. Every slot
// failure carries a Subterm hint.
func Tuple2[E, X, A, B, C any](da treedec.Decoder[E, X, A], db treedec.Decoder[E, X, B], f func(A, B) C) treedec.Decoder[E, X, C] {
	return func(dc treedec.DecodeCtx[E, X]) treedec.Result[E, C] {
		arr, res := tupleShape[E, X, C](dc, 2)
		if res != nil {
			return *res
		}
		ra := tupleSlot(dc, arr, 0, da)
		rb := tupleSlot(dc, arr, 1, db)
		var acc errAcc[E]
		if ra.IsErr() {
			acc.add(dc.Strategy, ra.Err())
		}
		if rb.IsErr() {
			acc.add(dc.Strategy, rb.Err())
		}
		if acc.failed {
			return treedec.Fail[E, C](acc.err)
		}
		return treedec.Ok[E](f(ra.Value(), rb.Value()))
	}
}

// Tuple3 decodes a fixed-arity array of exactly three slots.
func Tuple3[E, X, A, B, C, D any](da treedec.Decoder[E, X, A], db treedec.Decoder[E, X, B], dcD treedec.Decoder[E, X, C], f func(A, B, C) D) treedec.Decoder[E, X, D] {
	return func(dc treedec.DecodeCtx[E, X]) treedec.Result[E, D] {
		arr, res := tupleShape[E, X, D](dc, 3)
		if res != nil {
			return *res
		}
		ra := tupleSlot(dc, arr, 0, da)
		rb := tupleSlot(dc, arr, 1, db)
		rc := tupleSlot(dc, arr, 2, dcD)
		var acc errAcc[E]
		for _, e := range []struct {
			failed bool
			err    E
		}{{ra.IsErr(), ra.Err()}, {rb.IsErr(), rb.Err()}, {rc.IsErr(), rc.Err()}} {
			if e.failed {
				acc.add(dc.Strategy, e.err)
			}
		}
		if acc.failed {
			return treedec.Fail[E, D](acc.err)
		}
		return treedec.Ok[E](f(ra.Value(), rb.Value(), rc.Value()))
	}
}

// tupleShape checks the array shape and arity shared by the tuple decoders.
// It returns a non-nil result when decoding cannot proceed.
func tupleShape[E, X, R any](dc treedec.DecodeCtx[E, X], arity int) ([]any, *treedec.Result[E, R]) {
	ra := treedec.AsArray[E, X]()(dc)
	if ra.IsErr() {
		r := treedec.Fail[E, R](ra.Err())
		return nil, &r
	}
	arr := ra.Value()
	if len(arr) > arity {
		r := treedec.Fail[E, R](dc.Strategy.OnStructureError(dc.Path,
			"expected an array of length "+strconv.Itoa(arity)+", got "+strconv.Itoa(len(arr))))
		return nil, &r
	}
	if len(arr) < arity {
		var acc errAcc[E]
		for i := len(arr); i < arity; i++ {
			acc.add(dc.Strategy, dc.Strategy.OnMissingIndex(dc.Path, i))
		}
		r := treedec.Fail[E, R](acc.err)
		return nil, &r
	}
	return arr, nil
}

func tupleSlot[E, X, A any](dc treedec.DecodeCtx[E, X], arr []any, i int, d treedec.Decoder[E, X, A]) treedec.Result[E, A] {
	return treedec.Hinted(treedec.At(treedec.AtIndex(i), arr[i], d), treedec.Subterm(i))(dc)
}

// Optional succeeds with nil on null and otherwise delegates to inner.
func Optional[E, X, A any](inner treedec.Decoder[E, X, A]) treedec.Decoder[E, X, *A] {
	return func(dc treedec.DecodeCtx[E, X]) treedec.Result[E, *A] {
		if dc.Value == nil {
			return treedec.Ok[E]((*A)(nil))
		}
		r := inner(dc)
		if r.IsErr() {
			return treedec.Fail[E, *A](r.Err())
		}
		v := r.Value()
		return treedec.Ok[E](&v)
	}
}

// Enum accepts only the listed string tags. Anything else is a string at the
// JSON level that cannot be refined to the target type.
func Enum[E, X any](allowed ...string) treedec.Decoder[E, X, string] {
	return func(dc treedec.DecodeCtx[E, X]) treedec.Result[E, string] {
		rs := treedec.AsString[E, X]()(dc)
		if rs.IsErr() {
			return rs
		}
		s := rs.Value()
		for _, a := range allowed {
			if a == s {
				return treedec.Ok[E](s)
			}
		}
		return treedec.Fail[E, string](dc.Strategy.OnUnrefinableValue(dc.Path, "invalid enum tag "+strconv.Quote(s)))
	}
}

// Finite rejects NaN and ±Inf, which are numbers at the JSON level but not
// refinable to a finite target.
func Finite[E, X any]() treedec.Decoder[E, X, float64] {
	return func(dc treedec.DecodeCtx[E, X]) treedec.Result[E, float64] {
		rn := treedec.AsNumber[E, X]()(dc)
		if rn.IsErr() {
			return rn
		}
		f := rn.Value()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return treedec.Fail[E, float64](dc.Strategy.OnUnrefinableValue(dc.Path, "non-finite number"))
		}
		return treedec.Ok[E](f)
	}
}
