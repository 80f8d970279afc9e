package dsl

import (
	"strconv"

	treedec "github.com/reoring/treedec"
)

// OverrideProvider is implemented by Extra types that supply per-call decoder
// overrides. The engine core never inspects Extra; the dsl queries it only at
// the documented points: record fields (slot = field name) and the explicit
// SlotN wrappers.
type OverrideProvider interface {
	Override(slot string) (any, bool)
}

// Overrides is the plain key-to-override lookup table used as Extra when no
// richer context type is needed.
type Overrides map[string]any

func (o Overrides) Override(slot string) (any, bool) {
	v, ok := o[slot]
	return v, ok
}

type overrideStatus int

const (
	overrideAbsent overrideStatus = iota
	overrideFound
	overrideBadType
)

func provider[X any](extra X) (OverrideProvider, bool) {
	p, ok := any(extra).(OverrideProvider)
	return p, ok
}

// fieldOverride looks up the arity-1 override the record builder consults for
// each field.
func fieldOverride[E, X any](extra X, slot string) (func(treedec.Decoder[E, X, any]) treedec.Decoder[E, X, any], overrideStatus) {
	p, ok := provider(extra)
	if !ok {
		return nil, overrideAbsent
	}
	v, ok := p.Override(slot)
	if !ok {
		return nil, overrideAbsent
	}
	fn, ok := v.(func(treedec.Decoder[E, X, any]) treedec.Decoder[E, X, any])
	if !ok {
		return nil, overrideBadType
	}
	return fn, overrideFound
}

func badOverride[E, X, A any](dc treedec.DecodeCtx[E, X], slot string) treedec.Result[E, A] {
	return treedec.Fail[E, A](dc.Strategy.OnStructureError(dc.Path,
		"override for slot "+strconv.Quote(slot)+" has unexpected type"))
}

// Slot0 queries the extra channel for a replacement decoder registered under
// slot; the override, when present, must be a treedec.Decoder[E, X, A] and
// receives no defaults.
func Slot0[E, X, A any](slot string, def treedec.Decoder[E, X, A]) treedec.Decoder[E, X, A] {
	return func(dc treedec.DecodeCtx[E, X]) treedec.Result[E, A] {
		if p, ok := provider(dc.Extra); ok {
			if v, ok := p.Override(slot); ok {
				ov, ok := v.(treedec.Decoder[E, X, A])
				if !ok {
					return badOverride[E, X, A](dc, slot)
				}
				return ov(dc)
			}
		}
		return def(dc)
	}
}

// Slot1 queries the extra channel for an arity-1 override; the override
// receives exactly the default decoder it replaces and may wrap, replace, or
// ignore it.
func Slot1[E, X, A any](slot string, def treedec.Decoder[E, X, A]) treedec.Decoder[E, X, A] {
	return func(dc treedec.DecodeCtx[E, X]) treedec.Result[E, A] {
		if p, ok := provider(dc.Extra); ok {
			if v, ok := p.Override(slot); ok {
				ov, ok := v.(func(treedec.Decoder[E, X, A]) treedec.Decoder[E, X, A])
				if !ok {
					return badOverride[E, X, A](dc, slot)
				}
				return ov(def)(dc)
			}
		}
		return def(dc)
	}
}

// Slot2 wraps a two-sub-decoder shape (for example MapOf): combine builds the
// default from the two defaults, and a registered override receives both.
func Slot2[E, X, A, B, C any](slot string, da treedec.Decoder[E, X, A], db treedec.Decoder[E, X, B], combine func(treedec.Decoder[E, X, A], treedec.Decoder[E, X, B]) treedec.Decoder[E, X, C]) treedec.Decoder[E, X, C] {
	return func(dc treedec.DecodeCtx[E, X]) treedec.Result[E, C] {
		if p, ok := provider(dc.Extra); ok {
			if v, ok := p.Override(slot); ok {
				ov, ok := v.(func(treedec.Decoder[E, X, A], treedec.Decoder[E, X, B]) treedec.Decoder[E, X, C])
				if !ok {
					return badOverride[E, X, C](dc, slot)
				}
				return ov(da, db)(dc)
			}
		}
		return combine(da, db)(dc)
	}
}

// Slot3 wraps a three-sub-decoder shape (for example TheseOf composed with a
// fallback branch).
func Slot3[E, X, A, B, C, D any](slot string, da treedec.Decoder[E, X, A], db treedec.Decoder[E, X, B], dcd treedec.Decoder[E, X, C], combine func(treedec.Decoder[E, X, A], treedec.Decoder[E, X, B], treedec.Decoder[E, X, C]) treedec.Decoder[E, X, D]) treedec.Decoder[E, X, D] {
	return func(dc treedec.DecodeCtx[E, X]) treedec.Result[E, D] {
		if p, ok := provider(dc.Extra); ok {
			if v, ok := p.Override(slot); ok {
				ov, ok := v.(func(treedec.Decoder[E, X, A], treedec.Decoder[E, X, B], treedec.Decoder[E, X, C]) treedec.Decoder[E, X, D])
				if !ok {
					return badOverride[E, X, D](dc, slot)
				}
				return ov(da, db, dcd)(dc)
			}
		}
		return combine(da, db, dcd)(dc)
	}
}
