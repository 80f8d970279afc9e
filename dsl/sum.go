package dsl

import (
	treedec "github.com/reoring/treedec"
)

// Either holds exactly one of two alternatives.
type Either[A, B any] struct {
	left   A
	right  B
	isLeft bool
}

// Left builds the left alternative.
func Left[A, B any](v A) Either[A, B] { return Either[A, B]{left: v, isLeft: true} }

// Right builds the right alternative.
func Right[A, B any](v B) Either[A, B] { return Either[A, B]{right: v} }

// IsLeft reports whether the left alternative is held.
func (e Either[A, B]) IsLeft() bool { return e.isLeft }

// Left returns the left value and whether it is held.
func (e Either[A, B]) Left() (A, bool) { return e.left, e.isLeft }

// Right returns the right value and whether it is held.
func (e Either[A, B]) Right() (B, bool) { return e.right, !e.isLeft }

// EitherOf tries the left interpretation of the current value first, then the
// right one, in that fixed order. Both branches' failures are retained
// (TryAccumulate), each under its constructor hint.
func EitherOf[E, X, A, B any](left treedec.Decoder[E, X, A], right treedec.Decoder[E, X, B]) treedec.Decoder[E, X, Either[A, B]] {
	l := treedec.Hinted(treedec.Map(left, Left[A, B]), treedec.CtorName("Left"))
	r := treedec.Hinted(treedec.Map(right, Right[A, B]), treedec.CtorName("Right"))
	return treedec.TryAccumulate(l, r)
}

type theseTag int

const (
	theseThis theseTag = iota
	theseThat
	theseBoth
)

// These holds this, that, or both.
type These[A, B any] struct {
	a   A
	b   B
	tag theseTag
}

// This builds the this-only case.
func This[A, B any](a A) These[A, B] { return These[A, B]{a: a, tag: theseThis} }

// That builds the that-only case.
func That[A, B any](b B) These[A, B] { return These[A, B]{b: b, tag: theseThat} }

// Both builds the case holding both values.
func Both[A, B any](a A, b B) These[A, B] { return These[A, B]{a: a, b: b, tag: theseBoth} }

// This returns the first value and whether it is held (this-only or both).
func (t These[A, B]) This() (A, bool) { return t.a, t.tag != theseThat }

// That returns the second value and whether it is held (that-only or both).
func (t These[A, B]) That() (B, bool) { return t.b, t.tag != theseThis }

// IsBoth reports whether both values are held.
func (t These[A, B]) IsBoth() bool { return t.tag == theseBoth }

// atRequiredKey descends into a required object key, failing with a missing
// field at the object's own path when the key is absent.
func atRequiredKey[E, X, A any](name string, d treedec.Decoder[E, X, A]) treedec.Decoder[E, X, A] {
	return func(dc treedec.DecodeCtx[E, X]) treedec.Result[E, A] {
		ro := treedec.AsObject[E, X]()(dc)
		if ro.IsErr() {
			return treedec.Fail[E, A](ro.Err())
		}
		v, ok := ro.Value()[name]
		if !ok {
			return treedec.Fail[E, A](dc.Strategy.OnMissingField(dc.Path, name))
		}
		return d(dc.WithOffset(treedec.AtKey(name), v))
	}
}

// TheseOf decodes a these-style union from an object carrying "this" and/or
// "that" keys. Branches are attempted in the fixed order Both, This, That,
// accumulating every branch's failure under its constructor hint.
func TheseOf[E, X, A, B any](da treedec.Decoder[E, X, A], db treedec.Decoder[E, X, B]) treedec.Decoder[E, X, These[A, B]] {
	both := treedec.Hinted(
		treedec.Map2(atRequiredKey("this", da), atRequiredKey("that", db), Both[A, B]),
		treedec.CtorName("Both"))
	this := treedec.Hinted(treedec.Map(atRequiredKey("this", da), This[A, B]), treedec.CtorName("This"))
	that := treedec.Hinted(treedec.Map(atRequiredKey("that", db), That[A, B]), treedec.CtorName("That"))
	return treedec.FirstOfAccumulate(both, this, that)
}
