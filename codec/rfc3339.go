package codec

import (
	"time"

	treedec "github.com/reoring/treedec"
)

// Package codec ships ready-made refinement decoders for common wire
// representations. Each is an ordinary Decoder value, so it can be used
// directly in a schema or registered as a per-call override.

// RFC3339 decodes an RFC 3339 timestamp string into time.Time. A string that
// does not parse is a refinement failure, not a type mismatch.
func RFC3339[E, X any]() treedec.Decoder[E, X, time.Time] {
	return func(dc treedec.DecodeCtx[E, X]) treedec.Result[E, time.Time] {
		rs := treedec.AsString[E, X]()(dc)
		if rs.IsErr() {
			return treedec.Fail[E, time.Time](rs.Err())
		}
		t, err := time.Parse(time.RFC3339, rs.Value())
		if err != nil {
			return treedec.Fail[E, time.Time](dc.Strategy.OnUnrefinableValue(dc.Path,
				"not an RFC 3339 timestamp: "+rs.Value()))
		}
		return treedec.Ok[E](t)
	}
}

// UnixSeconds decodes an integral number of seconds since the epoch into
// time.Time (UTC). Fractional values are refused rather than truncated.
func UnixSeconds[E, X any]() treedec.Decoder[E, X, time.Time] {
	return func(dc treedec.DecodeCtx[E, X]) treedec.Result[E, time.Time] {
		rn := treedec.AsNumber[E, X]()(dc)
		if rn.IsErr() {
			return treedec.Fail[E, time.Time](rn.Err())
		}
		f := rn.Value()
		sec := int64(f)
		if float64(sec) != f {
			return treedec.Fail[E, time.Time](dc.Strategy.OnUnrefinableValue(dc.Path,
				"not an integral unix timestamp"))
		}
		return treedec.Ok[E](time.Unix(sec, 0).UTC())
	}
}
