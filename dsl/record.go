package dsl

import (
	"strconv"

	treedec "github.com/reoring/treedec"
)

// fieldSpec is one entry of the declared field list: the JSON key, whether
// the field must be present, and the type-erased element decoder.
type fieldSpec[E, X any] struct {
	name     string
	required bool
	dec      treedec.Decoder[E, X, any]
}

// RecordBuilder declares the ordered field list that drives generic record
// decoding. The field list is the only place JSON keys are named; each name
// may be registered at most once.
type RecordBuilder[E, X any] struct {
	fields []fieldSpec[E, X]
	seen   map[string]struct{}
}

// FieldStep scopes Required/Optional to the most recently declared field and
// allows chaining further declarations, mirroring the builder flow.
type FieldStep[E, X any] struct {
	b *RecordBuilder[E, X]
}

// Record starts an empty record schema.
func Record[E, X any]() *RecordBuilder[E, X] {
	return &RecordBuilder[E, X]{seen: map[string]struct{}{}}
}

// Field declares a field. Fields are optional until marked Required.
// Declaring the same name twice is a definition-time mistake and panics.
func (b *RecordBuilder[E, X]) Field(name string, d treedec.Decoder[E, X, any]) *FieldStep[E, X] {
	if _, dup := b.seen[name]; dup {
		panic("treedec/dsl: duplicate record field " + strconv.Quote(name))
	}
	b.seen[name] = struct{}{}
	b.fields = append(b.fields, fieldSpec[E, X]{name: name, dec: d})
	return &FieldStep[E, X]{b: b}
}

// Required marks the current field as required.
func (f *FieldStep[E, X]) Required() *RecordBuilder[E, X] {
	f.b.fields[len(f.b.fields)-1].required = true
	return f.b
}

// Optional marks the current field as optional (the default).
func (f *FieldStep[E, X]) Optional() *RecordBuilder[E, X] { return f.b }

// Field chains another declaration without stepping back to the builder.
func (f *FieldStep[E, X]) Field(name string, d treedec.Decoder[E, X, any]) *FieldStep[E, X] {
	return f.b.Field(name, d)
}

// Build finalizes the current field as optional and builds the decoder.
func (f *FieldStep[E, X]) Build() treedec.Decoder[E, X, map[string]any] { return f.b.Build() }

// Build produces the record decoder. The declared list is walked from last
// to first over an empty builder map; since insertion is keyed, the result
// does not depend on walk order. Field failures accumulate across the whole
// record — a record with three invalid fields reports all three.
//
// A present field decodes under its key offset; an absent required field is
// a missing-field occasion at the record's own path; an absent optional
// field simply stays absent from the builder. The empty field list succeeds
// trivially with an empty builder.
//
// Before a declared field decoder runs, the extra channel is queried for an
// override registered under the field's name; a registered override receives
// the declared decoder as its default.
func (b *RecordBuilder[E, X]) Build() treedec.Decoder[E, X, map[string]any] {
	fields := append([]fieldSpec[E, X](nil), b.fields...)
	return func(dc treedec.DecodeCtx[E, X]) treedec.Result[E, map[string]any] {
		ro := treedec.AsObject[E, X]()(dc)
		if ro.IsErr() {
			return treedec.Fail[E, map[string]any](ro.Err())
		}
		src := ro.Value()
		builder := make(map[string]any, len(fields))
		var acc errAcc[E]
		for i := len(fields) - 1; i >= 0; i-- {
			fs := fields[i]
			val, present := src[fs.name]
			if !present {
				if fs.required {
					acc.add(dc.Strategy, dc.Strategy.OnMissingField(dc.Path, fs.name))
				}
				continue
			}
			dec := fs.dec
			switch ov, status := fieldOverride[E, X](dc.Extra, fs.name); status {
			case overrideFound:
				dec = ov(dec)
			case overrideBadType:
				acc.add(dc.Strategy, dc.Strategy.OnStructureError(dc.Path,
					"override for slot "+strconv.Quote(fs.name)+" has unexpected type"))
				continue
			}
			r := dec(dc.WithOffset(treedec.AtKey(fs.name), val))
			if r.IsErr() {
				acc.add(dc.Strategy, r.Err())
				continue
			}
			builder[fs.name] = r.Value()
		}
		if acc.failed {
			return treedec.Fail[E, map[string]any](acc.err)
		}
		return treedec.Ok[E](builder)
	}
}

// Adapt erases a typed decoder to the any-valued form the record builder
// stores.
func Adapt[E, X, A any](d treedec.Decoder[E, X, A]) treedec.Decoder[E, X, any] {
	return treedec.Map(d, func(v A) any { return v })
}

// MapTo projects a decoded builder map into a typed record value.
func MapTo[E, X, T any](d treedec.Decoder[E, X, map[string]any], f func(map[string]any) T) treedec.Decoder[E, X, T] {
	return treedec.Map(d, f)
}
