package treedec

// Strategy decouples the occasions on which decoding fails (the engine's
// concern) from the shape of the resulting error value (the caller's
// concern). Exactly one Strategy exists per top-level Decode call and it is
// immutable for that call's lifetime.
//
// Every primitive or structural failure goes through exactly one occasion
// handler; the engine itself never formats messages or constructs errors.
// Append must be associative. It is not assumed commutative, so the order in
// which siblings are combined is observable to strategies that care.
type Strategy[E any] struct {
	// OnTypeMismatch fires when the current value's shape is not the one a
	// checker expects. got carries the offending value's own shape and
	// payload.
	OnTypeMismatch func(path Path, want Kind, got ValueDesc) E

	// OnMissingField fires when a required record field is absent from an
	// object. path is the record's own path, not the absent field's.
	OnMissingField func(path Path, name string) E

	// OnMissingIndex fires when a fixed-arity decoder needs an element the
	// array does not have.
	OnMissingIndex func(path Path, idx int) E

	// OnUnrefinableValue fires when the JSON-level type matched but the
	// content could not be refined to the target type (non-finite number,
	// invalid enum tag, duplicate set element).
	OnUnrefinableValue func(path Path, msg string) E

	// OnStructureError fires when a higher-level structural invariant is
	// violated (wrong tuple length, duplicate map key, malformed override).
	OnStructureError func(path Path, msg string) E

	// AddHint wraps an already-built error with contextual annotation. The
	// hint applies only to the branch it was attached to, never to siblings.
	AddHint func(path Path, h Hint, e E) E

	// Append combines the errors of two independently failing computations.
	// No leaf may be silently dropped unless dropping is the strategy's own
	// documented policy.
	Append func(a, b E) E
}
