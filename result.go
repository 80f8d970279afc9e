package treedec

// Result is the accumulating disjunction produced by a decoder: either a
// value of type A or an error of type E. Combining two independently failing
// computations goes through Strategy.Append; a Result itself never merges.
type Result[E, A any] struct {
	value  A
	err    E
	failed bool
}

// Ok builds a successful Result.
func Ok[E, A any](v A) Result[E, A] { return Result[E, A]{value: v} }

// Fail builds a failed Result.
func Fail[E, A any](e E) Result[E, A] { return Result[E, A]{err: e, failed: true} }

// IsErr reports whether the result carries an error.
func (r Result[E, A]) IsErr() bool { return r.failed }

// Value returns the success value (zero value when failed).
func (r Result[E, A]) Value() A { return r.value }

// Err returns the accumulated error (zero value when successful).
func (r Result[E, A]) Err() E { return r.err }
