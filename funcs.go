package funcdemo

import (
	"io"
	"strings"
)

// ============================================================================
// String Transformations
// ============================================================================

// StringFunc is a functional type for string transformations.
// Any func(string) string converts to it, including named functions
// such as Greet and inline function literals.
//
// Example:
//
//	shout := StringFunc(Greet).Upper()
//	shout("Greg") // "HELLO, MY NAME IS GREG"
type StringFunc func(string) string

// Apply calls the transformation.
func (f StringFunc) Apply(s string) string {
	return f(s)
}

// Empty returns the identity transformation (Monoid identity).
func (f StringFunc) Empty() StringFunc {
	return func(s string) string { return s }
}

// Compose runs this transformation, then next (Monoid operation).
func (f StringFunc) Compose(next StringFunc) StringFunc {
	return func(s string) string {
		return next(f(s))
	}
}

// Map transforms the result.
func (f StringFunc) Map(transform func(string) string) StringFunc {
	return f.Compose(transform)
}

// WithPrefix adds a prefix to the result.
func (f StringFunc) WithPrefix(prefix string) StringFunc {
	return func(s string) string {
		return prefix + f(s)
	}
}

// WithSuffix adds a suffix to the result.
func (f StringFunc) WithSuffix(suffix string) StringFunc {
	return func(s string) string {
		return f(s) + suffix
	}
}

// Upper uppercases the whole result.
func (f StringFunc) Upper() StringFunc {
	return f.Map(strings.ToUpper)
}

// ============================================================================
// Numeric Transformations
// ============================================================================

// FloatFunc is a functional type for float64 transformations.
type FloatFunc func(float64) float64

// Apply calls the transformation.
func (f FloatFunc) Apply(x float64) float64 {
	return f(x)
}

// Empty returns the identity transformation (Monoid identity).
func (f FloatFunc) Empty() FloatFunc {
	return func(x float64) float64 { return x }
}

// Compose runs this transformation, then next (Monoid operation).
func (f FloatFunc) Compose(next FloatFunc) FloatFunc {
	return func(x float64) float64 {
		return next(f(x))
	}
}

// ============================================================================
// Predicates
// ============================================================================

// Predicate is a functional type for boolean tests over T.
type Predicate[T any] func(T) bool

// Test calls the predicate.
func (p Predicate[T]) Test(v T) bool {
	return p(v)
}

// And is satisfied when both predicates are.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) && other(v)
	}
}

// Or is satisfied when either predicate is.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) || other(v)
	}
}

// Not negates the predicate.
func (p Predicate[T]) Not() Predicate[T] {
	return func(v T) bool {
		return !p(v)
	}
}

// ============================================================================
// Output
// ============================================================================

// WriteFunc is a functional binding for io.Writer.
//
// Example:
//
//	var lines []string
//	w := WriteFunc(func(p []byte) (int, error) {
//	    lines = append(lines, string(p))
//	    return len(p), nil
//	})
type WriteFunc func(p []byte) (n int, err error)

// Write implements io.Writer.
func (f WriteFunc) Write(p []byte) (int, error) {
	return f(p)
}

// Empty returns a writer that discards all writes (Monoid identity).
func (f WriteFunc) Empty() WriteFunc {
	return func(p []byte) (int, error) {
		return len(p), nil
	}
}

// Tee writes to this writer and then to every other one.
// The first error stops the chain.
func (f WriteFunc) Tee(others ...io.Writer) WriteFunc {
	return func(p []byte) (int, error) {
		n, err := f(p)
		if err != nil {
			return n, err
		}
		for _, w := range others {
			if _, err := w.Write(p); err != nil {
				return n, err
			}
		}
		return n, nil
	}
}

// Map transforms bytes before writing.
func (f WriteFunc) Map(transform func([]byte) []byte) WriteFunc {
	return func(p []byte) (int, error) {
		if _, err := f(transform(p)); err != nil {
			return 0, err
		}
		return len(p), nil
	}
}
