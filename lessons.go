package funcdemo

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ErrEmptyInput is returned when a transformation needs at least one character.
var ErrEmptyInput = errors.New("funcdemo: empty input")

// ============================================================================
// Extension Functions
// ============================================================================

// CapitalizeFirst returns s with its first character upper-cased and the
// rest unchanged. It is partial: an empty string has no first character
// and yields ErrEmptyInput.
func CapitalizeFirst(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("capitalize first letter: %w", ErrEmptyInput)
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return s, nil
	}
	return string(unicode.ToUpper(r)) + s[size:], nil
}

// MustCapitalizeFirst is like CapitalizeFirst but panics on empty input.
func MustCapitalizeFirst(s string) string {
	out, err := CapitalizeFirst(s)
	if err != nil {
		panic(err)
	}
	return out
}

// TryCapitalizeFirst is CapitalizeFirst as a mo.Result.
func TryCapitalizeFirst(s string) mo.Result[string] {
	return mo.TupleToResult(CapitalizeFirst(s))
}

// ClassB is the receiver that ClassA extends from inside its own scope.
type ClassB struct {
	Name string
}

// ClassA owns a member extension on ClassB. Observer, when set, receives
// the extension's result; nil means the call has no visible effect.
type ClassA struct {
	Observer func(string)
}

// CallExFunction invokes the member extension on b.
func (a ClassA) CallExFunction(b ClassB) {
	msg := a.describe(b)
	if a.Observer != nil {
		a.Observer(msg)
	}
}

// describe is only callable where a ClassA is in scope.
func (a ClassA) describe(b ClassB) string {
	name := b.Name
	if name == "" {
		name = "ClassB"
	}
	return "ClassA extended " + name
}

// ============================================================================
// Higher-Order Functions
// ============================================================================

// Greet introduces name.
func Greet(name string) string {
	return "Hello, my name is " + name
}

// SayHello applies transform to name and upper-cases the result.
func SayHello(name string, transform StringFunc) string {
	return transform.Upper()(name)
}

// Scale returns a function multiplying its argument by factor.
// factor is copied into the closure when Scale is called.
func Scale(factor float64) FloatFunc {
	return func(x float64) float64 {
		return x * factor
	}
}

// ============================================================================
// Closures
// ============================================================================

// Names returns a fresh copy of the sample names.
func Names() []string {
	return []string{"Adam", "Andrew", "Chike", "Kechi"}
}

// LengthEquals matches strings of exactly length characters.
func LengthEquals(length int) Predicate[string] {
	return func(s string) bool {
		return utf8.RuneCountInString(s) == length
	}
}

// FilterByLength keeps the names with exactly length characters, in order.
// names is not modified.
func FilterByLength(names []string, length int) []string {
	match := LengthEquals(length)
	return lo.Filter(names, func(name string, _ int) bool {
		return match(name)
	})
}

// FilterNamesByLength applies FilterByLength to Names.
func FilterNamesByLength(length int) []string {
	return FilterByLength(Names(), length)
}
