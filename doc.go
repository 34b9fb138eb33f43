/*
Package funcdemo walks through Go's first-class functions: free functions
standing in for extension methods, higher-order functions, function values
passed by name, function literals and closures.

# Overview

Every lesson is an ordinary function plus a small functional type with
composition methods. The Runner prints each lesson in a fixed order:

	My name is John
	My name is Williams
	HELLO, MY NAME IS GREG
	HELLO, MY NAME IS MARTIN
	6.0
	[Chike, Kechi]

# Extension Functions

Go cannot add methods to string, so the receiver becomes the first
parameter:

	name, err := CapitalizeFirst("john") // "John"

CapitalizeFirst is partial. The empty string has no first letter and
returns ErrEmptyInput.

# Higher-Order Functions

SayHello takes a transformation. A named function and a literal are
interchangeable:

	SayHello("Greg", Greet)
	SayHello("Martin", func(n string) string { return "Hello, my name is " + n })

Scale returns a function:

	double := Scale(2.0)
	double(3.0) // 6

# Closures

LengthEquals captures its argument:

	FilterByLength(Names(), 5) // [Chike Kechi]

# Available Types

  - StringFunc: Map, Compose, WithPrefix, WithSuffix, Upper
  - FloatFunc: Compose
  - Predicate: And, Or, Not
  - WriteFunc: functional io.Writer with Tee and Map
*/
package funcdemo
