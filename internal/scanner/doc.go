// Package scanner discovers annotated solution functions in a Go package and
// emits the registration file that binds them to the puzzle registry.
//
// A solution is marked by a directive in its doc comment:
//
//	//aoc:day3, part1, separator=','
//	func part1(xs []int) int { ... }
//
// The directive grammar is
//
//	//aoc:day<N>, part<P>[, separator=<rune or string literal>][, <variant>]
//
// Lines that start with "//aoc:" but do not begin with "day<N>, part<P>" are
// skipped. Inside a matching directive every argument must be understood:
// unknown keywords, a second variant name and literals that cannot be
// unquoted are generation errors.
//
// The declared parameter and result types are classified textually into the
// input and output kinds of package adapter. The generated file repeats those
// kinds explicitly and the adapter checks them again against the reflected
// function type when the program starts.
package scanner
