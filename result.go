package comb

import "fmt"

// Span is the half-open [Start, End) region of input a parse attempt covered.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string { return fmt.Sprintf("[%d,%d)", s.Start, s.End) }

// Result of a single parse attempt.
//
// A Result either matched, carrying the semantic payload in Value, or failed,
// carrying in Expected a label for what the parser was looking for. Pos is the
// offset at which a subsequent parser should resume; on a match it is always
// Span.End. Results are constructed with Match and NoMatch and never mutated:
// combinators build new Results from their children's fields.
type Result[T any] struct {
	Value    T
	Pos      int
	Span     Span
	Expected string

	failed bool
}

// Match constructs a matched Result covering span.
func Match[T any](value T, span Span) Result[T] {
	return Result[T]{Value: value, Pos: span.End, Span: span}
}

// NoMatch constructs a failed Result. pos is the offset the attempt reached
// and span the region it covered; failures may cover a zero-width span.
func NoMatch[T any](pos int, span Span, expected string) Result[T] {
	return Result[T]{Pos: pos, Span: span, Expected: expected, failed: true}
}

// Matched reports whether the attempt matched.
func (r Result[T]) Matched() bool { return !r.failed }

// Failed reports whether the attempt failed.
func (r Result[T]) Failed() bool { return r.failed }

// Err returns the failure as an *Error, or nil if the attempt matched.
func (r Result[T]) Err() error {
	if !r.failed {
		return nil
	}
	return &Error{Pos: r.Pos, Expected: r.Expected}
}

// retype a failure for a different value type, all fields preserved.
func failAs[B, A any](r Result[A]) Result[B] {
	return Result[B]{Pos: r.Pos, Span: r.Span, Expected: r.Expected, failed: true}
}

// Error is a parse failure surfaced as a Go error at the library boundary.
type Error struct {
	Pos      int
	Expected string
}

func (e *Error) Error() string { return fmt.Sprintf("%d: expected %s", e.Pos, e.Expected) }
