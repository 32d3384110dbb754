package comb

import (
	"fmt"
	"io"
	"strings"
)

// Trace wraps p so that every attempt is reported to w: one line when the
// attempt starts and one when it resolves, with recursive attempts through
// the same traced parser indented under their parent. The wrapper is
// otherwise transparent and returns exactly p's Result.
func Trace[T any](w io.Writer, name string, p Parser[T]) Parser[T] {
	return &tracer[T]{w: w, name: name, parser: p}
}

type tracer[T any] struct {
	w      io.Writer
	name   string
	parser Parser[T]
	depth  int
}

func (t *tracer[T]) Parse(input string, pos int) Result[T] {
	indent := strings.Repeat("  ", t.depth)
	fmt.Fprintf(t.w, "%s%s: attempt at %d\n", indent, t.name, pos)
	t.depth++
	r := t.parser.Parse(input, pos)
	t.depth--
	if r.Failed() {
		fmt.Fprintf(t.w, "%s%s: expected %s at %d\n", indent, t.name, r.Expected, r.Pos)
	} else {
		fmt.Fprintf(t.w, "%s%s: matched %s\n", indent, t.name, r.Span)
	}
	return r
}
