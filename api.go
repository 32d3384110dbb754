package comb

// A Parser attempts a match against input starting at a given offset.
//
// Parsers are immutable after construction, hold no per-call state, and may
// be applied to any number of inputs. Parsing never performs I/O and runs to
// completion before returning.
type Parser[T any] interface {
	Parse(input string, pos int) Result[T]
}

// ParseFunc adapts a function to the Parser interface.
type ParseFunc[T any] func(input string, pos int) Result[T]

func (f ParseFunc[T]) Parse(input string, pos int) Result[T] { return f(input, pos) }

// Run applies p to input from offset 0.
//
// Run does not require p to consume the whole input: a match that stops short
// of the end is still a match, with the remainder untouched. Use RunStrict to
// reject trailing input.
func Run[T any](p Parser[T], input string) Result[T] {
	return p.Parse(input, 0)
}

// RunStrict applies p to input from offset 0 and fails unless the match
// reached the end of the input.
func RunStrict[T any](p Parser[T], input string) Result[T] {
	r := p.Parse(input, 0)
	if r.Matched() && r.Pos != len(input) {
		return NoMatch[T](r.Pos, Span{r.Pos, r.Pos}, "end of input")
	}
	return r
}
