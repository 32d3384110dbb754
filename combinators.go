package comb

// Map applies f to the value of each match of p, along with the span the
// match covered, yielding f's result over the same span. Failures pass
// through untouched and f is not called for them.
func Map[A, B any](p Parser[A], f func(value A, span Span) B) Parser[B] {
	return ParseFunc[B](func(input string, pos int) Result[B] {
		r := p.Parse(input, pos)
		if r.Failed() {
			return failAs[B](r)
		}
		return Result[B]{Value: f(r.Value, r.Span), Pos: r.Pos, Span: r.Span}
	})
}

// Sequence applies parsers in order, each starting where the previous ended,
// and yields the slice of their values in order. The first failing child's
// Result is returned as-is, so callers can see which parser failed and where.
// Sequence panics if given no parsers.
func Sequence[T any](parsers ...Parser[T]) Parser[[]T] {
	if len(parsers) == 0 {
		panic("comb: Sequence requires at least one parser")
	}
	return ParseFunc[[]T](func(input string, pos int) Result[[]T] {
		values := make([]T, 0, len(parsers))
		start := pos
		cur := pos
		for i, p := range parsers {
			r := p.Parse(input, cur)
			if r.Failed() {
				return failAs[[]T](r)
			}
			if i == 0 {
				start = r.Span.Start
			}
			values = append(values, r.Value)
			cur = r.Pos
		}
		return Match(values, Span{start, cur})
	})
}

// Choice tries each alternative at the same starting position and returns the
// first match; order determines precedence. If every alternative fails, the
// failure that progressed furthest is returned, ties keeping the
// earliest-seen failure. Choice panics if given no parsers.
func Choice[T any](parsers ...Parser[T]) Parser[T] {
	if len(parsers) == 0 {
		panic("comb: Choice requires at least one parser")
	}
	return ParseFunc[T](func(input string, pos int) Result[T] {
		var furthest Result[T]
		for i, p := range parsers {
			r := p.Parse(input, pos)
			if r.Matched() {
				return r
			}
			if i == 0 || r.Pos > furthest.Pos {
				furthest = r
			}
		}
		return furthest
	})
}

// Many applies p zero or more times, yielding the accumulated values. Many
// never fails: the first non-matching attempt ends the repetition, leaving
// the position just before it.
func Many[T any](p Parser[T]) Parser[[]T] {
	return ParseFunc[[]T](func(input string, pos int) Result[[]T] {
		var values []T
		cur := pos
		for {
			r := p.Parse(input, cur)
			if r.Failed() {
				return Match(values, Span{pos, cur})
			}
			values = append(values, r.Value)
			cur = r.Pos
		}
	})
}

// Optional matches p if possible and otherwise matches nothing, yielding the
// zero value of T over a zero-width span at the original position.
func Optional[T any](p Parser[T]) Parser[T] {
	return Choice(p, Nothing[T]())
}

// SepBy matches zero or more items separated by sep, yielding the item
// values; separator values are discarded. A non-matching first item is not an
// error: SepBy then matches the empty list without consuming input. A
// trailing separator with no item after it is left unconsumed.
func SepBy[T, S any](item Parser[T], sep Parser[S]) Parser[[]T] {
	return ParseFunc[[]T](func(input string, pos int) Result[[]T] {
		first := item.Parse(input, pos)
		if first.Failed() {
			return Match[[]T](nil, Span{pos, pos})
		}
		values := []T{first.Value}
		cur := first.Pos
		for {
			s := sep.Parse(input, cur)
			if s.Failed() {
				break
			}
			next := item.Parse(input, s.Pos)
			if next.Failed() {
				break
			}
			values = append(values, next.Value)
			cur = next.Pos
		}
		return Match(values, Span{pos, cur})
	})
}

// TakeMid sequences open, mid and end, yielding only mid's value. The span
// covers all three. It expresses "delimiter, content, delimiter" without
// indexing into a Sequence result.
func TakeMid[O, M, E any](open Parser[O], mid Parser[M], end Parser[E]) Parser[M] {
	return ParseFunc[M](func(input string, pos int) Result[M] {
		o := open.Parse(input, pos)
		if o.Failed() {
			return failAs[M](o)
		}
		m := mid.Parse(input, o.Pos)
		if m.Failed() {
			return failAs[M](m)
		}
		e := end.Parse(input, m.Pos)
		if e.Failed() {
			return failAs[M](e)
		}
		return Result[M]{Value: m.Value, Pos: e.Pos, Span: Span{o.Span.Start, e.Pos}}
	})
}
