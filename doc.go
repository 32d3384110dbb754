// Package comb builds recursive-descent parsers from composable primitives.
// A Parser attempts a match against input text at a given offset and reports a
// Result; combinators assemble small parsers into larger ones, and a grammar
// builder wires named, mutually recursive rules together.
//
// A parser for bracketed, comma-separated integer lists:
//
//	list := comb.TakeMid(
//		comb.Literal("["),
//		comb.SepBy(comb.Int(), comb.Literal(",")),
//		comb.Literal("]"),
//	)
//	result := comb.Run(list, "[1,2,3]")
//	// result.Value == []int{1, 2, 3}
//
// Rules that refer to each other, or to themselves, are assembled with
// NewGrammar. Definitions receive the whole grammar and may look up any rule,
// including ones defined later:
//
//	g := comb.NewGrammar(comb.Rules[string]{
//		"parens": func(g comb.Grammar[string]) comb.Parser[string] {
//			inner := comb.TakeMid(comb.Literal("("), comb.Optional(g["parens"]), comb.Literal(")"))
//			return comb.Map(inner, func(s string, _ comb.Span) string {
//				return "(" + s + ")"
//			})
//		},
//	})
//	result := comb.Run(g["parens"], "((()))")
//
// Failure is data, not control flow: a failed Result carries the offset the
// attempt reached and a label for what was expected there. Choice keeps the
// failure that progressed furthest, which is usually the most informative
// diagnostic.
package comb
