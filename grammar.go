package comb

import "strconv"

// A Rule is the stable placeholder for a named grammar rule. Rules are
// allocated before any rule definition runs, so definitions can compose
// sibling rules, including mutually recursive ones, before those siblings
// have been defined. Combinators capture the *Rule by reference; once
// NewGrammar installs the real parser, every reference sees it.
type Rule[T any] struct {
	name string
	impl Parser[T]
}

// Name returns the rule's name within its grammar.
func (r *Rule[T]) Name() string { return r.name }

// Parse delegates to the rule's installed parser. Invoking a rule whose
// definition was never installed is a grammar-construction bug and panics.
func (r *Rule[T]) Parse(input string, pos int) Result[T] {
	if r.impl == nil {
		panic("comb: rule " + strconv.Quote(r.name) + " invoked before its definition was installed")
	}
	return r.impl.Parse(input, pos)
}

// A Grammar maps rule names to their parsers.
type Grammar[T any] map[string]*Rule[T]

// Rules defines a grammar. Each name maps to a definition function that
// builds the rule's parser; definitions receive the whole grammar and may
// look up any rule in it, including rules defined later in the map and the
// rule being defined.
type Rules[T any] map[string]func(g Grammar[T]) Parser[T]

// NewGrammar assembles a set of possibly mutually recursive rules. It works
// in two phases: first every rule is allocated as an empty placeholder, then
// every definition function runs against the complete placeholder set and its
// result is installed on the existing placeholder in place. The placeholder's
// identity never changes, only the parser it delegates to, which is what
// makes forward references and cycles safe.
//
// NewGrammar does not detect unreachable or left-recursive rules: a rule
// that can recurse without consuming input will not terminate.
func NewGrammar[T any](rules Rules[T]) Grammar[T] {
	g := make(Grammar[T], len(rules))
	for name := range rules {
		g[name] = &Rule[T]{name: name}
	}
	for name, define := range rules {
		g[name].impl = define(g)
	}
	return g
}
