// Package json contains a JSON grammar built on comb, demonstrating a
// mutually recursive grammar over the combinator set.
//
// The grammar is:
//
//	value  = object | array | string | number | "true" | "false" | "null"
//	object = "{" (member ("," member)*)? "}"
//	member = string ":" value
//	array  = "[" (value ("," value)*)? "]"
//
// Objects decode to map[string]any, arrays to []any, strings to string,
// numbers to int or float64, and the keyword literals to bool and nil.
package json

import (
	"io"
	"strconv"
	"strings"

	"github.com/combparse/comb"
)

var grammar = build(nil)

// Parse parses a complete JSON document, rejecting trailing input.
func Parse(input string) (any, error) {
	return run(grammar, input)
}

// ParseTrace is Parse with every rule attempt reported to w.
func ParseTrace(input string, w io.Writer) (any, error) {
	return run(build(w), input)
}

func run(g comb.Grammar[any], input string) (any, error) {
	r := comb.RunStrict(g["value"], input)
	if err := r.Err(); err != nil {
		return nil, err
	}
	return r.Value, nil
}

// member is one object key/value pair, carried between the member and object
// rules.
type member struct {
	key   string
	value any
}

func build(trace io.Writer) comb.Grammar[any] {
	rules := comb.Rules[any]{
		"value": func(g comb.Grammar[any]) comb.Parser[any] {
			return pad(comb.Choice[any](
				g["object"],
				g["array"],
				toAny(stringLit()),
				number(),
				boolean(),
				null(),
			))
		},
		"object": func(g comb.Grammar[any]) comb.Parser[any] {
			braced := comb.TakeMid(
				pad(comb.Literal("{")),
				comb.SepBy(g["member"], pad(comb.Literal(","))),
				pad(comb.Literal("}")),
			)
			return comb.Map(braced, func(pairs []any, _ comb.Span) any {
				object := make(map[string]any, len(pairs))
				for _, p := range pairs {
					m := p.(member)
					object[m.key] = m.value
				}
				return object
			})
		},
		"member": func(g comb.Grammar[any]) comb.Parser[any] {
			pair := comb.Sequence[any](
				toAny(pad(stringLit())),
				toAny(comb.Literal(":")),
				g["value"],
			)
			return comb.Map(pair, func(parts []any, _ comb.Span) any {
				return member{key: parts[0].(string), value: parts[2]}
			})
		},
		"array": func(g comb.Grammar[any]) comb.Parser[any] {
			bracketed := comb.TakeMid(
				pad(comb.Literal("[")),
				comb.SepBy[any](g["value"], pad(comb.Literal(","))),
				pad(comb.Literal("]")),
			)
			return comb.Map(bracketed, func(values []any, _ comb.Span) any {
				return values
			})
		},
	}
	if trace != nil {
		for name, define := range rules {
			rules[name] = func(g comb.Grammar[any]) comb.Parser[any] {
				return comb.Trace(trace, name, define(g))
			}
		}
	}
	return comb.NewGrammar(rules)
}

func stringLit() comb.Parser[string] {
	quoted := comb.Regexp(`"(?:[^"\\]|\\.)*"`, "string")
	return comb.Map(quoted, func(s string, _ comb.Span) string {
		return unquote(s)
	})
}

func number() comb.Parser[any] {
	// Float first: its leading digits are also a valid integer.
	return comb.Choice(toAny(comb.Float()), toAny(comb.Int()))
}

func boolean() comb.Parser[any] {
	keyword := comb.Choice(comb.Literal("true"), comb.Literal("false"))
	return comb.Map(keyword, func(s string, _ comb.Span) any {
		return s == "true"
	})
}

func null() comb.Parser[any] {
	return comb.Map(comb.Literal("null"), func(string, comb.Span) any {
		return nil
	})
}

// unquote decodes a JSON string literal, including \uXXXX and the \/ escape
// Go's strconv does not accept.
func unquote(s string) string {
	s = strings.ReplaceAll(s, `\/`, "/")
	out, err := strconv.Unquote(s)
	if err != nil {
		// The pattern guarantees balanced quotes; fall back to the raw body
		// for escapes strconv cannot decode.
		return s[1 : len(s)-1]
	}
	return out
}

func pad[T any](p comb.Parser[T]) comb.Parser[T] {
	return comb.TakeMid(spacing, p, spacing)
}

func toAny[T any](p comb.Parser[T]) comb.Parser[any] {
	return comb.Map(p, func(v T, _ comb.Span) any { return v })
}

var spacing = comb.Optional(comb.Whitespace())
