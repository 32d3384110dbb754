package comb

import (
	"regexp"
	"strconv"
)

// Literal matches exactly s at the current position and yields s. On failure
// Expected is s itself and the span covers the compared region, clamped to the
// end of the input.
func Literal(s string) Parser[string] {
	return ParseFunc[string](func(input string, pos int) Result[string] {
		end := pos + len(s)
		if end <= len(input) && input[pos:end] == s {
			return Match(s, Span{pos, end})
		}
		if end > len(input) {
			end = len(input)
		}
		return NoMatch[string](pos, Span{pos, end}, s)
	})
}

// Regexp matches pattern anchored at the current position and yields the
// matched text verbatim. A match beginning later in the input is not
// accepted. expected labels the failure diagnostic. Regexp panics if the
// pattern does not compile.
func Regexp(pattern, expected string) Parser[string] {
	re := regexp.MustCompile(`\A(?:` + pattern + `)`)
	return ParseFunc[string](func(input string, pos int) Result[string] {
		loc := re.FindStringIndex(input[pos:])
		if loc == nil {
			return NoMatch[string](pos, Span{pos, pos}, expected)
		}
		end := pos + loc[1]
		return Match(input[pos:end], Span{pos, end})
	})
}

// Nothing always matches, consumes no input and yields the zero value of T.
// It is the universal "optional else" fallback.
func Nothing[T any]() Parser[T] {
	return ParseFunc[T](func(input string, pos int) Result[T] {
		var zero T
		return Match(zero, Span{pos, pos})
	})
}

const (
	intPattern   = `-?(?:0|[1-9][0-9]*)`
	floatPattern = `-?(?:0|[1-9][0-9]*)\.[0-9]+`
)

// Int matches an optionally negative run of digits with no leading zero
// (the literal 0 excepted) and yields its integer value.
func Int() Parser[int] {
	return Map(Regexp(intPattern, "integer"), func(s string, _ Span) int {
		// The pattern constrains the lexical shape; conversion cannot fail.
		n, _ := strconv.Atoi(s)
		return n
	})
}

// Float matches digits, a decimal point and trailing digits, yielding the
// floating value. The integer part follows the same no-leading-zero rule as
// Int.
func Float() Parser[float64] {
	return Map(Regexp(floatPattern, "float"), func(s string, _ Span) float64 {
		f, _ := strconv.ParseFloat(s, 64)
		return f
	})
}

// Whitespace matches one or more whitespace characters.
func Whitespace() Parser[string] {
	return Regexp(`\s+`, "whitespace")
}
