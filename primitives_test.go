package comb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteral(t *testing.T) {
	r := Run(Literal("foo"), "foobar")
	require.True(t, r.Matched())
	assert.Equal(t, "foo", r.Value)
	assert.Equal(t, 3, r.Pos)
	assert.Equal(t, Span{0, 3}, r.Span)
}

func TestLiteralShortInput(t *testing.T) {
	r := Run(Literal("foo"), "fo")
	require.True(t, r.Failed())
	assert.Equal(t, "foo", r.Expected)
	assert.Equal(t, Span{0, 2}, r.Span)
	assert.Equal(t, 0, r.Pos)
}

func TestLiteralAtOffset(t *testing.T) {
	r := Literal("foo").Parse("xfoo", 1)
	require.True(t, r.Matched())
	assert.Equal(t, 4, r.Pos)
	assert.Equal(t, Span{1, 4}, r.Span)
}

func TestRegexpAnchored(t *testing.T) {
	digits := Regexp(`[0-9]+`, "digits")

	// A match later in the input is not a match here.
	r := digits.Parse("ab12", 0)
	require.True(t, r.Failed())
	assert.Equal(t, "digits", r.Expected)
	assert.Equal(t, Span{0, 0}, r.Span)

	r = digits.Parse("ab12", 2)
	require.True(t, r.Matched())
	assert.Equal(t, "12", r.Value)
	assert.Equal(t, 4, r.Pos)
}

func TestNothing(t *testing.T) {
	r := Nothing[string]().Parse("abc", 2)
	require.True(t, r.Matched())
	assert.Equal(t, "", r.Value)
	assert.Equal(t, Span{2, 2}, r.Span)
	assert.Equal(t, 2, r.Pos)

	ri := Run(Nothing[int](), "abc")
	assert.Equal(t, 0, ri.Value)
}

func TestInt(t *testing.T) {
	r := Run(Int(), "123 rest")
	require.True(t, r.Matched())
	assert.Equal(t, 123, r.Value)
	assert.Equal(t, 3, r.Pos)

	r = Run(Int(), "-17")
	require.True(t, r.Matched())
	assert.Equal(t, -17, r.Value)

	r = Run(Int(), "x")
	require.True(t, r.Failed())
	assert.Equal(t, "integer", r.Expected)
}

func TestIntNoLeadingZero(t *testing.T) {
	// Only "-0" is a valid integer at the start of "-042".
	r := Run(Int(), "-042")
	require.True(t, r.Matched())
	assert.Equal(t, 0, r.Value)
	assert.Equal(t, 2, r.Pos)

	r = Run(Int(), "042")
	require.True(t, r.Matched())
	assert.Equal(t, 0, r.Value)
	assert.Equal(t, 1, r.Pos)
}

func TestFloat(t *testing.T) {
	r := Run(Float(), "3.14")
	require.True(t, r.Matched())
	assert.Equal(t, 3.14, r.Value)
	assert.Equal(t, 4, r.Pos)

	r = Run(Float(), "-0.5")
	require.True(t, r.Matched())
	assert.Equal(t, -0.5, r.Value)

	// The decimal point is required.
	r = Run(Float(), "3")
	require.True(t, r.Failed())
	assert.Equal(t, "float", r.Expected)

	r = Run(Float(), "01.5")
	assert.True(t, r.Failed())
}

func TestWhitespace(t *testing.T) {
	r := Run(Whitespace(), " \t\nx")
	require.True(t, r.Matched())
	assert.Equal(t, " \t\n", r.Value)
	assert.Equal(t, 3, r.Pos)

	r = Run(Whitespace(), "x")
	require.True(t, r.Failed())
	assert.Equal(t, "whitespace", r.Expected)
}
