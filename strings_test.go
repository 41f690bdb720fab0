package jsonish

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOneString(t *testing.T, in string, strict bool) (string, error) {
	t.Helper()
	p := newParser([]byte(in), NewDecodeConfig().WithStrict(strict))
	return p.readString()
}

func TestReadStringEscapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: `"hello"`, want: "hello"},
		{name: "named escapes", in: `"\b\f\n\r\t\"\\\/"`, want: "\b\f\n\r\t\"\\/"},
		{name: "basic unicode escape", in: "\"\\u2023\"", want: "‣"},
		{name: "surrogate pair", in: "\"\\uD800\\uDC00\"", want: "\U00010000"},
		{name: "explosion emoji", in: `"💥"`, want: "\U0001f4a5"},
		{name: "literal utf8", in: "\"café\"", want: "café"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseOneString(t, tc.in, false)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadStringLoneSurrogateIsAnError(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "lone high surrogate", in: `"\uD800"`},
		{name: "lone low surrogate", in: `"\uDC01"`},
		{name: "high followed by non-surrogate escape", in: "\"\\ud83d\\u2023\""},
		{name: "two high surrogates", in: `"\ud83d\ud83d"`},
		{name: "high followed by literal text, not an escape", in: `"\ud83dXX"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseOneString(t, tc.in, false)
			require.Error(t, err)
			var je *Error
			require.ErrorAs(t, err, &je)
			assert.Equal(t, LoneSurrogate, je.Kind)
		})
	}
}

func TestReadStringControlCharsRejectedInBothModes(t *testing.T) {
	for _, strict := range []bool{true, false} {
		_, err := parseOneString(t, "\"a\tb\"", strict)
		require.Error(t, err)
		var je *Error
		require.ErrorAs(t, err, &je)
		assert.Equal(t, InvalidControlCharInString, je.Kind)
	}
}

func TestReadStringLineContinuation(t *testing.T) {
	got, err := parseOneString(t, "\"a\\\nb\"", false)
	require.NoError(t, err)
	assert.Equal(t, "ab", got)

	_, err = parseOneString(t, "\"a\\\nb\"", true)
	require.Error(t, err)
	var je *Error
	require.ErrorAs(t, err, &je)
	assert.Equal(t, LineContinuationInStrict, je.Kind)
}

func TestReadStringTrailingBackslashAtEOF(t *testing.T) {
	_, err := parseOneString(t, `"abc\`, false)
	require.Error(t, err)
	var je *Error
	require.ErrorAs(t, err, &je)
	assert.Equal(t, InvalidEscape, je.Kind)
}

func TestReadStringUnterminated(t *testing.T) {
	_, err := parseOneString(t, `"abc`, false)
	require.Error(t, err)
	var je *Error
	require.ErrorAs(t, err, &je)
	assert.Equal(t, UnterminatedString, je.Kind)
}
