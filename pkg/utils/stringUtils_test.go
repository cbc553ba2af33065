package utils

import (
	"testing"
	"unicode/utf8"

	"gotest.tools/v3/assert"
)

func Test_ShortenMessage(t *testing.T) {
	for _, tc := range []struct {
		name     string
		message  string
		length   int
		expected string
	}{
		{"shortened", "  ABC\nDEF\r\r\nGHI \t ", 8, "ABC D..."},
		{"notCut", "  ABC\nDEF\r\r\nGHI \t ", 12, "ABC DEF GHI"},
		{"tooShortLength", "ABCDEF", 2, "..."},
		{"negativeLength", "ABCDEF", -5, "..."},
		{"lineBreaks", " A\n\rB ", 1000, "A B"},
		{"mixedWhitespace", " A  \t \n\r \n B ", 1000, "A B"},
		{"empty", "", 10, ""},
		{"multiByteNotCut", "ääääää", 6, "ääääää"},
		{"multiByteCut", "ääääää", 5, "ää..."},
		{"multiByteMixed", "a€b€c€d", 6, "a€b..."},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tc := tc
			t.Parallel()

			// EXERCISE
			result := ShortenMessage(tc.message, tc.length)

			// VERIFY
			assert.Equal(t, tc.expected, result)
			assert.Assert(t, utf8.ValidString(result))
		})
	}
}
