package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ShortenMessage collapses all whitespace of message into single blanks
// and cuts it to at most length characters, marking a cut with "...".
// Lengths below 3 are treated as 3.
func ShortenMessage(message string, length int) string {
	if length < 3 {
		length = 3
	}
	result := whitespaceRun.ReplaceAllString(strings.TrimSpace(message), " ")
	if utf8.RuneCountInString(result) > length {
		result = string([]rune(result)[:length-3]) + "..."
	}
	return result
}
