package custom

import (
	"strings"

	"github.com/lithammer/dedent"
)

// fixIndent removes common leading whitespace from all lines
// and replaces all tabs by spaces
func fixIndent(s string) string {
	return strings.ReplaceAll(dedent.Dedent(s), "\t", "   ")
}
