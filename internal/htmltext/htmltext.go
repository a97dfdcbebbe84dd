package htmltext

import (
	"html"
	"strings"
)

// Decode converts HTML character references (named and numeric) into their
// literal characters. Text without references is returned unchanged, so
// decoding already-decoded text is a no-op. Unknown entities pass through
// literally.
func Decode(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	return html.UnescapeString(s)
}

// Clean decodes character references and collapses all whitespace runs into
// single spaces, trimming the ends. strings.Fields splits on unicode.IsSpace,
// which also covers the non-breaking spaces the site sprinkles into cells.
func Clean(s string) string {
	return strings.Join(strings.Fields(Decode(s)), " ")
}
