// Package normalize prepares extracted document text for keyword matching.
package normalize

import (
	"regexp"
	"strings"
)

// ocrFixes corrects look-alike characters OCR commonly confuses for letters.
// The substitution is applied uniformly, so legitimate digits are rewritten
// too; that loss is accepted in exchange for keyword recall on scanned text.
var ocrFixes = []struct{ from, to string }{
	{"0", "o"},
	{"1", "i"},
	{"5", "s"},
	{"@", "a"},
	{"&", "and"},
}

var reStrip = regexp.MustCompile(`[^a-z0-9\s.,!?-]`)

// Normalize lowercases, fixes common OCR confusions, strips characters
// outside [a-z0-9 whitespace .,!?-] and collapses runs of whitespace.
// Pure and idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	for _, f := range ocrFixes {
		s = strings.ReplaceAll(s, f.from, f.to)
	}
	s = reStrip.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}
