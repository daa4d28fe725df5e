package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Administrative-unit prefixes stripped once from the start of a name, longest
// first so "thi tran" is not shadowed by a shorter token.
var unitPrefixes = []string{
	"thanh pho",
	"thi tran",
	"phuong",
	"huyen",
	"quan",
	"xa",
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Name canonicalizes an administrative name for equality matching: lowercase,
// diacritics stripped (including đ, which NFD leaves intact), one leading
// unit-type prefix removed, surrounding whitespace trimmed. Total and
// idempotent.
func Name(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	s = strings.ReplaceAll(s, "đ", "d")
	for _, p := range unitPrefixes {
		if strings.HasPrefix(s, p+" ") {
			s = strings.TrimSpace(s[len(p)+1:])
			break
		}
	}
	return strings.TrimSpace(s)
}
