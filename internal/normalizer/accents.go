package normalizer

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripDiacritics removes combining marks safely (NFD decompose, drop marks,
// NFC recompose), so "Leganés" becomes "Leganes".
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	out, _, _ := transform.String(t, s)
	return out
}

// isMn reports whether the rune is a nonspacing combining mark.
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// Fold lowercases and transliterates to plain ASCII. Used for cache keys and
// fuzzy comparisons where "Ñ" and "n" must collide.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
}

// FoldUpper uppercases after stripping diacritics, matching how the street
// directory stores its entries.
func FoldUpper(s string) string {
	return strings.TrimSpace(strings.ToUpper(StripDiacritics(s)))
}
