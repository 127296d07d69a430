package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizedEqual reports whether a and b are equal after NFC
// normalization. The comparison is case-sensitive.
func NormalizedEqual(a, b string) bool {
	return norm.NFC.String(a) == norm.NFC.String(b)
}

// FoldedEqual reports whether a and b are equal after NFC normalization
// and full Unicode case folding, so "Straße" equals "strasse".
func FoldedEqual(a, b string) bool {
	return fold(a) == fold(b)
}

// Fold returns the NFC form of s with full case folding applied.
func Fold(s string) string {
	return fold(s)
}

func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// IsCombining reports whether r has a non-zero canonical combining class,
// i.e. it attaches to the preceding base character.
func IsCombining(r rune) bool {
	return norm.NFD.PropertiesString(string(r)).CCC() != 0
}

// StripMarks removes all combining marks: s is decomposed with NFD, every
// combining mark is dropped and the result is recomposed with NFC.
func StripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(IsCombining)), norm.NFC)
	out, _, _ := transform.String(t, s)
	return out
}

// StripMarksLatinOnly removes combining marks that follow an ASCII letter
// and keeps marks attached to any other base character.
func StripMarksLatinOnly(s string) string {
	var b strings.Builder
	latinBase := false
	for _, r := range norm.NFD.String(s) {
		combining := IsCombining(r)
		if combining && latinBase {
			continue
		}
		b.WriteRune(r)
		if !combining {
			latinBase = isASCIILetter(r)
		}
	}
	return norm.NFC.String(b.String())
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
