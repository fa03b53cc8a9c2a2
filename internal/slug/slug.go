// Package slug derives category codes from display names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fallback is used when a display name has no ASCII letters or digits left after folding.
const Fallback = "CATEGORY"

// MaxLen bounds the length of a generated code.
const MaxLen = 48

var (
	// foldStroke covers letters with no canonical decomposition.
	foldStroke = runes.Map(func(r rune) rune {
		switch r {
		case 'đ':
			return 'd'
		case 'Đ':
			return 'D'
		}
		return r
	})

	nonCode          = regexp.MustCompile(`[^A-Z0-9_]+`)
	repeatUnderscore = regexp.MustCompile(`_{2,}`)
)

// Code converts a display name to an upper-case code such as "ACTION_RPG".
// Accents are folded ("Café" becomes "CAFE") and other symbols become separators.
func Code(displayName string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), foldStroke, norm.NFC)
	folded, _, _ := transform.String(t, displayName)

	code := strings.ToUpper(strings.TrimSpace(folded))
	code = nonCode.ReplaceAllString(code, "_")
	code = repeatUnderscore.ReplaceAllString(code, "_")
	code = strings.Trim(code, "_")

	if len(code) > MaxLen {
		code = strings.TrimRight(code[:MaxLen], "_")
	}
	if code == "" {
		return Fallback
	}
	return code
}
