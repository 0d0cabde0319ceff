// Package slug derives URL-safe identifiers from display titles.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips diacritics so accented letters fold to plain ASCII.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts a title into its slug: lowercase ASCII letters and digits,
// every other run of characters collapsed into a single hyphen, no leading or
// trailing hyphens. Make("E-Commerce Platform") == "e-commerce-platform".
func Make(title string) string {
	folded, _, err := transform.String(foldTransformer, title)
	if err != nil {
		folded = title
	}

	var (
		b      strings.Builder
		hyphen bool
	)

	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)

			hyphen = false
		default:
			// collapse separator runs, never start with one
			if !hyphen && b.Len() > 0 {
				b.WriteByte('-')

				hyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
