// Package slug builds URL identifiers from Portuguese tour titles.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make returns s without diacritics, lower-cased, with every run of other
// characters replaced by a single dash.
func Make(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}

	plain = nonAlnum.ReplaceAllString(strings.ToLower(plain), "-")
	return strings.Trim(plain, "-")
}
