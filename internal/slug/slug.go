// Package slug derives the normalized and URL-safe forms of project names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical lookup form of a project name.
// Requiring the normalized name to be unique ensures project names are
// unique modulo case, marks, punctuation, and whitespace.
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastSpace := false
	for _, r := range norm.NFKD.String(name) {
		r = unicode.ToLower(r)
		switch {
		case unicode.In(r, unicode.M):
			// combining marks are dropped
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}

	return strings.TrimSpace(b.String())
}

var (
	specialPattern = regexp.MustCompile(`[:/?#\[\]@!$&'()*+,;=%"<>\\^` + "`" + `{}|]`)
	hyphenPattern  = regexp.MustCompile(`-+`)
)

// Slug returns the URL-safe form of a project name: whitespace becomes
// hyphens, URL-special characters are removed, and runs of hyphens are
// collapsed. Non-ASCII characters pass through unchanged.
func Slug(name string) string {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '-'
		}
		return r
	}, name)
	s = specialPattern.ReplaceAllString(s, "")
	s = hyphenPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
