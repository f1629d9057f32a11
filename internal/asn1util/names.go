package asn1util

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"regexp"
	"strings"
)

var startingDigits = regexp.MustCompile(`^([\d]+)(.*)`)

var title = cases.Title(language.Und, cases.NoLower)

// NormalizeName converts an ASN.1 identifier, like "id-at-commonName", into an exported
// Go identifier, like "IDAtCommonName".
func NormalizeName(s string) string {
	// 1. Hyphens separate words, other non-word chars become underscores
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		case r == '-', r == ' ':
			return ' '
		default:
			return '_'
		}
		return r
	}, s)

	words := strings.Fields(s)

	for i, w := range words {
		if i == 0 {
			// 2. If the first word begins with a digit, move all digits at start of first word to end of first word
			w = startingDigits.ReplaceAllString(w, `$2$1`)
		}

		// 3. Capitalize the first letter of each word, and the common initialisms entirely
		switch w {
		case "id", "oid":
			words[i] = strings.ToUpper(w)
		default:
			words[i] = title.String(w)
		}
	}

	// 4. Concatenate all words with spaces removed
	return strings.Join(words, "")
}

// IsIdentifier reports whether s is a valid ASN.1 identifier or type reference: a
// letter followed by letters, digits and single hyphens, not ending in a hyphen.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9', c == '-':
			if i == 0 {
				return false
			}
			if c == '-' && (i == len(s)-1 || s[i-1] == '-') {
				return false
			}
		default:
			return false
		}
	}
	return true
}
