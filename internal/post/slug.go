package post

import (
	"strings"
	"unicode"
)

// Slugify converts a tag display name to a URL-friendly slug.
// Characters that are unsafe in a URL path or fragment are replaced by
// hyphens; runs of hyphens are kept as they are.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '-'
		}
		switch r {
		case '/', '\\', '#', '?', '&', '=', '%', '+':
			return '-'
		}
		return r
	}, s)
	return strings.Trim(s, "-")
}
