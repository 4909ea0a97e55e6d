package validation

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidateSlug checks that a slug is lowercase alphanumeric with single
// hyphen separators, suitable for use in a URL path segment.
func ValidateSlug(slug string) error {
	if slug == "" {
		return errors.New("slug is required")
	}
	if len(slug) > 120 {
		return errors.New("slug is too long (max 120 characters)")
	}
	if !slugPattern.MatchString(slug) {
		return errors.New("slug may only contain lowercase letters, numbers and hyphens")
	}
	return nil
}

// Slugify derives a URL-safe slug from a title. Diacritics are stripped
// via Unicode decomposition, everything outside [a-z0-9] collapses to a
// single hyphen.
func Slugify(title string) string {
	// NFD decomposition splits accented characters into base + combining mark
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(t, title)
	if err != nil {
		normalized = title
	}

	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(normalized) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
