package slug

import (
	"regexp"
	"strings"
)

var (
	nonAlnum   = regexp.MustCompile(`[^a-z0-9]+`)
	hyphenRuns = regexp.MustCompile(`-+`)
)

// Spanish diacritics mapped to their base characters. The catalog is authored
// in Spanish, so this covers the accented vowels, the diaeresis and eñe.
var diacritics = map[rune]rune{
	'á': 'a', 'à': 'a', 'ä': 'a', 'â': 'a',
	'é': 'e', 'è': 'e', 'ë': 'e', 'ê': 'e',
	'í': 'i', 'ì': 'i', 'ï': 'i', 'î': 'i',
	'ó': 'o', 'ò': 'o', 'ö': 'o', 'ô': 'o',
	'ú': 'u', 'ù': 'u', 'ü': 'u', 'û': 'u',
	'ñ': 'n', 'ç': 'c',

	'Á': 'A', 'À': 'A', 'Ä': 'A', 'Â': 'A',
	'É': 'E', 'È': 'E', 'Ë': 'E', 'Ê': 'E',
	'Í': 'I', 'Ì': 'I', 'Ï': 'I', 'Î': 'I',
	'Ó': 'O', 'Ò': 'O', 'Ö': 'O', 'Ô': 'O',
	'Ú': 'U', 'Ù': 'U', 'Ü': 'U', 'Û': 'U',
	'Ñ': 'N', 'Ç': 'C',
}

// Generate derives a URL-safe slug from a course title: transliterate
// diacritics, lowercase, collapse every non-alphanumeric run into a single
// hyphen and trim leading/trailing hyphens.
func Generate(input string) string {
	ascii := RemoveDiacritics(input)
	lower := strings.ToLower(ascii)
	hyphenated := nonAlnum.ReplaceAllString(lower, "-")
	normalized := hyphenRuns.ReplaceAllString(hyphenated, "-")
	return strings.Trim(normalized, "-")
}

// RemoveDiacritics replaces accented characters with their ASCII base form.
func RemoveDiacritics(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		if replacement, ok := diacritics[r]; ok {
			result = append(result, replacement)
		} else {
			result = append(result, r)
		}
	}
	return string(result)
}
