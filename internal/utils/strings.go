package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	alreadyCamel   = regexp.MustCompile(`^[a-z]+[A-Za-z0-9]*$`)
	digitThenLower = regexp.MustCompile(`[0-9][a-z]`)
	leadingUpper   = regexp.MustCompile(`^_*[A-Z]`)
)

// ToCamel converts a snake_case string to camelCase. Strings that already
// look like camelCase are returned unchanged.
func ToCamel(snake string) string {
	if alreadyCamel.MatchString(snake) && !digitThenLower.MatchString(snake) {
		return snake
	}

	camel := ToPascal(snake)
	return leadingUpper.ReplaceAllStringFunc(camel, strings.ToLower)
}

// ToPascal converts a snake_case string to PascalCase: each word is
// capitalized and the underscore separating two word characters is dropped.
func ToPascal(snake string) string {
	runes := []rune(titleCase(snake))

	var b strings.Builder
	b.Grow(len(runes))
	for i, r := range runes {
		if r == '_' && i > 0 && i+1 < len(runes) &&
			isWordRune(runes[i-1]) &&
			(unicode.IsUpper(runes[i+1]) || unicode.IsDigit(runes[i+1])) {
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// CamelizeKeys rewrites every map key in v (recursively through nested maps
// and slices) to camelCase. Scraper payloads arrive with snake_case keys;
// the wire boundary serves camelCase.
func CamelizeKeys(v any) any {
	switch value := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, inner := range value {
			out[ToCamel(k)] = CamelizeKeys(inner)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, inner := range value {
			out[i] = CamelizeKeys(inner)
		}
		return out
	default:
		return v
	}
}

// CamelizeMap is CamelizeKeys specialised to a top-level map, preserving the
// map type for callers. A nil map stays nil.
func CamelizeMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	return CamelizeKeys(m).(map[string]any)
}

// titleCase uppercases the first letter of every word and lowercases the
// rest, where a word starts after any non-letter rune.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}

	return b.String()
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
