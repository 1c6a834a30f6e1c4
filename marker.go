package easyterm

import (
	"regexp"
	"strings"
	"unicode"
)

// isMarker reports whether a token introduces an option key. A marker
// starts with a dash, is longer than one character, contains no white
// space, and has an ASCII letter right after the dash. Everything else,
// including negative numbers, is a value token.
func isMarker(token string) bool {
	if len(token) < 2 || token[0] != '-' {
		return false
	}
	if !asciiLetter(token[1]) {
		return false
	}
	return strings.IndexFunc(token, unicode.IsSpace) < 0
}

func asciiLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// optionKey strips the leading dashes of a marker token.
func optionKey(token string) string {
	return strings.TrimLeft(token, "-")
}

// locateMarkers returns the indices of all marker tokens, in order.
func locateMarkers(args []string) []int {
	var indices []int
	for i, token := range args {
		if isMarker(token) {
			indices = append(indices, i)
		}
	}
	return indices
}

// matchAny reports whether any pattern matches key. Patterns are compiled
// with regexp.Compile and matched unanchored, case sensitive. A compile
// failure is reported as is: it is a bug in the caller's pattern list, not
// bad command line input.
func matchAny(key string, patterns []string) (bool, error) {
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return false, err
		}
		if re.MatchString(key) {
			return true, nil
		}
	}
	return false, nil
}
