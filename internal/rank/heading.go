package rank

import (
	"strings"
	"unicode"
)

// Heading-likeness heuristics for plain page text, where no font metrics are
// available: a candidate line has 3-20 words, is not symbols-only, and is
// either ALL-CAPS or Title Case.

const (
	minHeadingWords = 3
	maxHeadingWords = 20
)

// IsLikelyHeading reports whether a line of page text looks like a section
// heading.
func IsLikelyHeading(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	words := strings.Fields(line)
	if len(words) < minHeadingWords || len(words) > maxHeadingWords {
		return false
	}
	if symbolsOnly(line) {
		return false
	}
	return isUpperCase(line) || isTitleCase(words)
}

// symbolsOnly reports whether the line contains no letters or digits.
func symbolsOnly(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isUpperCase reports whether the line has at least one letter and no
// lowercase letters.
func isUpperCase(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// isTitleCase reports whether every word that starts with a letter begins
// uppercase with the rest lowercase.
func isTitleCase(words []string) bool {
	sawTitleWord := false
	for _, w := range words {
		runes := []rune(w)
		if !unicode.IsLetter(runes[0]) {
			continue
		}
		if !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes[1:] {
			if unicode.IsUpper(r) {
				return false
			}
		}
		sawTitleWord = true
	}
	return sawTitleWord
}
