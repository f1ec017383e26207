// Package locus classifies free-text location phrases. A phrase is "vague"
// when it cannot be geocoded as written and needs a resolution step first.
package locus

import (
	"regexp"
	"strings"
)

var vagueIndicators = []string{
	"here", "there", "this place", "that place", "nearby", "around here",
	"somewhere", "anywhere", "the mall", "the store", "the restaurant",
	"my location", "current location", "where i am", "where i'm at",
	"a ", "an ", "the other", "another", "different", "next to", "near",
	"close to", "across from", "behind", "in front of",
}

var vaguePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[a-z]+\s+(place|location|area|spot)$`),
	regexp.MustCompile(`^(the|a|an)\s+[a-z]+$`),
	regexp.MustCompile(`^[a-z]+\s+(nearby|around|close)$`),
	regexp.MustCompile(`^.*\s+(next to|near|close to|across from|behind|in front of)\s+.*`),
	regexp.MustCompile(`^[a-z]+\s+[a-z]+\s+(in|at|near)\s+.*`),
}

var relativeTerms = []string{
	"next to", "near", "close to", "across from", "behind",
	"in front of", "beside", "adjacent to", "a ", "an ",
}

var businessContextPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[a-z]+\s+(in|at|near)\s+.*`),
	regexp.MustCompile(`^.*\s+(in|at|near)\s+[a-z]+\s+[a-z]+.*`),
}

// IsVague reports whether a location phrase is too underspecified to geocode
// directly. False negatives are expected and accepted.
func IsVague(text string) bool {
	lower := strings.ToLower(text)

	for _, indicator := range vagueIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}

	if len(strings.TrimSpace(text)) < 5 {
		return true
	}

	for _, pattern := range vaguePatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}

// ShouldResolve reports whether a phrase deserves a resolution attempt even
// when it is not strictly vague, e.g. "a McDonald's next to UTC".
func ShouldResolve(text string) bool {
	lower := strings.ToLower(text)

	for _, term := range relativeTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}

	for _, pattern := range businessContextPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}
