package errors

import "strings"

// PatternMatcher matches error messages to categories using string patterns.
type PatternMatcher interface {
	Match(errorMsg string) ErrorCategory
}

// NewPatternMatcher creates a new PatternMatcher with predefined patterns.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		patterns: []categoryPatterns{
			{
				category: CategoryTimeout,
				patterns: []string{
					"context deadline exceeded",
					"client.timeout exceeded",
					"i/o timeout",
					"timeout awaiting",
				},
			},
			{
				category: CategoryConnection,
				patterns: []string{
					"connection refused",
					"no such host",
					"network is unreachable",
					"connection reset",
					"eof",
				},
			},
			{
				category: CategoryMalformed,
				patterns: []string{
					"invalid character",
					"unexpected end of json",
					"cannot unmarshal",
					"schema",
				},
			},
		},
	}
}

type categoryPatterns struct {
	category ErrorCategory
	patterns []string
}

// patternMatcher is the concrete implementation of PatternMatcher.
// Categories are checked in order; the first hit wins.
type patternMatcher struct {
	patterns []categoryPatterns
}

// Match returns the error category based on pattern matching.
func (m *patternMatcher) Match(errorMsg string) ErrorCategory {
	lowerMsg := strings.ToLower(errorMsg)

	// "unexpected EOF" while decoding is a malformed body, not a dropped connection
	if strings.Contains(lowerMsg, "unexpected eof") && strings.Contains(lowerMsg, "decode") {
		return CategoryMalformed
	}

	for _, group := range m.patterns {
		for _, pattern := range group.patterns {
			if strings.Contains(lowerMsg, pattern) {
				return group.category
			}
		}
	}

	return CategoryUnknown
}
