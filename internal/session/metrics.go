package session

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Metrics are the live counters shown under the input.
type Metrics struct {
	Words     int
	Chars     int
	Sentences int
}

// ComputeMetrics counts words, characters and sentences of text in one linear pass.
//
// Words are whitespace-delimited tokens. Chars counts every character of the raw text,
// whitespace included. Sentences are the fragments left after splitting on runs of
// '.', '!' and '?', ignoring fragments that are empty or only whitespace.
func ComputeMetrics(text string) Metrics {
	sentences := 0
	fragmentHasContent := false

	for _, r := range text {
		if isSentenceTerminator(r) {
			if fragmentHasContent {
				sentences++
			}
			fragmentHasContent = false

			continue
		}

		if !unicode.IsSpace(r) {
			fragmentHasContent = true
		}
	}

	if fragmentHasContent {
		sentences++
	}

	return Metrics{
		Words:     len(strings.Fields(text)),
		Chars:     utf8.RuneCountInString(text),
		Sentences: sentences,
	}
}

func isSentenceTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
