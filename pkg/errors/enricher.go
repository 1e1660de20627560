package errors

import (
	"errors"
	"regexp"
	"strings"
)

// Enricher enriches standard errors with actionable suggestions.
type Enricher interface {
	Enrich(err error, endpoint string) ActionableError
}

// NewEnricher creates a new Enricher with default pattern matcher and suggestion generator.
func NewEnricher() Enricher {
	return &enricher{
		matcher:   NewPatternMatcher(),
		generator: NewSuggestionGenerator(),
	}
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Compiled regex shared across all enricher instances
	endpointPattern = regexp.MustCompile(`\b(?:Get|Post|Put|Delete|Patch|Head) "([^"]+)"`)
)

// enricher is the concrete implementation of Enricher.
type enricher struct {
	matcher   PatternMatcher
	generator SuggestionGenerator
}

// Enrich turns a transport-level error into an ActionableError carrying the fixed
// connectivity message and category-specific suggestions.
// If the error is already an ActionableError, it is returned unchanged.
// If endpoint is empty, attempts to extract the request URL from the error message.
func (e *enricher) Enrich(err error, endpoint string) ActionableError {
	var actionableErr ActionableError
	if errors.As(err, &actionableErr) {
		return actionableErr
	}

	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}

	if endpoint == "" {
		endpoint = extractEndpoint(errMsg)
	}

	category := e.matcher.Match(errMsg)

	return NewActionableError(
		TransportMessage,
		errMsg,
		category,
		e.generator.Generate(category, endpoint),
		endpoint,
	)
}

// extractEndpoint pulls the request URL out of a net/http client error such as
// `Post "http://localhost:5000/api/summarize": dial tcp [::1]:5000: connect: connection refused`.
// Returns empty string if no URL is found.
func extractEndpoint(errorMsg string) string {
	if matches := endpointPattern.FindStringSubmatch(errorMsg); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	return ""
}
