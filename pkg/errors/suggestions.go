package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions based on error category.
type SuggestionGenerator interface {
	Generate(category ErrorCategory, endpoint string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

// suggestionGenerator is the concrete implementation of SuggestionGenerator.
type suggestionGenerator struct{}

// Generate returns actionable suggestions based on the error category and endpoint.
func (g *suggestionGenerator) Generate(category ErrorCategory, endpoint string) []string {
	switch category {
	case CategoryConnection:
		return g.generateConnectionSuggestions(endpoint)
	case CategoryTimeout:
		return g.generateTimeoutSuggestions(endpoint)
	case CategoryMalformed:
		return g.generateMalformedSuggestions(endpoint)
	case CategoryValidation, CategoryApplication:
		return nil
	case CategoryUnknown:
		return g.generateUnknownSuggestions(endpoint)
	default:
		return g.generateUnknownSuggestions(endpoint)
	}
}

func (g *suggestionGenerator) generateConnectionSuggestions(endpoint string) []string {
	suggestions := []string{
		"Make sure the summarization server is running",
	}

	if endpoint != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check that %s is reachable from this machine", endpoint))
	}

	suggestions = append(suggestions, "Pass the correct address with --server")

	return suggestions
}

func (g *suggestionGenerator) generateMalformedSuggestions(endpoint string) []string {
	suggestions := []string{
		"The server answered with something other than the expected JSON",
	}

	if endpoint != "" {
		suggestions = append(suggestions, "Verify that "+endpoint+" points at the summarizer API and not a proxy or web page")
	}

	suggestions = append(suggestions, "Run with --log-file to capture the raw response")

	return suggestions
}

func (g *suggestionGenerator) generateTimeoutSuggestions(_ string) []string {
	return []string{
		"The server took too long to answer",
		"Long texts take longer to summarize; try again or raise --timeout",
	}
}

func (g *suggestionGenerator) generateUnknownSuggestions(endpoint string) []string {
	suggestions := []string{
		"Check the debug log for more details",
	}

	if endpoint != "" {
		suggestions = append(suggestions, "Verify the server address: "+endpoint)
	}

	return suggestions
}
