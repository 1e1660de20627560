// Package errors provides actionable error handling with context-aware suggestions.
//
// Every failure the summarize client can show the user falls into one of the classes of
// the error taxonomy: a validation error raised locally before any request, a transport
// error (the server could not be reached or answered with something that is not the
// expected JSON), an application error (a well-formed `success: false` answer), or an
// analytics fetch error that is only ever logged.
//
// Transport failures are further categorized from the underlying Go error message
// (connection refused, timeout, malformed body) so that the error view can suggest a fix.
//
// Basic Usage:
//
//	enricher := errors.NewEnricher()
//	_, err := client.Summarize(ctx, req)
//	if err != nil {
//	    actionable := enricher.Enrich(err, "http://localhost:5000")
//	    fmt.Println(actionable.Error())
//	    fmt.Println(errors.FormatSuggestions(actionable))
//	}
//
// The enricher extracts the endpoint from net/http error messages when none is provided:
//
//	err := fmt.Errorf(`Post "http://localhost:5000/api/summarize": dial tcp: connection refused`)
//	enriched := enricher.Enrich(err, "") // endpoint is http://localhost:5000/api/summarize
package errors

import "strings"

// Exported constants.
const (
	CategoryApplication ErrorCategory = "application"
	CategoryConnection  ErrorCategory = "connection"
	CategoryMalformed   ErrorCategory = "malformed_response"
	CategoryTimeout     ErrorCategory = "timeout"
	CategoryUnknown     ErrorCategory = "unknown"
	CategoryValidation  ErrorCategory = "validation"
)

// Fixed user-facing messages.
const (
	EmptyInputMessage       = "Please enter some text to summarize"
	TransportMessage        = "Failed to connect to server. Please check your connection."
	DefaultApplicationError = "Error generating summary"
)

// ActionableError represents an error with actionable suggestions for the user.
type ActionableError interface {
	error
	OriginalError() string
	Category() ErrorCategory
	Suggestions() []string
	Endpoint() string
}

// NewActionableError creates a new ActionableError with the given details.
// The message is what Error() returns; originalError keeps the underlying cause text.
func NewActionableError(
	message string,
	originalError string,
	category ErrorCategory,
	suggestions []string,
	endpoint string,
) ActionableError {
	return &actionableError{
		message:       message,
		originalError: originalError,
		category:      category,
		suggestions:   suggestions,
		endpoint:      endpoint,
	}
}

// NewValidationError reports input rejected before any request is made.
func NewValidationError(message string) ActionableError {
	return NewActionableError(message, message, CategoryValidation, nil, "")
}

// NewApplicationError reports a well-formed failure answer from the server.
// An empty server message falls back to DefaultApplicationError.
func NewApplicationError(serverMessage string) ActionableError {
	message := serverMessage
	if strings.TrimSpace(message) == "" {
		message = DefaultApplicationError
	}

	return NewActionableError(message, serverMessage, CategoryApplication, nil, "")
}

// ErrorCategory represents the type of error that occurred.
type ErrorCategory string

// IsTransport reports whether the category is one of the transport failure classes.
func (c ErrorCategory) IsTransport() bool {
	switch c {
	case CategoryConnection, CategoryTimeout, CategoryMalformed, CategoryUnknown:
		return true
	case CategoryValidation, CategoryApplication:
		return false
	default:
		return false
	}
}

// FormatSuggestions formats the suggestions from an ActionableError as a bulleted list
// for display in the TUI. Returns empty string if the error is nil or has no suggestions.
func FormatSuggestions(err error) string {
	if err == nil {
		return ""
	}

	actionable, ok := err.(ActionableError)
	if !ok {
		return ""
	}

	suggestions := actionable.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, suggestion := range suggestions {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("  • ")
		builder.WriteString(suggestion)
	}

	return builder.String()
}

// actionableError is the concrete implementation of ActionableError.
type actionableError struct {
	message       string
	originalError string
	category      ErrorCategory
	suggestions   []string
	endpoint      string
}

// Category returns the error category.
func (e *actionableError) Category() ErrorCategory {
	return e.category
}

// Endpoint returns the server URL involved in the failure, if known.
func (e *actionableError) Endpoint() string {
	return e.endpoint
}

// Error implements the error interface.
func (e *actionableError) Error() string {
	return e.message
}

// OriginalError returns the underlying error message.
func (e *actionableError) OriginalError() string {
	return e.originalError
}

// Suggestions returns the list of actionable suggestions.
func (e *actionableError) Suggestions() []string {
	return e.suggestions
}
