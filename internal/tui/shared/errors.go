package shared

import (
	"strings"

	"github.com/joe/summarize-client/pkg/errors"
)

// RenderFailure renders the error view: the user-facing message, then any suggestions
// indented beneath it.
func RenderFailure(styles Styles, err errors.ActionableError) string {
	if err == nil {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(ErrorSymbol())
	builder.WriteString(" ")
	builder.WriteString(styles.RenderError(err.Error()))

	if suggestions := errors.FormatSuggestions(err); suggestions != "" {
		builder.WriteString("\n\n")
		builder.WriteString(styles.RenderDim(suggestions))
	}

	if err.Category().IsTransport() && err.OriginalError() != "" {
		builder.WriteString("\n\n")
		builder.WriteString(styles.RenderDim("cause: " + err.OriginalError()))
	}

	return builder.String()
}
