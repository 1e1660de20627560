package widgets

import (
	"strings"

	"github.com/joe/summarize-client/internal/session"
	"github.com/joe/summarize-client/internal/tui/shared"
)

// NewReadabilityWidget creates a widget listing the readability metrics, one per line.
// It renders nothing when the server sent none.
func NewReadabilityWidget(styles shared.Styles, getResult func() session.RenderedResult) func() string {
	return func() string {
		items := getResult().Readability
		if len(items) == 0 {
			return ""
		}

		labelWidth := 0
		for _, item := range items {
			labelWidth = max(labelWidth, len(item.Label))
		}

		var builder strings.Builder
		builder.WriteString(styles.RenderLabel("Readability"))

		for _, item := range items {
			builder.WriteString("\n  ")
			builder.WriteString(styles.RenderDim(item.Label + strings.Repeat(" ", labelWidth-len(item.Label))))
			builder.WriteString("  ")
			builder.WriteString(item.Value)
		}

		return builder.String()
	}
}
