package widgets

import (
	"fmt"

	"github.com/joe/summarize-client/internal/session"
	"github.com/joe/summarize-client/internal/tui/shared"
)

// NewSummaryStatsWidget creates a widget that displays the three scalar stats of a
// rendered result exactly as the server reported them.
func NewSummaryStatsWidget(styles shared.Styles, getResult func() session.RenderedResult) func() string {
	return func() string {
		r := getResult()

		return fmt.Sprintf("%s %s words   %s %s words   %s %s%%",
			styles.RenderLabel("Original:"), r.OriginalLength,
			styles.RenderLabel("Summary:"), r.SummaryLength,
			styles.RenderLabel("Compression:"), r.CompressionRatio,
		)
	}
}
