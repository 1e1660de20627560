package widgets

import (
	"github.com/joe/summarize-client/internal/session"
	"github.com/joe/summarize-client/internal/tui/shared"
)

// NewKeywordsWidget creates a widget that renders keyword tags in server order,
// duplicates included. It renders nothing while the metrics panel is hidden.
func NewKeywordsWidget(styles shared.Styles, width int, getResult func() session.RenderedResult) func() string {
	return func() string {
		r := getResult()
		if !r.MetricsVisible {
			return ""
		}

		if len(r.Keywords) == 0 {
			return styles.RenderLabel("Keywords") + "\n" + styles.RenderDim("none")
		}

		tags := make([]string, 0, len(r.Keywords))
		for _, kw := range r.Keywords {
			tags = append(tags, styles.Tag().Render(kw))
		}

		return styles.RenderLabel("Keywords") + "\n" + shared.JoinWrapped(tags, width)
	}
}
