package widgets

import (
	"strings"

	"github.com/joe/summarize-client/internal/session"
	"github.com/joe/summarize-client/internal/tui/shared"
)

// NewViewStateWidget creates a header indicator marking the current view state among
// all four.
func NewViewStateWidget(styles shared.Styles, getState func() session.ViewState) func() string {
	return func() string {
		current := getState()

		parts := make([]string, 0, len(session.ViewStates()))
		for _, state := range session.ViewStates() {
			if state == current {
				parts = append(parts, styles.RenderLabel(shared.ActiveSymbol()+" "+state.String()))
			} else {
				parts = append(parts, styles.RenderDim(shared.InactiveSymbol()+" "+state.String()))
			}
		}

		return strings.Join(parts, "  ")
	}
}
