package widgets

import (
	"strings"

	"github.com/joe/summarize-client/internal/session"
	"github.com/joe/summarize-client/internal/tui/shared"
	"github.com/joe/summarize-client/pkg/api"
)

// MethodState is what the method widget needs to know.
type MethodState struct {
	Methods []api.Method
	Active  api.Method
	Ratio   int
}

// NewMethodWidget creates a widget showing the method buttons, the hint of the active
// method and the summary ratio.
func NewMethodWidget(styles shared.Styles, getState func() MethodState) func() string {
	return func() string {
		state := getState()

		buttons := make([]string, 0, len(state.Methods))
		for _, m := range state.Methods {
			label := session.MethodLabel(m)
			if m == state.Active {
				buttons = append(buttons, styles.ActiveMethod().Render(shared.ActiveSymbol()+" "+label))
			} else {
				buttons = append(buttons, styles.InactiveMethod().Render(shared.InactiveSymbol()+" "+label))
			}
		}

		var builder strings.Builder
		builder.WriteString(strings.Join(buttons, " "))
		builder.WriteString("\n")
		builder.WriteString(styles.RenderDim(session.MethodHint(state.Active)))
		builder.WriteString("\n")
		builder.WriteString(styles.RenderLabel("Summary length: "))
		builder.WriteString(shared.FormatRatio(state.Ratio))

		return builder.String()
	}
}
