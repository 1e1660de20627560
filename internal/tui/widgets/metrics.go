package widgets

import (
	"fmt"

	"github.com/joe/summarize-client/internal/session"
)

// NewInputMetricsWidget creates a widget that displays the live input counters.
// Returns a closure that formats the metrics each time it is called.
func NewInputMetricsWidget(getMetrics func() session.Metrics) func() string {
	return func() string {
		m := getMetrics()

		return fmt.Sprintf("Words: %d · Characters: %d · Sentences: %d", m.Words, m.Chars, m.Sentences)
	}
}
