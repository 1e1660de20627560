package session

import (
	"time"

	"github.com/joe/summarize-client/pkg/api"
)

// Event is something that happened: a user action or the outcome of a command.
type Event interface {
	event()
}

// TextChanged carries the full input text after an edit.
type TextChanged struct {
	Text string
}

// RatioChanged sets the summary ratio in percent.
type RatioChanged struct {
	Ratio int
}

// MethodSelected activates a summarization method.
type MethodSelected struct {
	Method api.Method
}

// MethodCycled activates the next displayed method.
type MethodCycled struct{}

// SubmitRequested asks for the current input to be summarized.
type SubmitRequested struct{}

// ResponseReceived is the outcome of a SummarizeCommand.
// Err is set when the request failed in transport.
type ResponseReceived struct {
	Generation uint64
	Result     api.SummarizeResult
	Err        error
}

// AnalyticsRequested opens the analytics overlay.
type AnalyticsRequested struct{}

// AnalyticsReceived is the outcome of a FetchAnalyticsCommand.
type AnalyticsReceived struct {
	Generation uint64
	Snapshot   api.AnalyticsSnapshot
	Err        error
}

// AnalyticsClosed closes the analytics overlay.
type AnalyticsClosed struct{}

// AnalyticsClicked is a click while the overlay is open. Background is true when the
// click landed on the backdrop rather than the panel.
type AnalyticsClicked struct {
	Background bool
}

// AnalyticsResetRequested asks the server to zero its statistics.
type AnalyticsResetRequested struct{}

// AnalyticsResetCompleted is the outcome of a ResetAnalyticsCommand.
type AnalyticsResetCompleted struct {
	Err error
}

// CopyRequested copies the rendered summary to the clipboard.
type CopyRequested struct{}

// CopyFeedbackExpired ends the confirmation of the copy identified by Token.
type CopyFeedbackExpired struct {
	Token uint64
}

// DownloadRequested saves the rendered summary to a file.
type DownloadRequested struct{}

// ClearRequested empties the input and returns to the empty view.
type ClearRequested struct{}

// ThemeToggled switches between light and dark.
type ThemeToggled struct{}

// HealthReceived is the outcome of a CheckHealthCommand.
type HealthReceived struct {
	Health api.Health
	Err    error
}

func (TextChanged) event()             {}
func (RatioChanged) event()            {}
func (MethodSelected) event()          {}
func (MethodCycled) event()            {}
func (SubmitRequested) event()         {}
func (ResponseReceived) event()        {}
func (AnalyticsRequested) event()      {}
func (AnalyticsReceived) event()       {}
func (AnalyticsClosed) event()         {}
func (AnalyticsClicked) event()        {}
func (AnalyticsResetRequested) event() {}
func (AnalyticsResetCompleted) event() {}
func (CopyRequested) event()           {}
func (CopyFeedbackExpired) event()     {}
func (DownloadRequested) event()       {}
func (ClearRequested) event()          {}
func (ThemeToggled) event()            {}
func (HealthReceived) event()          {}

// Command is work the host must run off the event loop. Its outcome comes back as an
// Event.
type Command interface {
	command()
}

// SummarizeCommand sends Request; answer with ResponseReceived carrying Generation.
type SummarizeCommand struct {
	Generation uint64
	Request    api.SummarizeRequest
}

// FetchAnalyticsCommand fetches statistics; answer with AnalyticsReceived.
type FetchAnalyticsCommand struct {
	Generation uint64
}

// ResetAnalyticsCommand resets statistics; answer with AnalyticsResetCompleted.
type ResetAnalyticsCommand struct{}

// ExpireCopyFeedbackCommand asks for CopyFeedbackExpired after the delay.
type ExpireCopyFeedbackCommand struct {
	Token uint64
	After time.Duration
}

// CheckHealthCommand probes the server; answer with HealthReceived.
type CheckHealthCommand struct{}

func (SummarizeCommand) command()          {}
func (FetchAnalyticsCommand) command()     {}
func (ResetAnalyticsCommand) command()     {}
func (ExpireCopyFeedbackCommand) command() {}
func (CheckHealthCommand) command()        {}
