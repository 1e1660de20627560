package session

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/joe/summarize-client/pkg/api"
	errs "github.com/joe/summarize-client/pkg/errors"
	"github.com/joe/summarize-client/pkg/prefs"
)

// Ratio bounds in percent.
const (
	MinRatio = 1
	MaxRatio = 100
)

// Server status texts shown in the header.
const (
	ServerUnknown     = "checking…"
	ServerUnreachable = "unreachable"
)

// ThemeStore persists the theme choice.
type ThemeStore interface {
	SetTheme(theme prefs.Theme) error
}

// Options configures a Session. Zero fields get usable defaults.
type Options struct {
	Method      api.Method
	Ratio       int
	Theme       prefs.Theme
	Endpoint    string
	DownloadDir string
	Clipboard   Clipboard
	ThemeStore  ThemeStore
	Now         func() time.Time
	Logger      *slog.Logger
	Enricher    errs.Enricher
}

// Session is the whole client state. It is not safe for concurrent use; the host calls
// Dispatch from a single goroutine.
type Session struct {
	view     *ViewStateController
	methods  *MethodSelector
	renderer *ResultRenderer
	overlay  *AnalyticsOverlay

	input      string
	metrics    Metrics
	ratio      int
	generation uint64
	failure    errs.ActionableError
	theme      prefs.Theme
	notice     string
	server     string

	endpoint    string
	downloadDir string
	clipboard   Clipboard
	themeStore  ThemeStore
	now         func() time.Time
	logger      *slog.Logger
	enricher    errs.Enricher
}

// New returns a session in the empty state.
func New(opts Options) *Session {
	s := &Session{
		view:        NewViewStateController(),
		methods:     NewMethodSelector(opts.Method),
		renderer:    &ResultRenderer{},
		overlay:     &AnalyticsOverlay{},
		ratio:       clampRatio(opts.Ratio),
		theme:       opts.Theme,
		server:      ServerUnknown,
		endpoint:    opts.Endpoint,
		downloadDir: opts.DownloadDir,
		clipboard:   opts.Clipboard,
		themeStore:  opts.ThemeStore,
		now:         opts.Now,
		logger:      opts.Logger,
		enricher:    opts.Enricher,
	}

	if opts.Ratio == 0 {
		s.ratio = 40
	}
	if !s.theme.Valid() {
		s.theme = prefs.ThemeLight
	}
	if s.downloadDir == "" {
		s.downloadDir = "."
	}
	if s.clipboard == nil {
		s.clipboard = SystemClipboard{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.enricher == nil {
		s.enricher = errs.NewEnricher()
	}

	s.logger = s.logger.With("component", "session")
	s.metrics = ComputeMetrics(s.input)

	return s
}

// Start returns the commands to run once the host is up.
func (s *Session) Start() []Command {
	return []Command{CheckHealthCommand{}}
}

// Dispatch applies ev and returns the commands it produced.
//
//nolint:cyclop // One case per event
func (s *Session) Dispatch(ev Event) []Command {
	switch ev := ev.(type) {
	case TextChanged:
		s.setInput(ev.Text)
	case RatioChanged:
		s.ratio = clampRatio(ev.Ratio)
	case MethodSelected:
		if !s.methods.Select(ev.Method) {
			s.logger.Debug("ignoring unknown method", "method", ev.Method)
		}
	case MethodCycled:
		s.methods.Next()
	case SubmitRequested:
		return s.submit()
	case ResponseReceived:
		s.receive(ev)
	case AnalyticsRequested:
		return []Command{FetchAnalyticsCommand{Generation: s.overlay.Open()}}
	case AnalyticsReceived:
		s.receiveAnalytics(ev)
	case AnalyticsClosed:
		s.overlay.Close()
	case AnalyticsClicked:
		if ev.Background {
			s.overlay.ClickBackground()
		} else {
			s.overlay.ClickContent()
		}
	case AnalyticsResetRequested:
		if s.overlay.IsOpen() {
			return []Command{ResetAnalyticsCommand{}}
		}
	case AnalyticsResetCompleted:
		return s.resetCompleted(ev)
	case CopyRequested:
		return s.copySummary()
	case CopyFeedbackExpired:
		s.renderer.ExpireCopyFeedback(ev.Token)
	case DownloadRequested:
		s.download()
	case ClearRequested:
		s.clear()
	case ThemeToggled:
		s.toggleTheme()
	case HealthReceived:
		s.receiveHealth(ev)
	}

	return nil
}

// Input returns the current input text.
func (s *Session) Input() string { return s.input }

// Metrics returns the live counters of the input text.
func (s *Session) Metrics() Metrics { return s.metrics }

// Ratio returns the summary ratio in percent.
func (s *Session) Ratio() int { return s.ratio }

// ActiveMethod returns the selected method.
func (s *Session) ActiveMethod() api.Method { return s.methods.Active() }

// MethodHint returns the help text of the selected method.
func (s *Session) MethodHint() string { return s.methods.Hint() }

// Methods returns the selectable methods in display order.
func (s *Session) Methods() []api.Method { return s.methods.Methods() }

// State returns the current view state.
func (s *Session) State() ViewState { return s.view.State() }

// VisibleViews lists the visible views; always exactly one.
func (s *Session) VisibleViews() []ViewState { return s.view.VisibleViews() }

// Generation returns the generation of the latest submit.
func (s *Session) Generation() uint64 { return s.generation }

// Failure returns the error shown in the error view, or nil.
func (s *Session) Failure() errs.ActionableError { return s.failure }

// ErrorMessage returns the message of the error view, or "" when there is none.
func (s *Session) ErrorMessage() string {
	if s.failure == nil {
		return ""
	}

	return s.failure.Error()
}

// Result returns the last rendered result.
func (s *Session) Result() (RenderedResult, bool) { return s.renderer.Result() }

// CopyFeedback reports whether the copy confirmation is showing.
func (s *Session) CopyFeedback() bool { return s.renderer.CopyFeedback() }

// AnalyticsOpen reports whether the analytics overlay is shown.
func (s *Session) AnalyticsOpen() bool { return s.overlay.IsOpen() }

// Analytics returns the overlay content; ok is false until a fetch succeeded.
func (s *Session) Analytics() (AnalyticsView, bool) { return s.overlay.View() }

// Theme returns the active theme.
func (s *Session) Theme() prefs.Theme { return s.theme }

// Notice returns the latest status line message, such as where a download was saved.
func (s *Session) Notice() string { return s.notice }

// ServerStatus returns the health text for the header.
func (s *Session) ServerStatus() string { return s.server }

func (s *Session) setInput(text string) {
	s.input = text
	s.metrics = ComputeMetrics(text)
}

func (s *Session) submit() []Command {
	// Any submit supersedes whatever is still in flight.
	s.generation++

	text := strings.TrimSpace(s.input)
	if text == "" {
		s.fail(errs.NewValidationError(errs.EmptyInputMessage))
		return nil
	}

	s.failure = nil
	s.view.SetState(StateLoading)

	req := api.SummarizeRequest{Text: text, Ratio: s.ratio, Method: s.methods.Active()}

	s.logger.Info("submitting",
		"generation", s.generation,
		"method", req.Method,
		"ratio", req.Ratio,
		"words", s.metrics.Words,
	)

	return []Command{SummarizeCommand{Generation: s.generation, Request: req}}
}

func (s *Session) receive(ev ResponseReceived) {
	if ev.Generation != s.generation {
		s.logger.Debug("dropping stale response", "generation", ev.Generation, "latest", s.generation)
		return
	}

	switch {
	case ev.Err != nil:
		s.logger.Warn("summarize transport error", "generation", ev.Generation, "error", ev.Err)
		s.fail(s.enricher.Enrich(ev.Err, s.endpoint))
	case ev.Result.Failure != nil:
		s.logger.Info("summarize rejected", "generation", ev.Generation, "message", ev.Result.Failure.Message)
		s.fail(errs.NewApplicationError(ev.Result.Failure.Message))
	case ev.Result.Success != nil:
		s.failure = nil
		s.renderer.Render(*ev.Result.Success)
		s.view.SetState(StateResults)
	default:
		s.fail(s.enricher.Enrich(fmt.Errorf("%w: empty summarize result", api.ErrSchema), s.endpoint))
	}
}

func (s *Session) fail(err errs.ActionableError) {
	s.failure = err
	s.view.SetState(StateError)
}

func (s *Session) receiveAnalytics(ev AnalyticsReceived) {
	if ev.Err != nil {
		s.logger.Error("Error loading analytics", "generation", ev.Generation, "error", ev.Err)
		return
	}

	if !s.overlay.Apply(ev.Generation, ev.Snapshot) {
		s.logger.Debug("dropping stale analytics", "generation", ev.Generation, "latest", s.overlay.Generation())
	}
}

func (s *Session) resetCompleted(ev AnalyticsResetCompleted) []Command {
	if ev.Err != nil {
		s.logger.Error("Error resetting analytics", "error", ev.Err)
		return nil
	}

	if !s.overlay.IsOpen() {
		return nil
	}

	return []Command{FetchAnalyticsCommand{Generation: s.overlay.Refetch()}}
}

func (s *Session) copySummary() []Command {
	token, err := s.renderer.Copy(s.clipboard)
	if err != nil {
		s.logger.Warn("copy failed", "error", err)
		s.notice = "Copy failed: " + err.Error()

		return nil
	}

	s.notice = ""

	return []Command{ExpireCopyFeedbackCommand{Token: token, After: CopyFeedbackDuration}}
}

func (s *Session) download() {
	path, err := s.renderer.Download(s.downloadDir, s.now())
	if err != nil {
		s.logger.Warn("download failed", "error", err)
		s.notice = "Download failed: " + err.Error()

		return
	}

	s.logger.Info("summary downloaded", "path", path)
	s.notice = "Saved " + filepath.Base(path)
}

func (s *Session) clear() {
	// A response still in flight must not reopen the results view.
	s.generation++
	s.failure = nil
	s.notice = ""
	s.setInput("")
	s.view.SetState(StateEmpty)
}

func (s *Session) toggleTheme() {
	s.theme = s.theme.Toggle()

	if s.themeStore == nil {
		return
	}

	if err := s.themeStore.SetTheme(s.theme); err != nil {
		s.logger.Warn("saving theme failed", "theme", s.theme, "error", err)
	}
}

func (s *Session) receiveHealth(ev HealthReceived) {
	switch {
	case ev.Err != nil:
		s.logger.Warn("health check failed", "error", ev.Err)
		s.server = ServerUnreachable
	case ev.Health.Status == "":
		s.server = ServerUnknown
	case !ev.Health.Healthy():
		s.server = ev.Health.Status
	case ev.Health.Version != "":
		s.server = "healthy v" + ev.Health.Version
	default:
		s.server = "healthy"
	}
}

func clampRatio(ratio int) int {
	return max(MinRatio, min(MaxRatio, ratio))
}

