package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/summarize-client/internal/session"
	"github.com/joe/summarize-client/pkg/api"
)

// Backend is the part of the api client the UI needs.
type Backend interface {
	Summarize(ctx context.Context, req api.SummarizeRequest) (api.SummarizeResult, error)
	Analytics(ctx context.Context) (api.AnalyticsSnapshot, error)
	ResetAnalytics(ctx context.Context) error
	Health(ctx context.Context) (api.Health, error)
}

// toTeaCmd runs a session command off the event loop and turns its outcome back into
// a session event.
func (m *Model) toTeaCmd(command session.Command) tea.Cmd {
	ctx := m.ctx
	backend := m.backend

	switch c := command.(type) {
	case session.SummarizeCommand:
		return func() tea.Msg {
			result, err := backend.Summarize(ctx, c.Request)
			return session.ResponseReceived{Generation: c.Generation, Result: result, Err: err}
		}
	case session.FetchAnalyticsCommand:
		return func() tea.Msg {
			snapshot, err := backend.Analytics(ctx)
			return session.AnalyticsReceived{Generation: c.Generation, Snapshot: snapshot, Err: err}
		}
	case session.ResetAnalyticsCommand:
		return func() tea.Msg {
			return session.AnalyticsResetCompleted{Err: backend.ResetAnalytics(ctx)}
		}
	case session.CheckHealthCommand:
		return func() tea.Msg {
			health, err := backend.Health(ctx)
			return session.HealthReceived{Health: health, Err: err}
		}
	case session.ExpireCopyFeedbackCommand:
		return tea.Tick(c.After, func(time.Time) tea.Msg {
			return session.CopyFeedbackExpired{Token: c.Token}
		})
	default:
		return nil
	}
}

func (m *Model) toTeaCmds(commands []session.Command) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(commands))
	for _, c := range commands {
		if cmd := m.toTeaCmd(c); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return cmds
}
