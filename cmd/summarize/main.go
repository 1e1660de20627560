// Package main is the entry point for the summarize client.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/summarize-client/internal/config"
	"github.com/joe/summarize-client/internal/headless"
	"github.com/joe/summarize-client/internal/session"
	"github.com/joe/summarize-client/internal/tui"
	"github.com/joe/summarize-client/pkg/api"
	"github.com/joe/summarize-client/pkg/logger"
	"github.com/joe/summarize-client/pkg/prefs"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log, closeLog, err := logger.New(logger.Options{Path: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	defer func() { _ = closeLog() }()

	client, err := api.NewClient(cfg.Server, api.WithTimeout(cfg.Timeout), api.WithLogger(log))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.Headless {
		return runHeadless(cfg, client, log)
	}

	return runTUI(cfg, client, log)
}

func runHeadless(cfg *config.Config, client *api.Client, log *slog.Logger) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := &headless.Runner{
		Client:   client,
		Out:      os.Stdout,
		Ratio:    cfg.Ratio,
		Method:   cfg.Method.API(),
		Endpoint: cfg.Server,
		Logger:   log,
	}

	failed, err := runner.Run(ctx, cfg.Inputs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if failed > 0 {
		return 2
	}

	return 0
}

func runTUI(cfg *config.Config, client *api.Client, log *slog.Logger) int {
	store, err := themeStore(cfg)
	if err != nil {
		log.Warn("theme preferences unavailable", "error", err)
	}

	theme := prefs.ThemeLight
	if lipgloss.HasDarkBackground() {
		theme = prefs.ThemeDark
	}

	opts := session.Options{
		Method:      cfg.Method.API(),
		Ratio:       cfg.Ratio,
		Endpoint:    cfg.Server,
		DownloadDir: cfg.DownloadDir,
		Clipboard:   session.SystemClipboard{},
		Logger:      log,
	}

	if store != nil {
		opts.ThemeStore = store

		resolved, resolveErr := store.ResolveTheme(theme == prefs.ThemeDark)
		if resolveErr != nil {
			log.Warn("reading theme preference failed", "path", store.Path(), "error", resolveErr)
		}

		theme = resolved
	}

	opts.Theme = theme

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := tui.NewModel(ctx, session.New(opts), client)

	// Only use alt screen if stdout is a TTY
	programOpts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func themeStore(cfg *config.Config) (*prefs.Store, error) {
	path := cfg.ThemeFile
	if path == "" {
		var err error

		path, err = prefs.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	return prefs.NewStore(path), nil
}
