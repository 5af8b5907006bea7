package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aussiebroadwan/salario/internal/salario/store"
	"github.com/aussiebroadwan/salario/internal/salario/tui"
	"github.com/aussiebroadwan/salario/pkg/clientesdk"
	"github.com/aussiebroadwan/salario/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Mode selects where logs go: the interactive UI owns the terminal, one-shot
// commands may log to stderr.
type Mode int

const (
	ModeInteractive Mode = iota
	ModeCommand
)

// Application holds the client manager and its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger
	logOut io.Closer

	client *clientesdk.SDKClient
	store  *store.Store
}

// New wires the logger, API client and store.
func New(cfg Config, mode Mode) (*Application, error) {
	app := &Application{cfg: cfg}

	out, closer, err := logOutput(cfg.LogFile, mode)
	if err != nil {
		return nil, err
	}
	app.logOut = closer

	app.logger = slogx.New(slogx.Config{
		Service: "salario",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  out,
	})

	app.client = clientesdk.NewSDKClientWithLogger(cfg.APIURL, app.logger)
	app.client.SetTimeout(cfg.HTTPTimeout)
	app.client.SetRateLimit(cfg.MaxRPS)

	app.store = store.New(app.client)

	app.logger.Info("client manager initialised",
		"api_url", app.client.BaseURL,
		"timeout", cfg.HTTPTimeout,
		"max_rps", cfg.MaxRPS,
	)
	return app, nil
}

// Context attaches the application logger to ctx.
func (app *Application) Context(ctx context.Context) context.Context {
	return slogx.WithContext(ctx, app.logger)
}

func (app *Application) Client() *clientesdk.SDKClient { return app.client }

func (app *Application) Store() *store.Store { return app.store }

func (app *Application) Logger() *slog.Logger { return app.logger }

// RunTUI runs the interactive client manager until the user quits or ctx is
// cancelled.
func (app *Application) RunTUI(ctx context.Context) error {
	ctx = app.Context(ctx)

	p := tea.NewProgram(tui.New(ctx, app.store), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("ui failed: %w", err)
	}

	app.logger.Info("client manager stopped")
	return nil
}

// Close releases the log file, if any.
func (app *Application) Close() error {
	if app.logOut == nil {
		return nil
	}
	return app.logOut.Close()
}

func logOutput(path string, mode Mode) (io.Writer, io.Closer, error) {
	if path == "" {
		if mode == ModeInteractive {
			return io.Discard, nil, nil
		}
		return os.Stderr, nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, f, nil
}
