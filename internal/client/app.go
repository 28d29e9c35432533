package client

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-relay-chat/internal/logger"
	"github.com/MKhiriev/go-relay-chat/internal/tui"
)

type ui interface {
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)

type App struct {
	ui      ui
	closers []io.Closer
	logger  *logger.Logger
}

// NewApp takes ownership of closers; they are closed when Run returns.
func NewApp(ui *tui.TUI, logger *logger.Logger, closers ...io.Closer) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}
	return newApp(ui, logger, closers...), nil
}

func newApp(ui ui, logger *logger.Logger, closers ...io.Closer) *App {
	return &App{ui: ui, closers: closers, logger: logger}
}

// Run blocks until the user quits or the process is signalled. Quitting
// from the UI is not an error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer a.close()

	a.logger.Info().Msg("client started")
	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
		a.logger.Info().Msg("client stopped by user")
		return nil
	}
	return err
}

func (a *App) close() {
	for _, c := range a.closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			a.logger.Err(err).Str("func", "*App.close").Msg("closing resource")
		}
	}
}
