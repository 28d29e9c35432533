package tui

import (
	"context"

	"github.com/MKhiriev/go-relay-chat/internal/config"
	"github.com/MKhiriev/go-relay-chat/internal/logger"
	"github.com/MKhiriev/go-relay-chat/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices
	notifier *Notifier
	defaults config.Defaults
	logger   *logger.Logger
}

// New builds the terminal UI. notifier must be the one the chat service
// was created with.
func New(services *service.ClientServices, notifier *Notifier, defaults config.Defaults, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.ChatService == nil {
		return nil, ErrNoChatService
	}
	if notifier == nil {
		return nil, ErrNoNotifier
	}

	return &TUI{
		services: services,
		notifier: notifier,
		defaults: defaults,
		logger:   logger,
	}, nil
}

// Run shows the connect form and blocks until the user quits. The chat
// session is closed on return.
func (t *TUI) Run(ctx context.Context) error {
	defer t.services.ChatService.Disconnect()
	defer t.notifier.Close()

	root := t.newRootModel(ctx)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		t.logger.Err(runErr).Str("func", "*TUI.Run").Msg("tui program failed")
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageConnect: NewConnectModel(ctx, t.services.ChatService, t.defaults),
		pageChat:    NewChatModel(ctx, t.services.ChatService, t.services.HistoryService),
	}
	return NewRootModel(ctx, pages, pageConnect, t.notifier, t.services.AppInfoService)
}
