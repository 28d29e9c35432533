package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-relay-chat/internal/config"
	"github.com/MKhiriev/go-relay-chat/internal/mock"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	chat    *mock.MockClientChatService
	history *mock.MockClientHistoryService
	info    *mock.MockClientAppInfoService
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	return testDeps{
		chat:    mock.NewMockClientChatService(ctrl),
		history: mock.NewMockClientHistoryService(ctrl),
		info:    mock.NewMockClientAppInfoService(ctrl),
	}
}

func newTestRoot(t *testing.T, d testDeps) RootModel {
	t.Helper()
	ctx := context.Background()
	pages := map[string]tea.Model{
		pageConnect: NewConnectModel(ctx, d.chat, config.Defaults{Host: "127.0.0.1", Port: "9000"}),
		pageChat:    NewChatModel(ctx, d.chat, d.history),
	}
	return NewRootModel(ctx, pages, pageConnect, NewNotifier(), d.info)
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}
