package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-relay-chat/internal/app"
	"github.com/MKhiriev/go-relay-chat/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestChat(t *testing.T) (*ChatModel, testDeps) {
	t.Helper()
	d := newTestDeps(t)
	m := NewChatModel(context.Background(), d.chat, d.history)
	return m, d
}

// ── submit ──

func TestChat_SubmitSends(t *testing.T) {
	m, d := newTestChat(t)
	d.chat.EXPECT().Send(gomock.Any(), "hello").Return(nil)

	m.input.SetValue("  hello ")
	_, cmd := m.Update(keyMsg(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, sentMsg{line: "hello"}, cmd())

	assert.Empty(t, m.input.Value())
	assert.Equal(t, []string{"hello"}, m.sent)
	assert.Equal(t, 1, m.histIndex)
}

func TestChat_SubmitBlankIgnored(t *testing.T) {
	m, _ := newTestChat(t)
	m.input.SetValue("   ")

	_, cmd := m.Update(keyMsg(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Empty(t, m.sent)
}

func TestChat_SubmitSkipsConsecutiveDuplicate(t *testing.T) {
	m, d := newTestChat(t)
	d.chat.EXPECT().Send(gomock.Any(), "same").Return(nil).Times(2)

	for range 2 {
		m.input.SetValue("same")
		_, cmd := m.Update(keyMsg(tea.KeyEnter))
		m.Update(cmd())
	}

	assert.Equal(t, []string{"same"}, m.sent)
}

func TestChat_SubmitKeepsOrder(t *testing.T) {
	m, d := newTestChat(t)
	gomock.InOrder(
		d.chat.EXPECT().Send(gomock.Any(), "one").Return(nil),
		d.chat.EXPECT().Send(gomock.Any(), "two").Return(errors.New("not connected yet")),
		d.chat.EXPECT().Send(gomock.Any(), "three").Return(nil),
	)

	// три строки подряд, пока первая ещё не отправлена
	var first tea.Cmd
	for i, line := range []string{"one", "two", "three"} {
		m.input.SetValue(line)
		_, cmd := m.Update(keyMsg(tea.KeyEnter))
		if i == 0 {
			require.NotNil(t, cmd)
			first = cmd
			continue
		}
		assert.Nil(t, cmd, "line %q must wait for the previous send", line)
	}
	assert.Equal(t, []string{"two", "three"}, m.outbox)

	var got []string
	for cmd := first; cmd != nil; {
		msg := cmd()
		sent, ok := msg.(sentMsg)
		require.True(t, ok)
		got = append(got, sent.line)
		_, cmd = m.Update(msg)
	}

	assert.Equal(t, []string{"one", "two", "three"}, got)
	assert.False(t, m.sending)
	assert.Empty(t, m.outbox)
}

func TestChat_DisconnectDropsQueuedLines(t *testing.T) {
	m, d := newTestChat(t)
	d.chat.EXPECT().Send(gomock.Any(), "one").Return(nil)

	m.input.SetValue("one")
	_, first := m.Update(keyMsg(tea.KeyEnter))
	m.input.SetValue("two")
	m.Update(keyMsg(tea.KeyEnter))

	m.Update(disconnectedMsg{})
	_, cmd := m.Update(first())

	assert.Nil(t, cmd)
	assert.Empty(t, m.outbox)
	assert.False(t, m.sending)
}

func TestChat_HelpIsLocal(t *testing.T) {
	m, _ := newTestChat(t)
	m.input.SetValue(app.CmdHelp)

	// Send не ожидается: команда не уходит в сеть
	_, cmd := m.Update(keyMsg(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Len(t, m.lines, len(app.HelpLines))
	assert.Equal(t, []string{app.CmdHelp}, m.sent)
}

func TestChat_ClearEmptiesList(t *testing.T) {
	m, _ := newTestChat(t)
	m.Update(noticeMsg{notice: models.Notice{Kind: models.NoticeContent, Text: "one"}})
	m.Update(noticeMsg{notice: models.Notice{Kind: models.NoticeSystem, Text: "two"}})
	require.Len(t, m.lines, 2)

	m.input.SetValue(app.CmdClear)
	_, cmd := m.Update(keyMsg(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Empty(t, m.lines)
}

// ── history navigation ──

func TestChat_HistoryNavigation(t *testing.T) {
	m, _ := newTestChat(t)
	m.Update(historyLoadedMsg{lines: []string{"a", "b", "c"}})
	m.input.SetValue("x")

	m.Update(keyMsg(tea.KeyUp))
	assert.Equal(t, "c", m.input.Value())

	m.Update(keyMsg(tea.KeyUp))
	assert.Equal(t, "b", m.input.Value())

	m.Update(keyMsg(tea.KeyDown))
	assert.Equal(t, "c", m.input.Value())

	m.Update(keyMsg(tea.KeyDown))
	assert.Empty(t, m.input.Value())
	assert.Equal(t, 3, m.histIndex)
}

func TestChat_HistoryStopsAtOldest(t *testing.T) {
	m, _ := newTestChat(t)
	m.Update(historyLoadedMsg{lines: []string{"a"}})
	m.input.SetValue("x")

	m.Update(keyMsg(tea.KeyUp))
	m.Update(keyMsg(tea.KeyUp))

	assert.Equal(t, "a", m.input.Value())
	assert.Equal(t, 0, m.histIndex)
}

func TestChat_UpWithEmptyComposerScrolls(t *testing.T) {
	m, _ := newTestChat(t)
	m.Update(historyLoadedMsg{lines: []string{"a"}})

	m.Update(keyMsg(tea.KeyUp))

	assert.Empty(t, m.input.Value())
	assert.Equal(t, 1, m.histIndex)
}

func TestChat_HistoryLoadFailureOpensOverlay(t *testing.T) {
	m, _ := newTestChat(t)

	_, cmd := m.Update(historyLoadedMsg{err: errors.New("disk")})

	require.NotNil(t, cmd)
	assert.Equal(t, errorMsg{text: app.MsgHistoryFailed}, cmd())
}

func TestChat_LoadHistoryCmd(t *testing.T) {
	m, d := newTestChat(t)
	d.history.EXPECT().Load(gomock.Any()).Return([]string{"x", "y"}, nil)

	msg := m.cmdLoadHistory()()

	assert.Equal(t, historyLoadedMsg{lines: []string{"x", "y"}}, msg)
}

func TestChat_LoadHistoryCmdWithoutService(t *testing.T) {
	d := newTestDeps(t)
	m := NewChatModel(context.Background(), d.chat, nil)

	assert.Equal(t, historyLoadedMsg{}, m.cmdLoadHistory()())
}

// ── notices and clipboard ──

func TestChat_NoticesRendered(t *testing.T) {
	m, _ := newTestChat(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	m.Update(noticeMsg{notice: models.Notice{Kind: models.NoticeSystem, Text: "Connection closed"}})
	m.Update(noticeMsg{notice: models.Notice{Kind: models.NoticeOwn, Text: "hi"}})

	view := m.View()
	assert.Contains(t, view, "[SYSTEM] Connection closed")
	assert.Contains(t, view, "You: hi")
	assert.Empty(t, m.lastReceived, "only remote content can be copied")
}

func TestChat_CopyLastReceived(t *testing.T) {
	m, _ := newTestChat(t)
	var copied string
	m.copyFn = func(s string) error {
		copied = s
		return nil
	}
	m.Update(noticeMsg{notice: models.Notice{Kind: models.NoticeContent, Text: "first"}})
	m.Update(noticeMsg{notice: models.Notice{Kind: models.NoticeContent, Text: "second"}})

	_, cmd := m.Update(keyMsg(tea.KeyCtrlY))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, "second", copied)
	assert.Equal(t, app.MsgCopied, m.flash)
}

func TestChat_CopyFailure(t *testing.T) {
	m, _ := newTestChat(t)
	m.copyFn = func(string) error { return errors.New("no clipboard") }
	m.Update(noticeMsg{notice: models.Notice{Kind: models.NoticeContent, Text: "x"}})

	_, cmd := m.Update(keyMsg(tea.KeyCtrlY))
	m.Update(cmd())

	assert.Equal(t, app.MsgClipboardFailed, m.flash)
}

func TestChat_CopyNothing(t *testing.T) {
	m, _ := newTestChat(t)

	_, cmd := m.Update(keyMsg(tea.KeyCtrlY))

	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgNothingToCopy, m.flash)
}

// ── disconnect ──

func TestChat_DisconnectReturnsToForm(t *testing.T) {
	m, d := newTestChat(t)
	d.chat.EXPECT().Disconnect()

	_, cmd := m.Update(keyMsg(tea.KeyCtrlD))
	require.NotNil(t, cmd)
	msg := cmd()
	require.Equal(t, disconnectedMsg{}, msg)

	_, cmd = m.Update(msg)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageConnect}, cmd())
}

func TestChat_ResizeKeepsMinimums(t *testing.T) {
	m, _ := newTestChat(t)

	m.Update(tea.WindowSizeMsg{Width: 4, Height: 2})

	assert.Equal(t, 10, m.vp.Width)
	assert.Equal(t, 1, m.vp.Height)
	assert.Equal(t, 10, m.input.Width)
}
