// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-relay-chat/internal/app"
	"github.com/MKhiriev/go-relay-chat/internal/service"
	"github.com/MKhiriev/go-relay-chat/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// title, two dividers, status, prompt and help
	chatChrome = 8

	defaultWidth  = 80
	defaultHeight = 24
)

// ChatModel is the message list with the composer below it.
//
// up/down scroll the list while the composer is empty and walk the input
// history otherwise.
type ChatModel struct {
	ctx     context.Context
	chat    service.ClientChatService
	history service.ClientHistoryService
	copyFn  func(string) error

	vp    viewport.Model
	input textinput.Model

	lines        []string
	lastReceived string

	sent      []string
	histIndex int

	// lines waiting for the in-flight send; one send at a time keeps
	// wire order equal to submit order
	outbox  []string
	sending bool

	status models.Status
	flash  string
}

func NewChatModel(ctx context.Context, chat service.ClientChatService, history service.ClientHistoryService) *ChatModel {
	input := textinput.New()
	input.Placeholder = "Type a message… (" + app.CmdHelp + " for commands)"
	input.CharLimit = 0
	input.Width = defaultWidth - 4
	input.Focus()

	vp := viewport.New(defaultWidth, defaultHeight-chatChrome)

	return &ChatModel{
		ctx:     ctx,
		chat:    chat,
		history: history,
		copyFn:  clipboard.WriteAll,
		vp:      vp,
		input:   input,
		lines:   make([]string, 0, 512),
	}
}

// Init reloads the input history every time the chat page opens.
func (m *ChatModel) Init() tea.Cmd {
	m.resetOutbox()
	return tea.Batch(textinput.Blink, m.cmdLoadHistory())
}

func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case historyLoadedMsg:
		if msg.err != nil {
			return m, func() tea.Msg { return errorMsg{text: app.MsgHistoryFailed} }
		}
		m.sent = msg.lines
		m.histIndex = len(m.sent)
		return m, nil

	case noticeMsg:
		m.appendNotice(msg.notice)
		if msg.notice.Kind == models.NoticeContent {
			m.lastReceived = msg.notice.Text
		}
		return m, nil

	case statusMsg:
		m.status = msg.status
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.flash = app.MsgClipboardFailed
		} else {
			m.flash = app.MsgCopied
		}
		return m, nil

	case sentMsg:
		return m, m.sendNext()

	case disconnectedMsg:
		m.flash = ""
		m.resetOutbox()
		return m, func() tea.Msg { return NavigateTo{Page: pageConnect} }

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		m.flash = ""
		switch {
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		case key.Matches(msg, keys.up):
			m.historyUp()
			return m, nil
		case key.Matches(msg, keys.down):
			m.historyDown()
			return m, nil
		case key.Matches(msg, keys.pageUp):
			m.vp.HalfViewUp()
			return m, nil
		case key.Matches(msg, keys.pageDown):
			m.vp.HalfViewDown()
			return m, nil
		case key.Matches(msg, keys.copy):
			if m.lastReceived == "" {
				m.flash = app.MsgNothingToCopy
				return m, nil
			}
			return m, m.cmdCopy(m.lastReceived)
		case key.Matches(msg, keys.disconnect):
			return m, m.cmdDisconnect()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChatModel) View() string {
	var b strings.Builder

	b.WriteString(renderStatus(m.status))
	if m.flash != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(m.flash))
	}
	b.WriteString("\n\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n\n> ")
	b.WriteString(m.input.View())

	return renderPage("CHAT", b.String(), "enter: send │ ↑↓: scroll / history │ ctrl+y: copy │ ctrl+d: disconnect")
}

// submit handles local commands and sends everything else. Every
// submitted line joins the in-memory history; only sent lines are
// persisted by the chat service.
func (m *ChatModel) submit() tea.Cmd {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return nil
	}

	if len(m.sent) == 0 || m.sent[len(m.sent)-1] != line {
		m.sent = append(m.sent, line)
	}
	m.histIndex = len(m.sent)
	m.input.SetValue("")

	switch line {
	case app.CmdHelp:
		for _, l := range app.HelpLines {
			m.appendLine(systemStyle.Render(l))
		}
		return nil
	case app.CmdClear:
		m.lines = m.lines[:0]
		m.vp.SetContent("")
		return nil
	}

	m.outbox = append(m.outbox, line)
	if m.sending {
		return nil
	}
	return m.sendNext()
}

// sendNext dispatches the oldest queued line, if any.
func (m *ChatModel) sendNext() tea.Cmd {
	if len(m.outbox) == 0 {
		m.sending = false
		return nil
	}
	line := m.outbox[0]
	m.outbox = m.outbox[1:]
	m.sending = true
	return m.cmdSend(line)
}

func (m *ChatModel) resetOutbox() {
	m.outbox = nil
	m.sending = false
}

func (m *ChatModel) historyUp() {
	if strings.TrimSpace(m.input.Value()) == "" {
		m.vp.LineUp(1)
		return
	}
	if len(m.sent) == 0 {
		return
	}
	if m.histIndex > 0 {
		m.histIndex--
	}
	m.input.SetValue(m.sent[m.histIndex])
	m.input.CursorEnd()
}

func (m *ChatModel) historyDown() {
	if strings.TrimSpace(m.input.Value()) == "" {
		m.vp.LineDown(1)
		return
	}
	if len(m.sent) == 0 {
		return
	}
	if m.histIndex < len(m.sent)-1 {
		m.histIndex++
		m.input.SetValue(m.sent[m.histIndex])
		m.input.CursorEnd()
		return
	}
	m.histIndex = len(m.sent)
	m.input.SetValue("")
}

func (m *ChatModel) resize(width, height int) {
	m.vp.Width = max(10, width-2)
	m.vp.Height = max(1, height-chatChrome)
	m.input.Width = max(10, width-6)
	m.vp.SetContent(strings.Join(m.lines, "\n"))
	m.vp.GotoBottom()
}

func (m *ChatModel) appendNotice(n models.Notice) {
	m.appendLine(renderNotice(n))
}

func (m *ChatModel) appendLine(s string) {
	m.lines = append(m.lines, s)
	m.vp.SetContent(strings.Join(m.lines, "\n"))
	m.vp.GotoBottom()
}

func (m *ChatModel) cmdSend(line string) tea.Cmd {
	ctx := m.ctx
	chat := m.chat

	// failures are reported through the notifier
	return func() tea.Msg {
		return sentMsg{line: line, err: chat.Send(ctx, line)}
	}
}

func (m *ChatModel) cmdDisconnect() tea.Cmd {
	chat := m.chat

	return func() tea.Msg {
		chat.Disconnect()
		return disconnectedMsg{}
	}
}

func (m *ChatModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	history := m.history

	return func() tea.Msg {
		if history == nil {
			return historyLoadedMsg{}
		}

		loadCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		lines, err := history.Load(loadCtx)
		return historyLoadedMsg{lines: lines, err: err}
	}
}

func (m *ChatModel) cmdCopy(text string) tea.Cmd {
	copyFn := m.copyFn

	return func() tea.Msg {
		return copiedMsg{err: copyFn(text)}
	}
}
