// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-relay-chat/internal/config"
	"github.com/MKhiriev/go-relay-chat/internal/service"
	"github.com/MKhiriev/go-relay-chat/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldHost = iota
	fieldPort
	fieldKey
	fieldName
)

// ConnectModel is the connect form: host, port, key and an optional name.
// Submitting it opens a new chat session and, on success, moves to the
// chat page. Failures arrive as notices from the chat service.
type ConnectModel struct {
	ctx  context.Context
	chat service.ClientChatService

	inputs     []textinput.Model
	focus      int
	submitting bool
	status     models.Status
	errMsg     string
}

// NewConnectModel prefills the form from defaults. The key is never
// prefilled.
func NewConnectModel(ctx context.Context, chat service.ClientChatService, defaults config.Defaults) *ConnectModel {
	host := textinput.New()
	host.Placeholder = config.DefaultRelayTargetHost
	host.CharLimit = 253
	host.Width = 40
	host.SetValue(defaults.Host)
	host.Focus()

	port := textinput.New()
	port.Placeholder = "port"
	port.CharLimit = 5
	port.Width = 40
	port.SetValue(defaults.Port)

	aesKey := textinput.New()
	aesKey.Placeholder = "base64 / hex / passphrase"
	aesKey.CharLimit = 512
	aesKey.Width = 40
	aesKey.EchoMode = textinput.EchoPassword
	aesKey.EchoCharacter = '*'

	name := textinput.New()
	name.Placeholder = "optional"
	name.CharLimit = 64
	name.Width = 40
	name.SetValue(defaults.Name)

	return &ConnectModel{
		ctx:    ctx,
		chat:   chat,
		inputs: []textinput.Model{host, port, aesKey, name},
	}
}

func (m *ConnectModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - [connectResultMsg] ends the submission and opens the chat on success.
//   - [noticeMsg] shows the reason a connect attempt failed.
//   - [statusMsg] updates the connection indicator.
//   - tab / shift+tab / up / down move between fields, enter submits.
func (m *ConnectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case connectResultMsg:
		m.submitting = false
		if msg.err != nil {
			return m, nil
		}
		m.errMsg = ""
		m.inputs[fieldKey].SetValue("")
		return m, func() tea.Msg { return NavigateTo{Page: pageChat} }

	case noticeMsg:
		if msg.notice.Kind == models.NoticeSystem || msg.notice.Kind == models.NoticeError {
			m.errMsg = msg.notice.Text
		}
		return m, nil

	case statusMsg:
		m.status = msg.status
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.tab, keys.down):
			m.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab, keys.up):
			m.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdConnect(m.request())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ConnectModel) View() string {
	var b strings.Builder
	b.WriteString("Field │ Value\n")
	b.WriteString("──────┼────────────────────────────────────────────\n")
	b.WriteString("Host  │ [")
	b.WriteString(m.inputs[fieldHost].View())
	b.WriteString("]\n")
	b.WriteString("Port  │ [")
	b.WriteString(m.inputs[fieldPort].View())
	b.WriteString("]\n")
	b.WriteString("Key   │ [")
	b.WriteString(m.inputs[fieldKey].View())
	b.WriteString("]\n")
	b.WriteString("Name  │ [")
	b.WriteString(m.inputs[fieldName].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Connecting...]\n")
	} else {
		b.WriteString("\n[Connect]\n")
	}

	b.WriteString("\n")
	b.WriteString(renderStatus(m.status))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CONNECT", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: connect")
}

func (m *ConnectModel) request() models.ConnectRequest {
	return models.ConnectRequest{
		Host: strings.TrimSpace(m.inputs[fieldHost].Value()),
		Port: strings.TrimSpace(m.inputs[fieldPort].Value()),
		Key:  m.inputs[fieldKey].Value(),
		Name: strings.TrimSpace(m.inputs[fieldName].Value()),
	}
}

func (m *ConnectModel) cmdConnect(req models.ConnectRequest) tea.Cmd {
	ctx := m.ctx
	chat := m.chat

	return func() tea.Msg {
		return connectResultMsg{err: chat.Connect(ctx, req)}
	}
}

func (m *ConnectModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *ConnectModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
