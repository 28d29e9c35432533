package tui

import (
	"context"

	"github.com/MKhiriev/go-relay-chat/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global quit and the info overlay
// 3) handles NavigateTo messages
// 4) fans chat service messages out to the pages
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx      context.Context
	pages    map[string]tea.Model
	current  string
	notifier *Notifier
	info     service.ClientAppInfoService

	quitByUser bool

	showBuildInfo bool
	relayVersion  string
	overlay       *errorOverlayModel
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(
	ctx context.Context,
	pages map[string]tea.Model,
	startPage string,
	notifier *Notifier,
	info service.ClientAppInfoService,
) RootModel {
	return RootModel{
		ctx:      ctx,
		pages:    pages,
		current:  startPage,
		notifier: notifier,
		info:     info,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{r.notifier.listen()}
	if page := r.page(); page != nil {
		cmds = append(cmds, page.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(k, keys.info):
			r.showBuildInfo = !r.showBuildInfo
			if r.showBuildInfo {
				return r, r.cmdRelayVersion()
			}
			return r, nil
		case key.Matches(k, keys.esc, keys.enter):
			if r.overlay != nil {
				r.overlay = nil
				return r, nil
			}
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo || r.overlay != nil {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		if _, exists := r.pages[msg.Page]; !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = msg.Page

		if msg.Payload != nil {
			return r, func() tea.Msg { return msg.Payload }
		}
		return r, r.page().Init()

	case tea.WindowSizeMsg:
		return r, r.broadcast(msg)

	case noticeMsg:
		// the chat page keeps every line, the connect page shows failures
		cmds := []tea.Cmd{r.notifier.listen(), r.updatePage(pageChat, msg)}
		if r.current != pageChat {
			cmds = append(cmds, r.updatePage(r.current, msg))
		}
		return r, tea.Batch(cmds...)

	case statusMsg:
		return r, tea.Batch(r.notifier.listen(), r.broadcast(msg))

	case relayVersionMsg:
		if msg.err != nil {
			r.relayVersion = humanizeRelayError(msg.err)
		} else {
			r.relayVersion = msg.version
		}
		return r, nil

	case errorMsg:
		r.overlay = &errorOverlayModel{message: msg.text}
		return r, nil
	}

	return r, r.updatePage(r.current, msg)
}

func (r RootModel) View() string {
	if r.overlay != nil {
		return r.overlay.View()
	}
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.info.BuildInfo(), r.relayVersion)
	}
	if page := r.page(); page != nil {
		return page.View()
	}
	return renderPage("TUI", "", "")
}

func (r RootModel) page() tea.Model {
	return r.pages[r.current]
}

func (r RootModel) updatePage(name string, msg tea.Msg) tea.Cmd {
	page, ok := r.pages[name]
	if !ok {
		return nil
	}
	updated, cmd := page.Update(msg)
	r.pages[name] = updated
	return cmd
}

func (r RootModel) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.pages))
	for name := range r.pages {
		cmds = append(cmds, r.updatePage(name, msg))
	}
	return tea.Batch(cmds...)
}

func (r RootModel) cmdRelayVersion() tea.Cmd {
	ctx := r.ctx
	info := r.info

	return func() tea.Msg {
		version, err := info.RelayVersion(ctx)
		return relayVersionMsg{version: version, err: err}
	}
}
