package tui

import (
	"github.com/MKhiriev/go-relay-chat/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(0, 1)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	systemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	ownStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	statusOKStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	statusStyle     = lipgloss.NewStyle().Faint(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

func renderNotice(n models.Notice) string {
	switch n.Kind {
	case models.NoticeSystem:
		return systemStyle.Render(n.String())
	case models.NoticeError:
		return errorStyle.Render(n.String())
	case models.NoticeOwn:
		return ownStyle.Render(n.String())
	default:
		return n.String()
	}
}

func renderStatus(s models.Status) string {
	text := fitText(s.Text, 48)
	if text == "" {
		text = models.StateDisconnected.String()
	}
	if s.OK {
		return statusOKStyle.Render("● " + text)
	}
	return statusStyle.Render("○ " + text)
}
