package tui

import (
	"sync"

	"github.com/MKhiriev/go-relay-chat/models"
	tea "github.com/charmbracelet/bubbletea"
)

const notifierBuffer = 256

// Notifier turns chat service callbacks into tea messages. The receive
// loop blocks on a full buffer until the UI catches up or the notifier is
// closed.
type Notifier struct {
	msgs chan tea.Msg
	done chan struct{}
	once sync.Once
}

func NewNotifier() *Notifier {
	return &Notifier{
		msgs: make(chan tea.Msg, notifierBuffer),
		done: make(chan struct{}),
	}
}

// Notify implements service.Notifier.
func (n *Notifier) Notify(notice models.Notice) {
	n.push(noticeMsg{notice: notice})
}

// SetStatus implements service.Notifier.
func (n *Notifier) SetStatus(status models.Status) {
	n.push(statusMsg{status: status})
}

// Close unblocks pending and future calls. Messages still buffered are
// dropped.
func (n *Notifier) Close() {
	n.once.Do(func() { close(n.done) })
}

func (n *Notifier) push(msg tea.Msg) {
	select {
	case n.msgs <- msg:
	case <-n.done:
	}
}

// listen waits for the next message. The model must call it again after
// every delivered message.
func (n *Notifier) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-n.msgs:
			return msg
		case <-n.done:
			return nil
		}
	}
}
