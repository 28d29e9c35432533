package service

import (
	"sync"

	"github.com/MKhiriev/go-relay-chat/internal/adapter"
	"github.com/MKhiriev/go-relay-chat/internal/crypto"
	"github.com/MKhiriev/go-relay-chat/models"
)

// fakeConn: RelayConn на каналах: тест кладёт входящие конверты в in,
// исходящие складываются в sent.
type fakeConn struct {
	in     chan models.Envelope
	closed chan struct{}
	once   sync.Once

	mu      sync.Mutex
	sent    []models.Envelope
	sendErr error
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		in:     make(chan models.Envelope, 16),
		closed: make(chan struct{}),
	}
}

func (c *fakeConn) Send(env models.Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sendErr != nil {
		return c.sendErr
	}
	c.sent = append(c.sent, env)
	return nil
}

func (c *fakeConn) failSends(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sendErr = err
}

func (c *fakeConn) Receive() (models.Envelope, error) {
	select {
	case env := <-c.in:
		return env, nil
	case <-c.closed:
		return models.Envelope{}, adapter.ErrTransportClosed
	}
}

func (c *fakeConn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

func (c *fakeConn) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

func (c *fakeConn) Sent() []models.Envelope {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Envelope, len(c.sent))
	copy(out, c.sent)
	return out
}

// spyNotifier запоминает всё, что сервис показал бы пользователю.
type spyNotifier struct {
	mu       sync.Mutex
	notices  []models.Notice
	statuses []models.Status
}

func (n *spyNotifier) Notify(notice models.Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
}

func (n *spyNotifier) SetStatus(status models.Status) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.statuses = append(n.statuses, status)
}

// Lines returns the notices rendered as the message list shows them.
func (n *spyNotifier) Lines() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]string, 0, len(n.notices))
	for _, notice := range n.notices {
		out = append(out, notice.String())
	}
	return out
}

func (n *spyNotifier) Notices() []models.Notice {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]models.Notice, len(n.notices))
	copy(out, n.notices)
	return out
}

func (n *spyNotifier) LastStatus() models.Status {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.statuses) == 0 {
		return models.Status{}
	}
	return n.statuses[len(n.statuses)-1]
}

// gatedCipher шифрует по-настоящему, но задерживает кадр с текстом hold,
// пока тест не закроет release.
type gatedCipher struct {
	crypto.FrameCipher
	hold    string
	entered chan struct{}
	release chan struct{}
}

func newGatedCipher(hold string) *gatedCipher {
	return &gatedCipher{
		FrameCipher: crypto.NewFrameCipher(),
		hold:        hold,
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
}

func (c *gatedCipher) Encrypt(key crypto.SymmetricKey, plaintext string) ([]byte, error) {
	if plaintext == c.hold {
		close(c.entered)
		<-c.release
	}
	return c.FrameCipher.Encrypt(key, plaintext)
}
