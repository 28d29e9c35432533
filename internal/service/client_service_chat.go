// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-relay-chat/internal/adapter"
	"github.com/MKhiriev/go-relay-chat/internal/app"
	"github.com/MKhiriev/go-relay-chat/internal/codec"
	"github.com/MKhiriev/go-relay-chat/internal/crypto"
	"github.com/MKhiriev/go-relay-chat/internal/logger"
	"github.com/MKhiriev/go-relay-chat/internal/utils"
	"github.com/MKhiriev/go-relay-chat/internal/validators"
	"github.com/MKhiriev/go-relay-chat/models"
)

type idGenerator interface {
	Generate() string
}

// session is immutable after construction except for greeted, ready and the
// key, which is zeroed once under the write lock when the session is detached.
// sendMu orders frames on the wire: the greeting and name pair is written as
// one unit.
type session struct {
	id      string
	key     crypto.SymmetricKey
	name    string
	conn    adapter.RelayConn
	cancel  context.CancelFunc
	greeted atomic.Bool
	ready   atomic.Bool
	sendMu  sync.Mutex
	logger  *logger.Logger
}

func (s *session) shutdown() {
	s.cancel()
	if err := s.conn.Close(); err != nil {
		s.logger.Debug().Err(err).Str("func", "session.shutdown").Msg("closing relay connection")
	}
}

type clientChatService struct {
	transport adapter.RelayTransport
	cipher    crypto.FrameCipher
	validator validators.Validator
	history   ClientHistoryService
	notifier  Notifier
	ids       idGenerator
	now       func() time.Time

	mu      sync.RWMutex
	current *session
	state   models.ConnectionState

	loops sync.WaitGroup

	logger *logger.Logger
}

// NewClientChatService wires a chat session manager. history may be nil,
// sent lines are then not recorded.
func NewClientChatService(
	transport adapter.RelayTransport,
	cipher crypto.FrameCipher,
	validator validators.Validator,
	history ClientHistoryService,
	notifier Notifier,
	logger *logger.Logger,
) ClientChatService {
	return &clientChatService{
		transport: transport,
		cipher:    cipher,
		validator: validator,
		history:   history,
		notifier:  notifier,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		state:     models.StateDisconnected,
		logger:    logger,
	}
}

// Connect implements ClientChatService.
func (s *clientChatService) Connect(ctx context.Context, req models.ConnectRequest) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		s.logger.Debug().Err(err).Str("func", "clientChatService.Connect").Msg("connect form rejected")
		s.notify(models.NoticeSystem, connectNotice(err))
		return fmt.Errorf("connect: %w", err)
	}

	key, source, err := crypto.DeriveKeyWithSource(req.Key)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "clientChatService.Connect").Msg("key derivation failed")
		s.notify(models.NoticeSystem, connectNotice(err))
		return fmt.Errorf("connect: %w", err)
	}

	id := s.ids.Generate()
	log := s.logger.WithSession(id)
	log.Debug().
		Str("func", "clientChatService.Connect").
		Int("key_len", key.Len()).
		Str("key_source", string(source)).
		Msg("key derived")

	s.replace(nil, models.StateConnecting)
	s.notifier.SetStatus(models.Status{Text: app.LabelConnecting})

	conn, err := s.transport.Open(ctx)
	if err != nil {
		key.Zero()
		s.setState(nil, models.StateDisconnected)
		log.Err(err).Str("func", "clientChatService.Connect").Msg("relay dial failed")
		s.notifier.SetStatus(models.Status{Text: app.LabelDisconnected})
		s.notify(models.NoticeSystem, connectNotice(err))
		return fmt.Errorf("connect: %w", err)
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sess := &session{
		id:     id,
		key:    key,
		name:   strings.TrimSpace(req.Name),
		conn:   conn,
		cancel: cancel,
		logger: log,
	}
	s.replace(sess, models.StateConnecting)

	if err = conn.Send(models.NewConnectEnvelope(strings.TrimSpace(req.Host), strings.TrimSpace(req.Port))); err != nil {
		log.Err(err).Str("func", "clientChatService.Connect").Msg("sending connect envelope failed")
		s.closeSession(sess, app.MsgConnectionClosed)
		return fmt.Errorf("connect: %w", err)
	}

	s.loops.Add(1)
	go s.receiveLoop(utils.WithSessionID(loopCtx, id), sess)

	log.Info().Str("func", "clientChatService.Connect").Msg("session started")
	return nil
}

func (s *clientChatService) receiveLoop(ctx context.Context, sess *session) {
	defer s.loops.Done()

	for {
		env, err := sess.conn.Receive()
		if err != nil {
			if errors.Is(err, adapter.ErrMalformedEnvelope) {
				sess.logger.Debug().Err(err).Str("func", "clientChatService.receiveLoop").Msg("skipping envelope")
				continue
			}
			if s.closeSession(sess, app.MsgConnectionClosed) {
				sess.logger.Info().Err(err).Str("func", "clientChatService.receiveLoop").Msg("relay connection closed")
			}
			return
		}
		if ctx.Err() != nil {
			return
		}

		s.HandleEnvelope(ctx, sess.id, env)
	}
}

// HandleEnvelope implements ClientChatService.
func (s *clientChatService) HandleEnvelope(ctx context.Context, sessionID string, env models.Envelope) {
	sess := s.session(sessionID)
	if sess == nil {
		s.logger.Debug().
			Str("func", "clientChatService.HandleEnvelope").
			Str("session_id", sessionID).
			Str("envelope_type", string(env.Type)).
			Msg("dropping envelope of a replaced session")
		return
	}

	switch env.Type {
	case models.EnvelopeStatus:
		s.handleStatus(sess, env.Text)
	case models.EnvelopeError:
		s.handleError(sess, env.Text)
	case models.EnvelopeFrame:
		s.handleFrame(sess, env.Data)
	default:
		sess.logger.Debug().
			Err(ErrUnknownEnvelope).
			Str("func", "clientChatService.HandleEnvelope").
			Str("envelope_type", string(env.Type)).
			Msg("ignoring envelope")
	}
}

func (s *clientChatService) handleStatus(sess *session, text string) {
	ok := text == app.StatusConnected
	switch {
	case ok:
		s.setState(sess, models.StateConnected)
	case text == app.StatusDisconnected:
		s.setState(sess, models.StateDisconnected)
	}

	s.notifier.SetStatus(models.Status{Text: text, OK: ok})
	s.notify(models.NoticeSystem, text)

	if ok && sess.greeted.CompareAndSwap(false, true) {
		s.handshake(sess)
	}
}

// handshake identifies the client to the chat server. The name is only
// sent after the greeting went out; user lines are accepted once both are
// written.
func (s *clientChatService) handshake(sess *session) {
	sess.sendMu.Lock()
	defer sess.sendMu.Unlock()

	if err := s.sendEncrypted(sess, app.IdentityGreeting); err != nil {
		return
	}
	if sess.name != "" {
		if err := s.sendEncrypted(sess, app.SetNameCommand+sess.name); err != nil {
			return
		}
	}
	sess.ready.Store(true)
	sess.logger.Debug().Str("func", "clientChatService.handshake").Msg("handshake done")
}

func (s *clientChatService) handleError(sess *session, text string) {
	s.setState(sess, models.StateDisconnected)
	s.notifier.SetStatus(models.Status{Text: app.LabelDisconnected})
	s.notify(models.NoticeError, text)
}

func (s *clientChatService) handleFrame(sess *session, data string) {
	raw, err := codec.DecodeBase64(data)
	if err == nil && len(raw) < crypto.NonceSize {
		err = crypto.ErrFrameTooShort
	}
	if err != nil {
		sess.logger.Debug().Err(err).Str("func", "clientChatService.handleFrame").Msg("bad frame data")
		s.notify(models.NoticeSystem, app.MsgBadFrameData)
		return
	}

	s.mu.RLock()
	if s.current != sess {
		s.mu.RUnlock()
		return
	}
	text, err := s.cipher.Decrypt(sess.key, raw)
	s.mu.RUnlock()

	if err != nil {
		sess.logger.Debug().Err(err).Str("func", "clientChatService.handleFrame").Int("frame_len", len(raw)).Msg("decrypt failed")
		s.notify(models.NoticeSystem, app.MsgDecryptFailed)
		return
	}

	if rest, found := strings.CutPrefix(text, app.SystemPrefix); found {
		s.notify(models.NoticeSystem, strings.TrimLeft(rest, " "))
		return
	}
	s.notify(models.NoticeContent, text)
}

// Send implements ClientChatService.
func (s *clientChatService) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	sess := s.session("")
	if sess == nil {
		s.notify(models.NoticeSystem, app.MsgNotConnected)
		return ErrNotConnected
	}

	if !sess.ready.Load() {
		s.notify(models.NoticeSystem, app.MsgNotReady)
		return ErrHandshakePending
	}

	sess.sendMu.Lock()
	err := s.sendEncrypted(sess, text)
	if err == nil {
		s.notify(models.NoticeOwn, text)
	}
	sess.sendMu.Unlock()

	if err != nil {
		if errors.Is(err, ErrNotConnected) {
			s.notify(models.NoticeSystem, app.MsgNotConnected)
		}
		return err
	}

	if s.history != nil {
		if err := s.history.Record(ctx, text); err != nil {
			sess.logger.Err(err).Str("func", "clientChatService.Send").Msg("recording history failed")
		}
	}
	return nil
}

// sendEncrypted seals text with the session key and writes the frame. The
// key is only read under the read lock; the transport write happens
// outside of it.
func (s *clientChatService) sendEncrypted(sess *session, text string) error {
	s.mu.RLock()
	if s.current != sess {
		s.mu.RUnlock()
		return ErrNotConnected
	}
	frame, err := s.cipher.Encrypt(sess.key, text)
	s.mu.RUnlock()

	if err != nil {
		sess.logger.Err(err).Str("func", "clientChatService.sendEncrypted").Msg("encrypt failed")
		s.notify(models.NoticeSystem, app.MsgEncryptFailed)
		return fmt.Errorf("encrypt: %w", err)
	}

	if err = sess.conn.Send(models.NewFrameEnvelope(codec.EncodeBase64(frame))); err != nil {
		sess.logger.Err(err).Str("func", "clientChatService.sendEncrypted").Msg("sending frame failed")
		s.notify(models.NoticeSystem, app.MsgSendFailed)
		return fmt.Errorf("send frame: %w", err)
	}
	return nil
}

// Disconnect implements ClientChatService.
func (s *clientChatService) Disconnect() {
	s.replace(nil, models.StateDisconnected)
	s.notifier.SetStatus(models.Status{Text: app.LabelDisconnected})
}

// State implements ClientChatService.
func (s *clientChatService) State() models.ConnectionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// session returns the current session if its id matches. An empty id
// matches any session.
func (s *clientChatService) session(id string) *session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil || (id != "" && s.current.id != id) {
		return nil
	}
	return s.current
}

// replace installs next as the current session and shuts the previous one
// down. The previous key is zeroed while the write lock is held, so no
// reader can observe it half-cleared.
func (s *clientChatService) replace(next *session, state models.ConnectionState) {
	s.mu.Lock()
	prev := s.current
	s.current = next
	s.state = state
	if prev != nil {
		prev.key.Zero()
	}
	s.mu.Unlock()

	if prev != nil {
		prev.shutdown()
	}
}

// closeSession tears sess down if it is still current and reports whether
// it was.
func (s *clientChatService) closeSession(sess *session, notice string) bool {
	s.mu.Lock()
	if s.current != sess {
		s.mu.Unlock()
		return false
	}
	s.current = nil
	s.state = models.StateDisconnected
	sess.key.Zero()
	s.mu.Unlock()

	sess.shutdown()
	s.notifier.SetStatus(models.Status{Text: app.LabelDisconnected})
	s.notify(models.NoticeSystem, notice)
	return true
}

// setState changes the state if sess is current. A nil sess matches only
// when no session is installed.
func (s *clientChatService) setState(sess *session, state models.ConnectionState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == sess {
		s.state = state
	}
}

func (s *clientChatService) notify(kind models.NoticeKind, text string) {
	s.notifier.Notify(models.Notice{Kind: kind, Text: text, At: s.now()})
}

// wait blocks until every receive loop has returned.
func (s *clientChatService) wait() {
	s.loops.Wait()
}
