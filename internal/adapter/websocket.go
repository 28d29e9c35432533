// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-relay-chat/internal/config"
	"github.com/MKhiriev/go-relay-chat/internal/logger"
	"github.com/MKhiriev/go-relay-chat/models"
	"github.com/gorilla/websocket"
)

const closeWriteTimeout = time.Second

type webSocketTransport struct {
	url    string
	dialer *websocket.Dialer
	logger *logger.Logger
}

// NewWebSocketTransport constructs a [RelayTransport] that dials
// relayCfg.URL with relayCfg.DialTimeout as the handshake timeout.
func NewWebSocketTransport(relayCfg config.ClientRelay, logger *logger.Logger) RelayTransport {
	return &webSocketTransport{
		url: relayCfg.URL,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: relayCfg.DialTimeout,
		},
		logger: logger,
	}
}

// Open implements [RelayTransport].
func (t *webSocketTransport) Open(ctx context.Context) (RelayConn, error) {
	conn, resp, err := t.dialer.DialContext(ctx, t.url, nil)
	if err != nil {
		if resp != nil {
			t.logger.Err(err).Str("func", "webSocketTransport.Open").Int("status", resp.StatusCode).Msg("relay handshake rejected")
		}
		return nil, fmt.Errorf("%w: %v", ErrDial, err)
	}

	t.logger.Debug().Str("func", "webSocketTransport.Open").Str("url", t.url).Msg("relay websocket opened")
	return NewWebSocketConn(conn), nil
}

// wsConn adapts *websocket.Conn to [RelayConn]. gorilla allows one
// concurrent writer, so writes are serialized by mu.
type wsConn struct {
	conn *websocket.Conn

	mu        sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

// NewWebSocketConn wraps an established websocket, client or server side.
func NewWebSocketConn(conn *websocket.Conn) RelayConn {
	return &wsConn{conn: conn}
}

// Send implements [RelayConn].
func (c *wsConn) Send(env models.Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.WriteJSON(env); err != nil {
		return fmt.Errorf("%w: %v", ErrTransportClosed, err)
	}
	return nil
}

// Receive implements [RelayConn].
func (c *wsConn) Receive() (models.Envelope, error) {
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %v", ErrTransportClosed, err)
	}

	var env models.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if env.Type == "" {
		return models.Envelope{}, fmt.Errorf("%w: missing type", ErrMalformedEnvelope)
	}
	return env, nil
}

// Close implements [RelayConn]. It sends a normal-closure control frame
// before closing the socket.
func (c *wsConn) Close() error {
	c.closeOnce.Do(func() {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeWriteTimeout))

		if err := c.conn.Close(); err != nil && !errors.Is(err, websocket.ErrCloseSent) {
			c.closeErr = err
		}
	})
	return c.closeErr
}
