// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/MKhiriev/go-relay-chat/internal/adapter"
	"github.com/MKhiriev/go-relay-chat/internal/app"
	"github.com/MKhiriev/go-relay-chat/internal/codec"
	"github.com/MKhiriev/go-relay-chat/internal/config"
	"github.com/MKhiriev/go-relay-chat/internal/logger"
	"github.com/MKhiriev/go-relay-chat/internal/utils"
	"github.com/MKhiriev/go-relay-chat/internal/workers"
	"github.com/MKhiriev/go-relay-chat/models"
)

type bridgeService struct {
	dialer         UpstreamDialer
	connectTimeout time.Duration
	defaultHost    string

	logger *logger.Logger
}

// NewBridgeService returns a BridgeService dialing upstreams with dialer.
func NewBridgeService(cfg config.RelayOptions, dialer UpstreamDialer, logger *logger.Logger) BridgeService {
	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = config.DefaultConnectTimeout
	}
	defaultHost := cfg.DefaultHost
	if defaultHost == "" {
		defaultHost = config.DefaultRelayTargetHost
	}

	return &bridgeService{
		dialer:         dialer,
		connectTimeout: connectTimeout,
		defaultHost:    defaultHost,
		logger:         logger,
	}
}

// Serve implements BridgeService.
func (b *bridgeService) Serve(ctx context.Context, conn adapter.RelayConn) error {
	defer conn.Close()

	log := b.logger
	if id, ok := utils.GetSessionIDFromContext(ctx); ok {
		log = log.WithSession(id)
	}

	req, err := b.awaitConnect(ctx, conn)
	if err != nil {
		log.Debug().Err(err).Str("func", "bridgeService.Serve").Msg("no connect request")
		return err
	}

	host := strings.TrimSpace(req.Host)
	if host == "" {
		host = b.defaultHost
	}
	port := strings.TrimSpace(req.Port)
	if port == "" {
		b.reply(conn, models.NewErrorEnvelope(app.MsgMissingPort), log)
		return ErrMissingPort
	}

	address := net.JoinHostPort(host, port)
	dialCtx, cancel := context.WithTimeout(ctx, b.connectTimeout)
	upstream, err := b.dialer.DialContext(dialCtx, "tcp", address)
	cancel()
	if err != nil {
		log.Err(err).Str("func", "bridgeService.Serve").Str("upstream", address).Msg("upstream dial failed")
		b.reply(conn, models.NewErrorEnvelope(app.MsgTCPConnectFailed), log)
		return fmt.Errorf("%w: %v", ErrUpstreamDial, err)
	}
	defer upstream.Close()

	log.Info().Str("func", "bridgeService.Serve").Str("upstream", address).Msg("upstream connected")
	b.reply(conn, models.NewStatusEnvelope(app.StatusConnected), log)

	err = workers.New(
		workers.WorkerFunc(func(ctx context.Context) error {
			return b.pumpUpstream(ctx, upstream, conn, log)
		}),
		workers.WorkerFunc(func(ctx context.Context) error {
			return b.pumpClient(ctx, conn, upstream, log)
		}),
	).OnStop(func() {
		// both pumps block in reads that ignore ctx
		_ = upstream.Close()
		_ = conn.Close()
	}).Run(ctx)

	log.Info().Str("func", "bridgeService.Serve").Str("upstream", address).Msg("bridge closed")
	return err
}

// awaitConnect reads the first envelope, giving up after connectTimeout.
// Receive has no deadline of its own, so the connection is closed to
// unblock it.
func (b *bridgeService) awaitConnect(ctx context.Context, conn adapter.RelayConn) (models.Envelope, error) {
	type result struct {
		env models.Envelope
		err error
	}

	ch := make(chan result, 1)
	go func() {
		env, err := conn.Receive()
		ch <- result{env: env, err: err}
	}()

	timer := time.NewTimer(b.connectTimeout)
	defer timer.Stop()

	select {
	case r := <-ch:
		if r.err != nil {
			return models.Envelope{}, fmt.Errorf("%w: %v", ErrNoConnectEnvelope, r.err)
		}
		if r.env.Type != models.EnvelopeConnect {
			return models.Envelope{}, fmt.Errorf("%w: got %q", ErrNoConnectEnvelope, r.env.Type)
		}
		return r.env, nil
	case <-timer.C:
		_ = conn.Close()
		return models.Envelope{}, ErrConnectTimeout
	case <-ctx.Done():
		_ = conn.Close()
		return models.Envelope{}, ctx.Err()
	}
}

// pumpUpstream forwards upstream frames to the client as frame envelopes.
func (b *bridgeService) pumpUpstream(ctx context.Context, upstream net.Conn, conn adapter.RelayConn, log *logger.Logger) error {
	for {
		payload, err := codec.ReadFrame(upstream)
		if err != nil {
			if ctx.Err() == nil {
				log.Debug().Err(err).Str("func", "bridgeService.pumpUpstream").Msg("upstream read ended")
				b.reply(conn, models.NewStatusEnvelope(app.StatusDisconnected), log)
			}
			return nil
		}
		if len(payload) == 0 {
			continue
		}

		b.reply(conn, models.NewFrameEnvelope(codec.EncodeBase64(payload)), log)
	}
}

// pumpClient forwards frame envelopes from the client to the upstream.
// Other envelope types are ignored.
func (b *bridgeService) pumpClient(ctx context.Context, conn adapter.RelayConn, upstream net.Conn, log *logger.Logger) error {
	for {
		env, err := conn.Receive()
		if err != nil {
			if ctx.Err() == nil {
				log.Debug().Err(err).Str("func", "bridgeService.pumpClient").Msg("client read ended")
			}
			return nil
		}

		data := strings.TrimSpace(env.Data)
		if env.Type != models.EnvelopeFrame || data == "" {
			continue
		}

		payload, err := codec.DecodeBase64(data)
		if err != nil {
			b.reply(conn, models.NewErrorEnvelope(app.MsgInvalidFrameData), log)
			continue
		}

		if err = codec.WriteFrame(upstream, payload); err != nil {
			log.Err(err).Str("func", "bridgeService.pumpClient").Msg("upstream write failed")
			b.reply(conn, models.NewStatusEnvelope(app.StatusSendFailed), log)
			return fmt.Errorf("write upstream frame: %w", err)
		}
	}
}

func (b *bridgeService) reply(conn adapter.RelayConn, env models.Envelope, log *logger.Logger) {
	if err := conn.Send(env); err != nil {
		log.Debug().Err(err).Str("func", "bridgeService.reply").Str("envelope_type", string(env.Type)).Msg("client write failed")
	}
}
