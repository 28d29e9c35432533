// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-relay-chat/internal/adapter"
	"github.com/MKhiriev/go-relay-chat/internal/logger"
	"github.com/MKhiriev/go-relay-chat/internal/utils"
)

// serveWS upgrades the request and hands the socket to the bridge. It
// returns when the bridge is done with the socket.
func (h *Handler) serveWS(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error
		log.Err(err).Str("func", "*Handler.serveWS").Msg("websocket upgrade failed")
		return
	}

	sessionID := h.ids.Generate()
	ctx := utils.WithSessionID(r.Context(), sessionID)
	log.Info().
		Str("func", "*Handler.serveWS").
		Str("session_id", sessionID).
		Str("remote", r.RemoteAddr).
		Msg("websocket opened")

	if err = h.services.BridgeService.Serve(ctx, adapter.NewWebSocketConn(ws)); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.serveWS").Str("session_id", sessionID).Msg("bridge ended with error")
		return
	}
	log.Info().Str("func", "*Handler.serveWS").Str("session_id", sessionID).Msg("websocket closed")
}
