package http

import (
	"net/http"
	"slices"

	"github.com/MKhiriev/go-relay-chat/internal/config"
	"github.com/MKhiriev/go-relay-chat/internal/logger"
	"github.com/MKhiriev/go-relay-chat/internal/service"
	"github.com/MKhiriev/go-relay-chat/internal/utils"
	"github.com/gorilla/websocket"
)

type Handler struct {
	services *service.Services
	upgrader websocket.Upgrader
	static   http.Handler
	ids      *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.RelayOptions, logger *logger.Logger) *Handler {
	logger.Info().Str("web_dir", cfg.WebDir).Msg("http handler created")
	return &Handler{
		services: services,
		upgrader: websocket.Upgrader{
			CheckOrigin: checkOrigin(cfg.AllowedOrigins),
		},
		static: http.FileServer(http.Dir(cfg.WebDir)),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// checkOrigin allows every origin when allowed is empty. Otherwise the
// Origin header must match one entry exactly; requests without Origin are
// not browsers and pass.
func checkOrigin(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowed, origin)
	}
}
