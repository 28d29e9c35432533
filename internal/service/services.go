package service

import (
	"net"

	"github.com/MKhiriev/go-relay-chat/internal/config"
	"github.com/MKhiriev/go-relay-chat/internal/logger"
)

// Services groups what the relay's HTTP handlers need.
type Services struct {
	AppInfoService AppInfoService
	BridgeService  BridgeService
}

func NewServices(cfg config.RelayConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	dialer := &net.Dialer{Timeout: cfg.Relay.ConnectTimeout}

	return &Services{
		AppInfoService: appInfo,
		BridgeService:  NewBridgeService(cfg.Relay, dialer, logger),
	}, nil
}
