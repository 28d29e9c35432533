package service

import (
	"github.com/MKhiriev/go-relay-chat/internal/adapter"
	"github.com/MKhiriev/go-relay-chat/internal/config"
	"github.com/MKhiriev/go-relay-chat/internal/crypto"
	"github.com/MKhiriev/go-relay-chat/internal/logger"
	"github.com/MKhiriev/go-relay-chat/internal/store"
	"github.com/MKhiriev/go-relay-chat/internal/validators"
	"github.com/MKhiriev/go-relay-chat/models"
)

type ClientServices struct {
	ChatService    ClientChatService
	HistoryService ClientHistoryService
	AppInfoService ClientAppInfoService
}

// NewClientServices wires the client services. history may be nil when
// the history database could not be opened; relayInfo may be nil too.
func NewClientServices(
	cfg config.ClientConfig,
	transport adapter.RelayTransport,
	relayInfo adapter.RelayInfoAdapter,
	history store.HistoryRepository,
	notifier Notifier,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *ClientServices {
	historySvc := NewClientHistoryService(history, cfg.Storage, logger)

	return &ClientServices{
		ChatService: NewClientChatService(
			transport,
			crypto.NewFrameCipher(),
			validators.NewConnectRequestValidator(),
			historySvc,
			notifier,
			logger,
		),
		HistoryService: historySvc,
		AppInfoService: NewClientAppInfoService(buildInfo, relayInfo),
	}
}
