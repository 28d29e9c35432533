package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-relay-chat/internal/adapter"
	"github.com/MKhiriev/go-relay-chat/models"
)

type clientAppInfoService struct {
	buildInfo models.AppBuildInfo
	relayInfo adapter.RelayInfoAdapter
}

// NewClientAppInfoService reports buildInfo and asks relayInfo for the relay
// version. relayInfo may be nil when the relay HTTP address is unusable.
func NewClientAppInfoService(buildInfo models.AppBuildInfo, relayInfo adapter.RelayInfoAdapter) ClientAppInfoService {
	return &clientAppInfoService{buildInfo: buildInfo, relayInfo: relayInfo}
}

func (s *clientAppInfoService) BuildInfo() models.AppBuildInfo {
	return s.buildInfo
}

func (s *clientAppInfoService) RelayVersion(ctx context.Context) (string, error) {
	if s.relayInfo == nil {
		return "", ErrVersionIsNotSpecified
	}

	version, err := s.relayInfo.Version(ctx)
	if err != nil {
		return "", fmt.Errorf("relay version: %w", err)
	}
	if version == "" {
		return "", ErrVersionIsNotSpecified
	}
	return version, nil
}
