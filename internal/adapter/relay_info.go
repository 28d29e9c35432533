package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-relay-chat/internal/config"
	"github.com/MKhiriev/go-relay-chat/internal/logger"
	"github.com/MKhiriev/go-relay-chat/internal/utils"
)

const versionPath = "/api/version/"

type httpRelayInfoAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewRelayInfoAdapter constructs a resty-backed [RelayInfoAdapter] for
// relayCfg.HTTPAddress.
//
// Returns an error if the address is empty or is not a valid URL.
func NewRelayInfoAdapter(relayCfg config.ClientRelay, logger *logger.Logger) (RelayInfoAdapter, error) {
	baseURL, err := normalizeBaseURL(relayCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid relay http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(relayCfg.DialTimeout)

	return &httpRelayInfoAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Version implements [RelayInfoAdapter].
func (a *httpRelayInfoAdapter) Version(ctx context.Context) (string, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		a.logger.Err(err).Str("func", "httpRelayInfoAdapter.Version").Msg("version request failed")
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = relayStatusError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
