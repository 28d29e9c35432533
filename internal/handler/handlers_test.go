package handler

import (
	"testing"

	"github.com/MKhiriev/go-relay-chat/internal/config"
	"github.com/MKhiriev/go-relay-chat/internal/logger"
	"github.com/MKhiriev/go-relay-chat/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns an empty *service.Services. http.NewHandler only
// stores the pointer, so construction-time tests need nothing more.
func newTestServices() *service.Services {
	return &service.Services{}
}

// TestNewHandlers_HTTP verifies that a configured address yields the HTTP
// handler.
func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.RelayConfig{
		Server: config.Server{HTTPAddress: ":8080"},
		Relay:  config.RelayOptions{WebDir: t.TempDir()},
	}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

// TestNewHandlers_NoAddress verifies that an empty address is rejected.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.RelayConfig{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
