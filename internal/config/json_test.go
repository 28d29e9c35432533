package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllSections(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"app": {"version": "1.4.0"},
		"server": {"http_address": ":9090", "request_timeout": "20s", "shutdown_timeout": 3000000000},
		"relay": {
			"url": "wss://chat.example/ws",
			"http_address": "https://chat.example",
			"dial_timeout": "2s",
			"connect_timeout": "45s",
			"default_host": "10.0.0.5",
			"web_dir": "/srv/web",
			"allowed_origins": ["https://chat.example"]
		},
		"defaults": {"host": "10.0.0.5", "port": "7000", "name": "alice"},
		"storage": {"history": {"dsn": "/tmp/h.db", "limit": 50}}
	}`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", cfg.App.Version)
	assert.Equal(t, ":9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "wss://chat.example/ws", cfg.Relay.URL)
	assert.Equal(t, "https://chat.example", cfg.Relay.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.Relay.DialTimeout)
	assert.Equal(t, 45*time.Second, cfg.Relay.ConnectTimeout)
	assert.Equal(t, "10.0.0.5", cfg.Relay.DefaultHost)
	assert.Equal(t, "/srv/web", cfg.Relay.WebDir)
	assert.Equal(t, []string{"https://chat.example"}, cfg.Relay.AllowedOrigins)
	assert.Equal(t, Defaults{Host: "10.0.0.5", Port: "7000", Name: "alice"}, cfg.Defaults)
	assert.Equal(t, History{DSN: "/tmp/h.db", Limit: 50}, cfg.Storage.History)
}

func TestParseJSON_PartialFileLeavesZeroValues(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"defaults": {"port": "7000"}}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Defaults.Port)
	assert.Empty(t, cfg.Relay.URL)
	assert.Zero(t, cfg.Storage.History.Limit)
}

func TestParseJSON_BadDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"relay": {"dial_timeout": "soon"}}`), 0o600))

	_, err := parseJSON(p)

	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
