// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// relay and the chat client. It is populated by merging values from
// environment variables, command-line flags, an optional JSON file and,
// finally, built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Server holds the relay's listening address and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Relay holds both sides of the relay contract: where the client dials
	// and how the relay treats each websocket.
	Relay Relay `envPrefix:"RELAY_"`

	// Defaults prefills the client's connect form.
	Defaults Defaults `envPrefix:"DEFAULTS_"`

	// Storage holds the client's local history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is exposed via the /api/version/ endpoint of the relay.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// GenerateKey makes the client print a fresh random key and exit.
	// Flag only: -gen-key
	GenerateKey bool
}

// Server holds network and timeout settings for the relay HTTP server.
type Server struct {
	// HTTPAddress is the "host:port" the relay listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds plain HTTP requests (version, static files).
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Relay describes the websocket relay.
type Relay struct {
	// URL is the websocket endpoint the client dials (ws:// or wss://).
	// Env: RELAY_URL
	URL string `env:"URL"`

	// HTTPAddress is the base URL the client uses for /api/version/.
	// Env: RELAY_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// DialTimeout bounds the client's websocket handshake.
	// Env: RELAY_DIAL_TIMEOUT
	DialTimeout time.Duration `env:"DIAL_TIMEOUT"`

	// ConnectTimeout is how long the relay waits for the connect envelope.
	// Env: RELAY_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// DefaultHost is dialed when the connect envelope has an empty host.
	// Env: RELAY_DEFAULT_HOST
	DefaultHost string `env:"DEFAULT_HOST"`

	// WebDir is served at "/" by the relay.
	// Env: RELAY_WEB_DIR
	WebDir string `env:"WEB_DIR"`

	// AllowedOrigins restricts websocket upgrades. Empty means any origin.
	// Env: RELAY_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Defaults prefills the client's connect form.
type Defaults struct {
	// Env: DEFAULTS_HOST
	Host string `env:"HOST"`
	// Env: DEFAULTS_PORT
	Port string `env:"PORT"`
	// Env: DEFAULTS_NAME
	Name string `env:"NAME"`
}

// Storage groups client persistence settings.
type Storage struct {
	History History `envPrefix:"HISTORY_"`
}

// History configures the input-history database.
type History struct {
	// DSN is the sqlite data source name.
	// Env: STORAGE_HISTORY_DSN
	DSN string `env:"DSN"`

	// Limit is how many recent lines are kept.
	// Env: STORAGE_HISTORY_LIMIT
	Limit int `env:"LIMIT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
