package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process arguments.
//
// Flags:
//
//	-a relay listen address in format [host]:[port]
//	-relay-url websocket URL dialed by the client
//	-relay-http relay base URL for HTTP calls
//	-dial-timeout websocket handshake timeout
//	-connect-timeout time the relay waits for the connect envelope
//	-default-host TCP host dialed when the connect envelope has none
//	-web-dir directory served at "/"
//	-origins comma separated list of allowed websocket origins
//	-host / -port / -name connect form defaults
//	-history-dsn sqlite DSN of the input history
//	-history-limit number of history lines kept
//	-request-timeout HTTP request timeout
//	-c/-config json file path with configs
//	-gen-key print a random key and exit
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("chat", flag.ContinueOnError)

	var serverAddress NetAddress
	var relayURL, relayHTTP string
	var dialTimeout, connectTimeout, requestTimeout time.Duration
	var defaultHost, webDir, origins string
	var host, port, name string
	var historyDSN string
	var historyLimit int
	var jsonConfigPath string
	var genKey bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&relayURL, "relay-url", "", "Relay websocket URL")
	fs.StringVar(&relayHTTP, "relay-http", "", "Relay HTTP base URL")
	fs.DurationVar(&dialTimeout, "dial-timeout", 0, "Websocket dial timeout (e.g., 10s)")
	fs.DurationVar(&connectTimeout, "connect-timeout", 0, "Wait for connect envelope (e.g., 30s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&defaultHost, "default-host", "", "Default upstream host")
	fs.StringVar(&webDir, "web-dir", "", "Static files directory")
	fs.StringVar(&origins, "origins", "", "Allowed websocket origins, comma separated")
	fs.StringVar(&host, "host", "", "Chat server host")
	fs.StringVar(&port, "port", "", "Chat server port")
	fs.StringVar(&name, "name", "", "Display name")
	fs.StringVar(&historyDSN, "history-dsn", "", "History database DSN")
	fs.IntVar(&historyLimit, "history-limit", 0, "History lines kept")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.BoolVar(&genKey, "gen-key", false, "Print a random AES key and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var allowedOrigins []string
	if origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				allowedOrigins = append(allowedOrigins, o)
			}
		}
	}

	return &StructuredConfig{
		App: App{
			GenerateKey: genKey,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Relay: Relay{
			URL:            relayURL,
			HTTPAddress:    relayHTTP,
			DialTimeout:    dialTimeout,
			ConnectTimeout: connectTimeout,
			DefaultHost:    defaultHost,
			WebDir:         webDir,
			AllowedOrigins: allowedOrigins,
		},
		Defaults: Defaults{
			Host: host,
			Port: port,
			Name: name,
		},
		Storage: Storage{
			History: History{
				DSN:   historyDSN,
				Limit: historyLimit,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
