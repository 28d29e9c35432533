package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in its on-disk form.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Relay struct {
		URL            string   `json:"url"`
		HTTPAddress    string   `json:"http_address"`
		DialTimeout    Duration `json:"dial_timeout"`
		ConnectTimeout Duration `json:"connect_timeout"`
		DefaultHost    string   `json:"default_host"`
		WebDir         string   `json:"web_dir"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"relay,omitempty"`

	Defaults struct {
		Host string `json:"host"`
		Port string `json:"port"`
		Name string `json:"name"`
	} `json:"defaults,omitempty"`

	Storage struct {
		History struct {
			DSN   string `json:"dsn"`
			Limit int    `json:"limit"`
		} `json:"history,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Relay: Relay{
			URL:            jsonCfg.Relay.URL,
			HTTPAddress:    jsonCfg.Relay.HTTPAddress,
			DialTimeout:    time.Duration(jsonCfg.Relay.DialTimeout),
			ConnectTimeout: time.Duration(jsonCfg.Relay.ConnectTimeout),
			DefaultHost:    jsonCfg.Relay.DefaultHost,
			WebDir:         jsonCfg.Relay.WebDir,
			AllowedOrigins: jsonCfg.Relay.AllowedOrigins,
		},
		Defaults: Defaults{
			Host: jsonCfg.Defaults.Host,
			Port: jsonCfg.Defaults.Port,
			Name: jsonCfg.Defaults.Name,
		},
		Storage: Storage{
			History: History{
				DSN:   jsonCfg.Storage.History.DSN,
				Limit: jsonCfg.Storage.History.Limit,
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
