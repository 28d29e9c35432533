package utils

import (
	"github.com/go-resty/resty/v2"
)

// ClientUserAgent is sent with every request the chat client makes.
const ClientUserAgent = "go-relay-chat-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("http://127.0.0.1:8080/api/version/")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with its own connection pool and the
// [ClientUserAgent] header preset.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", ClientUserAgent)

	return &HTTPClient{Client: client}
}
