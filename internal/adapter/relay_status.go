package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// relayStatusErrors covers what the relay's router answers with and what a
// reverse proxy in front of it adds.
var relayStatusErrors = map[int]error{
	// unknown path or a method rejected by CheckHTTPMethod
	http.StatusNotFound: ErrNoVersionEndpoint,
	// panic caught by the recoverer
	http.StatusInternalServerError: ErrRelayFailure,

	http.StatusBadGateway:         ErrRelayUnreachable,
	http.StatusServiceUnavailable: ErrRelayUnreachable,
	http.StatusGatewayTimeout:     ErrRelayUnreachable,
}

func relayStatusError(resp *resty.Response) error {
	code := resp.StatusCode()
	if !resp.IsError() && code < http.StatusMultipleChoices {
		return nil
	}

	detail := strings.TrimSpace(resp.String())
	if detail == "" {
		detail = http.StatusText(code)
	}

	if sentinel, ok := relayStatusErrors[code]; ok {
		return fmt.Errorf("%w (%d %s)", sentinel, code, detail)
	}
	return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, code, detail)
}
