package internal

import (
	"net/http"

	"github.com/inngest/inngest-sdk-go/inngesthttp"
)

// NewHTTPClient creates an HTTP client based on the SDK's configuration.
//
// No overall request timeout is set on the client; only connection establishment is bounded, by the
// connect timeout in the transport options. If the transport options are invalid, the client falls
// back to the default transport.
func NewHTTPClient(options ...inngesthttp.TransportOption) *http.Client {
	client := &http.Client{}
	if transport, _, err := inngesthttp.NewHTTPTransport(options...); err == nil {
		client.Transport = transport
	}
	return client
}
