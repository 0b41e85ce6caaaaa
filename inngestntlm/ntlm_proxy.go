// Package inngestntlm allows you to configure the SDK to connect to the ingestion service through a
// proxy server that uses NTLM authentication.
//
// Usage:
//
//	clientFactory, err := inngestntlm.NewNTLMProxyHTTPClientFactory("http://my-proxy:8080",
//	    "username", "password", "domain")
//	if err != nil {
//	    // there's some configuration problem such as an invalid proxy URL
//	}
//	config := inngest.Config{
//	    HTTP: inngestcomponents.HTTPConfiguration().HTTPClientFactory(clientFactory),
//	}
//	client, err := inngest.MakeCustomClient("my-event-key", config)
//
// You can also specify transport options such as a CA certificate:
//
//	clientFactory, err := inngestntlm.NewNTLMProxyHTTPClientFactory("http://my-proxy:8080",
//	    "username", "password", "domain", inngesthttp.CACertFileOption("extracert"))
package inngestntlm

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	ntlm "github.com/launchdarkly/go-ntlm-proxy-auth"

	"github.com/inngest/inngest-sdk-go/inngesthttp"
)

// NewNTLMProxyHTTPClientFactory returns a factory function for creating an HTTP client that will
// connect through an NTLM-authenticated proxy server.
//
// If you are using TLS to communicate with the proxy server, and the proxy server's certificate is not
// signed by a standard certificate authority, you can pass inngesthttp.CACertOption or
// inngesthttp.CACertFileOption to add a CA certificate.
func NewNTLMProxyHTTPClientFactory(proxyURL, username, password, domain string,
	options ...inngesthttp.TransportOption) (func() *http.Client, error) {
	if proxyURL == "" || username == "" || password == "" {
		return nil, errors.New("ProxyURL, username, and password are required")
	}
	parsedProxyURL, err := url.Parse(proxyURL)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy URL %s: %w", proxyURL, err)
	}
	// Build a transport once up front so that invalid options are reported now rather than silently
	// ignored by the factory later.
	if _, _, err := inngesthttp.NewHTTPTransport(options...); err != nil {
		return nil, err
	}
	return func() *http.Client {
		client := &http.Client{}
		if transport, dialer, err := inngesthttp.NewHTTPTransport(options...); err == nil {
			transport.DialContext = ntlm.NewNTLMProxyDialContext(dialer, *parsedProxyURL,
				username, password, domain, transport.TLSClientConfig)
			client.Transport = transport
		}
		return client
	}, nil
}
