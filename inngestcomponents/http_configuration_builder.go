package inngestcomponents

import (
	"net/http"
	"net/url"
	"time"

	"github.com/inngest/inngest-sdk-go/inngesthttp"
	"github.com/inngest/inngest-sdk-go/interfaces"
	"github.com/inngest/inngest-sdk-go/internal"
)

// DefaultConnectTimeout is the HTTP connection timeout that is used if HTTPConfigurationBuilder.ConnectTimeout()
// is not set.
const DefaultConnectTimeout = inngesthttp.DefaultConnectTimeout

// HTTPConfigurationBuilder contains methods for configuring the SDK's networking behavior.
//
// If you want to set non-default values for any of these properties, create a builder with
// inngestcomponents.HTTPConfiguration(), change its properties with the HTTPConfigurationBuilder
// methods, and store it in Config.HTTP:
//
//	config := inngest.Config{
//	    HTTP: inngestcomponents.HTTPConfiguration().
//	        ConnectTimeout(3 * time.Second).
//	        ProxyURL(proxyUrl),
//	}
type HTTPConfigurationBuilder struct {
	inited            bool
	connectTimeout    time.Duration
	httpClientFactory func() *http.Client
	proxyURL          *url.URL
	caCertOptions     []inngesthttp.TransportOption
	userAgent         string
	headers           http.Header
}

// HTTPConfiguration returns a configuration builder for the SDK's HTTP configuration.
//
//	config := inngest.Config{
//	    HTTP: inngestcomponents.HTTPConfiguration().
//	        ConnectTimeout(3 * time.Second).
//	        ProxyURL(proxyUrl),
//	}
func HTTPConfiguration() *HTTPConfigurationBuilder {
	return &HTTPConfigurationBuilder{}
}

func (b *HTTPConfigurationBuilder) checkValid() bool {
	if b == nil {
		internal.LogErrorNilPointerMethod("HTTPConfigurationBuilder")
		return false
	}
	if !b.inited {
		b.connectTimeout = DefaultConnectTimeout
		b.headers = make(http.Header)
		b.inited = true
	}
	return true
}

// CACert specifies a CA certificate to be added to the trusted root CA list for HTTPS requests.
//
// If the certificate is not valid, the SDK client constructor will return an error.
func (b *HTTPConfigurationBuilder) CACert(certData []byte) *HTTPConfigurationBuilder {
	if b.checkValid() {
		b.caCertOptions = append(b.caCertOptions, inngesthttp.CACertOption(certData))
	}
	return b
}

// CACertFile specifies a CA certificate to be added to the trusted root CA list for HTTPS requests,
// reading the certificate data from a file in PEM format.
//
// If the file cannot be read or does not contain a valid certificate, the SDK client constructor
// will return an error.
func (b *HTTPConfigurationBuilder) CACertFile(filePath string) *HTTPConfigurationBuilder {
	if b.checkValid() {
		b.caCertOptions = append(b.caCertOptions, inngesthttp.CACertFileOption(filePath))
	}
	return b
}

// ConnectTimeout sets the connection timeout.
//
// This is the maximum amount of time to wait for each individual connection attempt to a remote
// service before determining that that attempt has failed. It is not the same as the overall
// duration of a request, which the SDK does not limit.
//
// The default is DefaultConnectTimeout.
func (b *HTTPConfigurationBuilder) ConnectTimeout(connectTimeout time.Duration) *HTTPConfigurationBuilder {
	if b.checkValid() {
		if connectTimeout <= 0 {
			b.connectTimeout = DefaultConnectTimeout
		} else {
			b.connectTimeout = connectTimeout
		}
	}
	return b
}

// Header specifies an additional HTTP header to be sent with every request to the ingestion service.
//
// The Content-Type and User-Agent headers are always set by the SDK and cannot be overridden here;
// use UserAgent to add information to the latter.
func (b *HTTPConfigurationBuilder) Header(name string, value string) *HTTPConfigurationBuilder {
	if b.checkValid() {
		b.headers.Set(name, value)
	}
	return b
}

// HTTPClientFactory specifies a function for creating each HTTP client instance that is used by the SDK.
//
// If you use this option, it overrides any other settings that you may have specified with
// ConnectTimeout, ProxyURL, or CACert; you are responsible for setting up any desired custom
// configuration on the HTTP client.
//
// The client should follow redirects, as the standard http.Client does by default.
func (b *HTTPConfigurationBuilder) HTTPClientFactory(httpClientFactory func() *http.Client) *HTTPConfigurationBuilder {
	if b.checkValid() {
		b.httpClientFactory = httpClientFactory
	}
	return b
}

// ProxyURL specifies a proxy URL to be used for all requests. This overrides any setting of the
// HTTP_PROXY, HTTPS_PROXY, or NO_PROXY environment variables.
func (b *HTTPConfigurationBuilder) ProxyURL(proxyURL url.URL) *HTTPConfigurationBuilder {
	if b.checkValid() {
		u := proxyURL
		b.proxyURL = &u
	}
	return b
}

// UserAgent specifies an additional User-Agent component to be appended to the SDK's default
// User-Agent header value, separated by a space.
func (b *HTTPConfigurationBuilder) UserAgent(userAgent string) *HTTPConfigurationBuilder {
	if b.checkValid() {
		b.userAgent = userAgent
	}
	return b
}

// CreateHTTPConfiguration is called internally by the SDK.
func (b *HTTPConfigurationBuilder) CreateHTTPConfiguration(
	basicConfig interfaces.BasicConfiguration,
) (interfaces.HTTPConfiguration, error) {
	if !b.checkValid() {
		defaults := HTTPConfigurationBuilder{}
		return defaults.CreateHTTPConfiguration(basicConfig)
	}

	headers := make(http.Header)
	for name, values := range b.headers {
		headers[name] = append([]string(nil), values...)
	}
	userAgent := internal.UserAgent()
	if b.userAgent != "" {
		userAgent = userAgent + " " + b.userAgent
	}
	headers.Set("User-Agent", userAgent)
	headers.Set("Content-Type", "application/json")

	transportOpts := []inngesthttp.TransportOption{
		inngesthttp.ConnectTimeoutOption(b.connectTimeout),
	}
	transportOpts = append(transportOpts, b.caCertOptions...)
	if b.proxyURL != nil {
		transportOpts = append(transportOpts, inngesthttp.ProxyOption(*b.proxyURL))
	}

	// Validate the options now so that a bad certificate is reported by the client constructor.
	if _, _, err := inngesthttp.NewHTTPTransport(transportOpts...); err != nil {
		return interfaces.HTTPConfiguration{}, err
	}

	clientFactory := b.httpClientFactory
	if clientFactory == nil {
		clientFactory = func() *http.Client {
			return internal.NewHTTPClient(transportOpts...)
		}
	}

	return interfaces.HTTPConfiguration{
		DefaultHeaders:   headers,
		CreateHTTPClient: clientFactory,
	}, nil
}
