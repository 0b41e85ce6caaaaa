package inngest

import (
	"errors"
	"net/http"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"

	"github.com/inngest/inngest-sdk-go/inngestcomponents"
	"github.com/inngest/inngest-sdk-go/inngestevent"
	"github.com/inngest/inngest-sdk-go/interfaces"
	"github.com/inngest/inngest-sdk-go/internal"
	"github.com/inngest/inngest-sdk-go/internal/endpoints"
)

// Version is the SDK version.
const Version = internal.SDKVersion

var errNilClient = errors.New("Inngest client was not initialized") //nolint:stylecheck

// Client is the Inngest event client.
//
// Create an instance with MakeClient or MakeCustomClient. A Client holds no per-request state and may be
// used from any number of goroutines. Each call to Send or SendMany makes exactly one HTTP request and
// never retries; callers that want retries should implement them around the call.
type Client struct {
	ingestURL string
	sender    inngestevent.EventSender
}

// MakeClient creates a new client instance that sends events to the default ingestion service with the
// given event API key.
//
// An error is returned only if the API key is empty; the key is not validated until an event is sent.
func MakeClient(apiKey string) (*Client, error) {
	return MakeCustomClient(apiKey, Config{})
}

// MakeCustomClient creates a new client instance with custom configuration.
//
// The request URL is computed once here, by resolving the API key as a relative path against
// Config.IngestAPIURL. An error is returned if the API key is empty, if the base URL is not a valid
// absolute URL, or if the HTTP configuration is invalid (for instance, an unreadable CA certificate).
func MakeCustomClient(apiKey string, config Config) (*Client, error) {
	basicConfig := interfaces.BasicConfiguration{APIKey: apiKey}

	loggingFactory := config.Logging
	if loggingFactory == nil {
		loggingFactory = inngestcomponents.Logging()
	}
	loggingConfig, err := loggingFactory.CreateLoggingConfiguration(basicConfig)
	if err != nil {
		return nil, err
	}
	loggers := loggingConfig.Loggers

	httpFactory := config.HTTP
	if httpFactory == nil {
		httpFactory = inngestcomponents.HTTPConfiguration()
	}
	httpConfig, err := httpFactory.CreateHTTPConfiguration(basicConfig)
	if err != nil {
		return nil, err
	}
	if httpConfig.CreateHTTPClient == nil {
		httpConfig.CreateHTTPClient = func() *http.Client { return internal.NewHTTPClient() }
	}

	baseURI := endpoints.SelectIngestBaseURI(config.IngestAPIURL, loggers)
	ingestURL, err := endpoints.ResolveIngestURL(baseURI, apiKey)
	if err != nil {
		return nil, err
	}

	loggers.Debugf("Inngest client version %s created", Version)

	return &Client{
		ingestURL: ingestURL,
		sender: inngestevent.NewEventSender(
			httpConfig.CreateHTTPClient(),
			ingestURL,
			httpConfig.DefaultHeaders,
			loggers,
		),
	}, nil
}

// IngestURL returns the URL that events are posted to. It contains the API key, so it should not be
// logged.
func (c *Client) IngestURL() string {
	if c == nil {
		internal.LogErrorNilPointerMethod("Client")
		return ""
	}
	return c.ingestURL
}

// Send posts a single event to the ingestion service. The request body is the event's JSON object.
//
// It returns nil if the service accepted the event. If the service responded with any non-2xx status, the
// error is an inngestevent.IngestionError; if no response was received, it is the error from the HTTP
// client.
//
//	var ie inngestevent.IngestionError
//	if errors.As(err, &ie) && ie.StatusCode == 401 {
//	    // the event key is wrong
//	}
func (c *Client) Send(payload inngestevent.Payload) error {
	if c == nil {
		internal.LogErrorNilPointerMethod("Client")
		return errNilClient
	}
	w := jwriter.NewWriter()
	payload.WriteToJSONWriter(&w)
	if err := w.Error(); err != nil {
		return err
	}
	return c.sender.SendEventData(w.Bytes(), 1)
}

// SendMany posts any number of events to the ingestion service in a single request, whose body is a JSON
// array in the same order as the payloads. An empty list is still sent, as "[]".
//
// The service accepts or rejects the request as a whole; errors are reported as for Send.
func (c *Client) SendMany(payloads []inngestevent.Payload) error {
	if c == nil {
		internal.LogErrorNilPointerMethod("Client")
		return errNilClient
	}
	w := jwriter.NewWriter()
	inngestevent.WritePayloads(&w, payloads)
	if err := w.Error(); err != nil {
		return err
	}
	return c.sender.SendEventData(w.Bytes(), len(payloads))
}
