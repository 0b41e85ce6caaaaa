package inngestevent

import (
	"bytes"
	"io"
	"net/http"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// EventSender defines the interface for delivering already-encoded event data to the ingestion service.
type EventSender interface {
	// SendEventData delivers a JSON payload containing eventCount events in a single request.
	//
	// It returns nil if the service responded with a 2xx status, an IngestionError for any other
	// status, or the HTTP client's own error if no response was received. It never retries.
	SendEventData(data []byte, eventCount int) error
}

type defaultEventSender struct {
	httpClient *http.Client
	ingestURL  string
	headers    http.Header
	loggers    ldlog.Loggers
}

// NewEventSender creates the standard implementation of EventSender.
//
// The ingestURL is used as-is; headers are added to every request, after which Content-Type is always
// set to application/json. If httpClient is nil, http.DefaultClient is used.
func NewEventSender(
	httpClient *http.Client,
	ingestURL string,
	headers http.Header,
	loggers ldlog.Loggers,
) EventSender {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &defaultEventSender{
		httpClient: httpClient,
		ingestURL:  ingestURL,
		headers:    headers,
		loggers:    loggers,
	}
}

func (s *defaultEventSender) SendEventData(data []byte, eventCount int) error {
	req, err := http.NewRequest("POST", s.ingestURL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	for name, values := range s.headers {
		req.Header[name] = append([]string(nil), values...)
	}
	req.Header.Set("Content-Type", "application/json")

	// The URL is not logged since it contains the API key.
	s.loggers.Debugf("Sending %d event(s) to ingestion service", eventCount)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if IsSuccessStatus(resp.StatusCode) {
		return nil
	}

	var body string
	if resp.StatusCode == http.StatusNotAcceptable {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		body = string(bodyBytes)
	}
	return Classify(resp.StatusCode, body)
}
