package inngest

import (
	"github.com/inngest/inngest-sdk-go/interfaces"
)

// Config exposes advanced configuration options for the Inngest event client.
//
// All of these settings are optional, so an empty Config struct is always valid. See the description of each
// field for the default behavior if it is not set.
//
// The HTTP and Logging fields are factories whose implementations are normally provided by the
// inngestcomponents package. For instance, to allow more time for establishing a connection:
//
//	config := inngest.Config{
//	    HTTP: inngestcomponents.HTTPConfiguration().ConnectTimeout(10 * time.Second),
//	}
type Config struct {
	// IngestAPIURL is the base URL of the ingestion service. The API key is appended to it as the
	// last path segment, so it should normally end in a slash.
	//
	// If empty, the default is "https://inn.gs/e/". Set this to send events to a self-hosted
	// installation or to a local development server.
	//
	//     config.IngestAPIURL = "http://localhost:8288/e/"
	IngestAPIURL string

	// HTTP provides configuration of the SDK's network connection behavior.
	//
	// If nil, the default is inngestcomponents.HTTPConfiguration(); see that method for an explanation of
	// how to further configure these settings.
	HTTP interfaces.HTTPConfigurationFactory

	// Logging provides configuration of the SDK's logging behavior.
	//
	// If nil, the default is inngestcomponents.Logging(); see that method for an explanation of how to
	// further configure logging behavior. The other option is inngestcomponents.NoLogging().
	//
	// The client only writes Debug-level messages, so with the default minimum level of Info nothing is
	// logged.
	Logging interfaces.LoggingConfigurationFactory
}
