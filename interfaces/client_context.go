package interfaces

// BasicConfiguration contains the most basic properties of the SDK client that are available
// to all component factories.
type BasicConfiguration struct {
	// APIKey is the configured event API key. It is embedded in the ingestion URL path.
	APIKey string
}
