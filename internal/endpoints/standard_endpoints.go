package endpoints

// DefaultIngestBaseURI is the default base URI of the event ingestion service. The API key is
// resolved against it as a relative path segment.
const DefaultIngestBaseURI = "https://inn.gs/e/"
