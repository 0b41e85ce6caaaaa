package endpoints

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// SelectIngestBaseURI returns the configured base URI, or DefaultIngestBaseURI if none was configured.
func SelectIngestBaseURI(configuredBaseURI string, loggers ldlog.Loggers) string {
	if strings.TrimSpace(configuredBaseURI) == "" {
		return DefaultIngestBaseURI
	}
	if IsCustom(configuredBaseURI) {
		loggers.Debugf("Using custom ingestion base URI %s", configuredBaseURI)
	}
	return configuredBaseURI
}

// IsCustom returns true if the base URI has been overridden with a non-default value.
func IsCustom(configuredBaseURI string) bool {
	return configuredBaseURI != "" &&
		strings.TrimSuffix(configuredBaseURI, "/") != strings.TrimSuffix(DefaultIngestBaseURI, "/")
}

// ResolveIngestURL computes the URL that events are posted to, by resolving the API key as a relative
// reference against the base URI.
//
// This follows ordinary URL reference resolution, so the trailing slash on the base matters: with
// "https://inn.gs/e/" the result is "https://inn.gs/e/<key>", but with "https://inn.gs/e" the last
// path segment is replaced and the result is "https://inn.gs/<key>".
func ResolveIngestURL(baseURI string, apiKey string) (string, error) {
	if apiKey == "" {
		return "", errors.New("API key must not be empty")
	}
	base, err := url.Parse(baseURI)
	if err != nil {
		return "", fmt.Errorf("invalid ingestion base URI %q: %w", baseURI, err)
	}
	if !base.IsAbs() {
		return "", fmt.Errorf("ingestion base URI %q is not an absolute URL", baseURI)
	}
	// The key is always treated as a path, even if it contains a colon that would otherwise make it
	// look like a scheme.
	return base.ResolveReference(&url.URL{Path: apiKey}).String(), nil
}
