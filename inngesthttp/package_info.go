// Package inngesthttp provides helpers for special types of HTTP client configuration supported by the SDK.
//
// Most applications will not need to use these directly; the connect timeout, CA certificate and
// proxy settings are more easily set through inngestcomponents.HTTPConfiguration().
package inngesthttp
