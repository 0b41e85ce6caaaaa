// Package internal contains SDK implementation details that are shared between packages,
// but are not exposed to application code.
package internal
