package inngestevent

import (
	"fmt"
	"net/http"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// Reasons reported by Classify for the statuses the ingestion service documents.
const (
	ReasonAPIKeyNotFound       = "API key not found"
	ReasonCannotProcessPayload = "cannot process event payload"
	ReasonForbidden            = "forbidden"
	ReasonTransformationFailed = "event transformation failed"
	ReasonPayloadTooLarge      = "event payload too large"
	ReasonInternalServerError  = "internal server error"
	ReasonUnknownError         = "unknown error"
)

const ingestionErrorMessagePrefix = "Inngest API Error"

// IngestionError is returned when the ingestion service responds with a status outside of the 2xx range.
//
// Network-level failures are not represented by this type; they are returned as they came from the
// HTTP client.
type IngestionError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Reason is a human-readable description. For a 406 response, it is the response body encoded as
	// a JSON string.
	Reason string
}

// Error returns a message of the form "Inngest API Error: <status> <reason>".
func (e IngestionError) Error() string {
	return fmt.Sprintf("%s: %d %s", ingestionErrorMessagePrefix, e.StatusCode, e.Reason)
}

// IsSuccessStatus returns true if the status is in the 2xx range.
func IsSuccessStatus(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// Classify maps an unsuccessful HTTP status to an IngestionError.
//
// The body parameter is only used for 406 (Not Acceptable) responses, where the service explains the
// problem in the response body; it is included in the reason as an escaped JSON string.
func Classify(statusCode int, body string) IngestionError {
	return IngestionError{StatusCode: statusCode, Reason: reasonForStatus(statusCode, body)}
}

func reasonForStatus(statusCode int, body string) string {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusNotFound:
		return ReasonAPIKeyNotFound
	case http.StatusBadRequest:
		return ReasonCannotProcessPayload
	case http.StatusForbidden:
		return ReasonForbidden
	case http.StatusNotAcceptable:
		w := jwriter.NewWriter()
		w.String(body)
		return string(w.Bytes())
	case http.StatusConflict, http.StatusPreconditionFailed:
		return ReasonTransformationFailed
	case http.StatusRequestEntityTooLarge:
		return ReasonPayloadTooLarge
	case http.StatusInternalServerError:
		return ReasonInternalServerError
	default:
		return ReasonUnknownError
	}
}
