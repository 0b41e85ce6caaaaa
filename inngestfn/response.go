package inngestfn

import (
	"github.com/launchdarkly/go-jsonstream/v3/jreader"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// Response is the result of a step.
//
// Status has HTTP-like semantics for the orchestrator that consumes it: a 2xx status means success, 4xx
// means the step failed and must not be retried, and 5xx means a transient failure that may be retried.
// Body is passed to subsequent steps; it is omitted from the JSON encoding if it is null.
type Response struct {
	Status int
	Body   ldvalue.Value
}

// NewResponse creates a Response, converting body with ldvalue.CopyArbitraryValue.
func NewResponse(status int, body interface{}) Response {
	return Response{Status: status, Body: ldvalue.CopyArbitraryValue(body)}
}

// WriteToJSONWriter provides JSON encoding for Response with the jsonstream API.
func (r Response) WriteToJSONWriter(w *jwriter.Writer) {
	obj := w.Object()
	obj.Name("status").Int(r.Status)
	if !r.Body.IsNull() {
		r.Body.WriteToJSONWriter(obj.Name("body"))
	}
	obj.End()
}

// MarshalJSON provides JSON encoding for Response when using encoding/json.
func (r Response) MarshalJSON() ([]byte, error) {
	w := jwriter.NewWriter()
	r.WriteToJSONWriter(&w)
	return w.Bytes(), w.Error()
}

// ReadFromJSONReader provides JSON decoding for Response with the jsonstream API.
func (r *Response) ReadFromJSONReader(reader *jreader.Reader) {
	var result Response
	for obj := reader.Object(); obj.Next(); {
		switch string(obj.Name()) {
		case "status":
			result.Status = reader.Int()
		case "body":
			result.Body.ReadFromJSONReader(reader)
		default:
			reader.SkipValue()
		}
	}
	if reader.Error() == nil {
		*r = result
	}
}

// UnmarshalJSON provides JSON decoding for Response when using encoding/json.
func (r *Response) UnmarshalJSON(data []byte) error {
	reader := jreader.NewReader(data)
	r.ReadFromJSONReader(&reader)
	return reader.Error()
}
