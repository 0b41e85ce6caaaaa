package inngestevent

import (
	"github.com/launchdarkly/go-jsonstream/v3/jreader"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/launchdarkly/go-sdk-common/v3/ldtime"
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// Payload is a single event to be sent to the ingestion service.
//
// Payloads are plain values: the client does not modify, validate or store them. The service
// requires Name and Data; if either is missing, the problem is reported as an IngestionError
// with a 4xx status when the event is sent. An empty Name or a nil Data map is omitted from the
// JSON encoding rather than filled in.
type Payload struct {
	// ID is an optional idempotency key. Events with the same ID are only processed once.
	ID string
	// Name identifies the event, for instance "app/user.signup".
	Name string
	// Data holds any properties pertinent to the event.
	Data map[string]ldvalue.Value
	// User holds optional information about the user associated with the event.
	User User
	// Version is an optional event schema version, sent as "v".
	Version string
	// Timestamp is the time at which the event occurred, in milliseconds since the Unix epoch, sent
	// as "ts". If zero it is omitted and the service uses the time of receipt.
	Timestamp ldtime.UnixMillisecondTime
}

// NewPayload creates a Payload with the given name and data properties.
//
// Values in data are converted with ldvalue.CopyArbitraryValue, so they may be any type that
// encoding/json could marshal.
func NewPayload(name string, data map[string]interface{}) Payload {
	return Payload{Name: name, Data: copyArbitraryValues(data)}
}

// WriteToJSONWriter provides JSON encoding for Payload with the jsonstream API.
//
// Only properties that are set are written. A non-nil empty Data map is written as {}.
func (p Payload) WriteToJSONWriter(w *jwriter.Writer) {
	obj := w.Object()
	obj.Maybe("id", p.ID != "").String(p.ID)
	obj.Maybe("name", p.Name != "").String(p.Name)
	if p.Data != nil {
		writeValueMap(obj.Name("data"), p.Data)
	}
	if !p.User.IsEmpty() {
		p.User.WriteToJSONWriter(obj.Name("user"))
	}
	obj.Maybe("v", p.Version != "").String(p.Version)
	obj.Maybe("ts", p.Timestamp != 0).Int(int(p.Timestamp))
	obj.End()
}

// MarshalJSON provides JSON encoding for Payload when using encoding/json.
func (p Payload) MarshalJSON() ([]byte, error) {
	w := jwriter.NewWriter()
	p.WriteToJSONWriter(&w)
	return w.Bytes(), w.Error()
}

// ReadFromJSONReader provides JSON decoding for Payload with the jsonstream API.
//
// Unknown properties are ignored.
func (p *Payload) ReadFromJSONReader(r *jreader.Reader) {
	var result Payload
	for obj := r.Object(); obj.Next(); {
		switch string(obj.Name()) {
		case "id":
			result.ID, _ = r.StringOrNull()
		case "name":
			result.Name, _ = r.StringOrNull()
		case "data":
			result.Data = readValueMap(r)
		case "user":
			result.User.ReadFromJSONReader(r)
		case "v":
			result.Version, _ = r.StringOrNull()
		case "ts":
			if ts, ok := r.Float64OrNull(); ok {
				result.Timestamp = ldtime.UnixMillisecondTime(ts)
			}
		default:
			r.SkipValue()
		}
	}
	if r.Error() == nil {
		*p = result
	}
}

// UnmarshalJSON provides JSON decoding for Payload when using encoding/json.
func (p *Payload) UnmarshalJSON(data []byte) error {
	r := jreader.NewReader(data)
	p.ReadFromJSONReader(&r)
	return r.Error()
}

// WritePayloads encodes a list of payloads as a JSON array. An empty or nil list is written as [].
func WritePayloads(w *jwriter.Writer, payloads []Payload) {
	arr := w.Array()
	for _, p := range payloads {
		p.WriteToJSONWriter(w)
	}
	arr.End()
}
