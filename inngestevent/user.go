package inngestevent

import (
	"github.com/launchdarkly/go-jsonstream/v3/jreader"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

const (
	externalIDAttr = "external_id"
	emailAttr      = "email"
	phoneAttr      = "phone"
)

// User describes the user associated with an event.
//
// All fields are optional. Any attribute whose name ends in "_id" is used by the service to attribute
// the event to a particular user.
type User struct {
	// ExternalID is the user's unique ID in your system.
	ExternalID ldvalue.OptionalString
	// Email is the user's email address.
	Email ldvalue.OptionalString
	// Phone is the user's phone number.
	Phone ldvalue.OptionalString
	// Attributes holds any additional properties. An entry named external_id, email or phone is
	// replaced by the corresponding field above if that field is defined.
	Attributes map[string]ldvalue.Value
}

// IsEmpty returns true if no user fields or attributes are set. An empty User is omitted from the
// encoded payload.
func (u User) IsEmpty() bool {
	return !u.ExternalID.IsDefined() && !u.Email.IsDefined() && !u.Phone.IsDefined() && len(u.Attributes) == 0
}

func isReservedUserAttr(name string) bool {
	return name == externalIDAttr || name == emailAttr || name == phoneAttr
}

// WriteToJSONWriter provides JSON encoding for User with the jsonstream API.
func (u User) WriteToJSONWriter(w *jwriter.Writer) {
	merged := make(map[string]ldvalue.Value, len(u.Attributes)+3)
	for k, v := range u.Attributes {
		merged[k] = v
	}
	if u.ExternalID.IsDefined() {
		merged[externalIDAttr] = ldvalue.String(u.ExternalID.StringValue())
	}
	if u.Email.IsDefined() {
		merged[emailAttr] = ldvalue.String(u.Email.StringValue())
	}
	if u.Phone.IsDefined() {
		merged[phoneAttr] = ldvalue.String(u.Phone.StringValue())
	}
	writeValueMap(w, merged)
}

// ReadFromJSONReader provides JSON decoding for User with the jsonstream API. A JSON null produces
// an empty User. Recognized fields that are not strings are kept as additional attributes.
func (u *User) ReadFromJSONReader(r *jreader.Reader) {
	var result User
	for k, v := range readValueMap(r) {
		if isReservedUserAttr(k) && v.IsString() {
			s := ldvalue.NewOptionalString(v.StringValue())
			switch k {
			case externalIDAttr:
				result.ExternalID = s
			case emailAttr:
				result.Email = s
			case phoneAttr:
				result.Phone = s
			}
			continue
		}
		if result.Attributes == nil {
			result.Attributes = make(map[string]ldvalue.Value)
		}
		result.Attributes[k] = v
	}
	if r.Error() == nil {
		*u = result
	}
}
