package inngestevent

import (
	"github.com/launchdarkly/go-jsonstream/v3/jreader"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// writeValueMap writes the map as a JSON object with keys in sorted order. A nil map is written as
// an empty object.
func writeValueMap(w *jwriter.Writer, m map[string]ldvalue.Value) {
	obj := w.Object()
	keys := maps.Keys(m)
	slices.Sort(keys)
	for _, k := range keys {
		m[k].WriteToJSONWriter(obj.Name(k))
	}
	obj.End()
}

// readValueMap reads a JSON object into a map. A JSON null produces a nil map, and an empty object
// produces an empty non-nil map.
func readValueMap(r *jreader.Reader) map[string]ldvalue.Value {
	var result map[string]ldvalue.Value
	obj := r.ObjectOrNull()
	if obj.IsDefined() {
		result = make(map[string]ldvalue.Value)
	}
	for obj.Next() {
		name := string(obj.Name())
		var v ldvalue.Value
		v.ReadFromJSONReader(r)
		result[name] = v
	}
	return result
}

func copyArbitraryValues(m map[string]interface{}) map[string]ldvalue.Value {
	if m == nil {
		return nil
	}
	result := make(map[string]ldvalue.Value, len(m))
	for k, v := range m {
		result[k] = ldvalue.CopyArbitraryValue(v)
	}
	return result
}
