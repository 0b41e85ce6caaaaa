package inngestfn

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseJSON(t *testing.T) {
	t.Run("with body", func(t *testing.T) {
		bytes, err := json.Marshal(NewResponse(200, map[string]interface{}{"ok": true}))
		require.NoError(t, err)
		assert.Equal(t, `{"status":200,"body":{"ok":true}}`, string(bytes))
	})

	t.Run("null body is omitted", func(t *testing.T) {
		bytes, err := json.Marshal(Response{Status: 404})
		require.NoError(t, err)
		assert.Equal(t, `{"status":404}`, string(bytes))
	})

	t.Run("decoding", func(t *testing.T) {
		var r Response
		require.NoError(t, json.Unmarshal([]byte(`{"body":[1],"status":500,"other":1}`), &r))
		assert.Equal(t, 500, r.Status)
		assert.Equal(t, `[1]`, r.Body.JSONString())
	})

	t.Run("decoding error", func(t *testing.T) {
		var r Response
		assert.Error(t, json.Unmarshal([]byte(`{"status":"ok"}`), &r))
	})
}
