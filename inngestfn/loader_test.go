package inngestfn

import (
	"context"
	"testing"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleName(t *testing.T) {
	for path, expected := range map[string]string{
		"/srv/steps/signup.so": "signup",
		"signup.go":            "signup",
		"/srv/signup":          "signup",
		"./fn.js":              "fn",
		"/srv/archive.tar.gz":  "archive.tar",
	} {
		assert.Equal(t, expected, ModuleName(path), path)
	}
}

func TestStaticLoader(t *testing.T) {
	loader := StaticLoader{"signup": returning("ok")}

	loaded, err := loader.Load("/srv/steps/signup.so")
	require.NoError(t, err)
	result, err := loaded.Invoke(context.Background(), ldvalue.Null())
	require.NoError(t, err)
	assert.Equal(t, "ok", result)

	_, err = loader.Load("/srv/steps/other.so")
	assert.EqualError(t, err, `no step is registered for module "other"`)
}

func TestPluginLoaderReportsMissingFile(t *testing.T) {
	_, err := PluginLoader{}.Load("/nonexistent/step.so")
	assert.Error(t, err)
}

func TestStepFromSymbol(t *testing.T) {
	fn := func(context.Context, ldvalue.Value) (interface{}, error) { return "from func", nil }
	var stepFunc StepFunc = fn
	var step Step = StepFunc(fn)

	for name, sym := range map[string]interface{}{
		"function":          fn,
		"StepFunc variable": &stepFunc,
		"Step variable":     &step,
	} {
		t.Run(name, func(t *testing.T) {
			s, err := stepFromSymbol(sym)
			require.NoError(t, err)
			result, err := s.Invoke(context.Background(), ldvalue.Null())
			require.NoError(t, err)
			assert.Equal(t, "from func", result)
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		_, err := stepFromSymbol(new(int))
		assert.EqualError(t, err, "symbol Run has unsupported type *int")
	})
}
