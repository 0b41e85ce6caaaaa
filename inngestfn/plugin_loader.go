package inngestfn

import (
	"context"
	"fmt"
	"plugin"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// PluginSymbol is the name of the exported symbol that PluginLoader looks up.
const PluginSymbol = "Run"

// PluginLoader is a Loader that opens the module as a Go plugin (a shared object built with
// "go build -buildmode=plugin") and looks up its exported Run symbol, which must be either a function
// with the signature of StepFunc or a variable of type Step or StepFunc.
//
// Go plugins are only supported on some platforms, and must be built with the same toolchain and
// dependency versions as the runner. Package initializers in the plugin run during Load; a panic there is
// reported by the Runner as a ModuleLoadError.
type PluginLoader struct{}

// Load opens the plugin at absPath.
func (PluginLoader) Load(absPath string) (Step, error) {
	p, err := plugin.Open(absPath)
	if err != nil {
		return nil, err
	}
	sym, err := p.Lookup(PluginSymbol)
	if err != nil {
		return nil, err
	}
	return stepFromSymbol(sym)
}

func stepFromSymbol(sym interface{}) (Step, error) {
	switch s := sym.(type) {
	case func(context.Context, ldvalue.Value) (interface{}, error):
		return StepFunc(s), nil
	case *StepFunc:
		return *s, nil
	case *Step:
		return *s, nil
	}
	return nil, fmt.Errorf("symbol %s has unsupported type %T", PluginSymbol, sym)
}
