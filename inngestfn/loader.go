package inngestfn

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	errNoLoader = errors.New("no loader configured")
	errNilStep  = errors.New("loader returned no step")
)

// Loader obtains the Step for a module. It receives the absolute path of the module.
type Loader interface {
	Load(absPath string) (Step, error)
}

// StaticLoader is a Loader for steps that are compiled into the runner binary. It is keyed by module name,
// which is the base name of the module path without its extension: "./steps/signup.so", "signup.go" and
// "/srv/signup" all select the step registered as "signup".
type StaticLoader map[string]Step

// ModuleName returns the key that StaticLoader uses for a module path.
func ModuleName(modulePath string) string {
	base := filepath.Base(modulePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load returns the step registered for the module, or an error if there is none.
func (l StaticLoader) Load(absPath string) (Step, error) {
	name := ModuleName(absPath)
	if step, ok := l[name]; ok {
		return step, nil
	}
	return nil, fmt.Errorf("no step is registered for module %q", name)
}
