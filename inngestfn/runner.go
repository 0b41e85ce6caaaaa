package inngestfn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"runtime/debug"
	"strings"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// FailureStatus is the status reported for every failure of the runner itself or of the step.
const FailureStatus = 500

// Runner executes one step per call to Run.
type Runner struct {
	// Loader obtains the step for a module path. It is required.
	Loader Loader
	// Stdout receives the single line of JSON output. If nil, os.Stdout is used.
	Stdout io.Writer
	// Loggers is used for diagnostic output. It must not write to Stdout.
	Loggers ldlog.Loggers
	// Getwd returns the directory that relative module paths are resolved against. If nil, os.Getwd is used.
	Getwd func() (string, error)
}

// Run executes the step described by args, which must be the module path followed by the JSON
// invocation context, and writes the outcome to Stdout as a single line of JSON.
//
// It returns the process exit code: 0 if the step succeeded, 1 otherwise. Note that a step that returns a
// Response with a 4xx or 5xx status has still succeeded as far as the runner is concerned.
func (r Runner) Run(ctx context.Context, args []string) int {
	out := r.Stdout
	if out == nil {
		out = os.Stdout
	}

	line, err := r.execute(ctx, args)
	if err != nil {
		r.Loggers.Warnf("Step failed: %s", err)
		line = encodeFailure(err)
	}

	if _, werr := out.Write(append(line, '\n')); werr != nil {
		r.Loggers.Errorf("Unable to write step output: %s", werr)
		return 1
	}
	if err != nil {
		return 1
	}
	return 0
}

func (r Runner) execute(ctx context.Context, args []string) (line []byte, err error) {
	// Loading and invoking have their own recovery. This catches anything else that user code can
	// reach, such as a MarshalJSON method on the step's result.
	defer func() {
		if p := recover(); p != nil {
			line = nil
			err = ExecutionError{Err: fmt.Errorf("panic: %v", p), Stack: string(debug.Stack())}
		}
	}()

	if len(args) != 2 {
		return nil, fmt.Errorf("expected 2 arguments (module path and context), got %d", len(args))
	}
	modulePath, rawContext := args[0], args[1]

	input, err := parseContext(rawContext)
	if err != nil {
		return nil, err
	}

	absPath, err := r.resolvePath(modulePath)
	if err != nil {
		return nil, ModuleLoadError{Path: modulePath, Err: err}
	}
	r.Loggers.Debugf("Loading step module %s", absPath)

	step, err := r.load(absPath)
	if err != nil {
		return nil, err
	}

	result, err := invoke(ctx, step, input)
	if err != nil {
		return nil, err
	}

	line, err = encodeResult(result)
	if err != nil {
		return nil, ExecutionError{Err: fmt.Errorf("unable to encode step result: %w", err)}
	}
	return line, nil
}

// parseContext accepts any JSON value except null.
func parseContext(raw string) (ldvalue.Value, error) {
	if strings.TrimSpace(raw) == "" {
		return ldvalue.Null(), ContextParseError{Err: errEmptyContext}
	}
	var value ldvalue.Value
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return ldvalue.Null(), ContextParseError{Err: err}
	}
	if value.IsNull() {
		return ldvalue.Null(), ContextParseError{Err: errNullContext}
	}
	return value, nil
}

func (r Runner) resolvePath(modulePath string) (string, error) {
	if filepath.IsAbs(modulePath) {
		return filepath.Clean(modulePath), nil
	}
	getwd := r.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	wd, err := getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, modulePath), nil
}

func (r Runner) load(absPath string) (step Step, err error) {
	defer func() {
		if p := recover(); p != nil {
			step = nil
			err = ModuleLoadError{Path: absPath, Err: fmt.Errorf("panic: %v", p), Stack: string(debug.Stack())}
		}
	}()
	if r.Loader == nil {
		return nil, ModuleLoadError{Path: absPath, Err: errNoLoader}
	}
	step, err = r.Loader.Load(absPath)
	if err != nil {
		return nil, ModuleLoadError{Path: absPath, Err: err}
	}
	if step == nil {
		return nil, ModuleLoadError{Path: absPath, Err: errNilStep}
	}
	return step, nil
}

func invoke(ctx context.Context, step Step, input ldvalue.Value) (result interface{}, err error) {
	defer func() {
		if p := recover(); p != nil {
			result = nil
			err = ExecutionError{Err: fmt.Errorf("panic: %v", p), Stack: string(debug.Stack())}
		}
	}()
	result, err = step.Invoke(ctx, input)
	if err != nil {
		return nil, ExecutionError{Err: err}
	}
	return result, nil
}

func encodeResult(result interface{}) ([]byte, error) {
	switch r := result.(type) {
	case nil:
		return Response{Status: 200}.MarshalJSON()
	case string:
		return encodeBody(r), nil
	case ldvalue.Value:
		if r.IsString() {
			return encodeBody(r.StringValue()), nil
		}
		return []byte(r.JSONString()), nil
	case Response:
		return r.MarshalJSON()
	case *Response:
		if r == nil {
			return Response{Status: 200}.MarshalJSON()
		}
		return r.MarshalJSON()
	}
	if _, ok := result.(json.Marshaler); !ok {
		if v := reflect.ValueOf(result); v.Kind() == reflect.String {
			return encodeBody(v.String()), nil
		}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func encodeBody(body string) []byte {
	w := jwriter.NewWriter()
	obj := w.Object()
	obj.Name("body").String(body)
	obj.End()
	return w.Bytes()
}

func encodeFailure(err error) []byte {
	w := jwriter.NewWriter()
	obj := w.Object()
	obj.Name("error").String(failureMessage(err))
	obj.Name("status").Int(FailureStatus)
	obj.End()
	return w.Bytes()
}
