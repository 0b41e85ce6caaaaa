package inngestfn

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"github.com/launchdarkly/go-sdk-common/v3/ldlogtest"
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"github.com/launchdarkly/go-test-helpers/v3/jsonhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeWorkDir = "/work"

type runnerTestParams struct {
	runner  Runner
	stdout  *bytes.Buffer
	mockLog *ldlogtest.MockLog
}

func makeRunnerTestParams(steps StaticLoader) runnerTestParams {
	stdout := &bytes.Buffer{}
	mockLog := ldlogtest.NewMockLog()
	return runnerTestParams{
		runner: Runner{
			Loader:  steps,
			Stdout:  stdout,
			Loggers: mockLog.Loggers,
			Getwd:   func() (string, error) { return fakeWorkDir, nil },
		},
		stdout:  stdout,
		mockLog: mockLog,
	}
}

func returning(result interface{}) Step {
	return StepFunc(func(context.Context, ldvalue.Value) (interface{}, error) {
		return result, nil
	})
}

// runAndParseFailure asserts that the run failed and returns the reported error message.
func runAndParseFailure(t *testing.T, p runnerTestParams, args ...string) string {
	code := p.runner.Run(context.Background(), args)
	assert.Equal(t, 1, code)

	out := p.stdout.String()
	require.True(t, len(out) > 0 && out[len(out)-1] == '\n', "output should be a single line")
	assert.NotContains(t, out[:len(out)-1], "\n")

	var failure struct {
		Error  string `json:"error"`
		Status int    `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &failure))
	assert.Equal(t, 500, failure.Status)
	assert.NotEqual(t, "", failure.Error)
	return failure.Error
}

func TestRunnerEmitsResponse(t *testing.T) {
	p := makeRunnerTestParams(StaticLoader{"fn": returning(Response{Status: 200, Body: ldvalue.String("ok")})})

	code := p.runner.Run(context.Background(), []string{"./fn.js", `{"a":1}`})

	assert.Equal(t, 0, code)
	assert.Equal(t, `{"status":200,"body":"ok"}`+"\n", p.stdout.String())
}

func TestRunnerWrapsStringResult(t *testing.T) {
	p := makeRunnerTestParams(StaticLoader{"fn": returning("hello")})

	code := p.runner.Run(context.Background(), []string{"./fn.js", `{}`})

	assert.Equal(t, 0, code)
	assert.Equal(t, `{"body":"hello"}`+"\n", p.stdout.String())
}

type greeting string

type upperCode string

func (c upperCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"code": string(c)})
}

type explodingResult struct{}

func (explodingResult) MarshalJSON() ([]byte, error) {
	panic("marshal boom")
}

type detailedError struct {
	detail string
}

func (e *detailedError) Error() string {
	return e.detail
}

func TestRunnerResultTypes(t *testing.T) {
	for _, tc := range []struct {
		name     string
		result   interface{}
		expected string
	}{
		{"nil", nil, `{"status":200}`},
		{"response pointer", &Response{Status: 400}, `{"status":400}`},
		{"string value", ldvalue.String("hi"), `{"body":"hi"}`},
		{"named string", greeting("hi"), `{"body":"hi"}`},
		{"named string with its own encoding", upperCode("X1"), `{"code":"X1"}`},
		{"array value", ldvalue.ArrayOf(ldvalue.Int(1)), `[1]`},
		{"map", map[string]interface{}{"status": 201, "body": map[string]interface{}{"x": "<y>"}}, `{"status":201,"body":{"x":"<y>"}}`},
		{"struct", struct {
			Status int    `json:"status"`
			Body   string `json:"body"`
		}{503, "later"}, `{"status":503,"body":"later"}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := makeRunnerTestParams(StaticLoader{"fn": returning(tc.result)})

			code := p.runner.Run(context.Background(), []string{"fn", `{"a":1}`})

			assert.Equal(t, 0, code)
			jsonhelpers.AssertEqual(t, tc.expected, p.stdout.Bytes())
		})
	}
}

func TestRunnerPassesParsedContextToStep(t *testing.T) {
	var received ldvalue.Value
	step := StepFunc(func(_ context.Context, input ldvalue.Value) (interface{}, error) {
		received = input
		return "done", nil
	})
	p := makeRunnerTestParams(StaticLoader{"fn": step})

	require.Equal(t, 0, p.runner.Run(context.Background(), []string{"fn", `{"event":{"name":"x"},"n":[1,2]}`}))

	jsonhelpers.AssertEqual(t, `{"event":{"name":"x"},"n":[1,2]}`, received.JSONString())
}

func TestRunnerAcceptsFalsyContext(t *testing.T) {
	for _, raw := range []string{`0`, `false`, `""`, `[]`} {
		t.Run(raw, func(t *testing.T) {
			p := makeRunnerTestParams(StaticLoader{"fn": returning("ok")})
			assert.Equal(t, 0, p.runner.Run(context.Background(), []string{"fn", raw}))
		})
	}
}

func TestRunnerRejectsUnusableContext(t *testing.T) {
	for _, raw := range []string{"", "  ", "null", "{", "not json", `{"a":1} extra`} {
		t.Run(raw, func(t *testing.T) {
			invoked := false
			step := StepFunc(func(context.Context, ldvalue.Value) (interface{}, error) {
				invoked = true
				return nil, nil
			})
			p := makeRunnerTestParams(StaticLoader{"fn": step})

			msg := runAndParseFailure(t, p, "fn", raw)

			assert.Contains(t, msg, "unable to parse context")
			assert.False(t, invoked)
		})
	}
}

func TestRunnerRejectsWrongArgumentCount(t *testing.T) {
	for _, args := range [][]string{nil, {"fn"}, {"fn", "{}", "extra"}} {
		p := makeRunnerTestParams(StaticLoader{"fn": returning("ok")})
		msg := runAndParseFailure(t, p, args...)
		assert.Contains(t, msg, "expected 2 arguments")
	}
}

func TestRunnerResolvesRelativePathAgainstWorkingDirectory(t *testing.T) {
	var loadedPaths []string
	loader := loaderFunc(func(absPath string) (Step, error) {
		loadedPaths = append(loadedPaths, absPath)
		return returning("ok"), nil
	})
	stdout := &bytes.Buffer{}
	runner := Runner{
		Loader:  loader,
		Stdout:  stdout,
		Loggers: ldlog.NewDisabledLoggers(),
		Getwd:   func() (string, error) { return fakeWorkDir, nil },
	}

	require.Equal(t, 0, runner.Run(context.Background(), []string{"./steps/../fn.so", "{}"}))
	require.Equal(t, 0, runner.Run(context.Background(), []string{"/abs/fn.so", "{}"}))

	assert.Equal(t, []string{"/work/fn.so", "/abs/fn.so"}, loadedPaths)
}

func TestRunnerReportsWorkingDirectoryError(t *testing.T) {
	p := makeRunnerTestParams(StaticLoader{"fn": returning("ok")})
	p.runner.Getwd = func() (string, error) { return "", errors.New("no cwd") }

	msg := runAndParseFailure(t, p, "fn", "{}")

	assert.Contains(t, msg, "no cwd")
}

func TestRunnerReportsModuleLoadError(t *testing.T) {
	t.Run("unknown module", func(t *testing.T) {
		p := makeRunnerTestParams(StaticLoader{})

		msg := runAndParseFailure(t, p, "./missing.js", "{}")

		assert.Contains(t, msg, "unable to load module /work/missing.js")
		assert.Contains(t, msg, `no step is registered for module "missing"`)
	})

	t.Run("panic while loading", func(t *testing.T) {
		loader := loaderFunc(func(string) (Step, error) { panic("init failed") })
		p := makeRunnerTestParams(nil)
		p.runner.Loader = loader

		msg := runAndParseFailure(t, p, "fn", "{}")

		assert.Contains(t, msg, "panic: init failed")
		assert.Contains(t, msg, "goroutine", "should include stack trace")
	})

	t.Run("no loader", func(t *testing.T) {
		p := makeRunnerTestParams(nil)
		p.runner.Loader = nil

		msg := runAndParseFailure(t, p, "fn", "{}")

		assert.Contains(t, msg, "no loader configured")
	})
}

func TestRunnerReportsExecutionError(t *testing.T) {
	t.Run("returned error", func(t *testing.T) {
		step := StepFunc(func(context.Context, ldvalue.Value) (interface{}, error) {
			return nil, errors.New("sad")
		})
		p := makeRunnerTestParams(StaticLoader{"fn": step})

		msg := runAndParseFailure(t, p, "fn", "{}")

		assert.Equal(t, "sad", msg)
		p.mockLog.AssertMessageMatch(t, true, ldlog.Warn, "Step failed: sad")
	})

	t.Run("panic", func(t *testing.T) {
		step := StepFunc(func(context.Context, ldvalue.Value) (interface{}, error) {
			panic(errors.New("boom"))
		})
		p := makeRunnerTestParams(StaticLoader{"fn": step})

		msg := runAndParseFailure(t, p, "fn", "{}")

		assert.Contains(t, msg, "panic: boom\n")
		assert.Contains(t, msg, "goroutine")
	})

	t.Run("panic while encoding result", func(t *testing.T) {
		p := makeRunnerTestParams(StaticLoader{"fn": returning(explodingResult{})})

		msg := runAndParseFailure(t, p, "fn", "{}")

		assert.Contains(t, msg, "panic: marshal boom\n")
		assert.Contains(t, msg, "goroutine")
	})

	t.Run("typed nil error", func(t *testing.T) {
		step := StepFunc(func(context.Context, ldvalue.Value) (interface{}, error) {
			var err *detailedError
			return nil, err
		})
		p := makeRunnerTestParams(StaticLoader{"fn": step})

		msg := runAndParseFailure(t, p, "fn", "{}")

		assert.Equal(t, undescribedErrorMessage, msg)
		p.mockLog.AssertMessageMatch(t, true, ldlog.Warn, "Step failed: "+undescribedErrorMessage)
	})

	t.Run("result cannot be encoded", func(t *testing.T) {
		p := makeRunnerTestParams(StaticLoader{"fn": returning(make(chan int))})

		msg := runAndParseFailure(t, p, "fn", "{}")

		assert.Contains(t, msg, "unable to encode step result")
	})
}

func TestRunnerDoesNotLogToStdout(t *testing.T) {
	p := makeRunnerTestParams(StaticLoader{"fn": returning("ok")})
	p.mockLog.Loggers.SetMinLevel(ldlog.Debug)

	require.Equal(t, 0, p.runner.Run(context.Background(), []string{"fn", "{}"}))

	assert.Equal(t, `{"body":"ok"}`+"\n", p.stdout.String())
	p.mockLog.AssertMessageMatch(t, true, ldlog.Debug, "Loading step module /work/fn")
}

func TestNewRunnerLoggersLevel(t *testing.T) {
	assert.False(t, newRunnerLoggers("").IsDebugEnabled())
	assert.True(t, newRunnerLoggers("debug").IsDebugEnabled())
	assert.False(t, newRunnerLoggers("bogus").IsDebugEnabled())
}

type loaderFunc func(absPath string) (Step, error)

func (f loaderFunc) Load(absPath string) (Step, error) {
	return f(absPath)
}
