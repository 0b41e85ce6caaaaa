package inngestfn

import (
	"context"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// Step is the entry point of a function step.
//
// Invoke receives the parsed invocation context, which is never null. The result may be a Response, a
// string (which is sent as {"body":<string>}), or any other value that encoding/json can marshal, which
// is sent as-is. Named string types are treated as strings unless they implement json.Marshaler. A nil
// result is sent as a Response with status 200 and no body. A non-nil error, or a panic, is reported as a
// failure with status 500.
type Step interface {
	Invoke(ctx context.Context, input ldvalue.Value) (interface{}, error)
}

// StepFunc is an adapter that allows an ordinary function to be used as a Step.
type StepFunc func(ctx context.Context, input ldvalue.Value) (interface{}, error)

// Invoke calls f(ctx, input).
func (f StepFunc) Invoke(ctx context.Context, input ldvalue.Value) (interface{}, error) {
	return f(ctx, input)
}
