package inngestfn

import (
	"github.com/launchdarkly/go-jsonstream/v3/jreader"
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/inngest/inngest-sdk-go/inngestevent"
)

// Input is a typed view of the invocation context that the orchestrator passes to a step. It is comprised
// of the triggering event, the output of previous steps, and call metadata.
//
// A Step always receives the raw context as an ldvalue.Value; DecodeInput is a convenience for steps that
// are invoked with this conventional shape.
type Input struct {
	Event  inngestevent.Payload
	Events []inngestevent.Payload
	// Steps maps the IDs of previously completed steps to their response bodies.
	Steps map[string]ldvalue.Value
	Ctx   InputCtx
}

// InputCtx holds metadata about the current function run.
type InputCtx struct {
	Env        string
	FunctionID string
	RunID      string
	StepID     string
	Attempt    int
}

// DecodeInput parses the invocation context into an Input. Missing properties are left as zero values
// and unknown properties are ignored; an error is returned only if a property has the wrong type or if the
// context is not a JSON object.
func DecodeInput(context ldvalue.Value) (Input, error) {
	var input Input
	r := jreader.NewReader([]byte(context.JSONString()))
	for obj := r.Object(); obj.Next(); {
		switch string(obj.Name()) {
		case "event":
			input.Event.ReadFromJSONReader(&r)
		case "events":
			for arr := r.ArrayOrNull(); arr.Next(); {
				var p inngestevent.Payload
				p.ReadFromJSONReader(&r)
				input.Events = append(input.Events, p)
			}
		case "steps":
			for stepsObj := r.ObjectOrNull(); stepsObj.Next(); {
				name := string(stepsObj.Name())
				var v ldvalue.Value
				v.ReadFromJSONReader(&r)
				if input.Steps == nil {
					input.Steps = make(map[string]ldvalue.Value)
				}
				input.Steps[name] = v
			}
		case "ctx":
			input.Ctx.readFromJSONReader(&r)
		default:
			r.SkipValue()
		}
	}
	if err := r.Error(); err != nil {
		return Input{}, err
	}
	return input, nil
}

func (c *InputCtx) readFromJSONReader(r *jreader.Reader) {
	for obj := r.ObjectOrNull(); obj.Next(); {
		switch string(obj.Name()) {
		case "env":
			c.Env, _ = r.StringOrNull()
		case "fn_id":
			c.FunctionID, _ = r.StringOrNull()
		case "run_id":
			c.RunID, _ = r.StringOrNull()
		case "step_id":
			c.StepID, _ = r.StringOrNull()
		case "attempt":
			c.Attempt, _ = r.IntOrNull()
		default:
			r.SkipValue()
		}
	}
}
