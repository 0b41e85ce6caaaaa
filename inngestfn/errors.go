package inngestfn

import (
	"errors"
	"fmt"
)

var (
	errEmptyContext = errors.New("context is empty")
	errNullContext  = errors.New("context is null")
)

// ContextParseError means that the invocation context could not be used: it was empty, was not valid JSON,
// or was a JSON null.
type ContextParseError struct {
	Err error
}

func (e ContextParseError) Error() string {
	return fmt.Sprintf("unable to parse context: %s", e.Err)
}

func (e ContextParseError) Unwrap() error {
	return e.Err
}

// ModuleLoadError means that the step module could not be loaded. If loading panicked, for instance in a
// package initializer, Stack holds the goroutine stack at the point of the panic.
type ModuleLoadError struct {
	Path  string
	Err   error
	Stack string
}

func (e ModuleLoadError) Error() string {
	return fmt.Sprintf("unable to load module %s: %s", e.Path, e.Err)
}

func (e ModuleLoadError) Unwrap() error {
	return e.Err
}

// StackTrace returns the stack captured when loading panicked, or "" if it did not.
func (e ModuleLoadError) StackTrace() string {
	return e.Stack
}

// ExecutionError means that the step returned an error or panicked. Stack is only set in the latter case.
type ExecutionError struct {
	Err   error
	Stack string
}

func (e ExecutionError) Error() string {
	return errorText(e.Err)
}

func (e ExecutionError) Unwrap() error {
	return e.Err
}

// StackTrace returns the stack captured when the step panicked, or "" if it did not.
func (e ExecutionError) StackTrace() string {
	return e.Stack
}

type stackTracer interface {
	StackTrace() string
}

const undescribedErrorMessage = "step failed with an error that could not be described"

// failureMessage is the text reported in the "error" property of a failure line. If a stack was captured,
// it follows the message.
func failureMessage(err error) (message string) {
	defer func() {
		if recover() != nil {
			message = undescribedErrorMessage
		}
	}()
	var st stackTracer
	if errors.As(err, &st) && st.StackTrace() != "" {
		return errorText(err) + "\n" + st.StackTrace()
	}
	return errorText(err)
}

// errorText returns err.Error(), or a fixed message if err is nil or its Error method panics. A step can
// return a typed nil pointer as its error, whose Error method may dereference the receiver.
func errorText(err error) (text string) {
	defer func() {
		if recover() != nil {
			text = undescribedErrorMessage
		}
	}()
	if err == nil {
		return undescribedErrorMessage
	}
	return err.Error()
}
