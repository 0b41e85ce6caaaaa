package internal

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// This file contains helpers for standardized log output. Some messages are written directly to
// os.Stderr because they are for conditions where no configured ldlog.Loggers instance is available.

const logPrefix = "[Inngest] "

// LogErrorNilPointerMethod prints a message to os.Stderr to indicate that the application tried to call
// a method on a nil pointer receiver.
func LogErrorNilPointerMethod(typeName string) {
	fmt.Fprintf(os.Stderr, "%sERROR: tried to call a method on a nil pointer of type *%s\n", logPrefix, typeName)
}

// NewDefaultLoggers returns the SDK's default logging setup: output goes to os.Stderr with an
// "[Inngest]" prefix, and the minimum level is Info.
//
// Stderr is used even for Info output so that anything written to os.Stdout by a step runner is
// never mixed with log lines.
func NewDefaultLoggers() ldlog.Loggers {
	loggers := ldlog.Loggers{}
	loggers.SetBaseLogger(log.New(os.Stderr, logPrefix, log.LstdFlags))
	loggers.SetMinLevel(ldlog.Info)
	return loggers
}

// ParseLogLevel converts a level name such as "debug" or "WARN" into an ldlog.LogLevel. The second
// return value is false if the name is not recognized.
func ParseLogLevel(name string) (ldlog.LogLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return ldlog.Debug, true
	case "info":
		return ldlog.Info, true
	case "warn", "warning":
		return ldlog.Warn, true
	case "error":
		return ldlog.Error, true
	case "none":
		return ldlog.None, true
	default:
		return ldlog.Info, false
	}
}
