package inngestfn

import (
	"context"
	"os"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/inngest/inngest-sdk-go/internal"
)

// LogLevelEnvVar is the environment variable that sets the runner's minimum log level. Log output always
// goes to os.Stderr.
const LogLevelEnvVar = "INNGEST_LOG_LEVEL"

// Main runs the step named by the process arguments and exits the process with the runner's exit code.
// It is meant to be called from a main function.
func Main(loader Loader) {
	runner := Runner{
		Loader:  loader,
		Stdout:  os.Stdout,
		Loggers: newRunnerLoggers(os.Getenv(LogLevelEnvVar)),
	}
	os.Exit(runner.Run(context.Background(), os.Args[1:]))
}

func newRunnerLoggers(levelName string) ldlog.Loggers {
	loggers := internal.NewDefaultLoggers()
	level := ldlog.Warn
	if levelName != "" {
		if parsed, ok := internal.ParseLogLevel(levelName); ok {
			level = parsed
		}
	}
	loggers.SetMinLevel(level)
	return loggers
}
