package inngestcomponents

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/inngest/inngest-sdk-go/interfaces"
	"github.com/inngest/inngest-sdk-go/internal"
)

// LoggingConfigurationBuilder contains methods for configuring the SDK's logging behavior.
//
// If you want to set non-default values for any of these properties, create a builder with
// inngestcomponents.Logging(), change its properties with the LoggingConfigurationBuilder methods, and
// store it in Config.Logging:
//
//	config := inngest.Config{
//	    Logging: inngestcomponents.Logging().MinLevel(ldlog.Warn),
//	}
type LoggingConfigurationBuilder struct {
	inited bool
	config interfaces.LoggingConfiguration
}

// Logging returns a configuration builder for the SDK's logging configuration.
//
// The default configuration writes to os.Stderr at Info level and above. The SDK itself only logs
// at Debug level, so by default nothing is written.
func Logging() *LoggingConfigurationBuilder {
	return &LoggingConfigurationBuilder{}
}

func (b *LoggingConfigurationBuilder) checkValid() bool {
	if b == nil {
		internal.LogErrorNilPointerMethod("LoggingConfigurationBuilder")
		return false
	}
	if !b.inited {
		b.config.Loggers = internal.NewDefaultLoggers()
		b.inited = true
	}
	return true
}

// Loggers specifies an instance of ldlog.Loggers to use for SDK logging. The ldlog package contains
// methods for customizing the destination and level filtering of log output.
func (b *LoggingConfigurationBuilder) Loggers(loggers ldlog.Loggers) *LoggingConfigurationBuilder {
	if b.checkValid() {
		b.config.Loggers = loggers
	}
	return b
}

// MinLevel specifies the minimum level for log output, where ldlog.Debug is the lowest and ldlog.Error
// is the highest. Log messages at a level lower than this will be suppressed. The default is
// ldlog.Info.
//
// This is equivalent to creating an ldlog.Loggers instance, calling SetMinLevel() on it, and then
// passing it to LoggingConfigurationBuilder.Loggers().
func (b *LoggingConfigurationBuilder) MinLevel(level ldlog.LogLevel) *LoggingConfigurationBuilder {
	if b.checkValid() {
		b.config.Loggers.SetMinLevel(level)
	}
	return b
}

// CreateLoggingConfiguration is called internally by the SDK.
func (b *LoggingConfigurationBuilder) CreateLoggingConfiguration(
	basicConfig interfaces.BasicConfiguration,
) (interfaces.LoggingConfiguration, error) {
	if !b.checkValid() {
		defaults := LoggingConfigurationBuilder{}
		return defaults.CreateLoggingConfiguration(basicConfig)
	}
	return b.config, nil
}

// NoLogging returns a configuration object that disables logging.
//
//	config := inngest.Config{
//	    Logging: inngestcomponents.NoLogging(),
//	}
func NoLogging() interfaces.LoggingConfigurationFactory {
	return noLoggingConfigurationFactory{}
}

type noLoggingConfigurationFactory struct{}

func (f noLoggingConfigurationFactory) CreateLoggingConfiguration(
	basicConfig interfaces.BasicConfiguration,
) (interfaces.LoggingConfiguration, error) {
	return interfaces.LoggingConfiguration{Loggers: ldlog.NewDisabledLoggers()}, nil
}
