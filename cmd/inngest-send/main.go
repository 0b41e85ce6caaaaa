// Command inngest-send sends events from JSON or YAML files to the Inngest ingestion service.
//
// Usage:
//
//	inngest-send [flags] <event-file>...
//
// All events from all files are sent in a single request. With --watch, they are sent again whenever one
// of the files changes, until the process is interrupted. Settings can also be provided with the
// INNGEST_EVENT_KEY, INNGEST_INGEST_URL and INNGEST_LOG_LEVEL environment variables or a --config file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	inngest "github.com/inngest/inngest-sdk-go"
	"github.com/inngest/inngest-sdk-go/inngestcomponents"
	"github.com/inngest/inngest-sdk-go/inngestevent"
	"github.com/inngest/inngest-sdk-go/inngestfiledata"
	"github.com/inngest/inngest-sdk-go/inngestfilewatch"
	"github.com/inngest/inngest-sdk-go/inngestntlm"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	config, err := loadConfig(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	var loggers ldlog.Loggers
	loggers.SetBaseLogger(newStderrLogger(stderr))
	loggers.SetMinLevel(config.LogLevel)

	httpConfig, err := httpConfigFor(config)
	if err != nil {
		loggers.Errorf("Invalid proxy configuration: %s", err)
		return exitFailed
	}
	client, err := inngest.MakeCustomClient(config.EventKey, inngest.Config{
		IngestAPIURL: config.IngestURL,
		HTTP:         httpConfig,
		Logging:      inngestcomponents.Logging().Loggers(loggers),
	})
	if err != nil {
		loggers.Errorf("Unable to create client: %s", err)
		return exitFailed
	}

	var sendErr error
	send := func(payloads []inngestevent.Payload) {
		if config.AssignIDs {
			assignIDs(payloads)
		}
		if sendErr = client.SendMany(payloads); sendErr != nil {
			loggers.Errorf("Unable to send events: %s", sendErr)
			return
		}
		loggers.Infof("Sent %d event(s)", len(payloads))
	}

	builder := inngestfiledata.Source().FilePaths(config.Files...)
	if config.Watch {
		builder.Reloader(inngestfilewatch.WatchFiles)
	}
	source, err := builder.Build(loggers, send)
	if err != nil {
		loggers.Error(err)
		return exitFailed
	}
	defer source.Close() //nolint:errcheck

	if err := source.Start(); err != nil {
		return exitFailed
	}
	if !config.Watch {
		if sendErr != nil {
			return exitFailed
		}
		return exitOK
	}

	loggers.Infof("Watching %d file(s) for changes", len(config.Files))
	<-ctx.Done()
	return exitOK
}

// httpConfigFor routes requests through the configured proxy, authenticating with NTLM if a user name was
// given.
func httpConfigFor(config sendConfig) (*inngestcomponents.HTTPConfigurationBuilder, error) {
	builder := inngestcomponents.HTTPConfiguration().UserAgent("inngest-send")
	if config.ProxyURL == "" {
		return builder, nil
	}
	if config.NTLMUser != "" {
		factory, err := inngestntlm.NewNTLMProxyHTTPClientFactory(config.ProxyURL,
			config.NTLMUser, config.NTLMPassword, config.NTLMDomain)
		if err != nil {
			return nil, err
		}
		return builder.HTTPClientFactory(factory), nil
	}
	proxyURL, err := url.Parse(config.ProxyURL)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy URL %s: %w", config.ProxyURL, err)
	}
	return builder.ProxyURL(*proxyURL), nil
}

// assignIDs gives every payload that has no ID a random one, so that the service can deduplicate them if
// the same request is sent again.
func assignIDs(payloads []inngestevent.Payload) {
	for i := range payloads {
		if payloads[i].ID == "" {
			payloads[i].ID = uuid.New().String()
		}
	}
}

func newStderrLogger(w io.Writer) ldlog.BaseLogger {
	return log.New(w, "[inngest-send] ", log.LstdFlags)
}
