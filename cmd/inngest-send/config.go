package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/inngest/inngest-sdk-go/internal"
)

const (
	envPrefix = "INNGEST"

	keyEventKey  = "event_key"
	keyIngestURL = "ingest_url"
	keyLogLevel  = "log_level"
	keyIDs       = "ids"
	keyWatch     = "watch"

	keyProxyURL     = "proxy_url"
	keyNTLMUser     = "ntlm_user"
	keyNTLMPassword = "ntlm_password"
	keyNTLMDomain   = "ntlm_domain"
)

var errNoEventKey = errors.New("an event key is required; set INNGEST_EVENT_KEY or use --event-key")

type sendConfig struct {
	EventKey  string
	IngestURL string
	LogLevel  ldlog.LogLevel
	AssignIDs bool
	Watch     bool
	Files     []string

	ProxyURL     string
	NTLMUser     string
	NTLMPassword string
	NTLMDomain   string
}

// loadConfig reads settings from, in increasing order of precedence, an optional config file, INNGEST_*
// environment variables, and command-line flags.
func loadConfig(args []string, stderr io.Writer) (sendConfig, error) {
	flags := pflag.NewFlagSet("inngest-send", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: inngest-send [flags] <event-file>...")
		flags.PrintDefaults()
	}
	configFile := flags.String("config", "", "path of a config file (JSON, YAML or TOML)")
	flags.String("event-key", "", "event API key (env INNGEST_EVENT_KEY)")
	flags.String("ingest-url", "", "base ingestion URL (env INNGEST_INGEST_URL)")
	flags.String("log-level", "info", "minimum log level: debug, info, warn, error or none (env INNGEST_LOG_LEVEL)")
	flags.Bool("ids", false, "give each event without an id a random one")
	flags.Bool("watch", false, "resend the events whenever a file changes")
	flags.String("proxy-url", "", "HTTP proxy for requests to the ingestion service (env INNGEST_PROXY_URL)")
	flags.String("ntlm-user", "", "user name for an NTLM-authenticated proxy")
	flags.String("ntlm-password", "", "password for an NTLM-authenticated proxy (env INNGEST_NTLM_PASSWORD)")
	flags.String("ntlm-domain", "", "domain for an NTLM-authenticated proxy")
	if err := flags.Parse(args); err != nil {
		return sendConfig{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{keyEventKey, keyIngestURL, keyLogLevel, keyProxyURL, keyNTLMPassword} {
		if err := v.BindEnv(key); err != nil {
			return sendConfig{}, err
		}
	}
	for key, flagName := range map[string]string{
		keyEventKey:  "event-key",
		keyIngestURL: "ingest-url",
		keyLogLevel:  "log-level",
		keyIDs:       "ids",
		keyWatch:     "watch",

		keyProxyURL:     "proxy-url",
		keyNTLMUser:     "ntlm-user",
		keyNTLMPassword: "ntlm-password",
		keyNTLMDomain:   "ntlm-domain",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flagName)); err != nil {
			return sendConfig{}, err
		}
	}
	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return sendConfig{}, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	level, ok := internal.ParseLogLevel(v.GetString(keyLogLevel))
	if !ok {
		return sendConfig{}, fmt.Errorf("unknown log level %q", v.GetString(keyLogLevel))
	}
	config := sendConfig{
		EventKey:  v.GetString(keyEventKey),
		IngestURL: v.GetString(keyIngestURL),
		LogLevel:  level,
		AssignIDs: v.GetBool(keyIDs),
		Watch:     v.GetBool(keyWatch),
		Files:     flags.Args(),

		ProxyURL:     v.GetString(keyProxyURL),
		NTLMUser:     v.GetString(keyNTLMUser),
		NTLMPassword: v.GetString(keyNTLMPassword),
		NTLMDomain:   v.GetString(keyNTLMDomain),
	}
	if config.EventKey == "" {
		return sendConfig{}, errNoEventKey
	}
	if config.NTLMUser != "" && config.ProxyURL == "" {
		return sendConfig{}, errors.New("--ntlm-user requires --proxy-url")
	}
	if len(config.Files) == 0 {
		return sendConfig{}, errors.New("at least one event file is required")
	}
	return config, nil
}
