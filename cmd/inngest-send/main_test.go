package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/launchdarkly/go-test-helpers/v3/httphelpers"
	"github.com/launchdarkly/go-test-helpers/v3/jsonhelpers"

	"github.com/inngest/inngest-sdk-go/inngestevent"
	"github.com/inngest/inngest-sdk-go/interfaces"
	"github.com/inngest/inngest-sdk-go/internal"
	"github.com/inngest/inngest-sdk-go/internal/sharedtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEventFile(t *testing.T, content string, f func(filename string)) {
	sharedtest.WithTempDir(func(dir string) {
		filename := filepath.Join(dir, "events.json")
		require.NoError(t, os.WriteFile(filename, []byte(content), 0600))
		f(filename)
	})
}

func TestRunSendsEventsFromFile(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		withEventFile(t, `[{"name":"a","data":{"n":1}},{"name":"b"}]`, func(filename string) {
			stderr := &bytes.Buffer{}
			code := run(context.Background(), []string{
				"--event-key", "my-key", "--ingest-url", server.URL + "/e/", filename,
			}, stderr)

			assert.Equal(t, exitOK, code)
			require.Equal(t, 1, len(requestsCh))
			r := <-requestsCh
			assert.Equal(t, "/e/my-key", r.Request.URL.Path)
			assert.Equal(t, "InngestGo "+internal.SDKVersion+" inngest-send", r.Request.Header.Get("User-Agent"))
			jsonhelpers.AssertEqual(t, `[{"name":"a","data":{"n":1}},{"name":"b"}]`, r.Body)
			assert.Contains(t, stderr.String(), "Sent 2 event(s)")
		})
	})
}

func TestRunAssignsIDs(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		withEventFile(t, `[{"name":"a"},{"name":"b","id":"keep-me"}]`, func(filename string) {
			code := run(context.Background(), []string{
				"--event-key", "my-key", "--ingest-url", server.URL + "/e/", "--ids", filename,
			}, &bytes.Buffer{})
			require.Equal(t, exitOK, code)

			r := <-requestsCh
			var sent []inngestevent.Payload
			require.NoError(t, json.Unmarshal(r.Body, &sent))
			require.Len(t, sent, 2)
			assert.Len(t, sent[0].ID, 36)
			assert.Equal(t, "keep-me", sent[1].ID)
		})
	})
}

func TestRunReportsSendFailure(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(401), func(server *httptest.Server) {
		withEventFile(t, `{"name":"a"}`, func(filename string) {
			stderr := &bytes.Buffer{}
			code := run(context.Background(), []string{
				"--event-key", "bad-key", "--ingest-url", server.URL + "/e/", filename,
			}, stderr)

			assert.Equal(t, exitFailed, code)
			assert.Contains(t, stderr.String(), "Inngest API Error: 401 API key not found")
		})
	})
}

func TestRunReportsFileError(t *testing.T) {
	code := run(context.Background(), []string{"--event-key", "k", "/nonexistent/events.json"}, &bytes.Buffer{})
	assert.Equal(t, exitFailed, code)
}

func TestRunReportsUsageError(t *testing.T) {
	t.Setenv("INNGEST_EVENT_KEY", "")
	stderr := &bytes.Buffer{}
	code := run(context.Background(), []string{"events.json"}, stderr)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), "event key is required")
}

func TestRunHelp(t *testing.T) {
	assert.Equal(t, exitOK, run(context.Background(), []string{"--help"}, &bytes.Buffer{}))
}

func TestRunWatchStopsWhenContextIsCancelled(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		withEventFile(t, `{"name":"a"}`, func(filename string) {
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan int)
			go func() {
				done <- run(ctx, []string{
					"--event-key", "k", "--ingest-url", server.URL + "/e/", "--watch", filename,
				}, &bytes.Buffer{})
			}()

			<-requestsCh
			cancel()
			assert.Equal(t, exitOK, <-done)
		})
	})
}

func TestAssignIDs(t *testing.T) {
	payloads := []inngestevent.Payload{{Name: "a"}, {Name: "b", ID: "x"}, {Name: "c"}}
	assignIDs(payloads)
	assert.NotEqual(t, "", payloads[0].ID)
	assert.Equal(t, "x", payloads[1].ID)
	assert.NotEqual(t, payloads[0].ID, payloads[2].ID)
}

func TestHTTPConfigForProxy(t *testing.T) {
	basicConfig := interfaces.BasicConfiguration{APIKey: "k"}

	t.Run("no proxy", func(t *testing.T) {
		builder, err := httpConfigFor(sendConfig{})
		require.NoError(t, err)
		_, err = builder.CreateHTTPConfiguration(basicConfig)
		assert.NoError(t, err)
	})

	t.Run("plain proxy", func(t *testing.T) {
		builder, err := httpConfigFor(sendConfig{ProxyURL: "http://my-proxy:8080"})
		require.NoError(t, err)
		httpConfig, err := builder.CreateHTTPConfiguration(basicConfig)
		require.NoError(t, err)
		assert.NotNil(t, httpConfig.CreateHTTPClient())
	})

	t.Run("NTLM proxy", func(t *testing.T) {
		builder, err := httpConfigFor(sendConfig{
			ProxyURL: "http://my-proxy:8080", NTLMUser: "user", NTLMPassword: "pass", NTLMDomain: "dom",
		})
		require.NoError(t, err)
		_, err = builder.CreateHTTPConfiguration(basicConfig)
		assert.NoError(t, err)
	})

	t.Run("NTLM proxy without password", func(t *testing.T) {
		_, err := httpConfigFor(sendConfig{ProxyURL: "http://my-proxy:8080", NTLMUser: "user"})
		assert.Error(t, err)
	})

	t.Run("invalid proxy URL", func(t *testing.T) {
		_, err := httpConfigFor(sendConfig{ProxyURL: "http://bad host:x"})
		assert.Error(t, err)
	})
}
