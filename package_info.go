// Package inngest is the main package for the Inngest Go SDK.
//
// This package contains the event client ([Client]) and its overall configuration ([Config]). The
// client sends events to the Inngest ingestion service, which uses them to trigger functions:
//
//	client, err := inngest.MakeClient(os.Getenv("INNGEST_EVENT_KEY"))
//	if err != nil {
//	    return err
//	}
//	err = client.Send(inngestevent.NewPayload("app/user.signup", map[string]interface{}{
//	    "plan": "pro",
//	}))
//
// Subpackages provide the rest of the SDK: [github.com/inngest/inngest-sdk-go/inngestevent] defines
// event payloads and the errors returned by the service, [github.com/inngest/inngest-sdk-go/inngestcomponents]
// has builders for HTTP and logging configuration, and [github.com/inngest/inngest-sdk-go/inngestfn]
// contains the runner that executes a single function step in its own process.
package inngest
