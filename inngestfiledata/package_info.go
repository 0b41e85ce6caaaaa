// Package inngestfiledata reads Inngest event payloads from files.
//
// It is mainly useful for development and testing: keep sample events in files and send them with the
// event client, optionally resending whenever a file changes.
//
//	source, err := inngestfiledata.Source().
//	    FilePaths("./events/signup.yaml").
//	    Build(loggers, func(payloads []inngestevent.Payload) {
//	        _ = client.SendMany(payloads)
//	    })
//
// Files may contain either JSON or YAML; if the first non-whitespace character is '{' or '[', the file is
// parsed as JSON, otherwise it is parsed as YAML. A file holds either a single event or a list of events:
//
//	{
//	  "name": "app/user.signup",
//	  "data": { "plan": "pro" },
//	  "user": { "email": "test@example.com" }
//	}
//
// Or, in YAML:
//
//	- name: app/user.signup
//	  data:
//	    plan: pro
//	- name: app/user.login
//	  data: {}
//
// If any file is missing or malformed, no events are loaded from any of the files.
package inngestfiledata
