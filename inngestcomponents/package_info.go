// Package inngestcomponents provides the standard implementations and configuration options of SDK components.
//
// Some configuration options are represented as fields in the main Config struct; but others are specific
// to one area of functionality, such as how the SDK connects to the ingestion service or how it writes
// log output. Those are represented by "builder" objects that are created by methods in this package:
//
//	config := inngest.Config{
//	    HTTP:    inngestcomponents.HTTPConfiguration().ConnectTimeout(5 * time.Second),
//	    Logging: inngestcomponents.Logging().MinLevel(ldlog.Warn),
//	}
package inngestcomponents
