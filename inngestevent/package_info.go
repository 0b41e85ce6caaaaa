// Package inngestevent defines the event payloads that are sent to the ingestion service, their JSON
// encoding, and the component that delivers encoded payloads over HTTP.
//
// Application code normally only constructs Payload values and passes them to the client's Send or
// SendMany methods. The EventSender interface is exposed so that tests and custom integrations can
// deliver pre-encoded data.
package inngestevent
