// Package protocol implements the wire protocol of the ip-api.com /line
// endpoint: the request builder, the resumable line reader, the positional
// field contract, and the HTTP Date header parser.
//
// # Line Protocol
//
// The service answers a single GET with a standard HTTP header block followed
// by one plain-text value per line, in exactly the order the fields query
// parameter listed them:
//
//	HTTP/1.1 200 OK
//	Date: Mon, 01 Jan 2024 00:00:00 GMT
//	...
//
//	France
//	Paris
//	48.8
//	2.3
//	Europe/Paris
//	3600
//	203.0.113.5
//
// There is no content-length or chunked-encoding handling: parsing is purely
// line-driven until the expected field count is reached or the peer closes.
//
// # Incremental Parsing
//
// The response arrives over a polled transport that may deliver any number of
// bytes per poll, including zero. LineReader therefore accumulates one byte at
// a time and reports completed lines; its buffer and phase are the entire
// resumption state, so a caller can feed it from any cadence.
//
// # Field Contract
//
// The field order is positional and fixed. FieldSet is the single source of
// truth: it generates the fields= query string and defines the expected line
// count, so the two can never drift apart.
package protocol
