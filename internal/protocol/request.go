package protocol

import "strings"

// Fixed service endpoint. The line API is plaintext-only; there is no TLS
// port to upgrade to.
const (
	ServiceHost = "ip-api.com"
	ServicePort = 80
)

// BuildRequest renders the complete HTTP/1.1 request for the given field set.
// lang is included only when it is exactly a two-letter code; anything else
// is silently ignored. The result is written to the transport as one buffered
// write at connect time.
func BuildRequest(fields FieldSet, lang string) []byte {
	var b strings.Builder
	b.WriteString("GET /line/?fields=")
	b.WriteString(fields.Query())
	if len(lang) == 2 {
		b.WriteString("&lang=")
		b.WriteString(lang)
	}
	b.WriteString(" HTTP/1.1\r\n")
	b.WriteString("Host: ")
	b.WriteString(ServiceHost)
	b.WriteString("\r\n")
	b.WriteString("Connection: close\r\n")
	b.WriteString("\r\n")
	return []byte(b.String())
}
