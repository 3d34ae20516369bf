package protocol

import (
	"fmt"
	"strings"
	"time"
)

// DateHeaderPrefix identifies the header line carrying the server's clock.
const DateHeaderPrefix = "Date:"

// httpDateLayouts covers RFC 1123 dates as servers actually emit them,
// including single-digit days.
var httpDateLayouts = []string{
	time.RFC1123,                      // Mon, 02 Jan 2006 15:04:05 MST
	"Mon, 2 Jan 2006 15:04:05 MST",    // non-padded day
	"Mon, 02 Jan 2006 15:04:05 -0700", // numeric zone, just in case
}

// ParseHTTPDate decodes the value of a Date header (without the "Date:"
// prefix) into a UTC instant.
func ParseHTTPDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range httpDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable http date %q", value)
}

// DateHeaderValue extracts the value of a Date header line, reporting whether
// the line is one. Matching is case-sensitive; the service emits the header
// in canonical form.
func DateHeaderValue(line string) (string, bool) {
	if !strings.HasPrefix(line, DateHeaderPrefix) {
		return "", false
	}
	return strings.TrimSpace(line[len(DateHeaderPrefix):]), true
}
