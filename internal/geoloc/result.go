package geoloc

import (
	"fmt"
	"math"
	"strings"
)

// InvalidOffset marks a UTC offset that has not been parsed yet. A sentinel
// is required because 0 is a legal real offset (UTC itself).
const InvalidOffset = math.MaxInt32

func offsetValid(offset int) bool { return offset != InvalidOffset }

// Result is the outcome of one geolocation request. It is populated field by
// field while the response is parsed and becomes valid only once the state
// machine reaches StateCompleted.
type Result struct {
	IP        string  `json:"ip"`
	Country   string  `json:"country"`
	City      string  `json:"city"`
	Timezone  string  `json:"timezone"`
	UTCOffset int     `json:"utc_offset_seconds"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	valid bool
}

// Valid reports whether every expected field was parsed.
func (r Result) Valid() bool { return r.valid }

// OffsetValid reports whether the UTC offset was parsed. Positive offsets
// are ahead of (east of) UTC.
func (r Result) OffsetValid() bool { return offsetValid(r.UTCOffset) }

// String renders the result as a multi-line report.
func (r Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "IP: %s\n", r.IP)
	fmt.Fprintf(&b, "Country: %s\n", r.Country)
	fmt.Fprintf(&b, "City: %s\n", r.City)
	fmt.Fprintf(&b, "Timezone: %s\n", r.Timezone)
	if r.OffsetValid() {
		fmt.Fprintf(&b, "UTC Offset: %d sec (%+.1f hrs)\n", r.UTCOffset, float64(r.UTCOffset)/3600.0)
	} else {
		b.WriteString("UTC Offset: unknown\n")
	}
	fmt.Fprintf(&b, "Location: %.4f, %.4f", r.Latitude, r.Longitude)
	return b.String()
}
