package ui

import (
	"fmt"
	"strings"

	"github.com/SergeyF11/espGeoLocation/internal/geoloc"
)

// RenderResult renders a completed lookup as a styled box.
func RenderResult(r geoloc.Result, duration string) string {
	var b strings.Builder

	title := SuccessTitleStyle.Render(fmt.Sprintf("%s Location resolved", SuccessMarker))
	b.WriteString(title)
	b.WriteString("\n\n")

	rows := []struct {
		key   string
		value string
	}{
		{"IP", r.IP},
		{"Country", r.Country},
		{"City", r.City},
		{"Coordinates", fmt.Sprintf("%.4f, %.4f", r.Latitude, r.Longitude)},
		{"Timezone", r.Timezone},
		{"UTC offset", formatOffset(r)},
		{"Duration", duration},
	}
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		b.WriteString(ResultKeyStyle.Render(row.key))
		b.WriteString(ResultValueStyle.Render(row.value))
		b.WriteString("\n")
	}

	return BoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderFailure renders a failed lookup with troubleshooting hints.
func RenderFailure(err geoloc.RequestError) string {
	var b strings.Builder

	b.WriteString(ErrorTitleStyle.Render(fmt.Sprintf("%s Lookup failed", FailureMarker)))
	b.WriteString("\n\n")
	b.WriteString(ErrorMessageStyle.Render(err.String()))

	if tips := troubleshooting(err); len(tips) > 0 {
		b.WriteString("\n\n")
		b.WriteString(TroubleshootingTitleStyle.Render("Troubleshooting:"))
		for _, tip := range tips {
			b.WriteString("\n")
			b.WriteString(TroubleshootingItemStyle.Render("  - " + tip))
		}
	}

	return BoxStyle.Render(b.String())
}

func troubleshooting(err geoloc.RequestError) []string {
	switch err {
	case geoloc.ErrNoConnection:
		return []string{
			"Check that a network interface is up and has an address",
			"Verify connectivity with: ping ip-api.com",
		}
	case geoloc.ErrTimeout:
		return []string{
			"The service may be slow or unreachable from this network",
			"Try a longer deadline with --timeout",
		}
	case geoloc.ErrRateLimited:
		return []string{
			"The free tier allows 45 requests per minute",
			"Wait a minute before retrying",
		}
	case geoloc.ErrHTTP:
		return []string{
			"The connection dropped mid-response; retrying usually helps",
		}
	default:
		return nil
	}
}

func formatOffset(r geoloc.Result) string {
	if !r.OffsetValid() {
		return "unknown"
	}
	return fmt.Sprintf("%d sec (%+.1f hrs)", r.UTCOffset, float64(r.UTCOffset)/3600.0)
}
