package geoloc

import (
	"time"

	"go.uber.org/zap"

	"github.com/SergeyF11/espGeoLocation/internal/logging"
)

// setClock pushes an instant to the clock service. While a UTC offset is
// configured the wall clock carries local time, so the offset is re-added on
// every set; this is what keeps coarse corrections and zone changes from
// fighting each other.
func (c *Client) setClock(t time.Time, usCorrection int64) {
	if offsetValid(c.currentOffset) {
		t = t.Add(time.Duration(c.currentOffset) * time.Second)
	}
	c.clk.SetTime(t, usCorrection)
}

// configureZone applies the fine correction after a full parse: reconfigure
// the process time zone from the parsed offset, idempotently against the
// offset persisted from earlier requests.
//
// On an actual offset change the current instant is first rebased to true
// UTC by subtracting the old offset, then re-applied under the new one, so
// the wall clock only jumps by the offset delta and never from the zone
// relabeling alone.
func (c *Client) configureZone() {
	if !c.result.OffsetValid() {
		return
	}

	configured := offsetValid(c.currentOffset)
	changed := c.currentOffset != c.result.UTCOffset

	if configured && !changed {
		logging.Debug("Time zone already configured",
			zap.String("request_id", c.requestID),
			zap.Int("offset_seconds", c.currentOffset))
		return
	}

	logging.LogClockCorrection(c.requestID, "fine",
		zap.Int("offset_seconds", c.result.UTCOffset),
		zap.String("timezone", c.result.Timezone),
		zap.Bool("reconfigure", configured))

	var utc time.Time
	if configured && changed {
		utc = c.clk.Now().Add(-time.Duration(c.currentOffset) * time.Second)
	}

	c.currentOffset = c.result.UTCOffset
	c.clk.SetZone(c.currentOffset, c.result.Timezone)

	if !utc.IsZero() {
		c.setClock(utc, 0)
	}

	// Best effort only; a slow clock source must not fail the request.
	if _, ok := c.clk.LocalTime(localTimeWait); !ok {
		logging.Warn("Local time not resolved after zone change",
			zap.String("request_id", c.requestID))
	}
}
