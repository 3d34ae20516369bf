package clock

import (
	"sync"
	"time"
)

// Service is the minimal clock capability the geolocation client needs:
// read the wall clock, correct it, and reconfigure the process time zone.
type Service interface {
	// Now returns the current wall-clock instant.
	Now() time.Time

	// SetTime sets the wall clock to t plus usCorrection microseconds.
	SetTime(t time.Time, usCorrection int64)

	// SetZone configures the process-wide time zone as a fixed offset east
	// of UTC, in seconds, with a display name.
	SetZone(offsetSeconds int, name string)

	// LocalTime resolves the current local time, waiting at most maxWait
	// for the clock to become usable. ok is false when it could not be
	// resolved in time; callers treat that as best-effort, not an error.
	LocalTime(maxWait time.Duration) (time.Time, bool)
}

// System is a Service backed by the host clock. Go cannot portably step the
// operating system clock, so corrections are carried as a skew applied on
// top of time.Now, and the zone is held process-locally rather than through
// the TZ environment.
type System struct {
	mu   sync.Mutex
	skew time.Duration
	zone *time.Location
	set  bool
}

// NewSystem returns a system clock with no skew and the UTC zone.
func NewSystem() *System {
	return &System{zone: time.UTC}
}

func (s *System) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Now().Add(s.skew).In(s.zone)
}

func (s *System) SetTime(t time.Time, usCorrection int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	target := t.Add(time.Duration(usCorrection) * time.Microsecond)
	s.skew = time.Until(target)
	s.set = true
}

func (s *System) SetZone(offsetSeconds int, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name == "" {
		name = "UTC"
	}
	s.zone = time.FixedZone(name, offsetSeconds)
}

func (s *System) LocalTime(maxWait time.Duration) (time.Time, bool) {
	// The host clock is always readable, so no waiting is needed; maxWait
	// exists for implementations backed by slow RTC hardware.
	return s.Now(), true
}

// Zone reports the currently configured location.
func (s *System) Zone() *time.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.zone
}

// Adjusted reports whether SetTime has been applied since creation.
func (s *System) Adjusted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set
}
