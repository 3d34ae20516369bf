package clock

import (
	"testing"
	"time"
)

func TestSystem_SetTimeAppliesSkew(t *testing.T) {
	s := NewSystem()

	target := time.Now().Add(-3 * time.Hour).UTC()
	s.SetTime(target, 0)

	got := s.Now()
	diff := got.Sub(target)
	if diff < 0 {
		diff = -diff
	}
	if diff > time.Second {
		t.Errorf("Now() = %v, want within 1s of %v", got, target)
	}
	if !s.Adjusted() {
		t.Error("Adjusted() = false after SetTime")
	}
}

func TestSystem_SetTimeMicrosecondCorrection(t *testing.T) {
	s := NewSystem()

	base := time.Now().UTC()
	s.SetTime(base, 0)
	first := s.Now()

	// 900ms worth of correction must move the clock forward by about that much.
	s.SetTime(base, 900_000)
	second := s.Now()

	shift := second.Sub(first)
	if shift < 800*time.Millisecond || shift > time.Second {
		t.Errorf("correction shifted clock by %v, want ~900ms", shift)
	}
}

func TestSystem_SetZone(t *testing.T) {
	s := NewSystem()

	s.SetZone(3600, "Europe/Paris")
	name, offset := s.Now().Zone()
	if name != "Europe/Paris" || offset != 3600 {
		t.Errorf("zone = (%s, %d), want (Europe/Paris, 3600)", name, offset)
	}

	// Negative offsets are west of UTC.
	s.SetZone(-18000, "America/New_York")
	if _, offset := s.Now().Zone(); offset != -18000 {
		t.Errorf("offset = %d, want -18000", offset)
	}

	// Empty name falls back to UTC label without touching the offset.
	s.SetZone(0, "")
	name, offset = s.Now().Zone()
	if name != "UTC" || offset != 0 {
		t.Errorf("zone = (%s, %d), want (UTC, 0)", name, offset)
	}
}

func TestSystem_LocalTimeImmediate(t *testing.T) {
	s := NewSystem()
	if _, ok := s.LocalTime(0); !ok {
		t.Error("LocalTime should always resolve on the host clock")
	}
}
