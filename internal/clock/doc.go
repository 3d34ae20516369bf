// Package clock abstracts the wall clock and process time-zone configuration
// behind an injectable capability, so the request state machine can correct
// the system time without touching ambient global state and tests can drive
// it with a fake.
//
// The sign convention throughout is east-positive: a UTC offset of +3600
// means one hour ahead of UTC. This matches time.FixedZone and is applied
// identically to parsed wire values and zone construction.
package clock
