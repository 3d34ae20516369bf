// Package transport defines the byte-stream and network-link capabilities the
// geolocation client polls, and provides a TCP implementation of both.
//
// The interface is deliberately minimal and non-blocking: the client's
// cooperative loop asks how many bytes are available, consumes them one at a
// time, and never waits for I/O. The TCP implementation keeps an internal
// buffer topped up with short-deadline reads so a poll costs at most a few
// milliseconds even when the peer is silent.
package transport
