package transport

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"
)

const (
	// DefaultDialTimeout bounds the blocking part of Connect. The state
	// machine layers its own connect-phase deadline on top.
	DefaultDialTimeout = 5 * time.Second

	// pollWait is how long a single buffer top-up may block. Short enough
	// that the host loop stays responsive, long enough to pick up bytes
	// that are already in flight.
	pollWait = 2 * time.Millisecond

	readChunk = 1024
)

// TCP is a Transport over a plain TCP connection. The zero value is ready to
// use. It is not safe for concurrent use, matching the single cooperative
// task that owns it.
type TCP struct {
	conn        net.Conn
	buf         []byte
	peerClosed  bool
	dialTimeout time.Duration
}

// NewTCP returns a TCP transport with the default dial timeout.
func NewTCP() *TCP {
	return &TCP{dialTimeout: DefaultDialTimeout}
}

// SetDialTimeout overrides the bound on the blocking dial inside Connect.
func (t *TCP) SetDialTimeout(d time.Duration) { t.dialTimeout = d }

func (t *TCP) Connect(host string, port int) bool {
	t.Close()

	timeout := t.dialTimeout
	if timeout <= 0 {
		timeout = DefaultDialTimeout
	}
	conn, err := net.DialTimeout("tcp", fmt.Sprintf("%s:%d", host, port), timeout)
	if err != nil {
		return false
	}
	t.conn = conn
	t.buf = t.buf[:0]
	t.peerClosed = false
	return true
}

func (t *TCP) Connected() bool {
	return t.conn != nil && !t.peerClosed
}

func (t *TCP) Available() int {
	t.fill()
	return len(t.buf)
}

func (t *TCP) ReadByte() (byte, bool) {
	if len(t.buf) == 0 {
		t.fill()
	}
	if len(t.buf) == 0 {
		return 0, false
	}
	b := t.buf[0]
	t.buf = t.buf[1:]
	return b, true
}

func (t *TCP) Write(p []byte) (int, error) {
	if t.conn == nil {
		return 0, errors.New("transport not connected")
	}
	return t.conn.Write(p)
}

func (t *TCP) Close() {
	if t.conn != nil {
		t.conn.Close()
		t.conn = nil
	}
	t.peerClosed = true
}

// fill drains whatever the kernel has buffered into t.buf, blocking at most
// pollWait. EOF marks the peer closed but keeps already-buffered bytes
// readable.
func (t *TCP) fill() {
	if t.conn == nil || t.peerClosed {
		return
	}

	t.conn.SetReadDeadline(time.Now().Add(pollWait))
	for {
		chunk := make([]byte, readChunk)
		n, err := t.conn.Read(chunk)
		if n > 0 {
			t.buf = append(t.buf, chunk[:n]...)
		}
		if err != nil {
			if !errors.Is(err, os.ErrDeadlineExceeded) {
				// EOF or a real failure: the stream is done.
				t.peerClosed = true
			}
			return
		}
		// A full chunk suggests more is pending; keep draining within
		// the same deadline.
		if n < readChunk {
			return
		}
	}
}
