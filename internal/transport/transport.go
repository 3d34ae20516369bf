package transport

// Transport is the minimal byte-stream capability consumed by the request
// state machine. All methods are non-blocking apart from Write, which is a
// single buffered send issued once per request.
type Transport interface {
	// Connect opens a stream to host:port. It reports false when the
	// connection could not be established.
	Connect(host string, port int) bool

	// Connected reports whether the stream is still open. A closed stream
	// may still have buffered bytes readable through Available/ReadByte.
	Connected() bool

	// Available returns how many received bytes are ready to read without
	// blocking.
	Available() int

	// ReadByte consumes one buffered byte. ok is false when none is ready.
	ReadByte() (b byte, ok bool)

	// Write sends p to the peer.
	Write(p []byte) (int, error)

	// Close tears the stream down. Safe to call at any time, repeatedly.
	Close()
}

// Link reports whether the network association under the transport is
// currently usable. It is checked once, before connecting; the client never
// manages the link itself.
type Link interface {
	Up() bool
}

// LinkFunc adapts a plain function to the Link capability.
type LinkFunc func() bool

func (f LinkFunc) Up() bool { return f() }
